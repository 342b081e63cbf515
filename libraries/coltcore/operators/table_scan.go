// Copyright 2026 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operators

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/dolthub/colt/go/store/colstore"
	"github.com/dolthub/colt/go/store/metrics"
	"github.com/dolthub/colt/go/store/types"
)

// TableScan filters an input table by a single-column predicate. The output
// table mirrors the input schema and consists of reference segments only; no
// row data is copied. When the scanned segment is itself a reference segment
// the output references that segment's backing table, so references never
// chain.
type TableScan struct {
	in          Operator
	columnID    colstore.ColumnID
	scanType    ScanType
	searchValue types.Value

	out *colstore.Table
}

var _ Operator = (*TableScan)(nil)

func NewTableScan(in Operator, columnID colstore.ColumnID, scanType ScanType, searchValue types.Value) *TableScan {
	return &TableScan{
		in:          in,
		columnID:    columnID,
		scanType:    scanType,
		searchValue: searchValue,
	}
}

func (ts *TableScan) ColumnID() colstore.ColumnID { return ts.columnID }
func (ts *TableScan) ScanType() ScanType          { return ts.scanType }
func (ts *TableScan) SearchValue() types.Value    { return ts.searchValue }

func (ts *TableScan) Table() *colstore.Table {
	return ts.out
}

func (ts *TableScan) Execute(ctx context.Context) error {
	if ts.out != nil {
		return nil
	}
	if err := ts.in.Execute(ctx); err != nil {
		return err
	}
	in := ts.in.Table()

	start := time.Now()
	scanID := uuid.New().String()

	scanner, err := ScannerFor(in.ColumnType(ts.columnID), ts.scanType)
	if err != nil {
		return err
	}

	out := colstore.NewTable(in.ChunkSize())
	for col := 0; col < in.ColumnCount(); col++ {
		columnID := colstore.ColumnID(col)
		if err := out.AddColumn(in.ColumnName(columnID), in.ColumnType(columnID).String()); err != nil {
			return err
		}
	}

	var rowsIn, rowsOut uint64
	for id := 0; id < in.ChunkCount(); id++ {
		chunkID := colstore.ChunkID(id)
		chunk := in.GetChunk(chunkID)
		seg := chunk.GetSegment(ts.columnID)

		positions, err := scanner.Scan(chunkID, seg, ts.searchValue)
		if err != nil {
			return err
		}
		rowsIn += uint64(seg.Size())
		rowsOut += uint64(len(positions))
		if len(positions) == 0 {
			continue
		}

		backing := in
		if ref, ok := seg.(*colstore.ReferenceSegment); ok {
			backing = ref.ReferencedTable()
		}

		outChunk := colstore.NewChunk()
		for col := 0; col < in.ColumnCount(); col++ {
			outChunk.AddSegment(colstore.NewReferenceSegment(backing, colstore.ColumnID(col), positions))
		}
		if err := out.EmplaceChunk(outChunk); err != nil {
			return err
		}
	}

	// An empty result still carries the schema downstream: one empty chunk of
	// reference segments over the input table.
	if out.RowCount() == 0 {
		empty := colstore.NewChunk()
		for col := 0; col < in.ColumnCount(); col++ {
			empty.AddSegment(colstore.NewReferenceSegment(in, colstore.ColumnID(col), colstore.PosList{}))
		}
		if err := out.EmplaceChunk(empty); err != nil {
			return err
		}
	}

	metrics.ScansExecuted.Inc()
	metrics.RowsScanned.Add(float64(rowsIn))
	metrics.RowsMatched.Add(float64(rowsOut))
	metrics.ScanDuration.Observe(time.Since(start).Seconds())
	logrus.WithFields(logrus.Fields{
		"scan_id":  scanID,
		"column":   in.ColumnName(ts.columnID),
		"operator": ts.scanType.String(),
		"rows_in":  rowsIn,
		"rows_out": rowsOut,
		"took":     time.Since(start),
	}).Debug("table scan executed")

	ts.out = out
	return nil
}
