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

package colstore

import (
	"github.com/dolthub/colt/go/store/d"
	"github.com/dolthub/colt/go/store/types"
)

// ReferenceSegment presents selected rows of another table's column as a
// segment of its own, without copying data. The referenced table stays alive
// as long as the segment does. Reference segments never point at other
// reference segments; scan output always references the ultimate data table.
type ReferenceSegment struct {
	table    *Table
	columnID ColumnID
	posList  PosList
}

var _ Segment = (*ReferenceSegment)(nil)

func NewReferenceSegment(table *Table, columnID ColumnID, pos PosList) *ReferenceSegment {
	d.PanicIfTrue(table == nil, "referenced table cannot be nil")
	d.PanicIfTrue(pos == nil, "position list cannot be nil")
	d.PanicIfTrue(int(columnID) >= table.ColumnCount(), "column %d does not exist in the referenced table", columnID)
	return &ReferenceSegment{table: table, columnID: columnID, posList: pos}
}

func (s *ReferenceSegment) At(i int) types.Value {
	d.PanicIfTrue(i < 0 || i >= len(s.posList), "offset %d out of bounds for segment of size %d", i, len(s.posList))
	rowID := s.posList[i]
	chunk := s.table.GetChunk(rowID.ChunkID)
	return chunk.GetSegment(s.columnID).At(int(rowID.ChunkOffset))
}

func (s *ReferenceSegment) Append(types.Value) error {
	return ErrImmutableSegment.New(s.variant())
}

func (s *ReferenceSegment) Size() int {
	return len(s.posList)
}

func (s *ReferenceSegment) PosList() PosList {
	return s.posList
}

func (s *ReferenceSegment) ReferencedTable() *Table {
	return s.table
}

func (s *ReferenceSegment) ReferencedColumnID() ColumnID {
	return s.columnID
}

func (s *ReferenceSegment) appendable() bool { return false }
func (s *ReferenceSegment) variant() string  { return "reference" }
