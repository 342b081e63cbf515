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
	"context"
	"strconv"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/dolthub/colt/go/store/d"
	"github.com/dolthub/colt/go/store/metrics"
	"github.com/dolthub/colt/go/store/types"
)

// Table is an ordered sequence of chunks plus a schema. Rows are ingested
// into the last chunk; when it reaches chunkSize a fresh chunk is started.
// The chunk list is the table's only concurrency point: readers may hold
// chunk handles while other chunks are compressed and swapped.
//
// Ingest (AddColumn, Append) is owner-only; concurrent ingest is undefined by
// contract.
type Table struct {
	chunkSize uint32

	colNames []string
	colKinds []types.Kind

	mu     sync.RWMutex
	chunks []*Chunk

	compressions singleflight.Group
}

// NewTable creates an empty table that partitions rows into chunks of at most
// chunkSize rows.
func NewTable(chunkSize uint32) *Table {
	d.PanicIfTrue(chunkSize == 0, "chunk size must be positive")
	return &Table{
		chunkSize: chunkSize,
		chunks:    []*Chunk{NewChunk()},
	}
}

// AddColumn appends a column definition and a fresh value segment for it to
// the ingest chunk. The schema freezes once the table contains rows.
func (t *Table) AddColumn(name, typeName string) error {
	kind, err := types.KindFromName(typeName)
	if err != nil {
		return err
	}
	if t.RowCount() > 0 {
		return ErrSchemaFrozen.New(name)
	}

	t.colNames = append(t.colNames, name)
	t.colKinds = append(t.colKinds, kind)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.chunks[len(t.chunks)-1].AddSegment(newValueSegmentOfKind(kind))
	return nil
}

// Append writes one row, rolling over to a new ingest chunk when the current
// one is full.
func (t *Table) Append(values []types.Value) error {
	t.mu.Lock()
	current := t.chunks[len(t.chunks)-1]
	if uint32(current.Size()) == t.chunkSize {
		current = t.newIngestChunk()
		t.chunks = append(t.chunks, current)
	}
	t.mu.Unlock()

	return current.Append(values)
}

func (t *Table) newIngestChunk() *Chunk {
	chunk := NewChunk()
	for _, kind := range t.colKinds {
		chunk.AddSegment(newValueSegmentOfKind(kind))
	}
	return chunk
}

// EmplaceChunk inserts a pre-built chunk. An empty table has its single empty
// chunk replaced; otherwise the chunk is appended and becomes current.
func (t *Table) EmplaceChunk(chunk *Chunk) error {
	if chunk.ColumnCount() != t.ColumnCount() {
		return ErrColumnCountMismatch.New(chunk.ColumnCount(), t.ColumnCount())
	}
	if uint32(chunk.Size()) > t.chunkSize {
		return ErrChunkTooLarge.New(chunk.Size(), t.chunkSize)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if t.rowCountLocked() == 0 {
		t.chunks[len(t.chunks)-1] = chunk
		return nil
	}
	t.chunks = append(t.chunks, chunk)
	return nil
}

// GetChunk returns a shared handle to the chunk. The handle stays valid after
// the slot is swapped by compression; readers see the old or the new chunk,
// never a mix.
func (t *Table) GetChunk(chunkID ChunkID) *Chunk {
	t.mu.RLock()
	defer t.mu.RUnlock()
	d.PanicIfTrue(int(chunkID) >= len(t.chunks), "chunk %d out of bounds for table with %d chunks", chunkID, len(t.chunks))
	return t.chunks[chunkID]
}

// CompressChunk replaces a full chunk with a dictionary-encoded equivalent.
// The compressed chunk is built against a snapshot of the slot without
// holding the lock; only the final pointer swap takes the write lock.
// Concurrent calls for the same chunk id collapse into one build.
func (t *Table) CompressChunk(chunkID ChunkID) error {
	_, err, _ := t.compressions.Do(strconv.FormatUint(uint64(chunkID), 10), func() (interface{}, error) {
		src := t.GetChunk(chunkID)
		if uint32(src.Size()) != t.chunkSize {
			return nil, ErrChunkNotFull.New(chunkID, src.Size(), t.chunkSize)
		}

		compressed := NewChunk()
		for col := 0; col < src.ColumnCount(); col++ {
			seg := src.GetSegment(ColumnID(col))
			dictSeg, err := buildDictionarySegment(t.colKinds[col], seg)
			if err != nil {
				return nil, err
			}
			compressed.AddSegment(dictSeg)
		}

		t.mu.Lock()
		t.chunks[chunkID] = compressed
		t.mu.Unlock()

		metrics.ChunksCompressed.Inc()
		logrus.WithFields(logrus.Fields{
			"chunk": chunkID,
			"rows":  compressed.Size(),
		}).Debug("compressed chunk")
		return nil, nil
	})
	return err
}

// CompressAll dictionary-compresses every full chunk of the table.
func (t *Table) CompressAll(ctx context.Context) error {
	eg, _ := errgroup.WithContext(ctx)
	for id := 0; id < t.ChunkCount(); id++ {
		chunkID := ChunkID(id)
		if uint32(t.GetChunk(chunkID).Size()) != t.chunkSize {
			continue
		}
		eg.Go(func() error {
			return t.CompressChunk(chunkID)
		})
	}
	return eg.Wait()
}

func (t *Table) ColumnCount() int {
	return len(t.colNames)
}

func (t *Table) RowCount() uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.rowCountLocked()
}

func (t *Table) rowCountLocked() uint64 {
	var rows uint64
	for _, chunk := range t.chunks {
		rows += uint64(chunk.Size())
	}
	return rows
}

func (t *Table) ChunkCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.chunks)
}

func (t *Table) ChunkSize() uint32 {
	return t.chunkSize
}

// ColumnIDByName resolves a column name to its id.
func (t *Table) ColumnIDByName(name string) (ColumnID, error) {
	for i, n := range t.colNames {
		if n == name {
			return ColumnID(i), nil
		}
	}
	return 0, ErrUnknownColumnName.New(name)
}

func (t *Table) ColumnName(columnID ColumnID) string {
	d.PanicIfTrue(int(columnID) >= len(t.colNames), "column %d out of bounds for table with %d columns", columnID, len(t.colNames))
	return t.colNames[columnID]
}

func (t *Table) ColumnType(columnID ColumnID) types.Kind {
	d.PanicIfTrue(int(columnID) >= len(t.colKinds), "column %d out of bounds for table with %d columns", columnID, len(t.colKinds))
	return t.colKinds[columnID]
}

func (t *Table) ColumnNames() []string {
	return t.colNames
}
