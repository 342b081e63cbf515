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

// Chunk is a horizontal slice of a table: one segment per column, all of
// equal size. Chunks are built column-first during schema setup, then filled
// row-by-row via Append.
type Chunk struct {
	segments []Segment
}

func NewChunk() *Chunk {
	return &Chunk{}
}

// AddSegment appends a column to the chunk. Only valid while the chunk is
// being laid out.
func (c *Chunk) AddSegment(s Segment) {
	c.segments = append(c.segments, s)
}

// Append writes one row across all segments. The row's arity must match the
// column count and every segment must still be appendable.
func (c *Chunk) Append(values []types.Value) error {
	if len(values) != len(c.segments) {
		return ErrArityMismatch.New(len(values), len(c.segments))
	}
	for _, s := range c.segments {
		if !s.appendable() {
			return ErrImmutableSegment.New(s.variant())
		}
	}
	for i, s := range c.segments {
		if err := s.Append(values[i]); err != nil {
			return err
		}
	}
	return nil
}

// GetSegment returns a shared handle to the segment holding the given column.
func (c *Chunk) GetSegment(columnID ColumnID) Segment {
	d.PanicIfTrue(int(columnID) >= len(c.segments), "column %d out of bounds for chunk with %d columns", columnID, len(c.segments))
	return c.segments[columnID]
}

func (c *Chunk) ColumnCount() int {
	return len(c.segments)
}

func (c *Chunk) Size() int {
	if len(c.segments) == 0 {
		return 0
	}
	return c.segments[0].Size()
}
