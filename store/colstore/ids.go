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

// Package colstore implements an in-memory columnar table store. Tables hold
// rows in fixed-size chunks; each chunk holds one segment per column, encoded
// as a raw value sequence, a dictionary-compressed sequence, or a zero-copy
// reference into another table.
package colstore

import "math"

// Distinct id types so a chunk id can never be passed where a column id is
// expected.
type (
	ChunkID     uint32
	ColumnID    uint16
	ChunkOffset uint32
	ValueID     uint32
)

// InvalidValueID marks "no dictionary entry". Stored value ids are always
// strictly smaller, so ordered comparisons against it behave like comparisons
// against positive infinity.
const InvalidValueID = ValueID(math.MaxUint32)

// RowID addresses one row of one table.
type RowID struct {
	ChunkID     ChunkID
	ChunkOffset ChunkOffset
}

// PosList is an ordered sequence of row ids, as produced by a scan.
type PosList []RowID
