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
	"github.com/dolthub/colt/go/store/colstore"
	"github.com/dolthub/colt/go/store/types"
)

// SegmentScanner evaluates one predicate against one segment and returns the
// positions of matching rows.
type SegmentScanner interface {
	Scan(chunkID colstore.ChunkID, seg colstore.Segment, cmpValue types.Value) (colstore.PosList, error)
}

// ScannerFor resolves the statically typed scanner for a column kind and
// operator. The kind switch is the only place runtime type tags meet the
// generic scan code.
func ScannerFor(kind types.Kind, op ScanType) (SegmentScanner, error) {
	if _, ok := scanTypeNames[op]; !ok {
		return nil, ErrUnsupportedOperator.New(op)
	}
	switch kind {
	case types.IntKind:
		return segmentScanner[int32]{op: op}, nil
	case types.LongKind:
		return segmentScanner[int64]{op: op}, nil
	case types.FloatKind:
		return segmentScanner[float32]{op: op}, nil
	case types.DoubleKind:
		return segmentScanner[float64]{op: op}, nil
	case types.StringKind:
		return segmentScanner[string]{op: op}, nil
	}
	return nil, types.ErrUnknownTypeName.New(kind)
}

type segmentScanner[T types.ColumnValue] struct {
	op ScanType
}

// Scan dispatches on the segment variant. Value segments compare raw values;
// dictionary segments translate the predicate into value-id space once and
// compare ids; reference segments re-evaluate against the underlying
// segments, restricted to the listed positions.
func (s segmentScanner[T]) Scan(chunkID colstore.ChunkID, seg colstore.Segment, cmpValue types.Value) (colstore.PosList, error) {
	cmp, err := types.As[T](cmpValue)
	if err != nil {
		return nil, err
	}
	switch typed := seg.(type) {
	case *colstore.ValueSegment[T]:
		return s.scanValues(chunkID, typed.Values(), cmp), nil
	case *colstore.DictionarySegment[T]:
		return s.scanDictionary(chunkID, typed, cmp), nil
	case *colstore.ReferenceSegment:
		return s.scanReference(typed, cmp)
	default:
		return nil, colstore.ErrUnsupportedSegment.New(seg)
	}
}

func (s segmentScanner[T]) matches(value, cmp T) bool {
	switch s.op {
	case OpEquals:
		return value == cmp
	case OpNotEquals:
		return value != cmp
	case OpLessThan:
		return value < cmp
	case OpLessThanEquals:
		return value <= cmp
	case OpGreaterThan:
		return value > cmp
	case OpGreaterThanEquals:
		return value >= cmp
	}
	panic(ErrUnsupportedOperator.New(s.op))
}

func (s segmentScanner[T]) scanValues(chunkID colstore.ChunkID, values []T, cmp T) colstore.PosList {
	var out colstore.PosList
	for i, v := range values {
		if s.matches(v, cmp) {
			out = append(out, colstore.RowID{ChunkID: chunkID, ChunkOffset: colstore.ChunkOffset(i)})
		}
	}
	return out
}

// valueIDPredicate translates the predicate into value-id space. Because
// InvalidValueID is the largest ValueID and stored ids are strictly smaller,
// the boundary comparisons also cover the empty-result and select-all cases:
// e.g. for ">" with an exhausted upper bound no id is >= InvalidValueID, and
// for "!=" with an absent comparison value every id differs from it.
func (s segmentScanner[T]) valueIDPredicate(seg *colstore.DictionarySegment[T], cmp T) func(colstore.ValueID) bool {
	switch s.op {
	case OpLessThan:
		bound := seg.LowerBound(cmp)
		return func(id colstore.ValueID) bool { return id < bound }
	case OpLessThanEquals:
		bound := seg.UpperBound(cmp)
		return func(id colstore.ValueID) bool { return id < bound }
	case OpGreaterThan:
		bound := seg.UpperBound(cmp)
		return func(id colstore.ValueID) bool { return id >= bound }
	case OpGreaterThanEquals:
		bound := seg.LowerBound(cmp)
		return func(id colstore.ValueID) bool { return id >= bound }
	case OpEquals, OpNotEquals:
		bound := seg.LowerBound(cmp)
		if bound != colstore.InvalidValueID && seg.ValueByValueID(bound) != cmp {
			bound = colstore.InvalidValueID
		}
		if s.op == OpEquals {
			return func(id colstore.ValueID) bool { return id == bound }
		}
		return func(id colstore.ValueID) bool { return id != bound }
	}
	panic(ErrUnsupportedOperator.New(s.op))
}

func (s segmentScanner[T]) scanDictionary(chunkID colstore.ChunkID, seg *colstore.DictionarySegment[T], cmp T) colstore.PosList {
	pred := s.valueIDPredicate(seg, cmp)
	attrVec := seg.AttributeVector()

	var out colstore.PosList
	for i := 0; i < attrVec.Size(); i++ {
		if pred(attrVec.Get(i)) {
			out = append(out, colstore.RowID{ChunkID: chunkID, ChunkOffset: colstore.ChunkOffset(i)})
		}
	}
	return out
}

// scanReference walks the position list in maximal runs of equal chunk id,
// evaluates the predicate against each run's underlying segment at the listed
// offsets only, and emits the underlying row ids, so that chained scans keep
// resolving to original table coordinates.
func (s segmentScanner[T]) scanReference(ref *colstore.ReferenceSegment, cmp T) (colstore.PosList, error) {
	pos := ref.PosList()
	table := ref.ReferencedTable()
	columnID := ref.ReferencedColumnID()

	var out colstore.PosList
	for start := 0; start < len(pos); {
		end := start + 1
		for end < len(pos) && pos[end].ChunkID == pos[start].ChunkID {
			end++
		}

		seg := table.GetChunk(pos[start].ChunkID).GetSegment(columnID)
		switch typed := seg.(type) {
		case *colstore.ValueSegment[T]:
			values := typed.Values()
			for _, rowID := range pos[start:end] {
				if s.matches(values[rowID.ChunkOffset], cmp) {
					out = append(out, rowID)
				}
			}
		case *colstore.DictionarySegment[T]:
			pred := s.valueIDPredicate(typed, cmp)
			attrVec := typed.AttributeVector()
			for _, rowID := range pos[start:end] {
				if pred(attrVec.Get(int(rowID.ChunkOffset))) {
					out = append(out, rowID)
				}
			}
		default:
			return nil, colstore.ErrUnsupportedSegment.New(seg)
		}

		start = end
	}
	return out, nil
}
