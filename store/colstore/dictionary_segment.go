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
	"golang.org/x/exp/slices"

	"github.com/dolthub/colt/go/store/d"
	"github.com/dolthub/colt/go/store/types"
)

// DictionarySegment stores one column as a sorted unique value domain plus a
// width-fitted array of indexes into it. It is immutable from construction.
type DictionarySegment[T types.ColumnValue] struct {
	dict    []T
	attrVec AttributeVector
}

var _ Segment = (*DictionarySegment[int32])(nil)

// NewDictionarySegment compresses a value segment. The dictionary is the
// sorted, deduplicated value domain; every row's value id points back at the
// row's original value.
func NewDictionarySegment[T types.ColumnValue](src *ValueSegment[T]) (*DictionarySegment[T], error) {
	values := src.Values()

	dict := slices.Clone(values)
	slices.Sort(dict)
	dict = slices.Clip(slices.Compact(dict))

	attrVec, err := NewAttributeVector(len(dict), len(values))
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		id, found := slices.BinarySearch(dict, v)
		d.PanicIfFalse(found, "segment value missing from its own dictionary")
		attrVec.Set(i, ValueID(id))
	}

	return &DictionarySegment[T]{dict: dict, attrVec: attrVec}, nil
}

// Get returns the unboxed value at row i.
func (s *DictionarySegment[T]) Get(i int) T {
	return s.dict[s.attrVec.Get(i)]
}

func (s *DictionarySegment[T]) At(i int) types.Value {
	return types.Box(s.Get(i))
}

func (s *DictionarySegment[T]) Append(types.Value) error {
	return ErrImmutableSegment.New(s.variant())
}

func (s *DictionarySegment[T]) Size() int {
	return s.attrVec.Size()
}

// Dictionary returns the sorted unique value domain. Read-only.
func (s *DictionarySegment[T]) Dictionary() []T {
	return s.dict
}

func (s *DictionarySegment[T]) AttributeVector() AttributeVector {
	return s.attrVec
}

func (s *DictionarySegment[T]) UniqueValuesCount() int {
	return len(s.dict)
}

// ValueByValueID resolves a dictionary entry. InvalidValueID is a programmer
// error.
func (s *DictionarySegment[T]) ValueByValueID(id ValueID) T {
	d.PanicIfTrue(id == InvalidValueID, "cannot resolve the invalid value id")
	d.PanicIfTrue(int(id) >= len(s.dict), "value id %d out of bounds for dictionary of size %d", id, len(s.dict))
	return s.dict[id]
}

// LowerBound returns the id of the first dictionary entry >= value, or
// InvalidValueID if every entry is smaller.
func (s *DictionarySegment[T]) LowerBound(value T) ValueID {
	i, _ := slices.BinarySearch(s.dict, value)
	if i == len(s.dict) {
		return InvalidValueID
	}
	return ValueID(i)
}

// UpperBound returns the id of the first dictionary entry > value, or
// InvalidValueID if every entry is smaller or equal.
func (s *DictionarySegment[T]) UpperBound(value T) ValueID {
	i, found := slices.BinarySearch(s.dict, value)
	if found {
		i++
	}
	if i == len(s.dict) {
		return InvalidValueID
	}
	return ValueID(i)
}

func (s *DictionarySegment[T]) appendable() bool { return false }
func (s *DictionarySegment[T]) variant() string  { return "dictionary" }
