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
	"math"

	"github.com/dolthub/colt/go/store/d"
)

// AttributeVector is a width-fitted array of value ids. The storage element
// width is the smallest of 1, 2 or 4 bytes whose maximum value is at least the
// entry count of the dictionary it belongs to.
type AttributeVector interface {
	// Get widens the stored element at offset i to a ValueID.
	Get(i int) ValueID

	// Set narrows id to the storage width and writes it at offset i, growing
	// the vector with zero-fill if i is past the end.
	Set(i int, id ValueID)

	// Size returns the element count.
	Size() int

	// Width returns the bytes per stored element.
	Width() uint8
}

// NewAttributeVector returns a zeroed vector of n elements fitted to a
// dictionary of uniqueValues entries. Domains of InvalidValueID or more
// entries are rejected.
func NewAttributeVector(uniqueValues int, n int) (AttributeVector, error) {
	switch {
	case uniqueValues <= math.MaxUint8:
		return &fittedAttributeVector[uint8]{values: make([]uint8, n)}, nil
	case uniqueValues <= math.MaxUint16:
		return &fittedAttributeVector[uint16]{values: make([]uint16, n)}, nil
	case int64(uniqueValues) < int64(InvalidValueID):
		return &fittedAttributeVector[uint32]{values: make([]uint32, n)}, nil
	default:
		return nil, ErrDictionaryTooLarge.New(uniqueValues)
	}
}

type uintN interface {
	uint8 | uint16 | uint32
}

type fittedAttributeVector[U uintN] struct {
	values []U
}

func (v *fittedAttributeVector[U]) Get(i int) ValueID {
	d.PanicIfTrue(i < 0 || i >= len(v.values), "offset %d out of bounds for attribute vector of size %d", i, len(v.values))
	return ValueID(v.values[i])
}

func (v *fittedAttributeVector[U]) Set(i int, id ValueID) {
	d.PanicIfTrue(i < 0, "negative attribute vector offset %d", i)
	if i >= len(v.values) {
		v.values = append(v.values, make([]U, i+1-len(v.values))...)
	}
	v.values[i] = U(id)
}

func (v *fittedAttributeVector[U]) Size() int {
	return len(v.values)
}

func (v *fittedAttributeVector[U]) Width() uint8 {
	switch any(U(0)).(type) {
	case uint8:
		return 1
	case uint16:
		return 2
	default:
		return 4
	}
}
