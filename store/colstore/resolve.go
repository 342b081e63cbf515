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

// The two dispatch tables that turn a runtime column kind into statically
// typed segment code. Everything that needs per-kind construction goes
// through here.

func newValueSegmentOfKind(kind types.Kind) Segment {
	switch kind {
	case types.IntKind:
		return NewValueSegment[int32]()
	case types.LongKind:
		return NewValueSegment[int64]()
	case types.FloatKind:
		return NewValueSegment[float32]()
	case types.DoubleKind:
		return NewValueSegment[float64]()
	case types.StringKind:
		return NewValueSegment[string]()
	}
	d.PanicIfTrue(true, "no value segment for kind %s", kind)
	return nil
}

func buildDictionarySegment(kind types.Kind, seg Segment) (Segment, error) {
	switch kind {
	case types.IntKind:
		return dictionaryFromSegment[int32](seg)
	case types.LongKind:
		return dictionaryFromSegment[int64](seg)
	case types.FloatKind:
		return dictionaryFromSegment[float32](seg)
	case types.DoubleKind:
		return dictionaryFromSegment[float64](seg)
	case types.StringKind:
		return dictionaryFromSegment[string](seg)
	}
	d.PanicIfTrue(true, "no dictionary segment for kind %s", kind)
	return nil, nil
}

func dictionaryFromSegment[T types.ColumnValue](seg Segment) (Segment, error) {
	src, ok := seg.(*ValueSegment[T])
	if !ok {
		return nil, ErrUnsupportedSegment.New(seg)
	}
	return NewDictionarySegment(src)
}
