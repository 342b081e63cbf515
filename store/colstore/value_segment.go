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
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/dolthub/colt/go/store/d"
	"github.com/dolthub/colt/go/store/types"
)

// ValueSegment is a dense, appendable sequence of T holding one column of the
// current ingest chunk. Once the containing chunk is compressed the segment is
// replaced wholesale, never mutated.
type ValueSegment[T types.ColumnValue] struct {
	values   []T
	slowWarn sync.Once
}

var _ Segment = (*ValueSegment[int32])(nil)

func NewValueSegment[T types.ColumnValue]() *ValueSegment[T] {
	return &ValueSegment[T]{}
}

// At boxes element i. Scans must use Values instead; a warning is logged the
// first time a segment is read through the boxed path.
func (s *ValueSegment[T]) At(i int) types.Value {
	s.slowWarn.Do(func() {
		logrus.WithField("segment", s.variant()).Warn("boxed element access, scans should use the values slice")
	})
	d.PanicIfTrue(i < 0 || i >= len(s.values), "offset %d out of bounds for segment of size %d", i, len(s.values))
	return types.Box(s.values[i])
}

func (s *ValueSegment[T]) Append(v types.Value) error {
	x, err := types.As[T](v)
	if err != nil {
		return err
	}
	s.values = append(s.values, x)
	return nil
}

func (s *ValueSegment[T]) Size() int {
	return len(s.values)
}

// Values returns the backing slice. Callers must treat it as read-only.
func (s *ValueSegment[T]) Values() []T {
	return s.values
}

func (s *ValueSegment[T]) appendable() bool { return true }
func (s *ValueSegment[T]) variant() string  { return "value" }
