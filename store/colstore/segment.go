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
	"github.com/dolthub/colt/go/store/types"
)

// Segment is one column of one chunk. The variant set is sealed to this
// package: value segments (typed, appendable), dictionary segments
// (compressed, immutable) and reference segments (views, immutable).
// Scan code type-switches over the concrete variants; At is the boxed slow
// path for debugging and row-at-a-time output.
type Segment interface {
	// At boxes element i. Out-of-range offsets are programmer errors and
	// panic.
	At(i int) types.Value

	// Append coerces v to the segment's element type and appends it.
	Append(v types.Value) error

	// Size returns the number of rows in the segment.
	Size() int

	appendable() bool
	variant() string
}
