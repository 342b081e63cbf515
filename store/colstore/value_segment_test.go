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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dolthub/colt/go/store/types"
)

func TestValueSegmentAppend(t *testing.T) {
	seg := NewValueSegment[int32]()
	require.Equal(t, 0, seg.Size())

	require.NoError(t, seg.Append(types.Int(3)))
	require.NoError(t, seg.Append(types.Int(4)))
	assert.Equal(t, 2, seg.Size())
	assert.Equal(t, []int32{3, 4}, seg.Values())
}

func TestValueSegmentAppendTypeMismatch(t *testing.T) {
	seg := NewValueSegment[int32]()
	err := seg.Append(types.String("three"))
	assert.True(t, types.ErrTypeMismatch.Is(err))
	assert.Equal(t, 0, seg.Size())
}

func TestValueSegmentAppendWidens(t *testing.T) {
	seg := NewValueSegment[float64]()
	require.NoError(t, seg.Append(types.Int(2)))
	require.NoError(t, seg.Append(types.Double(0.5)))
	assert.Equal(t, []float64{2, 0.5}, seg.Values())
}

func TestValueSegmentAt(t *testing.T) {
	seg := NewValueSegment[string]()
	require.NoError(t, seg.Append(types.String("Hello,")))
	require.NoError(t, seg.Append(types.String("world")))

	assert.Equal(t, types.String("world"), seg.At(1))
	assert.Panics(t, func() { seg.At(2) })
}
