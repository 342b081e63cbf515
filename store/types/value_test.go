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

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindFromName(t *testing.T) {
	for name, kind := range map[string]Kind{
		"int":    IntKind,
		"long":   LongKind,
		"float":  FloatKind,
		"double": DoubleKind,
		"string": StringKind,
	} {
		k, err := KindFromName(name)
		require.NoError(t, err)
		assert.Equal(t, kind, k)
		assert.Equal(t, name, k.String())
	}

	_, err := KindFromName("decimal")
	assert.True(t, ErrUnknownTypeName.Is(err))
}

func TestAsIdentity(t *testing.T) {
	i, err := As[int32](Int(7))
	require.NoError(t, err)
	assert.Equal(t, int32(7), i)

	l, err := As[int64](Long(1 << 40))
	require.NoError(t, err)
	assert.Equal(t, int64(1<<40), l)

	f, err := As[float32](Float(2.5))
	require.NoError(t, err)
	assert.Equal(t, float32(2.5), f)

	d, err := As[float64](Double(3.25))
	require.NoError(t, err)
	assert.Equal(t, 3.25, d)

	s, err := As[string](String("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", s)
}

func TestAsWidening(t *testing.T) {
	l, err := As[int64](Int(-4))
	require.NoError(t, err)
	assert.Equal(t, int64(-4), l)

	f, err := As[float32](Int(12))
	require.NoError(t, err)
	assert.Equal(t, float32(12), f)

	d, err := As[float64](Int(12))
	require.NoError(t, err)
	assert.Equal(t, 12.0, d)

	d, err = As[float64](Float(1.5))
	require.NoError(t, err)
	assert.Equal(t, 1.5, d)
}

func TestAsMismatch(t *testing.T) {
	_, err := As[int32](Long(1))
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = As[int32](String("3"))
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = As[float32](Double(1.0))
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = As[int64](Double(1.0))
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = As[string](Int(3))
	assert.True(t, ErrTypeMismatch.Is(err))

	_, err = As[int32](Value{})
	assert.True(t, ErrTypeMismatch.Is(err))
}

func TestBoxRoundTrip(t *testing.T) {
	assert.Equal(t, Int(5), Box(int32(5)))
	assert.Equal(t, Long(5), Box(int64(5)))
	assert.Equal(t, Float(5), Box(float32(5)))
	assert.Equal(t, Double(5), Box(float64(5)))
	assert.Equal(t, String("5"), Box("5"))
}

func TestKindForType(t *testing.T) {
	assert.Equal(t, IntKind, KindForType[int32]())
	assert.Equal(t, LongKind, KindForType[int64]())
	assert.Equal(t, FloatKind, KindForType[float32]())
	assert.Equal(t, DoubleKind, KindForType[float64]())
	assert.Equal(t, StringKind, KindForType[string]())
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "-1", Long(-1).String())
	assert.Equal(t, "1.5", Float(1.5).String())
	assert.Equal(t, "2.25", Double(2.25).String())
	assert.Equal(t, "world", String("world").String())
}
