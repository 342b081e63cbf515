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
	"strconv"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrTypeMismatch is returned when a Value cannot be converted to the
// requested scalar type.
var ErrTypeMismatch = errors.NewKind("cannot convert %s value to %s")

// ColumnValue is the closed set of Go types a column may hold.
type ColumnValue interface {
	int32 | int64 | float32 | float64 | string
}

// Value is a tagged variant over the scalar column domain. The zero Value has
// UnknownKind and converts to nothing.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

func Int(v int32) Value {
	return Value{kind: IntKind, i: int64(v)}
}

func Long(v int64) Value {
	return Value{kind: LongKind, i: v}
}

func Float(v float32) Value {
	return Value{kind: FloatKind, f: float64(v)}
}

func Double(v float64) Value {
	return Value{kind: DoubleKind, f: v}
}

func String(v string) Value {
	return Value{kind: StringKind, s: v}
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) String() string {
	switch v.kind {
	case IntKind, LongKind:
		return strconv.FormatInt(v.i, 10)
	case FloatKind:
		return strconv.FormatFloat(v.f, 'g', -1, 32)
	case DoubleKind:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case StringKind:
		return v.s
	}
	return "<unknown>"
}

// As converts v to the requested scalar type. Identity conversions always
// succeed; int widens to long, float and double; float widens to double.
// Every other combination fails with ErrTypeMismatch.
func As[T ColumnValue](v Value) (T, error) {
	var out T
	switch p := any(&out).(type) {
	case *int32:
		if v.kind != IntKind {
			return out, ErrTypeMismatch.New(v.kind, IntKind)
		}
		*p = int32(v.i)
	case *int64:
		switch v.kind {
		case IntKind, LongKind:
			*p = v.i
		default:
			return out, ErrTypeMismatch.New(v.kind, LongKind)
		}
	case *float32:
		switch v.kind {
		case FloatKind:
			*p = float32(v.f)
		case IntKind:
			*p = float32(v.i)
		default:
			return out, ErrTypeMismatch.New(v.kind, FloatKind)
		}
	case *float64:
		switch v.kind {
		case FloatKind, DoubleKind:
			*p = v.f
		case IntKind:
			*p = float64(v.i)
		default:
			return out, ErrTypeMismatch.New(v.kind, DoubleKind)
		}
	case *string:
		if v.kind != StringKind {
			return out, ErrTypeMismatch.New(v.kind, StringKind)
		}
		*p = v.s
	}
	return out, nil
}

// Box wraps a scalar back into a Value.
func Box[T ColumnValue](x T) Value {
	switch v := any(x).(type) {
	case int32:
		return Int(v)
	case int64:
		return Long(v)
	case float32:
		return Float(v)
	case float64:
		return Double(v)
	case string:
		return String(v)
	}
	panic("unreachable: ColumnValue is a closed set")
}

// KindForType reports the Kind corresponding to the type parameter.
func KindForType[T ColumnValue]() Kind {
	var zero T
	return Box(zero).Kind()
}
