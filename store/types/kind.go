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
	errors "gopkg.in/src-d/go-errors.v1"
)

// Kind tags the scalar type of a column element. The set is closed: every
// column of every table holds exactly one of these five kinds.
type Kind uint8

const (
	UnknownKind Kind = iota
	IntKind
	LongKind
	FloatKind
	DoubleKind
	StringKind
)

// ErrUnknownTypeName is returned when a type name is not one of
// "int", "long", "float", "double", "string".
var ErrUnknownTypeName = errors.NewKind("unknown column type name: %s")

var kindNames = map[Kind]string{
	IntKind:    "int",
	LongKind:   "long",
	FloatKind:  "float",
	DoubleKind: "double",
	StringKind: "string",
}

var namedKinds = map[string]Kind{
	"int":    IntKind,
	"long":   LongKind,
	"float":  FloatKind,
	"double": DoubleKind,
	"string": StringKind,
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// KindFromName maps a runtime type name to its Kind. This is the single
// name-to-type table; dispatch to typed code paths goes through it.
func KindFromName(name string) (Kind, error) {
	k, ok := namedKinds[name]
	if !ok {
		return UnknownKind, ErrUnknownTypeName.New(name)
	}
	return k, nil
}
