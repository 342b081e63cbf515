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
	"fmt"

	errors "gopkg.in/src-d/go-errors.v1"
)

// ScanType selects the comparison a table scan applies element-wise.
type ScanType uint8

const (
	OpEquals ScanType = iota
	OpNotEquals
	OpLessThan
	OpLessThanEquals
	OpGreaterThan
	OpGreaterThanEquals
)

// ErrUnsupportedOperator is returned when a scanner is requested for an
// operator outside the supported set.
var ErrUnsupportedOperator = errors.NewKind("unsupported scan operator: %s")

var scanTypeNames = map[ScanType]string{
	OpEquals:            "=",
	OpNotEquals:         "!=",
	OpLessThan:          "<",
	OpLessThanEquals:    "<=",
	OpGreaterThan:       ">",
	OpGreaterThanEquals: ">=",
}

func (st ScanType) String() string {
	if s, ok := scanTypeNames[st]; ok {
		return s
	}
	return fmt.Sprintf("op(%d)", uint8(st))
}

// ScanTypeFromString parses an operator token. "==" and "<>" are accepted as
// aliases.
func ScanTypeFromString(s string) (ScanType, error) {
	switch s {
	case "=", "==":
		return OpEquals, nil
	case "!=", "<>":
		return OpNotEquals, nil
	case "<":
		return OpLessThan, nil
	case "<=":
		return OpLessThanEquals, nil
	case ">":
		return OpGreaterThan, nil
	case ">=":
		return OpGreaterThanEquals, nil
	}
	return 0, ErrUnsupportedOperator.New(s)
}
