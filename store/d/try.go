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

// Package d provides panic helpers for conditions that indicate programmer
// error rather than bad input. Contract violations callers can provoke are
// returned as errors by the packages that define them; the helpers here guard
// internal invariants only.
package d

import "fmt"

// PanicIfError panics iff err is non-nil.
func PanicIfError(err error) {
	if err != nil {
		panic(err)
	}
}

// PanicIfTrue panics with a formatted message iff b is true.
func PanicIfTrue(b bool, format string, args ...interface{}) {
	if b {
		panic(fmt.Errorf(format, args...))
	}
}

// PanicIfFalse panics with a formatted message iff b is false.
func PanicIfFalse(b bool, format string, args ...interface{}) {
	PanicIfTrue(!b, format, args...)
}

// Try runs f and converts a panicked error back into a return value.
// Non-error panics propagate.
func Try(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok {
				panic(r)
			}
			err = e
		}
	}()
	f()
	return
}
