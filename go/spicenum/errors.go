// Copyright 2025 The Spicekit Authors.
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

package spicenum

import (
	"errors"
	"fmt"
)

// ErrorKind classifies literal resolution failures. Exactly three kinds
// exist; callers deciding whether one bad literal aborts a larger parse
// can switch on the kind via KindOf.
type ErrorKind int

const (
	// EmptyInput indicates the input string had zero characters.
	EmptyInput ErrorKind = iota
	// InvalidSyntax indicates malformed numeric grammar anywhere in the
	// literal body, including a body that fails float parsing despite
	// passing the lexer's local checks (e.g. "1.2.3").
	InvalidSyntax
	// InvalidMultiplier indicates a unit-suffix letter was present but is
	// not a recognized magnitude prefix.
	InvalidMultiplier
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case EmptyInput:
		return "EmptyInput"
	case InvalidSyntax:
		return "InvalidSyntax"
	case InvalidMultiplier:
		return "InvalidMultiplier"
	default:
		return "UNKNOWN"
	}
}

// ParseError is a classified literal resolution failure.
type ParseError struct {
	Kind     ErrorKind
	Input    string // the full original input text
	Position int    // byte offset where lexing stopped
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	switch e.Kind {
	case EmptyInput:
		return "cannot parse number from empty string"
	case InvalidMultiplier:
		return fmt.Sprintf("invalid unit multiplier at or near %q", e.Input)
	default:
		return fmt.Sprintf("invalid numeric literal at or near %q", e.Input)
	}
}

// KindOf extracts the error kind from an error returned by Resolve. The
// second return value is false if err is not a *ParseError.
func KindOf(err error) (ErrorKind, bool) {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind, true
	}
	return 0, false
}
