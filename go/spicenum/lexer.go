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
	"strconv"
)

// lexState represents the current state of the literal state machine.
type lexState int

const (
	stateStart          lexState = iota // nothing consumed yet
	stateIntegerPart                    // inside the integer digits (or just past a fraction digit)
	stateFractionPart                   // a decimal point was the previous byte
	stateExponentStart                  // an exponent marker was the previous byte
	stateExponentDigits                 // inside the exponent digits
)

// Resolve parses a numeric literal in engineering notation with an
// optional unit-magnitude suffix and returns the resolved Number. The
// returned Raw is always the entire original input, even when lexing
// stopped at a suffix letter partway through.
//
// Errors are classified *ParseError values: EmptyInput for a zero-length
// string, InvalidMultiplier for an unrecognized suffix letter, and
// InvalidSyntax for everything else.
func Resolve(input string) (Number, error) {
	var (
		state = stateStart
		buf   = make([]byte, 0, len(input))
		mult  = 1.0
		pos   = 0
	)

scan:
	for {
		if pos >= len(input) {
			if len(buf) > 0 {
				break scan
			}
			return Number{}, &ParseError{Kind: EmptyInput, Input: input}
		}
		c := input[pos]
		pos++

		switch state {
		case stateStart:
			if !isSign(c) && !isDigit(c) {
				return Number{}, &ParseError{Kind: InvalidSyntax, Input: input, Position: pos - 1}
			}
			buf = append(buf, c)
			state = stateIntegerPart

		case stateIntegerPart, stateFractionPart:
			switch {
			case isDigit(c):
				// Digits always reset to the integer state: the machine
				// only remembers "a point was just consumed" for one byte.
				// A second point further on slips through here and is
				// caught by ParseFloat below.
				buf = append(buf, c)
				state = stateIntegerPart
			case c == '.':
				if state == stateFractionPart {
					return Number{}, &ParseError{Kind: InvalidSyntax, Input: input, Position: pos - 1}
				}
				buf = append(buf, c)
				state = stateFractionPart
			case c == 'e' || c == 'E':
				buf = append(buf, c)
				state = stateExponentStart
			case isAlpha(c):
				m, ok := resolveSuffix(c, input[pos:])
				if !ok {
					return Number{}, &ParseError{Kind: InvalidMultiplier, Input: input, Position: pos - 1}
				}
				mult = m
				break scan
			default:
				return Number{}, &ParseError{Kind: InvalidSyntax, Input: input, Position: pos - 1}
			}

		case stateExponentStart:
			if !isSign(c) && !isDigit(c) {
				return Number{}, &ParseError{Kind: InvalidSyntax, Input: input, Position: pos - 1}
			}
			buf = append(buf, c)
			state = stateExponentDigits

		case stateExponentDigits:
			if !isDigit(c) {
				// Unit suffixes after an exponent carry no meaning; the
				// multiplier stays 1.0 and lexing stops here.
				break scan
			}
			buf = append(buf, c)
		}
	}

	value, err := strconv.ParseFloat(string(buf), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// ErrRange saturates to ±Inf, which is how overflowing literals
		// resolve; any other failure is a body the local checks let
		// through, such as "1.2.3".
		return Number{}, &ParseError{Kind: InvalidSyntax, Input: input, Position: pos}
	}

	return Number{Value: value * mult, Raw: input}, nil
}
