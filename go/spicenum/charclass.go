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

// charClass represents character classification flags using bit fields.
type charClass uint8

const (
	classDigit charClass = 1 << iota // 0-9
	classAlpha                       // a-z, A-Z (ASCII only)
	classSign                        // + or -
)

// Character classification lookup table, pre-computed for all 256 byte
// values. Literals are scanned byte-wise; multi-byte UTF-8 sequences never
// classify as digit, alpha, or sign and are rejected by the lexer.
var charClassTable [256]charClass

func init() {
	for b := byte('0'); b <= '9'; b++ {
		charClassTable[b] |= classDigit
	}
	for b := byte('a'); b <= 'z'; b++ {
		charClassTable[b] |= classAlpha
	}
	for b := byte('A'); b <= 'Z'; b++ {
		charClassTable[b] |= classAlpha
	}
	charClassTable['+'] |= classSign
	charClassTable['-'] |= classSign
}

func isDigit(b byte) bool { return charClassTable[b]&classDigit != 0 }

func isAlpha(b byte) bool { return charClassTable[b]&classAlpha != 0 }

func isSign(b byte) bool { return charClassTable[b]&classSign != 0 }

// toUpperByte folds an ASCII lowercase letter to uppercase. All other
// bytes pass through unchanged.
func toUpperByte(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
