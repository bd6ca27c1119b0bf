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

// Magnitude multipliers for single-letter unit prefixes, keyed by the
// upper-cased suffix byte. 'M' is handled separately since it needs
// lookahead to tell "Meg" (mega) from bare "m" (milli).
var multiplierTable = map[byte]float64{
	'T': 1e12,  // Tera
	'G': 1e9,   // Giga
	'X': 1e6,   // Mega
	'K': 1e3,   // Kilo
	'U': 1e-6,  // Micro
	'N': 1e-9,  // Nano
	'P': 1e-12, // Pico
	'F': 1e-15, // Femto
}

// resolveSuffix resolves the magnitude multiplier for the first suffix
// letter encountered in the numeric body. rest is the unread remainder of
// the input; for 'M', up to two bytes of it are compared case-insensitively
// against "EG" to pick mega over milli. Fewer than two remaining bytes can
// never match, so a short tail resolves to milli. Returns false for an
// unrecognized letter.
func resolveSuffix(letter byte, rest string) (float64, bool) {
	u := toUpperByte(letter)
	if u == 'M' {
		if len(rest) >= 2 && toUpperByte(rest[0]) == 'E' && toUpperByte(rest[1]) == 'G' {
			return 1e6, true
		}
		return 1e-3, true
	}

	mult, ok := multiplierTable[u]
	return mult, ok
}
