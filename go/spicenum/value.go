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

// Node identifies a circuit node by name.
type Node = string

// Number is a numeric value from a circuit description: the resolved
// magnitude-adjusted float alongside the original source text. Callers
// that need round-trip fidelity of the spelling must keep Raw as given
// and never reconstruct it from Value.
type Number struct {
	Value float64
	Raw   string
}

// DefaultNumber returns the default value, numerically equal to
// resolving "0".
func DefaultNumber() Number {
	return Number{Value: 0.0, Raw: "0"}
}

// String re-emits the original spelling verbatim.
func (n Number) String() string {
	return n.Raw
}

// Equal reports whether two numbers resolve to the same value. The raw
// spelling is not part of the comparison: "1k" and "1000" are equal.
func (n Number) Equal(other Number) bool {
	return n.Value == other.Value
}

// Less reports whether n resolves to a smaller value than other.
func (n Number) Less(other Number) bool {
	return n.Value < other.Value
}

// Compare returns -1, 0, or +1 ordering n against other by resolved
// value only.
func (n Number) Compare(other Number) int {
	switch {
	case n.Value < other.Value:
		return -1
	case n.Value > other.Value:
		return +1
	default:
		return 0
	}
}
