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

// Package spicenum resolves numeric literals from SPICE circuit
// descriptions into float64 values while preserving the original
// spelling.
//
// Literals use engineering notation ("1.23", "-4E-08") and may carry a
// case-insensitive unit-magnitude suffix instead of an exponent. "1.23k"
// resolves to 1230.0. The recognized suffixes are:
//
//	Symbol  Prefix  Equivalent exponent
//	T       Tera    E+12
//	G       Giga    E+09
//	X, Meg  Mega    E+06
//	K       Kilo    E+03
//	M       Milli   E-03
//	U       Micro   E-06
//	N       Nano    E-09
//	P       Pico    E-12
//	F       Femto   E-15
//
// Text after the first suffix letter is retained in the raw spelling but
// carries no meaning, so "1.23pFarad" resolves the same as "1.23p". The
// special float forms "inf" and "NaN" are not accepted.
package spicenum
