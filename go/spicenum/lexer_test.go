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
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestResolvePlainLiterals tests signed integers and decimals without
// suffixes. The resolved value must equal the standard float parse and
// Raw must be the verbatim input.
func TestResolvePlainLiterals(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"int", "7343", 7343.0},
		{"plus int", "+123", 123.0},
		{"minus int", "-453", -453.0},
		{"float", "1.23", 1.23},
		{"plus float", "+87343.54", 87343.54},
		{"minus float", "-8484.00927", -8484.00927},
		{"zero", "0", 0.0},
		{"trailing point", "1.", 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Value)
			assert.Equal(t, tt.input, n.Raw)
		})
	}
}

// TestResolveExponents tests exponent notation in both marker cases,
// with optional exponent signs and leading zeros.
func TestResolveExponents(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"plus int exp lower", "+473e3", 473e3},
		{"minus int exp upper plus", "-234E+7", -234e7},
		{"exp plus leading zeros", "34e+0007", 34e7},
		{"int exp upper minus", "4E-2", 4e-2},
		{"minus exp leading zeros", "-4E-08", -4e-8},
		{"plus float exp lower", "+4.73e3", 4.73e3},
		{"minus float exp upper plus", "-23.4E+7", -23.4e7},
		{"float exp upper plus", "10.34E+4", 10.34e4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Value)
			assert.Equal(t, tt.input, n.Raw)
		})
	}
}

// TestResolveUnitSuffixes tests every single-letter magnitude suffix in
// both cases against the same numeric body.
func TestResolveUnitSuffixes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		mult  float64
	}{
		{"tera lower", "2t", 1e12},
		{"tera upper", "2T", 1e12},
		{"giga lower", "2g", 1e9},
		{"giga upper", "2G", 1e9},
		{"mega x lower", "2x", 1e6},
		{"mega x upper", "2X", 1e6},
		{"kilo lower", "2k", 1e3},
		{"kilo upper", "2K", 1e3},
		{"micro lower", "2u", 1e-6},
		{"micro upper", "2U", 1e-6},
		{"nano lower", "2n", 1e-9},
		{"nano upper", "2N", 1e-9},
		{"pico lower", "2p", 1e-12},
		{"pico upper", "2P", 1e-12},
		{"femto lower", "2f", 1e-15},
		{"femto upper", "2F", 1e-15},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, 2*tt.mult, n.Value)
			assert.Equal(t, tt.input, n.Raw)
		})
	}
}

// TestResolveMilliMegDisambiguation tests the two-byte lookahead that
// tells "Meg" (mega) apart from a bare "m" (milli).
func TestResolveMilliMegDisambiguation(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"int meg", "7343Meg", 7343e6},
		{"float meg", "1.23Meg", 1.23e6},
		{"meg upper", "2MEG", 2e6},
		{"meg lower", "2meg", 2e6},
		{"bare milli", "-8484.00923m", -8484.00923e-3},
		{"milli upper", "5M", 5e-3},
		{"milli one trailing byte", "5Me", 5e-3},
		{"milli wrong lookahead", "5Max", 5e-3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, n.Value, math.Abs(tt.expected)*1e-12)
			assert.Equal(t, tt.input, n.Raw)
		})
	}
}

// TestResolveSuffixTail tests that bytes after the first suffix letter
// are kept in Raw but never inspected for further meaning.
func TestResolveSuffixTail(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"pico with unit name", "1.23pFarad", 1.23e-12},
		{"kilo with ohms", "4.7kOhm", 4.7e3},
		{"plus int with unit lower", "+123t", 123e12},
		{"minus int with unit upper", "-453X", -453e6},
		{"plus float with unit upper", "+87343.54K", 87343.54e3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, n.Value, math.Abs(tt.expected)*1e-12)
			assert.Equal(t, tt.input, n.Raw)
		})
	}
}

// TestResolveSuffixAfterExponent tests that unit suffixes following an
// exponent are ignored: the multiplier stays 1.0.
func TestResolveSuffixAfterExponent(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{"femto after exp", "123e3F", 123e3},
		{"kilo after exp", "1e3k", 1e3},
		{"meg after exp", "2E6Meg", 2e6},
		{"junk after exp", "1e2?", 1e2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := Resolve(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, n.Value)
			assert.Equal(t, tt.input, n.Raw)
		})
	}
}

// TestResolveErrors tests the error taxonomy: every failure carries
// exactly one of the three kinds.
func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  ErrorKind
	}{
		{"empty", "", EmptyInput},
		{"multiple points", "1.2.3", InvalidSyntax},
		{"adjacent points", "1..2", InvalidSyntax},
		{"minus mid body", "3-4", InvalidSyntax},
		{"plus mid body", "3+4", InvalidSyntax},
		{"not a number", "potato", InvalidSyntax},
		{"double sign", "+-474.0", InvalidSyntax},
		{"lone sign", "+", InvalidSyntax},
		{"exp without digits", "1e", InvalidSyntax},
		{"exp then letter", "1eK", InvalidSyntax},
		{"leading point", ".5", InvalidSyntax},
		{"whitespace in body", "1 2", InvalidSyntax},
		{"unknown multiplier", "474.0W", InvalidMultiplier},
		{"unknown multiplier lower", "12q", InvalidMultiplier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Resolve(tt.input)
			require.Error(t, err)

			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}

// TestResolveOverflowSaturates tests that literals beyond float64 range
// saturate to ±Inf rather than failing.
func TestResolveOverflowSaturates(t *testing.T) {
	n, err := Resolve("1e999")
	require.NoError(t, err)
	assert.True(t, math.IsInf(n.Value, +1))
	assert.Equal(t, "1e999", n.Raw)

	n, err = Resolve("-1e999")
	require.NoError(t, err)
	assert.True(t, math.IsInf(n.Value, -1))
}

// TestResolveRejectsSpecialFloats tests that inf/NaN spellings never
// parse as special float tokens. Spellings starting with a letter fail
// the first transition outright; "-inf" reaches the suffix path where
// 'i' is an unknown multiplier.
func TestResolveRejectsSpecialFloats(t *testing.T) {
	tests := []struct {
		input string
		kind  ErrorKind
	}{
		{"inf", InvalidSyntax},
		{"Inf", InvalidSyntax},
		{"NaN", InvalidSyntax},
		{"nan", InvalidSyntax},
		{"-inf", InvalidMultiplier},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Resolve(tt.input)
			require.Error(t, err)

			kind, ok := KindOf(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, kind)
		})
	}
}
