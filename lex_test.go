package rvn

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkipSpace(t *testing.T) {
	tests := []struct {
		input  string
		indent int
		rest   string
	}{
		{"", 0, ""},
		{"x", 0, "x"},
		{"   x", 3, "x"},
		{"\tx", 2, "x"},
		{" \t x", 4, "x"},
		{"\n x", 1, "x"},
		{"  \n  x", 2, "x"},
		{"# comment", 0, ""},
		{"# comment\nx", 0, "x"},
		{"# comment\n  x", 2, "x"},
		{"  # comment\n\t\tx", 4, "x"},
		{" \n\n    [1]", 4, "[1]"},
	}
	for _, tt := range tests {
		indent, rest := skipSpace([]byte(tt.input))
		assert.Equal(t, tt.indent, indent, "indent of %q", tt.input)
		assert.Equal(t, tt.rest, string(rest), "rest of %q", tt.input)
	}
}

func TestDigitPredicates(t *testing.T) {
	for _, c := range []byte("0123456789_") {
		assert.True(t, isDecDigit(c), "dec %q", c)
	}
	for _, c := range []byte("ab.#- ") {
		assert.False(t, isDecDigit(c), "dec %q", c)
	}
	for _, c := range []byte("01_") {
		assert.True(t, isBinDigit(c), "bin %q", c)
	}
	for _, c := range []byte("29af") {
		assert.False(t, isBinDigit(c), "bin %q", c)
	}
	for _, c := range []byte("0123456789abcdefABCDEF_") {
		assert.True(t, isHexDigit(c), "hex %q", c)
	}
	for _, c := range []byte("ghxG.- ") {
		assert.False(t, isHexDigit(c), "hex %q", c)
	}
}

func TestScanKey(t *testing.T) {
	tests := []struct {
		input string
		key   string
		rest  string
	}{
		{"abc: 1", "abc", ": 1"},
		{"abc :1", "abc", " :1"},
		{"a#c:1", "a", "#c:1"},
		{"a\tb", "a", "\tb"},
		{"", "", ""},
		{"a}b:", "a}b", ":"},
		{"no-sep", "no-sep", ""},
	}
	for _, tt := range tests {
		key, rest := scanKey([]byte(tt.input))
		assert.Equal(t, tt.key, key, "key of %q", tt.input)
		assert.Equal(t, tt.rest, string(rest), "rest of %q", tt.input)
	}
}

func TestScanNumber(t *testing.T) {
	tests := []struct {
		input string
		frac  bool
		lit   string
		n     int
		base  int
	}{
		{"23", false, "23", 2, 10},
		{"-23x", false, "-23", 3, 10},
		{"0b101", false, "101", 5, 2},
		{"-0x1a", false, "-1a", 5, 16},
		{"1_000", false, "1000", 5, 10},
		{"12.5", false, "12", 2, 10},
		{"12.5", true, "12.5", 4, 10},
		{"-1_2.5_0", true, "-12.50", 8, 10},
		{"0x", false, "", 2, 16},
		{"-", false, "-", 1, 10},
		{"", false, "", 0, 10},
	}
	for _, tt := range tests {
		lit, n, base := scanNumber([]byte(tt.input), tt.frac)
		assert.Equal(t, tt.lit, string(lit), "lit of %q", tt.input)
		assert.Equal(t, tt.n, n, "n of %q", tt.input)
		assert.Equal(t, tt.base, base, "base of %q", tt.input)
	}
}
