package rvn

import (
	"math/big"
	"strconv"

	"github.com/db47h/decimal"
)

// An Enc encodes a single RVN value. Enc values are built with the
// constructor functions in this package and consumed by Marshal or
// Encoder.Encode; they hold no state of their own and may be reused.
type Enc struct {
	enc func(buf []byte, s state) []byte
}

// Field is a single key-value pair of a record.
type Field struct {
	Key   string
	Value Enc
}

// Bool returns an encoder for a boolean.
func Bool(v bool) Enc {
	return Enc{func(buf []byte, s state) []byte {
		if v {
			return append(buf, "Bool.true"...)
		}
		return append(buf, "Bool.false"...)
	}}
}

// String returns an encoder for a string. Newlines, tabs, quotes,
// backslashes, and dollar signs are escaped; all other bytes pass through
// verbatim.
func String(v string) Enc {
	return Enc{func(buf []byte, s state) []byte {
		buf = append(buf, '"')
		for i := 0; i < len(v); i++ {
			switch c := v[i]; c {
			case '\n':
				buf = append(buf, '\\', 'n')
			case '\t':
				buf = append(buf, '\\', 't')
			case '"':
				buf = append(buf, '\\', '"')
			case '\\':
				buf = append(buf, '\\', '\\')
			case '$':
				buf = append(buf, '\\', '$')
			default:
				buf = append(buf, c)
			}
		}
		return append(buf, '"')
	}}
}

// Integers and decimals encode as canonical decimal text: no radix prefix
// and no digit separators, regardless of how the value was written in the
// source being reproduced.

func appendInt(v int64) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return strconv.AppendInt(buf, v, 10)
	}}
}

func appendUint(v uint64) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return strconv.AppendUint(buf, v, 10)
	}}
}

// I8 returns an encoder for an 8-bit signed integer.
func I8(v int8) Enc { return appendInt(int64(v)) }

// I16 returns an encoder for a 16-bit signed integer.
func I16(v int16) Enc { return appendInt(int64(v)) }

// I32 returns an encoder for a 32-bit signed integer.
func I32(v int32) Enc { return appendInt(int64(v)) }

// I64 returns an encoder for a 64-bit signed integer.
func I64(v int64) Enc { return appendInt(v) }

// U8 returns an encoder for an 8-bit unsigned integer.
func U8(v uint8) Enc { return appendUint(uint64(v)) }

// U16 returns an encoder for a 16-bit unsigned integer.
func U16(v uint16) Enc { return appendUint(uint64(v)) }

// U32 returns an encoder for a 32-bit unsigned integer.
func U32(v uint32) Enc { return appendUint(uint64(v)) }

// U64 returns an encoder for a 64-bit unsigned integer.
func U64(v uint64) Enc { return appendUint(v) }

// I128 returns an encoder for a 128-bit signed integer. The value is
// emitted as given; range checking happens on the decode side.
func I128(v *big.Int) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return v.Append(buf, 10)
	}}
}

// U128 returns an encoder for a 128-bit unsigned integer.
func U128(v *big.Int) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return v.Append(buf, 10)
	}}
}

// F32 returns an encoder for a 32-bit float. The shortest uniquely
// decodable form is emitted, always without an exponent.
func F32(v float32) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return strconv.AppendFloat(buf, float64(v), 'f', -1, 32)
	}}
}

// F64 returns an encoder for a 64-bit float.
func F64(v float64) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return strconv.AppendFloat(buf, v, 'f', -1, 64)
	}}
}

// Decimal returns an encoder for a decimal number.
func Decimal(v *decimal.Decimal) Enc {
	return Enc{func(buf []byte, s state) []byte {
		return v.Append(buf, 'f', -1)
	}}
}

// List returns an encoder for an ordered sequence. Every element is
// followed by a comma, the last included. An empty list encodes as []
// with no inner newline in either mode.
func List(elems ...Enc) Enc {
	return compoundEnc('[', ']', len(elems), func(buf []byte, inner state) []byte {
		for _, e := range elems {
			buf = elemIndent(buf, inner)
			buf = e.enc(buf, inner)
			buf = elemEnd(buf, inner)
		}
		return buf
	})
}

// Tuple returns an encoder for a fixed-length heterogeneous sequence.
func Tuple(elems ...Enc) Enc {
	return compoundEnc('(', ')', len(elems), func(buf []byte, inner state) []byte {
		for _, e := range elems {
			buf = elemIndent(buf, inner)
			buf = e.enc(buf, inner)
			buf = elemEnd(buf, inner)
		}
		return buf
	})
}

// Record returns an encoder for a record. Fields are emitted in the order
// given; keys are emitted verbatim.
func Record(fields ...Field) Enc {
	return compoundEnc('{', '}', len(fields), func(buf []byte, inner state) []byte {
		for _, f := range fields {
			buf = elemIndent(buf, inner)
			buf = append(buf, f.Key...)
			buf = append(buf, ':')
			if inner.mode == Pretty {
				buf = append(buf, ' ')
			}
			buf = f.Value.enc(buf, inner)
			buf = elemEnd(buf, inner)
		}
		return buf
	})
}

// compoundEnc wraps the shared bracket, newline, and closing-indent layout
// of the three bracketed compounds.
func compoundEnc(open, close byte, n int, body func(buf []byte, inner state) []byte) Enc {
	return Enc{func(buf []byte, s state) []byte {
		if n == 0 {
			return append(buf, open, close)
		}
		buf = append(buf, open)
		if s.mode == Pretty {
			buf = append(buf, '\n')
		}
		buf = body(buf, s.enter())
		if s.mode == Pretty {
			buf = appendIndent(buf, s.indent)
		}
		return append(buf, close)
	}}
}

func elemIndent(buf []byte, inner state) []byte {
	if inner.mode == Pretty {
		buf = appendIndent(buf, inner.indent)
	}
	return buf
}

func elemEnd(buf []byte, inner state) []byte {
	buf = append(buf, ',')
	if inner.mode == Pretty {
		buf = append(buf, '\n')
	}
	return buf
}

// Tag returns an encoder for a tagged value: a symbolic name followed by
// zero or more positional attributes. A tag that appears directly as an
// attribute of another tag and itself carries attributes is wrapped in
// parentheses; everywhere else the surrounding compound's delimiters
// already bound it.
func Tag(name string, attrs ...Enc) Enc {
	return Enc{func(buf []byte, s state) []byte {
		paren := s.inTag && len(attrs) > 0
		level := s.indent + 1
		if paren {
			level = s.indent + 2
			buf = append(buf, '(')
			if s.mode == Pretty {
				buf = append(buf, '\n')
				buf = appendIndent(buf, s.indent+1)
			}
		}
		buf = append(buf, name...)
		for _, a := range attrs {
			if s.mode == Pretty {
				buf = append(buf, '\n')
				buf = appendIndent(buf, level)
			} else {
				buf = append(buf, ' ')
			}
			buf = a.enc(buf, s.attr(level))
		}
		if paren {
			if s.mode == Pretty {
				buf = append(buf, '\n')
				buf = appendIndent(buf, s.indent)
			}
			buf = append(buf, ')')
		}
		return buf
	}}
}
