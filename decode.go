package rvn

import (
	"bytes"
	"math/big"

	"github.com/andeya/gust"
	"github.com/db47h/decimal"
)

// A Dec decodes a single RVN value into caller-owned storage. Dec values
// are built with the constructor functions in this package and driven by
// Unmarshal, UnmarshalPartial, or a Decoder.
//
// Every Dec strips leading whitespace and comments before consuming its
// value, and strips trailing whitespace on success; " 2 X" decodes to 2
// with rest "X" under every decoder. On failure the returned rest marks
// the failure point and no trailing strip occurs.
type Dec struct {
	dec func(b []byte, d *decState) (rest []byte, err error)
}

// Then returns a decoder that runs f after d succeeds. Use it to observe
// that a field or element was actually present, for example to count
// tuple elements before finalizing.
func (d Dec) Then(f func()) Dec {
	return Dec{func(b []byte, st *decState) ([]byte, error) {
		rest, err := d.dec(b, st)
		if err == nil {
			f()
		}
		return rest, err
	}}
}

// prim wraps a bare value parser with the uniform whitespace handling. The
// indent observed by the leading strip is discarded; nothing downstream
// keys on it.
func prim(f func(b []byte, d *decState) ([]byte, error)) Dec {
	return Dec{func(b []byte, d *decState) ([]byte, error) {
		_, b = skipSpace(b)
		rest, err := f(b, d)
		if err != nil {
			return rest, err
		}
		_, rest = skipSpace(rest)
		return rest, nil
	}}
}

// compound additionally charges one level of nesting.
func compound(f func(b []byte, d *decState) ([]byte, error)) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		if err := d.push(); err != nil {
			return b, err
		}
		defer d.pop()
		return f(b, d)
	})
}

var (
	litTrue  = []byte("Bool.true")
	litFalse = []byte("Bool.false")
)

// DecBool returns a decoder for a boolean. Only the exact literals
// Bool.true and Bool.false are recognized.
func DecBool(p *bool) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		return decodeBool(b, p)
	})
}

func decodeBool(b []byte, p *bool) ([]byte, error) {
	switch {
	case bytes.HasPrefix(b, litTrue):
		*p = true
		return b[len(litTrue):], nil
	case bytes.HasPrefix(b, litFalse):
		*p = false
		return b[len(litFalse):], nil
	}
	return b, ErrTooShort
}

// DecString returns a decoder for a string.
func DecString(p *string) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		return decodeString(b, p)
	})
}

func decodeString(b []byte, p *string) ([]byte, error) {
	if len(b) == 0 || b[0] != '"' {
		return b, ErrTooShort
	}
	if bytes.HasPrefix(b, []byte(`"""`)) {
		// Triple-quoted strings are not supported.
		return b, ErrTooShort
	}
	var out []byte
	for i := 1; i < len(b); {
		switch c := b[i]; c {
		case '"':
			*p = string(out)
			return b[i+1:], nil
		case '\\':
			if i+1 >= len(b) {
				return b, ErrTooShort
			}
			switch e := b[i+1]; e {
			case 'n':
				out = append(out, '\n')
			case 't':
				out = append(out, '\t')
			case '"', '\\', '$':
				out = append(out, e)
			default:
				// Unknown escape; rest points at the byte after the
				// backslash.
				return b[i+1:], ErrTooShort
			}
			i += 2
		default:
			out = append(out, c)
			i++
		}
	}
	// No closing quote before the end of input.
	return b, ErrTooShort
}

// DecI8 returns a decoder for an 8-bit signed integer.
func DecI8(p *int8) Dec { return decSigned(p, 8) }

// DecI16 returns a decoder for a 16-bit signed integer.
func DecI16(p *int16) Dec { return decSigned(p, 16) }

// DecI32 returns a decoder for a 32-bit signed integer.
func DecI32(p *int32) Dec { return decSigned(p, 32) }

// DecI64 returns a decoder for a 64-bit signed integer.
func DecI64(p *int64) Dec { return decSigned(p, 64) }

// DecU8 returns a decoder for an 8-bit unsigned integer.
func DecU8(p *uint8) Dec { return decUnsigned(p, 8) }

// DecU16 returns a decoder for a 16-bit unsigned integer.
func DecU16(p *uint16) Dec { return decUnsigned(p, 16) }

// DecU32 returns a decoder for a 32-bit unsigned integer.
func DecU32(p *uint32) Dec { return decUnsigned(p, 32) }

// DecU64 returns a decoder for a 64-bit unsigned integer.
func DecU64(p *uint64) Dec { return decUnsigned(p, 64) }

// DecI128 returns a decoder for a 128-bit signed integer. Values outside
// the width fail like any other overflow.
func DecI128(p *big.Int) Dec { return decBig(p, minI128, maxI128) }

// DecU128 returns a decoder for a 128-bit unsigned integer.
func DecU128(p *big.Int) Dec { return decBig(p, new(big.Int), maxU128) }

// DecF32 returns a decoder for a 32-bit float.
func DecF32(p *float32) Dec { return decFloat(p, 32) }

// DecF64 returns a decoder for a 64-bit float.
func DecF64(p *float64) Dec { return decFloat(p, 64) }

// DecDecimal returns a decoder for a decimal number.
func DecDecimal(p *decimal.Decimal) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		return decDecimalCore(b, p)
	})
}

// DecSlice returns a decoder for a list. For each element, elem receives a
// pointer to fresh storage and returns the decoder for it; the element is
// appended to *p only if its decoder succeeds.
//
// An element decoder that fails directly at the closing bracket
// terminates the list with the elements accumulated so far; this is what
// makes a trailing comma valid, and it also silently accepts a list cut
// short by a premature ].
func DecSlice[T any](p *[]T, elem func(*T) Dec) Dec {
	return compound(func(b []byte, d *decState) ([]byte, error) {
		if len(b) == 0 || b[0] != '[' {
			return b, ErrTooShort
		}
		b = b[1:]
		for {
			_, b = skipSpace(b)
			var tmp T
			rest, err := elem(&tmp).dec(b, d)
			if err != nil {
				_, b = skipSpace(b)
				if len(b) > 0 && b[0] == ']' {
					return b[1:], nil
				}
				return rest, err
			}
			*p = append(*p, tmp)
			b = rest
			if len(b) == 0 {
				return b, ErrTooShort
			}
			switch b[0] {
			case ']':
				return b[1:], nil
			case ',':
				b = b[1:]
			default:
				return b, ErrTooShort
			}
		}
	})
}

// FieldFunc selects the decoder for a record field. Returning Some keeps
// the field; returning None discards its value through the skip decoder.
type FieldFunc func(key string) gust.Option[Dec]

// StepFunc selects the decoder for a tuple element. Returning None marks
// the tuple as complete at index i.
type StepFunc func(i int) gust.Option[Dec]

// DecRecord returns a decoder for a record. field is consulted once per
// key in source order; finalize runs at the closing brace and may reject
// the accumulated state, typically because a required field never
// appeared. Duplicate keys are not diagnosed: field sees each occurrence
// and the last one wins to whatever extent it chooses.
func DecRecord(field FieldFunc, finalize func() error) Dec {
	return compound(func(b []byte, d *decState) ([]byte, error) {
		return decodeRecord(b, d, field, finalize)
	})
}

func decodeRecord(b []byte, d *decState, field FieldFunc, finalize func() error) ([]byte, error) {
	if len(b) == 0 || b[0] != '{' {
		return b, ErrTooShort
	}
	b = b[1:]
	for {
		// The closing brace is checked before scanning a key: it is not a
		// key terminator, so {} and a trailing comma would otherwise read
		// it into the key.
		_, b = skipSpace(b)
		if len(b) > 0 && b[0] == '}' {
			if err := finalize(); err != nil {
				return b, err
			}
			return b[1:], nil
		}
		var key string
		key, b = scanKey(b)
		_, b = skipSpace(b)
		if len(b) == 0 || b[0] != ':' {
			return b, ErrTooShort
		}
		b = b[1:]
		dec := Skip()
		if o := field(key); o.IsSome() {
			dec = o.Unwrap()
		}
		var err error
		if b, err = dec.dec(b, d); err != nil {
			return b, err
		}
		if len(b) == 0 {
			return b, ErrTooShort
		}
		switch b[0] {
		case '}':
			if err := finalize(); err != nil {
				return b, err
			}
			return b[1:], nil
		case ',':
			b = b[1:]
		default:
			return b, ErrTooShort
		}
	}
}

// DecTuple returns a decoder for a tuple. step is consulted with ascending
// indices; finalize runs at the closing parenthesis. Too few elements
// surface through finalize; too many fail with rest positioned at the
// first extra element.
func DecTuple(step StepFunc, finalize func() error) Dec {
	return compound(func(b []byte, d *decState) ([]byte, error) {
		return decodeTuple(b, d, step, finalize)
	})
}

func decodeTuple(b []byte, d *decState, step StepFunc, finalize func() error) ([]byte, error) {
	if len(b) == 0 || b[0] != '(' {
		return b, ErrTooShort
	}
	b = b[1:]
	for i := 0; ; i++ {
		_, b = skipSpace(b)
		o := step(i)
		if o.IsNone() {
			if len(b) > 0 && b[0] == ')' {
				if err := finalize(); err != nil {
					return b, err
				}
				return b[1:], nil
			}
			return b, ErrTooShort
		}
		rest, err := o.Unwrap().dec(b, d)
		if err != nil {
			_, b = skipSpace(b)
			if len(b) > 0 && b[0] == ')' {
				if err := finalize(); err != nil {
					return b, err
				}
				return b[1:], nil
			}
			return rest, err
		}
		b = rest
		if len(b) == 0 {
			return b, ErrTooShort
		}
		switch b[0] {
		case ')':
			if err := finalize(); err != nil {
				return b, err
			}
			return b[1:], nil
		case ',':
			b = b[1:]
		default:
			return b, ErrTooShort
		}
	}
}
