package rvn

import (
	"bytes"
	"math/big"

	"github.com/db47h/decimal"
)

// Skip returns a decoder that consumes any well-formed value and discards
// it. Record decoding uses it to advance past fields the caller's shape
// does not claim; it is also usable directly to validate input of unknown
// shape.
//
// Tags have no decoder in this codec, so tag-shaped input fails here like
// it fails everywhere else.
func Skip() Dec {
	return prim(skipValue)
}

// skipValue dispatches on the first byte. It and skipRecord are mutually
// recursive: a record skip must accept arbitrary keys and skip arbitrary
// values.
func skipValue(b []byte, d *decState) ([]byte, error) {
	if len(b) == 0 {
		return b, ErrTooShort
	}
	switch c := b[0]; {
	case c == '"':
		var s string
		return decodeString(b, &s)
	case c == '0' && len(b) > 1 && (b[1] == 'b' || b[1] == 'x'):
		// Radix-prefixed integer, parsed at unbounded width so that no
		// valid input overflows.
		lit, n, base := scanNumber(b, false)
		if _, ok := new(big.Int).SetString(string(lit), base); !ok {
			return b[n:], ErrTooShort
		}
		return b[n:], nil
	case c == '-' || '0' <= c && c <= '9':
		var v decimal.Decimal
		return decDecimalCore(b, &v)
	case c == 'B' && bytes.HasPrefix(b, []byte("Bool.")):
		var v bool
		return decodeBool(b, &v)
	case c == '[':
		return skipSeq(b, d, ']')
	case c == '(':
		return skipSeq(b, d, ')')
	case c == '{':
		return skipRecord(b, d)
	}
	return b, ErrTooShort
}

// skipSeq skips a list or a tuple; the two differ only in their closing
// delimiter once every element goes through Skip.
func skipSeq(b []byte, d *decState, close byte) ([]byte, error) {
	if err := d.push(); err != nil {
		return b, err
	}
	defer d.pop()
	b = b[1:]
	for {
		_, b = skipSpace(b)
		rest, err := Skip().dec(b, d)
		if err != nil {
			_, b = skipSpace(b)
			if len(b) > 0 && b[0] == close {
				return b[1:], nil
			}
			return rest, err
		}
		b = rest
		if len(b) == 0 {
			return b, ErrTooShort
		}
		switch b[0] {
		case close:
			return b[1:], nil
		case ',':
			b = b[1:]
		default:
			return b, ErrTooShort
		}
	}
}

func skipRecord(b []byte, d *decState) ([]byte, error) {
	if err := d.push(); err != nil {
		return b, err
	}
	defer d.pop()
	b = b[1:]
	for {
		_, b = skipSpace(b)
		if len(b) > 0 && b[0] == '}' {
			return b[1:], nil
		}
		_, b = scanKey(b)
		_, b = skipSpace(b)
		if len(b) == 0 || b[0] != ':' {
			return b, ErrTooShort
		}
		b = b[1:]
		var err error
		if b, err = Skip().dec(b, d); err != nil {
			return b, err
		}
		if len(b) == 0 {
			return b, ErrTooShort
		}
		switch b[0] {
		case '}':
			return b[1:], nil
		case ',':
			b = b[1:]
		default:
			return b, ErrTooShort
		}
	}
}
