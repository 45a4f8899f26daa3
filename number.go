package rvn

import (
	"math/big"
	"strconv"

	"github.com/db47h/decimal"
)

// scanNumber consumes a numeric literal from the front of b: an optional
// sign, an optional 0b or 0x radix prefix, a digit run in the radix's
// class, and, when frac is set, an optional fraction. It returns the
// literal text ready for conversion (sign and digits with separators
// removed, radix prefix stripped), the number of bytes consumed, and the
// radix. Validation is left to the conversion: an empty or unconvertible
// literal is the conversion's problem.
func scanNumber(b []byte, frac bool) (lit []byte, n int, base int) {
	i := 0
	if i < len(b) && b[i] == '-' {
		lit = append(lit, '-')
		i++
	}
	base = 10
	digit := isDecDigit
	if i+1 < len(b) && b[i] == '0' {
		switch b[i+1] {
		case 'b':
			base, digit = 2, isBinDigit
			i += 2
		case 'x':
			base, digit = 16, isHexDigit
			i += 2
		}
	}
	for i < len(b) && digit(b[i]) {
		if b[i] != '_' {
			lit = append(lit, b[i])
		}
		i++
	}
	if frac && i < len(b) && b[i] == '.' {
		lit = append(lit, '.')
		i++
		for i < len(b) && isDecDigit(b[i]) {
			if b[i] != '_' {
				lit = append(lit, b[i])
			}
			i++
		}
	}
	return lit, i, base
}

// Bounds of the 128-bit widths.
var (
	minI128 = new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), 127))
	maxI128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	maxU128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
)

type signed interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func decSigned[T signed](p *T, bits int) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		lit, n, base := scanNumber(b, false)
		v, err := strconv.ParseInt(string(lit), base, bits)
		if err != nil {
			return b[n:], ErrTooShort
		}
		*p = T(v)
		return b[n:], nil
	})
}

func decUnsigned[T unsigned](p *T, bits int) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		lit, n, base := scanNumber(b, false)
		v, err := strconv.ParseUint(string(lit), base, bits)
		if err != nil {
			return b[n:], ErrTooShort
		}
		*p = T(v)
		return b[n:], nil
	})
}

func decBig(p *big.Int, min, max *big.Int) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		lit, n, base := scanNumber(b, false)
		v, ok := new(big.Int).SetString(string(lit), base)
		if !ok || v.Cmp(min) < 0 || v.Cmp(max) > 0 {
			return b[n:], ErrTooShort
		}
		p.Set(v)
		return b[n:], nil
	})
}

func decFloat[T ~float32 | ~float64](p *T, bits int) Dec {
	return prim(func(b []byte, d *decState) ([]byte, error) {
		lit, n, base := scanNumber(b, true)
		if base != 10 {
			return b[n:], ErrTooShort
		}
		v, err := strconv.ParseFloat(string(lit), bits)
		if err != nil {
			return b[n:], ErrTooShort
		}
		*p = T(v)
		return b[n:], nil
	})
}

// decDecimalCore is shared by DecDecimal and the skip decoder's number
// branch; the skip decoder parses at this widest width so that no valid
// input can overflow.
func decDecimalCore(b []byte, p *decimal.Decimal) ([]byte, error) {
	lit, n, base := scanNumber(b, true)
	if base != 10 {
		return b[n:], ErrTooShort
	}
	if _, ok := p.SetString(string(lit)); !ok {
		return b[n:], ErrTooShort
	}
	return b[n:], nil
}
