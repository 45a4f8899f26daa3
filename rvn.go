// Package rvn implements an encoder and decoder for the RVN
// data-interchange format.
//
// RVN is a human-editable text format whose syntax mirrors an expression
// language: records, lists, tuples, tagged values, strings, booleans,
// integers in decimal, binary, and hexadecimal notation, and decimal
// numbers. Line comments start with # and run to the end of the line;
// compounds are comma-separated and tolerate a trailing comma.
//
// Encoding walks a tree of Enc nodes built with the constructor functions
// (Bool, String, List, Record, Tag, and so on) and produces bytes in one
// of two modes: Compact emits no insignificant whitespace, while Pretty
// indents with four spaces per nesting level and separates elements with
// newlines.
//
// Decoding is type-directed: the caller describes the expected shape with
// Dec nodes, which write into caller-owned storage as input is consumed.
// Record and tuple decoders consult caller-supplied selectors per key or
// index, and fields the caller does not claim are discarded with the skip
// decoder. There is no decoder for tags; input containing a tag can only
// be produced, not recovered.
//
// Every parse failure is reported as ErrTooShort; the rest value returned
// by the partial entry points marks where the failure occurred.
package rvn

import (
	"errors"
	"io"

	"github.com/anaminus/parse"
)

// Marshal encodes v in the given mode and returns the encoded bytes.
func Marshal(v Enc, mode Mode) []byte {
	return v.enc(make([]byte, 0, 64), state{mode: mode})
}

// Unmarshal decodes b into d. It succeeds only if all of b is consumed
// once trailing whitespace and comments are stripped.
func Unmarshal(b []byte, d Dec) error {
	return Decoder{}.DecodeBytes(b, d)
}

// UnmarshalPartial decodes one value from the front of b into d and
// returns the unconsumed suffix. On failure, rest marks the failure
// point within b.
func UnmarshalPartial(b []byte, d Dec) (rest []byte, err error) {
	return Decoder{}.DecodePartial(b, d)
}

// Encoder encodes values into a stream of bytes according to the rvn
// format.
type Encoder struct {
	// Mode indicates how output is formatted.
	Mode Mode
}

// Encode formats v according to the encoder's mode, and writes it to w.
func (e Encoder) Encode(w io.Writer, v Enc) (err error) {
	if w == nil {
		return errors.New("nil writer")
	}
	fw := parse.NewBinaryWriter(w)
	fw.Bytes(Marshal(v, e.Mode))
	return fw.Err()
}

// DefaultMaxDepth is the nesting limit applied when Decoder.MaxDepth is
// unset. It bounds recursion on pathological input; values nested deeper
// fail to decode.
const DefaultMaxDepth = 256

// Decoder decodes a stream of bytes according to the rvn format. Parsing
// accepts any whitespace layout, so there is no mode to configure; the
// zero value is ready to use.
type Decoder struct {
	// MaxDepth overrides DefaultMaxDepth when positive.
	MaxDepth int
}

// Decode reads all data from r and decodes it into d.
func (dc Decoder) Decode(r io.Reader, d Dec) (err error) {
	if r == nil {
		return errors.New("nil reader")
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	return dc.DecodeBytes(b, d)
}

// DecodeBytes decodes b into d, requiring that all of b is consumed.
func (dc Decoder) DecodeBytes(b []byte, d Dec) error {
	rest, err := dc.DecodePartial(b, d)
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		return ErrTooShort
	}
	return nil
}

// DecodePartial decodes one value from the front of b into d and returns
// the unconsumed suffix.
func (dc Decoder) DecodePartial(b []byte, d Dec) (rest []byte, err error) {
	limit := dc.MaxDepth
	if limit <= 0 {
		limit = DefaultMaxDepth
	}
	st := decState{limit: limit}
	return d.dec(b, &st)
}
