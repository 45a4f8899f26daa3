package rvn

import "errors"

// ErrTooShort is returned for every parse failure: truncated input,
// malformed digits, unknown escapes, width overflow, missing delimiters,
// and exceeded nesting limits all collapse to this one error. The rest
// value returned by UnmarshalPartial or Decoder.DecodePartial localizes
// the failure.
var ErrTooShort = errors.New("rvn: too short")
