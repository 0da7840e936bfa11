package codepoints

import "errors"

// ErrInvalidUTF8 is returned by Iterator.Err when Strict mode is enabled and
// the input contains an ill-formed byte sequence.
var ErrInvalidUTF8 = errors.New("codepoints: invalid UTF-8")
