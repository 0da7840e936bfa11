// Package filter provides predicates over tokens (grapheme clusters or other
// byte-slice tokens) for use alongside the Segmenter/Scanner in
// internal/iterators. A filter is a func(token []byte) bool -- given a
// token, is some property true of it?
package filter

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Func is a predicate over a token.
type Func func([]byte) bool

// AlphaNumeric returns true for tokens that contain a Letter or Number, as
// defined by Unicode.
var AlphaNumeric Func = func(token []byte) bool {
	pos := 0
	for pos < len(token) {
		r, w := utf8.DecodeRune(token[pos:])
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			// we use these methods instead of unicode.In for
			// performance; these methods have ASCII fast paths
			return true
		}
		pos += w
	}
	return false
}

// Contains returns a filter matching tokens that contain at least one code
// point in any of the given range tables.
func Contains(tables ...*unicode.RangeTable) Func {
	merged := rangetable.Merge(tables...)
	return func(token []byte) bool {
		pos := 0
		for pos < len(token) {
			r, w := utf8.DecodeRune(token[pos:])
			if unicode.Is(merged, r) {
				return true
			}
			pos += w
		}
		return false
	}
}

// Entirely returns a filter matching non-empty tokens whose every code point
// lies in one of the given range tables.
func Entirely(tables ...*unicode.RangeTable) Func {
	merged := rangetable.Merge(tables...)
	return func(token []byte) bool {
		if len(token) == 0 {
			return false
		}
		pos := 0
		for pos < len(token) {
			r, w := utf8.DecodeRune(token[pos:])
			if !unicode.Is(merged, r) {
				return false
			}
			pos += w
		}
		return true
	}
}
