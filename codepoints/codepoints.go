// Package codepoints provides a code-point iterator: it walks a UTF-8 byte
// slice (or string) producing one record per code point, carrying its rune
// value, byte offset, and byte length. This is the lowest-level component;
// the normalizer and the width calculator are built on it.
package codepoints

import (
	"github.com/cpradog/unitext/internal/stringish"
	"github.com/cpradog/unitext/internal/stringish/utf8"
)

// CodePoint is a single decoded code point and its position in the source.
type CodePoint struct {
	Rune   rune
	Offset int
	Len    int
}

// Iterator walks the code points of a Stringish value. Ill-formed UTF-8 is
// replaced with one U+FFFD per maximal subpart: the longest prefix of a
// well-formed sequence, or a single byte where there is none. Use Strict to
// fail instead.
type Iterator[T stringish.Interface] struct {
	data   T
	pos    int
	strict bool
	err    error
}

// FromString returns a code-point iterator over s.
func FromString(s string) *Iterator[string] { return &Iterator[string]{data: s} }

// FromBytes returns a code-point iterator over b.
func FromBytes(b []byte) *Iterator[[]byte] { return &Iterator[[]byte]{data: b} }

// Strict makes the iterator fail with ErrInvalidUTF8 on the first ill-formed
// byte sequence, instead of substituting U+FFFD.
func (it *Iterator[T]) Strict(strict bool) { it.strict = strict }

// Next decodes and returns the next code point. ok is false at end of input
// or (in strict mode) on invalid UTF-8; check Err to distinguish the two.
func (it *Iterator[T]) Next() (cp CodePoint, ok bool) {
	if it.err != nil || it.pos >= len(it.data) {
		return CodePoint{}, false
	}

	r, w := utf8.DecodeRune(it.data[it.pos:])
	if r == utf8.RuneError && w <= 1 {
		if it.strict {
			it.err = ErrInvalidUTF8
			return CodePoint{}, false
		}
		// Consume the maximal subpart: FullRune reports false exactly for a
		// proper prefix of a well-formed sequence, so extend w while the
		// next longer prefix is still one.
		w = 1
		for n := 2; n < utf8.UTFMax && it.pos+n <= len(it.data) && !utf8.FullRune(it.data[it.pos:it.pos+n]); n++ {
			w = n
		}
	}

	cp = CodePoint{Rune: r, Offset: it.pos, Len: w}
	it.pos += w
	return cp, true
}

// Err returns the error that stopped iteration, if any.
func (it *Iterator[T]) Err() error { return it.err }

// All returns the code points of data as a slice.
func All[T stringish.Interface](data T) []CodePoint {
	it := &Iterator[T]{data: data}
	var out []CodePoint
	for {
		cp, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, cp)
	}
	return out
}
