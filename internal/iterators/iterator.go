// Package iterators provides the generic token-walking engine used by the
// graphemes package: a SplitFunc identifies the next token in
// a Stringish value, and Iterator walks successive tokens, mirroring the
// shape of bufio.Scanner/bufio.SplitFunc but generic over string and []byte
// so the segmentation logic itself is written once.
package iterators

import (
	"github.com/cpradog/unitext/internal/stringish"
)

// Stringish is the constraint satisfied by the values an Iterator can walk.
type Stringish = stringish.Interface

// SplitFunc finds the first token in data and returns its length. It is the
// generic analogue of bufio.SplitFunc: when data does not contain a full
// token and atEOF is false, it returns (0, zero value, nil) to request more
// data; callers of Iterator always pass atEOF true, since an Iterator owns
// the entire input up front.
type SplitFunc[T Stringish] func(data T, atEOF bool) (advance int, token T, err error)

// Iterator walks the tokens of a Stringish value as identified by a
// SplitFunc. The zero value is not usable; construct with New.
type Iterator[T Stringish] struct {
	split      SplitFunc[T]
	data       T
	token      T
	pos        int
	start, end int
	err        error
}

// New returns an Iterator over data, using split to identify token
// boundaries.
func New[T Stringish](split SplitFunc[T], data T) *Iterator[T] {
	return &Iterator[T]{split: split, data: data}
}

// SetText resets the iterator to walk a new input, reusing its allocation.
func (it *Iterator[T]) SetText(data T) {
	var empty T
	it.data = data
	it.token = empty
	it.pos = 0
	it.start = 0
	it.end = 0
	it.err = nil
}

// Next advances to the next token, returning false when the input is
// exhausted or the SplitFunc returns an error.
func (it *Iterator[T]) Next() bool {
	if it.err != nil {
		return false
	}
	if it.pos >= len(it.data) {
		return false
	}

	advance, token, err := it.split(it.data[it.pos:], true)
	if err != nil {
		it.err = err
		return false
	}
	if advance == 0 {
		// A well-behaved SplitFunc with atEOF=true always makes progress
		// on non-empty input; treat a zero advance as end of iteration.
		return false
	}

	it.start = it.pos
	it.token = token
	it.pos += advance
	it.end = it.start + len(token)
	return true
}

// Value returns the current token.
func (it *Iterator[T]) Value() T { return it.token }

// Start returns the byte offset of the current token within the original
// input.
func (it *Iterator[T]) Start() int { return it.start }

// End returns the offset one past the current token.
func (it *Iterator[T]) End() int { return it.end }

// Err returns the first error encountered, if any.
func (it *Iterator[T]) Err() error { return it.err }
