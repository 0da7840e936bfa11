//go:build go1.23

package iterators

import "iter"

// All returns an iterator over the tokens of the Segmenter, for use with range.
func (seg *Segmenter) All() iter.Seq[[]byte] {
	return func(yield func([]byte) bool) {
		for seg.Next() {
			if !yield(seg.Value()) {
				return
			}
		}
	}
}

// All returns an iterator over the tokens (and any error) of the Scanner, for use with range.
func (s *Scanner) All() iter.Seq2[[]byte, error] {
	return func(yield func([]byte, error) bool) {
		for s.Next() {
			if !yield(s.Value(), nil) {
				return
			}
		}
		if err := s.Err(); err != nil {
			yield(nil, err)
		}
	}
}
