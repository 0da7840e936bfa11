//go:build go1.23

package iterators

import "iter"

// All returns an iterator over the tokens of data, for use with range.
func (it *Iterator[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for it.Next() {
			if !yield(it.Value()) {
				return
			}
		}
	}
}
