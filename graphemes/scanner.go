package graphemes

import (
	"io"

	"github.com/cpradog/unitext/internal/iterators"
)

// Scanner walks the grapheme clusters of an io.Reader, streaming.
type Scanner struct {
	*iterators.Scanner
}

// NewScanner returns a Scanner over r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{iterators.NewScanner(r, SplitFunc)}
}
