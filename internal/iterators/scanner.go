package iterators

import (
	"bufio"
	"io"

	"golang.org/x/text/transform"
)

// Scanner walks the tokens of an io.Reader, streaming, as identified by a
// bufio.SplitFunc. It wraps bufio.Scanner so large inputs need not be
// buffered in full, with the same optional transform chain as Segmenter.
type Scanner struct {
	scanner   *bufio.Scanner
	transform transform.Transformer
	err       error
}

// NewScanner returns a Scanner over r, using split to find token boundaries.
func NewScanner(r io.Reader, split bufio.SplitFunc) *Scanner {
	sc := bufio.NewScanner(r)
	sc.Split(split)
	return &Scanner{scanner: sc}
}

// Transform registers transformers to apply, in order, to each token
// returned by Value.
func (s *Scanner) Transform(transformers ...transform.Transformer) {
	if len(transformers) == 0 {
		s.transform = nil
		return
	}
	s.transform = transform.Chain(transformers...)
}

// Buffer sets the initial buffer and maximum token size, per bufio.Scanner.Buffer.
func (s *Scanner) Buffer(buf []byte, max int) {
	s.scanner.Buffer(buf, max)
}

// Next advances to the next token.
func (s *Scanner) Next() bool {
	if s.err != nil {
		return false
	}
	return s.scanner.Scan()
}

// Value returns the current token, transformed if a Transform chain is set.
func (s *Scanner) Value() []byte {
	token := s.scanner.Bytes()
	if s.transform == nil {
		return token
	}
	out, _, err := transform.Bytes(s.transform, token)
	if err != nil {
		s.err = err
		return nil
	}
	return out
}

// Err returns the first non-EOF error encountered.
func (s *Scanner) Err() error {
	if s.err != nil {
		return s.err
	}
	return s.scanner.Err()
}
