package iterators

import (
	"bufio"

	"golang.org/x/text/transform"
)

// Segmenter walks the tokens of a []byte input as identified by a
// bufio.SplitFunc, the same contract bufio.Scanner uses, so that segmentation
// logic can be shared between whole-buffer (Segmenter) and streaming
// (Scanner) consumers. Optionally, a chain of transform.Transformer values
// (golang.org/x/text/transform) is applied to each token before it is
// returned by Value -- this is how normalization or case folding can be
// layered onto grapheme segmentation without a second pass over the input.
type Segmenter struct {
	split      bufio.SplitFunc
	data       []byte
	token      []byte
	pos        int
	start, end int
	err        error
	transform  transform.Transformer
}

// NewSegmenter returns a Segmenter over data, using split to find token
// boundaries.
func NewSegmenter(split bufio.SplitFunc, data []byte) *Segmenter {
	return &Segmenter{split: split, data: data}
}

// SetText resets the Segmenter to walk new data, reusing its allocation.
func (seg *Segmenter) SetText(data []byte) {
	seg.data = data
	seg.token = nil
	seg.pos = 0
	seg.start = 0
	seg.end = 0
	seg.err = nil
}

// Transform registers transformers to apply, in order, to each token
// returned by Value, via transform.Chain.
func (seg *Segmenter) Transform(transformers ...transform.Transformer) {
	if len(transformers) == 0 {
		seg.transform = nil
		return
	}
	seg.transform = transform.Chain(transformers...)
}

// Next advances to the next token.
func (seg *Segmenter) Next() bool {
	if seg.err != nil {
		return false
	}
	if seg.pos >= len(seg.data) {
		return false
	}

	advance, token, err := seg.split(seg.data[seg.pos:], true)
	if err != nil {
		seg.err = err
		return false
	}
	if advance == 0 {
		return false
	}

	seg.start = seg.pos
	seg.pos += advance
	seg.end = seg.start + len(token)

	if seg.transform == nil {
		seg.token = token
		return true
	}

	out, _, err := transform.Bytes(seg.transform, token)
	if err != nil {
		seg.err = err
		return false
	}
	seg.token = out
	return true
}

// Value returns the current token.
func (seg *Segmenter) Value() []byte { return seg.token }

// Start returns the byte offset of the current token in the original input.
func (seg *Segmenter) Start() int { return seg.start }

// End returns the offset one past the current token.
func (seg *Segmenter) End() int { return seg.end }

// Err returns the first error encountered, if any.
func (seg *Segmenter) Err() error { return seg.err }
