package graphemes

import "github.com/cpradog/unitext/internal/iterators"

// Segmenter walks the grapheme clusters of a []byte input, with optional
// registered transforms (normalization, case folding) applied to each
// cluster via Transform.
type Segmenter struct {
	*iterators.Segmenter
}

// NewSegmenter returns a Segmenter over data.
func NewSegmenter(data []byte) *Segmenter {
	return &Segmenter{iterators.NewSegmenter(SplitFunc, data)}
}
