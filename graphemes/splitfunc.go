package graphemes

import (
	"bufio"

	"github.com/cpradog/unitext/internal/stringish"
	"github.com/cpradog/unitext/internal/stringish/utf8"
)

// SplitFunc is a bufio.SplitFunc implementation of Unicode grapheme cluster
// segmentation, for use with bufio.Scanner.
//
// See https://unicode.org/reports/tr29/#Grapheme_Cluster_Boundaries.
var SplitFunc bufio.SplitFunc = splitFunc[[]byte]

func splitFunc[T stringish.Interface](data T, atEOF bool) (advance int, token T, err error) {
	var empty T
	if len(data) == 0 {
		return 0, empty, nil
	}

	r1, w1 := utf8.DecodeRune(data)
	if !utf8.FullRune(data) {
		if !atEOF {
			// Rune extends past current data, request more.
			return 0, empty, nil
		}
		return len(data), data[:len(data)], nil
	}

	// https://unicode.org/reports/tr29/#GB1
	// Start of text always advances.
	pos := w1

	var state State

	for {
		if pos == len(data) {
			if !atEOF {
				// Token extends past current data, request more.
				return 0, empty, nil
			}
			// https://unicode.org/reports/tr29/#GB2
			break
		}

		r2, w2 := utf8.DecodeRune(data[pos:])
		if !utf8.FullRune(data[pos:]) {
			if atEOF {
				pos = len(data)
				break
			}
			return 0, empty, nil
		}

		// Accelerator: two ASCII code points, the first of which isn't CR,
		// always break between them -- no GB rule ever suppresses that
		// break, so the rule cascade can be skipped entirely.
		if r1 < utf8.RuneSelf && r1 != '\r' && r2 < utf8.RuneSelf {
			break
		}

		if Break(r1, r2, &state) {
			break
		}

		pos += w2
		r1 = r2
	}

	return pos, data[:pos], nil
}
