// Package width implements UAX #11 monospace display-width calculation,
// combined with grapheme-cluster-aware aggregation for emoji text/emoji
// presentation selectors and variation sequences.
package width

import (
	"github.com/cpradog/unitext/codepoints"
	"github.com/cpradog/unitext/graphemes"
	"github.com/cpradog/unitext/unicode/dwp"
)

// textVariationSelector is U+FE0E, which forces text (narrow) presentation
// for an immediately preceding emoji-capable code point within the same
// grapheme cluster.
const textVariationSelector = 0xFE0E

// CodePointWidth returns the display width of a single code point: a direct
// table lookup, no grapheme context.
func CodePointWidth(r rune) int8 {
	return dwp.Lookup(r)
}

// StrWidth returns the monospace display width of s.
//
// If s is pure ASCII, the result is the sum of each byte's CodePointWidth,
// accumulated without clamping at each step -- only the final total is
// clamped to be non-negative. This matches the reference behavior for
// inputs like "\x7FA\x08\x08" (DEL, 'A', backspace, backspace), whose raw
// sum is -2 but whose result is 0, not a negative intermediate state
// surfacing as -1 partway through.
//
// Otherwise, s is walked grapheme cluster by grapheme cluster; each
// cluster's width is the width of its first non-zero-width code point, with
// one override: if that code point is followed within the same cluster by
// U+FE0E (text presentation selector), the cluster's width is forced to 1
// regardless of the table value. The cluster widths are summed and the
// total clamped to be non-negative.
func StrWidth(s []byte) int {
	if isASCII(s) {
		return clamp(asciiWidth(s))
	}

	total := 0
	seg := graphemes.NewSegmenter(s)
	for seg.Next() {
		total += clusterWidth(seg.Value())
	}
	return clamp(total)
}

// StrWidthANSI is like StrWidth, but treats any ANSI escape sequence (see
// graphemes.ANSILen) as zero-width and skips over it, so that styled
// terminal output measures by its visible content alone.
func StrWidthANSI(s []byte) int {
	total := 0
	pos := 0
	for pos < len(s) {
		if n := graphemes.ANSILen(s[pos:]); n > 0 {
			pos += n
			continue
		}
		advance, token, err := graphemes.SplitFunc(s[pos:], true)
		if err != nil || advance == 0 {
			break
		}
		total += clusterWidth(token)
		pos += advance
	}
	return clamp(total)
}

func isASCII(s []byte) bool {
	for _, b := range s {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func asciiWidth(s []byte) int {
	total := 0
	for _, b := range s {
		total += int(dwp.Lookup(rune(b)))
	}
	return total
}

func clusterWidth(cluster []byte) int {
	it := codepoints.FromBytes(cluster)

	var w int8
	found := false
	for {
		cp, ok := it.Next()
		if !ok {
			break
		}
		if !found {
			if width := dwp.Lookup(cp.Rune); width != 0 {
				w = width
				found = true
			}
			continue
		}
		if cp.Rune == textVariationSelector {
			return 1
		}
	}
	if !found {
		return 0
	}
	return int(w)
}

func clamp(total int) int {
	if total < 0 {
		return 0
	}
	return total
}
