// Package fold applies full Unicode case folding (CaseFolding.txt status C
// and F) to byte sequences, for use standalone or as a step in caseless
// matching (see the match package).
package fold

import "github.com/cpradog/unitext/unicode/fold"

// Fold returns the full case fold of s: each code point replaced by its
// CaseFolding.txt mapping (1 to 3 code points), concatenated. The result is
// not a normalization form by itself; canonical/compatibility caseless
// matching additionally normalizes before and after folding (see match).
func Fold(s []byte) []byte {
	if isASCII(s) {
		return foldASCII(s)
	}

	runes := make([]rune, 0, len(s))
	for _, r := range string(s) {
		runes = append(runes, fold.Lookup(r)...)
	}
	return []byte(string(runes))
}

func isASCII(s []byte) bool {
	for _, b := range s {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

// foldASCII applies the ASCII subset of common case folding (A-Z -> a-z)
// directly on bytes, without a table lookup or a UTF-8 round trip.
func foldASCII(s []byte) []byte {
	out := make([]byte, len(s))
	for i, b := range s {
		if b >= 'A' && b <= 'Z' {
			b += 'a' - 'A'
		}
		out[i] = b
	}
	return out
}
