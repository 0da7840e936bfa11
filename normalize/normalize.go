// Package normalize implements Unicode normalization forms NFD, NFC, NFKD,
// and NFKC over the canonical/compatibility decomposition, canonical
// combining class, and composition tables in unicode/norm and unicode/ccc.
package normalize

import (
	"github.com/cpradog/unitext/codepoints"
	"github.com/cpradog/unitext/unicode/ccc"
	"github.com/cpradog/unitext/unicode/norm"
)

// NFD returns the canonical decomposition of s, in canonical order.
func NFD(s []byte) []byte { return decomposeBytes(s, norm.Canonical) }

// NFKD returns the compatibility decomposition of s, in canonical order.
func NFKD(s []byte) []byte { return decomposeBytes(s, norm.Compatibility) }

// NFC returns the canonical composition of s: NFD followed by canonical
// recomposition.
func NFC(s []byte) []byte {
	if isASCII(s) {
		return append([]byte(nil), s...)
	}
	return compose(decomposeRunes(s, norm.Canonical))
}

// NFKC returns the compatibility composition of s: NFKD followed by
// canonical recomposition (composition itself is always governed by
// canonical composition rules, even in the compatibility forms).
func NFKC(s []byte) []byte {
	if isASCII(s) {
		return append([]byte(nil), s...)
	}
	return compose(decomposeRunes(s, norm.Compatibility))
}

func isASCII(s []byte) bool {
	for _, b := range s {
		if b >= 0x80 {
			return false
		}
	}
	return true
}

func decomposeBytes(s []byte, form norm.Kind) []byte {
	if isASCII(s) {
		return append([]byte(nil), s...)
	}
	runes := decomposeRunes(s, form)
	return runesToBytes(runes)
}

func decomposeRunes(s []byte, form norm.Kind) []rune {
	var out []rune
	it := codepoints.FromBytes(s)
	for {
		cp, ok := it.Next()
		if !ok {
			break
		}
		if norm.QuickCheck(cp.Rune, form) == norm.QCYes {
			out = append(out, cp.Rune)
			continue
		}
		decomposeRune(cp.Rune, form, &out)
	}
	reorder(out)
	return out
}

func decomposeRune(r rune, form norm.Kind, out *[]rune) {
	if norm.IsHangulSyllable(r) {
		*out = append(*out, norm.DecomposeHangul(r)...)
		return
	}
	seq, ok := norm.Decompose(r, form)
	if !ok {
		*out = append(*out, r)
		return
	}
	for _, c := range seq {
		decomposeRune(c, form, out)
	}
}

// reorder applies the canonical ordering algorithm: within any maximal run
// of non-starters (ccc != 0), entries are stably sorted by ccc ascending.
func reorder(runes []rune) {
	i := 0
	for i < len(runes) {
		if ccc.Lookup(runes[i]) == 0 {
			i++
			continue
		}
		j := i
		for j < len(runes) && ccc.Lookup(runes[j]) != 0 {
			j++
		}
		insertionSortByCCC(runes[i:j])
		i = j
	}
}

func insertionSortByCCC(run []rune) {
	for k := 1; k < len(run); k++ {
		ck := ccc.Lookup(run[k])
		m := k
		for m > 0 && ccc.Lookup(run[m-1]) > ck {
			run[m], run[m-1] = run[m-1], run[m]
			m--
		}
	}
}

func runesToBytes(runes []rune) []byte {
	return []byte(string(runes))
}

func combiningClass(r rune) int {
	return int(ccc.Lookup(r))
}
