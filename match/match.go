// Package match implements canonical and compatibility caseless matching
// per UAX #44 / The Unicode Standard section 3.13 (D145, D146).
package match

import (
	"bytes"

	"github.com/cpradog/unitext/fold"
	"github.com/cpradog/unitext/normalize"
)

// CanonCaselessMatch reports whether a and b are canonically equivalent
// after case folding: NFD(fold(NFD(a))) == NFD(fold(NFD(b))).
func CanonCaselessMatch(a, b []byte) bool {
	return bytes.Equal(canonCaselessKey(a), canonCaselessKey(b))
}

func canonCaselessKey(s []byte) []byte {
	return normalize.NFD(fold.Fold(normalize.NFD(s)))
}

// CompatCaselessMatch reports whether a and b are compatibility-equivalent
// after case folding:
// NFKD(fold(NFKD(fold(NFD(a))))) == NFKD(fold(NFKD(fold(NFD(b))))).
//
// The extra fold-NFKD round trip (rather than a single fold+NFKD pass)
// matches compatibility caseless matching's definition in the standard: some
// case-fold mappings introduce new compatibility decomposables, and some
// compatibility decompositions introduce newly foldable code points, so a
// single pass is not idempotent for all inputs.
func CompatCaselessMatch(a, b []byte) bool {
	return bytes.Equal(compatCaselessKey(a), compatCaselessKey(b))
}

func compatCaselessKey(s []byte) []byte {
	step1 := normalize.NFD(s)
	step2 := normalize.NFKD(fold.Fold(step1))
	step3 := normalize.NFKD(fold.Fold(step2))
	return step3
}
