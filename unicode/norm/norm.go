// Package norm holds the canonical and compatibility decomposition tables,
// composition exclusions, and quick-check data consumed by the normalize
// package, built at init from the seed data in seed.go (drawn from
// UnicodeData.txt and DerivedNormalizationProps.txt). Hangul syllables are handled algorithmically
// (hangul.go) rather than tabulated, per UAX #15.
package norm

import (
	"sort"

	"github.com/cpradog/unitext/unicode/ccc"
)

// Kind distinguishes a canonical decomposition (always composable, subject
// to the exclusions below) from a compatibility decomposition (never
// recomposed).
type Kind uint8

const (
	// NoDecomposition marks a code point with no decomposition mapping.
	NoDecomposition Kind = iota
	Canonical
	Compatibility
)

type decompEntry struct {
	cp   rune
	kind Kind
	seq  []rune // fully, recursively expanded
}

var decompositions []decompEntry // sorted by cp

// compositionExclusions holds code points that have a canonical
// decomposition but must never be recomposed (singletons, scripts with the
// Full_Composition_Exclusion property, and a handful of special cases).
var compositionExclusions = map[rune]bool{}

// primaryComposite inverts the canonical decomposition mapping: a pair of
// code points to the single code point they compose to. Built at init from
// decompositions, skipping excluded and non-canonical entries.
var primaryComposite = map[[2]rune]rune{}

func init() {
	recs := make([]decompEntry, 0, len(seedDecompositions))
	for cp, d := range seedDecompositions {
		recs = append(recs, decompEntry{cp: cp, kind: d.kind, seq: d.seq})
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].cp < recs[j].cp })
	decompositions = recs

	for cp, excluded := range seedExclusions {
		if excluded {
			compositionExclusions[cp] = true
		}
	}

	for _, e := range decompositions {
		if e.kind != Canonical || len(e.seq) != 2 {
			continue
		}
		if compositionExclusions[e.cp] {
			continue
		}
		primaryComposite[[2]rune{e.seq[0], e.seq[1]}] = e.cp
	}
}

func lookup(r rune) (decompEntry, bool) {
	i := sort.Search(len(decompositions), func(i int) bool { return decompositions[i].cp >= r })
	if i < len(decompositions) && decompositions[i].cp == r {
		return decompositions[i], true
	}
	return decompEntry{}, false
}

// Decompose returns the fully recursive decomposition of r for the given
// form: canonical-only decompositions are returned for form == Canonical;
// both canonical and compatibility decompositions are returned for
// form == Compatibility. ok is false when r has no decomposition of the
// requested kind (including Hangul syllables, which DecomposeHangul and
// IsHangulSyllable handle separately).
func Decompose(r rune, form Kind) (seq []rune, ok bool) {
	e, found := lookup(r)
	if !found {
		return nil, false
	}
	if form == Canonical && e.kind != Canonical {
		return nil, false
	}
	return e.seq, true
}

// IsExcludedFromComposition reports whether r must never be produced by
// canonical composition, even though it has a canonical decomposition.
func IsExcludedFromComposition(r rune) bool { return compositionExclusions[r] }

// Compose returns the code point that the ordered pair (a, b) composes to
// under canonical composition, if any.
func Compose(a, b rune) (rune, bool) {
	r, ok := primaryComposite[[2]rune{a, b}]
	return r, ok
}

// QuickCheckResult is the NFC/NFKC/NFD/NFKD quick-check outcome for a single
// code point.
type QuickCheckResult uint8

const (
	QCYes QuickCheckResult = iota
	QCMaybe
	QCNo
)

// QuickCheck reports whether r is already in the given normalization form by
// itself, ignoring context: QCNo for anything with a decomposition of the
// relevant kind (including precomposed Hangul syllables), QCMaybe for a
// non-zero combining class (the code point could need reordering against a
// neighbor), QCYes otherwise. It does not mark code points that can combine
// with a following character, so it gives no NFC/NFKC-specific answer; the
// normalize package runs the full algorithm for any result other than QCYes,
// in every form -- this is conservative but correct (see spec §4.3
// "implementations SHOULD").
func QuickCheck(r rune, form Kind) QuickCheckResult {
	if _, ok := Decompose(r, form); ok {
		return QCNo
	}
	if IsHangulSyllable(r) {
		return QCNo
	}
	if ccc.Lookup(r) != 0 {
		// A non-starter is stable in isolation but may need reordering
		// relative to a neighboring combining mark; let the caller fall
		// through to the full algorithm rather than risk skipping a needed
		// reorder.
		return QCMaybe
	}
	return QCYes
}
