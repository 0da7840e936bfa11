package norm

// Hangul syllables decompose and compose algorithmically rather than via a
// tabulated mapping, per UAX #15 section 3.12 and the formula used by
// golang.org/x/text/unicode/norm.
const (
	hangulSBase = 0xAC00
	hangulLBase = 0x1100
	hangulVBase = 0x1161
	hangulTBase = 0x11A7

	hangulLCount = 19
	hangulVCount = 21
	hangulTCount = 28
	hangulNCount = hangulVCount * hangulTCount // 588
	hangulSCount = hangulLCount * hangulNCount // 11172
)

// IsHangulSyllable reports whether r is a precomposed Hangul syllable
// (LV or LVT block, U+AC00..U+D7A3).
func IsHangulSyllable(r rune) bool {
	return r >= hangulSBase && r < hangulSBase+hangulSCount
}

// DecomposeHangul returns the canonical Jamo decomposition of a precomposed
// Hangul syllable: two code points (L, V) for an LV syllable, three (L, V,
// T) for an LVT syllable. The caller must have verified IsHangulSyllable.
func DecomposeHangul(r rune) []rune {
	sIndex := r - hangulSBase
	l := hangulLBase + sIndex/hangulNCount
	v := hangulVBase + (sIndex%hangulNCount)/hangulTCount
	t := sIndex % hangulTCount

	if t == 0 {
		return []rune{l, v}
	}
	return []rune{l, v, hangulTBase + t}
}

// ComposeHangulLV composes a Hangul leading consonant and vowel into an LV
// syllable, if l and v are in the Jamo L/V ranges.
func ComposeHangulLV(l, v rune) (rune, bool) {
	if l < hangulLBase || l >= hangulLBase+hangulLCount {
		return 0, false
	}
	if v < hangulVBase || v >= hangulVBase+hangulVCount {
		return 0, false
	}
	lIndex := l - hangulLBase
	vIndex := v - hangulVBase
	return hangulSBase + (lIndex*hangulVCount+vIndex)*hangulTCount, true
}

// ComposeHangulLVT composes an LV syllable and a trailing consonant into an
// LVT syllable, if lv is an LV syllable (no trailing consonant) and t is in
// the Jamo T range (excluding the "no trailing consonant" filler).
func ComposeHangulLVT(lv, t rune) (rune, bool) {
	if !IsHangulSyllable(lv) {
		return 0, false
	}
	if (lv-hangulSBase)%hangulTCount != 0 {
		return 0, false // lv already has a trailing consonant
	}
	if t <= hangulTBase || t >= hangulTBase+hangulTCount {
		return 0, false
	}
	return lv + (t - hangulTBase), true
}
