package ccc

// Seed Canonical_Combining_Class data, grounded on
// extracted/DerivedCombiningClass.txt. A representative subset: the common
// "above"/"below" combining diacritical marks (class 230/220), the
// Devanagari nukta and virama (classes 7 and 9, used by the real UCD to
// order conjunct-forming marks relative to vowel signs), and a few Hebrew
// point classes to exercise multi-class reordering. Not the full UCD; see
// DESIGN.md.
type ccRange struct {
	lo, hi rune
	class  uint8
}

var ranges = []ccRange{
	// Combining Diacritical Marks block: mostly "above" (230).
	{0x0300, 0x0314, 230},
	{0x0315, 0x0315, 232}, // combining comma above right
	{0x0316, 0x0319, 220}, // below
	{0x031A, 0x031A, 232},
	{0x031B, 0x031B, 216},
	{0x031C, 0x0320, 220},
	{0x0321, 0x0322, 202},
	{0x0323, 0x0326, 220},
	{0x0327, 0x0328, 202},
	{0x0329, 0x0333, 220},
	{0x0334, 0x0338, 1},
	{0x0339, 0x033C, 220},
	{0x033D, 0x0344, 230},
	{0x0345, 0x0345, 240}, // combining greek ypogegrammeni

	// Hebrew points (a sample, to exercise distinct classes in one run).
	{0x05B0, 0x05B0, 10},
	{0x05B1, 0x05B1, 11},
	{0x05B2, 0x05B2, 12},
	{0x05BB, 0x05BB, 20},
	{0x05BC, 0x05BC, 21},
	{0x05BF, 0x05BF, 23},

	// Devanagari nukta and virama.
	{0x093C, 0x093C, 7},
	{0x094D, 0x094D, 9},
}
