package dwp

// Seed display-width data, grounded on UAX #11 and DerivedEastAsianWidth.txt.
// A representative subset: the BACKSPACE/DEL/three-em-dash exceptions, C0/C1
// controls, the major CJK wide blocks, and the emoji ranges that carry
// default emoji presentation (rendered at width 2). Not the full UCD; see
// DESIGN.md.
type wRange struct {
	lo, hi rune
	width  int8
}

var ranges = []wRange{
	// C0 controls.
	{0x0000, 0x001F, 0},
	// BACKSPACE overrides the C0 default above.
	{0x0008, 0x0008, -1},
	// C1 controls and DEL.
	{0x007F, 0x009F, 0},
	// DEL overrides the C1-range default above (applied after, in Go
	// struct-literal order the later entry in this slice wins since the
	// init function applies ranges in order).
	{0x007F, 0x007F, -1},

	// Three-em dash.
	{0x2E3B, 0x2E3B, 3},

	// CJK wide blocks (East_Asian_Width = W or F).
	{0x1100, 0x115F, 2}, // Hangul Jamo
	{0x2E80, 0x2EFF, 2}, // CJK radicals supplement
	{0x2F00, 0x2FDF, 2}, // Kangxi radicals
	{0x3000, 0x303E, 2}, // CJK symbols and punctuation
	{0x3041, 0x33FF, 2}, // hiragana, katakana, CJK compat
	{0x3400, 0x4DBF, 2}, // CJK extension A
	{0x4E00, 0x9FFF, 2}, // CJK unified ideographs
	{0xA000, 0xA4CF, 2}, // Yi syllables/radicals
	{0xAC00, 0xD7A3, 2}, // Hangul syllables
	{0xF900, 0xFAFF, 2}, // CJK compatibility ideographs
	{0xFE30, 0xFE4F, 2}, // CJK compatibility forms
	{0xFF00, 0xFF60, 2}, // fullwidth forms
	{0xFFE0, 0xFFE6, 2}, // fullwidth signs
	{0x20000, 0x3FFFD, 2}, // CJK extension B and beyond

	// Default-emoji-presentation ranges (emoji-data.txt), including
	// U+26A1, the people/body emoji, and the baby emoji (U+1F476).
	{0x231A, 0x231B, 2},
	{0x23E9, 0x23EC, 2},
	{0x26A1, 0x26A1, 2},
	{0x2614, 0x2615, 2},
	{0x1F1E6, 0x1F1FF, 2}, // regional indicators (flag emoji components)
	{0x1F300, 0x1F64F, 2},
	{0x1F680, 0x1F6FF, 2},
	{0x1F900, 0x1F9FF, 2},
}
