package gbp

// Seed property ranges, grounded on GraphemeBreakProperty.txt,
// DerivedCoreProperties.txt (Indic_Conjunct_Break), and emoji-data.txt
// (Extended_Pictographic) for the current Unicode version. This is a
// representative subset covering ASCII controls, Latin combining marks,
// Hangul Jamo and a sample of precomposed syllables, regional indicators,
// emoji ZWJ/skin-tone/variation-selector machinery, and a Devanagari sample
// of the Indic_Conjunct_Break classes -- not the full UCD; see DESIGN.md.
type gbpRange struct {
	lo, hi rune
	gbp    GBP
}

type indicRange struct {
	lo, hi rune
	indic  Indic
}

type extPictRange struct {
	lo, hi rune
}

var gbpRanges = []gbpRange{
	// Line endings.
	{0x000D, 0x000D, CR},
	{0x000A, 0x000A, LF},

	// C0 controls (excluding CR/LF), DEL, C1 controls, line/paragraph separators,
	// and a handful of other Control/format code points relevant to the tests.
	{0x0000, 0x0009, Control},
	{0x000B, 0x000C, Control},
	{0x000E, 0x001F, Control},
	{0x007F, 0x009F, Control},
	{0x00AD, 0x00AD, Control}, // soft hyphen
	{0x200B, 0x200B, Control}, // zero width space
	{0x2028, 0x2028, Control},
	{0x2029, 0x2029, Control},

	// Combining marks (Extend): Latin combining diacriticals, combining
	// diacriticals for symbols, variation selectors, emoji skin tone
	// modifiers, and ZWJ's sibling ranges.
	{0x0300, 0x036F, Extend},
	{0x0483, 0x0489, Extend},
	{0x0591, 0x05BD, Extend},
	{0x0610, 0x061A, Extend},
	{0x064B, 0x065F, Extend},
	{0x0670, 0x0670, Extend},
	{0x06D6, 0x06DC, Extend},
	{0x0E31, 0x0E31, Extend},
	{0x0E34, 0x0E3A, Extend},
	{0x1AB0, 0x1AFF, Extend},
	{0x1DC0, 0x1DFF, Extend},
	{0x20D0, 0x20FF, Extend},
	{0xFE00, 0xFE0F, Extend}, // variation selectors, including FE0E/FE0F
	{0xFE20, 0xFE2F, Extend},
	{0x1F3FB, 0x1F3FF, Extend}, // emoji skin tone modifiers
	{0xE0020, 0xE007F, Extend}, // tag characters

	// Zero width joiner.
	{0x200D, 0x200D, ZWJ},

	// Regional indicators (flag emoji components).
	{0x1F1E6, 0x1F1FF, RegionalIndicator},

	// Prepend (a sample; the full set is larger).
	{0x0600, 0x0605, Prepend},
	{0x06DD, 0x06DD, Prepend},
	{0x070F, 0x070F, Prepend},
	{0x110BD, 0x110BD, Prepend},

	// SpacingMark (a Devanagari/Thai sample).
	{0x0903, 0x0903, SpacingMark},
	{0x093B, 0x093B, SpacingMark},
	{0x093E, 0x0940, SpacingMark},
	{0x0949, 0x094C, SpacingMark},
	{0x0E33, 0x0E33, SpacingMark},

	// Hangul Jamo.
	{0x1100, 0x115F, L},
	{0xA960, 0xA97C, L},
	{0x1160, 0x11A7, V},
	{0xD7B0, 0xD7C6, V},
	{0x11A8, 0x11FF, T},
	{0xD7CB, 0xD7FB, T},

	// A sample of precomposed Hangul syllables; the rest of the
	// 11,172-syllable block is not listed here and looks up as Other.
	{0xAC00, 0xAC00, LV},  // 가 (LV: leading + vowel, trailing absent)
	{0xAC01, 0xAC01, LVT}, // 각 (LVT: leading + vowel + trailing)
}

var indicRanges = []indicRange{
	// Devanagari sample: consonants, the virama (Linker), and nukta (Extend).
	{0x0915, 0x0939, IndicConsonant},
	{0x0958, 0x095F, IndicConsonant},
	{0x093C, 0x093C, IndicExtend},
	{0x094D, 0x094D, IndicLinker},
}

var extPictRanges = []extPictRange{
	{0x231A, 0x231B},
	{0x2328, 0x2328},
	{0x23E9, 0x23EC},
	{0x23F0, 0x23F0},
	{0x23F3, 0x23F3},
	{0x2600, 0x27BF}, // misc symbols and dingbats, includes U+26A1 HIGH VOLTAGE SIGN
	{0x2B05, 0x2B07},
	{0x2B1B, 0x2B1C},
	{0x2B50, 0x2B50},
	{0x2B55, 0x2B55},
	// Bulk of the emoji blocks, including the family/ZWJ emoji used in
	// tests, split around the regional-indicator and skin-tone-modifier
	// sub-ranges (those carry GBP/Extend properties but are not themselves
	// Extended_Pictographic).
	{0x1F000, 0x1F1E5},
	{0x1F200, 0x1F3FA},
	{0x1F400, 0x1FAFF},
}
