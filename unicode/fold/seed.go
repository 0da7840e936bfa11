package fold

// seedFolds holds a representative subset of CaseFolding.txt status C and F
// rows: the ASCII, Latin-1 Supplement, Greek, and Cyrillic common-case
// ranges (status C, generated programmatically below from their regular
// case-pair layout) plus a short hand-picked list of full-fold (status F)
// multi-code-point expansions. Not the full UCD; see DESIGN.md.
var seedFolds = buildSeedFolds()

func buildSeedFolds() map[rune][]rune {
	m := make(map[rune][]rune)

	simple := func(upper, lower rune) {
		m[upper] = []rune{lower}
	}

	// ASCII.
	for r := rune('A'); r <= 'Z'; r++ {
		simple(r, r+32)
	}

	// Latin-1 Supplement, excluding 0x00D7 (multiplication sign) and
	// 0x00DF (sharp s, handled below as a full fold) which are not simple
	// uppercase/lowercase pairs.
	for r := rune(0x00C0); r <= 0x00DE; r++ {
		if r == 0x00D7 || r == 0x00DF {
			continue
		}
		simple(r, r+32)
	}

	// Greek, capital letters to their lowercase equivalents.
	for r := rune(0x0391); r <= 0x03A9; r++ {
		if r == 0x03A2 {
			continue // unassigned
		}
		simple(r, r+32)
	}
	// Greek final/medial sigma both fold to the same target as capital
	// sigma: U+03A3 -> U+03C3, and U+03C2 (final sigma) also folds to
	// U+03C3 under full folding.
	m[0x03C2] = []rune{0x03C3}

	// Cyrillic, capital letters to their lowercase equivalents.
	for r := rune(0x0410); r <= 0x042F; r++ {
		simple(r, r+32)
	}

	// A short list of full-fold (status F) multi-code-point expansions.
	m[0x00DF] = []rune{'s', 's'}                 // LATIN SMALL LETTER SHARP S -> "ss"
	m[0xFB00] = []rune{'f', 'f'}                 // LATIN SMALL LIGATURE FF -> "ff"
	m[0xFB01] = []rune{'f', 'i'}                 // LATIN SMALL LIGATURE FI -> "fi"
	m[0xFB02] = []rune{'f', 'l'}                 // LATIN SMALL LIGATURE FL -> "fl"
	m[0xFB03] = []rune{'f', 'f', 'i'}             // LATIN SMALL LIGATURE FFI -> "ffi"
	m[0xFB04] = []rune{'f', 'f', 'l'}             // LATIN SMALL LIGATURE FFL -> "ffl"
	m[0x0130] = []rune{'i', 0x0307}               // LATIN CAPITAL LETTER I WITH DOT ABOVE -> "i" + combining dot above

	return m
}
