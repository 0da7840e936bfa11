package norm

type decomp struct {
	kind Kind
	seq  []rune
}

// seedDecompositions is a representative subset of UnicodeData.txt's
// decomposition mappings, fully recursively expanded as the generator would
// produce (UnicodeData.txt itself is only one level deep for most entries).
// Covers the Latin-1/Latin Extended-A precomposed letters (canonical,
// composing against the combining marks seeded in unicode/ccc), a sample of
// compatibility mappings (ligatures, a narrow/wide pair, a superscript), and
// the NFC-stable/NFD-distinct case used by the worked examples. Not the full
// UCD; see DESIGN.md.
var seedDecompositions = buildSeed()

func buildSeed() map[rune]decomp {
	m := make(map[rune]decomp)

	canon := func(cp rune, seq ...rune) { m[cp] = decomp{Canonical, seq} }
	compat := func(cp rune, seq ...rune) { m[cp] = decomp{Compatibility, seq} }

	// Latin-1 Supplement vowels with grave/acute/circumflex/tilde/diaeresis/
	// ring, upper and lower case.
	type pair struct {
		base rune
		mark rune
	}
	latin1 := map[rune]pair{
		0x00C0: {'A', 0x0300}, 0x00C1: {'A', 0x0301}, 0x00C2: {'A', 0x0302},
		0x00C3: {'A', 0x0303}, 0x00C4: {'A', 0x0308}, 0x00C5: {'A', 0x030A},
		0x00C8: {'E', 0x0300}, 0x00C9: {'E', 0x0301}, 0x00CA: {'E', 0x0302}, 0x00CB: {'E', 0x0308},
		0x00CC: {'I', 0x0300}, 0x00CD: {'I', 0x0301}, 0x00CE: {'I', 0x0302}, 0x00CF: {'I', 0x0308},
		0x00D1: {'N', 0x0303},
		0x00D2: {'O', 0x0300}, 0x00D3: {'O', 0x0301}, 0x00D4: {'O', 0x0302},
		0x00D5: {'O', 0x0303}, 0x00D6: {'O', 0x0308},
		0x00D9: {'U', 0x0300}, 0x00DA: {'U', 0x0301}, 0x00DB: {'U', 0x0302}, 0x00DC: {'U', 0x0308},
		0x00DD: {'Y', 0x0301},
		0x00E0: {'a', 0x0300}, 0x00E1: {'a', 0x0301}, 0x00E2: {'a', 0x0302},
		0x00E3: {'a', 0x0303}, 0x00E4: {'a', 0x0308}, 0x00E5: {'a', 0x030A},
		0x00E8: {'e', 0x0300}, 0x00E9: {'e', 0x0301}, 0x00EA: {'e', 0x0302}, 0x00EB: {'e', 0x0308},
		0x00EC: {'i', 0x0300}, 0x00ED: {'i', 0x0301}, 0x00EE: {'i', 0x0302}, 0x00EF: {'i', 0x0308},
		0x00F1: {'n', 0x0303},
		0x00F2: {'o', 0x0300}, 0x00F3: {'o', 0x0301}, 0x00F4: {'o', 0x0302},
		0x00F5: {'o', 0x0303}, 0x00F6: {'o', 0x0308},
		0x00F9: {'u', 0x0300}, 0x00FA: {'u', 0x0301}, 0x00FB: {'u', 0x0302}, 0x00FC: {'u', 0x0308},
		0x00FD: {'y', 0x0301}, 0x00FF: {'y', 0x0308},
	}
	for cp, p := range latin1 {
		canon(cp, p.base, p.mark)
	}

	// Latin Extended-A: macron/breve/ogonek/caron samples (čćřš family).
	canon(0x0100, 'A', 0x0304)
	canon(0x0101, 'a', 0x0304)
	canon(0x0106, 'C', 0x0301)
	canon(0x0107, 'c', 0x0301)
	canon(0x010C, 'C', 0x030C)
	canon(0x010D, 'c', 0x030C)
	canon(0x0158, 'R', 0x030C)
	canon(0x0159, 'r', 0x030C)
	canon(0x0160, 'S', 0x030C)
	canon(0x0161, 's', 0x030C)
	canon(0x017D, 'Z', 0x030C)
	canon(0x017E, 'z', 0x030C)

	// Greek dialytika tonos (canonical, but excluded from recomposition --
	// see seedExclusions).
	canon(0x0344, 0x0308, 0x0301)

	// Compatibility: ligatures (each flattened to its ASCII-letter
	// expansion; the fold table handles these identically via full case
	// folding, see unicode/fold), a superscript digit, and a narrow/wide
	// form pair.
	compat(0xFB00, 'f', 'f')
	compat(0xFB01, 'f', 'i')
	compat(0xFB02, 'f', 'l')
	compat(0xFB03, 'f', 'f', 'i')
	compat(0xFB04, 'f', 'f', 'l')
	compat(0x00B2, '2') // SUPERSCRIPT TWO
	compat(0x00B3, '3') // SUPERSCRIPT THREE
	compat(0xFF21, 'A') // FULLWIDTH LATIN CAPITAL LETTER A
	compat(0xFF41, 'a') // FULLWIDTH LATIN SMALL LETTER A

	return m
}

// seedExclusions lists code points with a canonical decomposition that must
// not be recomposed, per DerivedNormalizationProps.txt's
// Full_Composition_Exclusion.
var seedExclusions = map[rune]bool{
	0x0344: true, // COMBINING GREEK DIALYTIKA TONOS (decomposition starts with a non-starter)
}
