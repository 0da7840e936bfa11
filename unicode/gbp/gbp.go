// Package gbp holds the Grapheme_Cluster_Break, Indic_Conjunct_Break, and
// Extended_Pictographic property tables consumed by the graphemes package,
// built at init (tables.go) from the seed ranges in ranges.go, which are
// drawn from GraphemeBreakProperty.txt, DerivedCoreProperties.txt, and
// emoji-data.txt.
package gbp

// GBP is the Grapheme_Cluster_Break property, per UAX #29 Table 2.
type GBP uint8

const (
	Other GBP = iota
	CR
	LF
	Control
	Extend
	ZWJ
	RegionalIndicator
	Prepend
	SpacingMark
	L
	V
	T
	LV
	LVT
)

// Indic is the Indic_Conjunct_Break property, feeding GB9c.
type Indic uint8

const (
	IndicNone Indic = iota
	IndicConsonant
	IndicExtend
	IndicLinker
)

// Properties packs GBP (top 4 bits), Indic (next 3 bits), and
// Extended_Pictographic (low bit) into a single byte, matching the stage-3
// payload format described for the grapheme-break property family.
type Properties uint8

// Pack combines the three properties into their packed byte form.
func Pack(g GBP, ind Indic, extPict bool) Properties {
	p := Properties(g) << 4
	p |= Properties(ind) << 1
	if extPict {
		p |= 1
	}
	return p
}

// GBP extracts the Grapheme_Cluster_Break property.
func (p Properties) GBP() GBP { return GBP(p >> 4) }

// Indic extracts the Indic_Conjunct_Break property.
func (p Properties) Indic() Indic { return Indic((p >> 1) & 0x7) }

// ExtendedPictographic reports whether the code point carries the
// Extended_Pictographic property.
func (p Properties) ExtendedPictographic() bool { return p&1 != 0 }

// Lookup returns the packed properties for a code point. Unassigned code
// points and those outside 0..0x10FFFF return the zero value (Other, no
// Indic class, not Extended_Pictographic).
func Lookup(r rune) Properties {
	if r < 0 || r > 0x10FFFF {
		return 0
	}
	idx := stage2[stage1lookup(r)]
	return stage3[idx]
}
