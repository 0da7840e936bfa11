// Package dwp holds the monospace display-width table consumed by the
// width package, built at init from the seed ranges in ranges.go, which are
// drawn from DerivedEastAsianWidth.txt, emoji-data.txt (for default-emoji-presentation
// code points), and a short list of hand-specified exceptions (BACKSPACE,
// DEL, the three-em dash) per UAX #11.
package dwp

import "github.com/cpradog/unitext/internal/twostage"

// packed stores width+2 so that the map/table zero value (0) is free to mean
// "not listed -- use the default width of 1 (narrow)"; this lets the table
// still hold explicit 0 and negative widths unambiguously.
type packed uint8

func encode(w int8) packed { return packed(w + 2) }
func decode(p packed) int8 {
	if p == 0 {
		return 1
	}
	return int8(p) - 2
}

var (
	stage1 []uint16
	stage2 []packed
)

func init() {
	values := make(map[rune]packed)
	for _, rg := range ranges {
		twostage.Expand(values, rg.lo, rg.hi, encode(rg.width))
	}
	stage1, stage2 = twostage.Build(values)
}

// Lookup returns the display width of r: -1 for BACKSPACE/DEL, 0 for
// C0/C1 controls, 1 for narrow/ambiguous/unassigned code points, 2 for wide
// code points and default-emoji-presentation pictographs, 3 for the
// three-em dash.
func Lookup(r rune) int8 {
	if r < 0 || r > 0x10FFFF {
		return 1
	}
	return decode(twostage.Lookup(stage1, stage2, r))
}
