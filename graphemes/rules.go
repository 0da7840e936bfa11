package graphemes

import "github.com/cpradog/unitext/unicode/gbp"

// Break evaluates the grapheme-break rule cascade for the ordered pair
// (cp1, cp2), given the state accumulated from the code points seen so far.
// It returns true iff a cluster boundary is required between cp1 and cp2,
// mutating state as rules GB9c/GB11/GB12/GB13 require. Rules are evaluated
// in the order below; the first one that applies decides; GB999 (break)
// applies if none do.
//
// See https://unicode.org/reports/tr29/#Grapheme_Cluster_Boundary_Rules.
func Break(cp1, cp2 rune, state *State) bool {
	p1 := gbp.Lookup(cp1)
	p2 := gbp.Lookup(cp2)
	g1, g2 := p1.GBP(), p2.GBP()

	// Pre-decision state update.
	if p1.ExtendedPictographic() {
		state.XPIC = true
	}
	if p1.Indic() == gbp.IndicConsonant {
		state.INDIC = true
	}

	// GB3: CR x LF
	if g1 == gbp.CR && g2 == gbp.LF {
		return false
	}

	// GB4, GB5: (Control | CR | LF) ÷, ÷ (Control | CR | LF)
	if g1 == gbp.CR || g1 == gbp.LF || g1 == gbp.Control {
		return true
	}
	if g2 == gbp.CR || g2 == gbp.LF || g2 == gbp.Control {
		return true
	}

	// GB6: L x (L | V | LV | LVT)
	if g1 == gbp.L && (g2 == gbp.L || g2 == gbp.V || g2 == gbp.LV || g2 == gbp.LVT) {
		return false
	}

	// GB7: (LV | V) x (V | T)
	if (g1 == gbp.LV || g1 == gbp.V) && (g2 == gbp.V || g2 == gbp.T) {
		return false
	}

	// GB8: (LVT | T) x T
	if (g1 == gbp.LVT || g1 == gbp.T) && g2 == gbp.T {
		return false
	}

	// GB9: x (Extend | ZWJ)
	if g2 == gbp.Extend || g2 == gbp.ZWJ {
		return false
	}

	// GB9a: x SpacingMark
	if g2 == gbp.SpacingMark {
		return false
	}

	// GB9b: Prepend x (anything that GB4 doesn't already force a break on)
	if g1 == gbp.Prepend {
		return false
	}

	// GB12, GB13: Regional_Indicator x Regional_Indicator, pairwise.
	if g1 == gbp.RegionalIndicator && g2 == gbp.RegionalIndicator {
		if state.RI {
			state.RI = false
			return true
		}
		state.RI = true
		return false
	}

	// GB11: Extended_Pictographic Extend* ZWJ x Extended_Pictographic
	if state.XPIC && g1 == gbp.ZWJ && p2.ExtendedPictographic() {
		state.XPIC = false
		return false
	}

	// GB9c: Indic conjunct sequences.
	if state.INDIC {
		in1, in2 := p1.Indic(), p2.Indic()
		if in1 == gbp.IndicConsonant && (in2 == gbp.IndicExtend || in2 == gbp.IndicLinker) {
			return false
		}
		if in1 == gbp.IndicExtend && in2 == gbp.IndicLinker {
			return false
		}
		if (in1 == gbp.IndicLinker || g1 == gbp.ZWJ) && in2 == gbp.IndicConsonant {
			state.INDIC = false
			return false
		}
	}

	// GB999: otherwise break.
	return true
}
