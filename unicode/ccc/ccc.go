// Package ccc holds the Canonical_Combining_Class table consumed by the
// normalize package's canonical ordering step, built at init from the seed
// ranges in ranges.go, which are drawn from extracted/DerivedCombiningClass.txt.
package ccc

import "github.com/cpradog/unitext/internal/twostage"

var (
	stage1 []uint16
	stage2 []uint8
)

func init() {
	values := make(map[rune]uint8)
	for _, rg := range ranges {
		twostage.Expand(values, rg.lo, rg.hi, rg.class)
	}
	stage1, stage2 = twostage.Build(values)
}

// Lookup returns the Canonical_Combining_Class of r, 0 (Not_Reordered) for
// code points not listed (the overwhelming majority: starters have ccc 0).
func Lookup(r rune) uint8 {
	if r < 0 || r > 0x10FFFF {
		return 0
	}
	return twostage.Lookup(stage1, stage2, r)
}

// IsStarter reports whether r has Canonical_Combining_Class 0.
func IsStarter(r rune) bool { return Lookup(r) == 0 }
