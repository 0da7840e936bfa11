package normalize

import "github.com/cpradog/unitext/unicode/norm"

// compose runs the canonical composition algorithm over an already
// canonically-ordered rune sequence: each non-starter is combined into the
// most recent starter when a primary composite exists and no intervening
// character since that starter has a canonical combining class greater than
// or equal to the candidate's, per the Unicode composition blocking rule.
func compose(runes []rune) []byte {
	if len(runes) == 0 {
		return nil
	}

	out := make([]rune, 0, len(runes))
	out = append(out, runes[0])
	starterIdx := 0
	maxCCCSinceStarter := -1

	for i := 1; i < len(runes); i++ {
		r := runes[i]
		rccc := combiningClass(r)

		if maxCCCSinceStarter < rccc {
			if composed, ok := tryCompose(out[starterIdx], r); ok {
				out[starterIdx] = composed
				continue
			}
		}

		out = append(out, r)
		if rccc == 0 {
			starterIdx = len(out) - 1
			maxCCCSinceStarter = -1
		} else if rccc > maxCCCSinceStarter {
			maxCCCSinceStarter = rccc
		}
	}

	return []byte(string(out))
}

func tryCompose(a, b rune) (rune, bool) {
	if c, ok := norm.Compose(a, b); ok {
		return c, true
	}
	if c, ok := norm.ComposeHangulLV(a, b); ok {
		return c, true
	}
	if c, ok := norm.ComposeHangulLVT(a, b); ok {
		return c, true
	}
	return 0, false
}
