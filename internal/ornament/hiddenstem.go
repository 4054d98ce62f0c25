package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// HiddenStemsAt looks up the hidden-stem table for one pillar's branch,
// the Ornaments-layer entry point spec.md 4.5 describes as "pure table
// lookup from branch to an ordered list of (stem, role, weight)".
func HiddenStemsAt(branch sexagenary.Branch) []sexagenary.HiddenStem {
	return branch.HiddenStems()
}
