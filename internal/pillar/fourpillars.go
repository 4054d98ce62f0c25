// Package pillar implements the L3 layer: derivation of the year, month,
// day, and hour pillars from a true-solar-reduced instant and the
// astronomical solar-term schedule, per spec.md 4.4. Every boundary here
// is an astronomical instant, never a civil month/day rollover.
package pillar

import "github.com/hotea/bazi-insights/internal/sexagenary"

// FourPillars bundles the year, month, day, and hour pillars of one
// chart.
type FourPillars struct {
	Year  sexagenary.Pillar
	Month sexagenary.Pillar
	Day   sexagenary.Pillar
	Hour  sexagenary.Pillar
}

// fiveTigerBaseStem is the Five-Tiger-rule base stem index for the first
// month (寅) of a year, keyed by yearStemIndex % 5.
var fiveTigerBaseStem = [5]int{2, 4, 6, 8, 0}

// fiveRatOffset is the Five-Rat-rule hour-stem offset, keyed by
// dayStemIndex % 5.
var fiveRatOffset = [5]int{0, 2, 4, 6, 8}

// positiveMod reduces n into [0, m) for any sign of n.
func positiveMod(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}
