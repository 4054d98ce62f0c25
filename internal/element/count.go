// Package element implements the L6 layer: five-element counting,
// weighted scoring, and day-master strength judgment, per spec.md 4.7.
package element

import (
	"github.com/hotea/bazi-insights/internal/config"
	"github.com/hotea/bazi-insights/internal/pillar"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// Tally holds one value per element, indexed by sexagenary.Element.
type Tally [5]float64

// Count accumulates the unweighted tally: one point per stem whose
// element matches, across all four pillars.
func Count(fp pillar.FourPillars) Tally {
	var t Tally
	for _, stem := range stems(fp) {
		t[stem.Element()]++
	}
	return t
}

// Score accumulates the weighted tally: one point per stem (weight
// ElementWeights.Stem) plus the hidden-stem contribution of every
// branch's hidden stems, weighted by role.
func Score(fp pillar.FourPillars, weights config.ElementWeights) Tally {
	var t Tally
	for _, stem := range stems(fp) {
		t[stem.Element()] += weights.Stem
	}
	for _, branch := range branches(fp) {
		for _, hs := range branch.HiddenStems() {
			t[hs.Stem.Element()] += roleWeight(hs.Role, weights)
		}
	}
	return t
}

func roleWeight(role sexagenary.HiddenStemRole, weights config.ElementWeights) float64 {
	switch role {
	case sexagenary.Primary:
		return weights.Primary
	case sexagenary.Middle:
		return weights.Middle
	default:
		return weights.Residual
	}
}

func stems(fp pillar.FourPillars) [4]sexagenary.Stem {
	return [4]sexagenary.Stem{fp.Year.Stem, fp.Month.Stem, fp.Day.Stem, fp.Hour.Stem}
}

func branches(fp pillar.FourPillars) [4]sexagenary.Branch {
	return [4]sexagenary.Branch{fp.Year.Branch, fp.Month.Branch, fp.Day.Branch, fp.Hour.Branch}
}

// Total sums every element's contribution.
func (t Tally) Total() float64 {
	var sum float64
	for _, v := range t {
		sum += v
	}
	return sum
}
