package pillar

import (
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// MonthPillar derives the month pillar for the true-solar-reduced
// instant, given the already-derived year stem. The month branch comes
// from the latest "jie" term at or before instant; the month stem
// follows the Five-Tiger rule keyed off the year stem.
func MonthPillar(instant time.Time, yearStem sexagenary.Stem) (sexagenary.Pillar, error) {
	prior, _, err := astro.PriorAndNextJie(instant)
	if err != nil {
		return sexagenary.Pillar{}, err
	}

	k := prior.Index / 2
	branchIndex := positiveMod(k+1, 12)
	branch := sexagenary.NewBranch(branchIndex)

	stem := FiveTigerStem(yearStem, branchIndex)
	return sexagenary.Pillar{Stem: stem, Branch: branch}, nil
}

// FiveTigerStem applies the Five-Tiger rule to any branch treated as a
// month position, given the year stem. Used for the month pillar itself
// and for the 命宫 and 身宫 palace pillars, which share the same
// stem-derivation convention.
func FiveTigerStem(yearStem sexagenary.Stem, branchIndex int) sexagenary.Stem {
	monthOffset := positiveMod(branchIndex-2, 12)
	base := fiveTigerBaseStem[yearStem.Index()%5]
	return sexagenary.NewStem(positiveMod(base+monthOffset, 10))
}
