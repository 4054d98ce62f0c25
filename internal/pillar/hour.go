package pillar

import (
	"time"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// hourBranchIndex maps a 24-hour clock hour to its 2-hour sector branch
// index: 23:00-00:59 -> 0 (子), 01:00-02:59 -> 1 (丑), and so on.
func hourBranchIndex(hour int) int {
	return positiveMod((hour+1)/2, 12)
}

// HourPillar derives the hour pillar from the instant's clock hour and
// the already-derived day stem, via the Five-Rat rule.
func HourPillar(instant time.Time, dayStem sexagenary.Stem) sexagenary.Pillar {
	branchIndex := hourBranchIndex(instant.Hour())
	branch := sexagenary.NewBranch(branchIndex)

	offset := fiveRatOffset[dayStem.Index()%5]
	stem := sexagenary.NewStem(positiveMod(branchIndex+offset, 10))

	return sexagenary.Pillar{Stem: stem, Branch: branch}
}
