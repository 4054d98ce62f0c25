package pillar

import (
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// dayPillarEpoch is 1900-01-31 local midnight, the anchor that maps to
// pillar index 0 (甲子) per spec.md 3.
var dayPillarEpoch = time.Date(1900, 1, 31, 0, 0, 0, 0, astro.CivilZone)

func midnightOf(instant time.Time) time.Time {
	t := instant.In(astro.CivilZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, astro.CivilZone)
}

// DayPillar derives the day pillar for the true-solar-reduced instant.
// If earlyRatSplit is true and the instant's hour is 23 or later, the
// 23:00-23:59 hour is folded into the next day's pillar (the inclusive
// boundary interpretation spec.md 9's Open Question adopts).
func DayPillar(instant time.Time, earlyRatSplit bool) sexagenary.Pillar {
	civil := instant.In(astro.CivilZone)
	n := int(midnightOf(civil).Sub(dayPillarEpoch).Hours() / 24)
	if earlyRatSplit && civil.Hour() >= 23 {
		n++
	}

	stem := sexagenary.NewStem(positiveMod(n, 10))
	branch := sexagenary.NewBranch(positiveMod(n, 12))
	return sexagenary.Pillar{Stem: stem, Branch: branch}
}
