package pillar

import (
	"github.com/hotea/bazi-insights/internal/civil"
)

// Derive assembles the four pillars from a true-solar-reduced instant.
// earlyRatSplit controls whether the 23:00-23:59 hour is folded into
// the following day's day pillar; it never changes the hour branch,
// which always reads 23:00-00:59 as the 子 sector, but the hour stem is
// derived from the resulting (possibly folded) day stem.
func Derive(reduction civil.TrueSolarReduction, earlyRatSplit bool) (FourPillars, error) {
	instant := reduction.ReducedInstant

	year, err := YearPillar(instant)
	if err != nil {
		return FourPillars{}, err
	}

	month, err := MonthPillar(instant, year.Stem)
	if err != nil {
		return FourPillars{}, err
	}

	day := DayPillar(instant, earlyRatSplit)
	hour := HourPillar(instant, day.Stem)

	return FourPillars{Year: year, Month: month, Day: day, Hour: hour}, nil
}
