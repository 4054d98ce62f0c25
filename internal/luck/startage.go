package luck

import (
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
)

// StartAge is the age at which the first ten-year luck pillar begins,
// expressed in the traditional years/months/days breakdown.
type StartAge struct {
	Years, Months, Days int
}

// Float64 converts the breakdown to fractional years (30-day months,
// 12-month years), for comparing against a continuous age axis.
func (a StartAge) Float64() float64 {
	return float64(a.Years) + float64(a.Months)/12.0 + float64(a.Days)/360.0
}

// Compute derives the start age from the birth instant's distance to
// the adjacent jie term: the next jie when direction is Forward, the
// previous jie when Backward. Three days of civil duration convert to
// one year; the remainder is apportioned to months on a 30-day basis.
func Compute(birth time.Time, direction Direction) (StartAge, error) {
	prior, next, err := astro.PriorAndNextJie(birth)
	if err != nil {
		return StartAge{}, err
	}

	var span time.Duration
	if direction == Forward {
		span = next.Instant.Sub(birth)
	} else {
		span = birth.Sub(prior.Instant)
	}
	if span < 0 {
		span = -span
	}

	totalDays := span.Hours() / 24
	totalYears := totalDays / 3
	years := int(totalYears)

	remainderMonths := (totalYears - float64(years)) * 12
	months := int(remainderMonths)

	remainderDays := (remainderMonths - float64(months)) * 30
	days := int(remainderDays + 0.5)
	if days >= 30 {
		days -= 30
		months++
	}
	if months >= 12 {
		months -= 12
		years++
	}

	return StartAge{Years: years, Months: months, Days: days}, nil
}
