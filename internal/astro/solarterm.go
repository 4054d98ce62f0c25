package astro

import (
	"fmt"
	"math"
	"time"
)

// SolarTerm is one of the 24 solar terms: Index in [0, 23], Instant the
// civil (+08) moment the Sun's apparent longitude crosses the term's
// target. Even indices are "jie" (sectional terms, month boundaries);
// odd indices are "qi".
type SolarTerm struct {
	Index   int
	Instant time.Time
}

// IsJie reports whether this term is a sectional ("jie") term.
func (s SolarTerm) IsJie() bool { return s.Index%2 == 0 }

// TargetDegrees returns the apparent-solar-longitude target, in degrees
// [0, 360), for a term index: index 0 is Minor Cold at 285°, advancing
// by 15° per index.
func TargetDegrees(index int) float64 {
	return math.Mod(285+float64(index)*15, 360)
}

const (
	newtonMaxIterations  = 50
	newtonToleranceDeg   = 1e-5
	daysPerDegreePerYear = 365.25 / 360.0
)

// SolarTermInstant returns the civil instant (in CivilZone) at which the
// Sun's apparent longitude reaches term index's target, in the solar
// year anchored near civil year. index must be in [0, 23].
func SolarTermInstant(year, index int) (time.Time, error) {
	if index < 0 || index > 23 {
		return time.Time{}, fmt.Errorf("astro: solar term index %d out of [0, 23]", index)
	}

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, CivilZone)
	// Linear estimate: roughly 5 days into the year plus 365.25/24 days
	// per term index, per spec.md 4.1.
	jde := JulianDay(jan1) + 5 + float64(index)*(365.25/24)

	target := TargetDegrees(index)

	for i := 0; i < newtonMaxIterations; i++ {
		t := JulianCenturiesJ2000(jde)
		lonDeg := ApparentSolarLongitude(t) * 180 / math.Pi

		delta := target - lonDeg
		// Wrap to (-180, 180] so the correction always takes the short way
		// around the 0°/360° boundary.
		for delta > 180 {
			delta -= 360
		}
		for delta <= -180 {
			delta += 360
		}

		if math.Abs(delta) < newtonToleranceDeg {
			break
		}
		jde += delta * daysPerDegreePerYear
	}

	utcOfJDE := FromJulianDay(jde)
	deltaT := DeltaTSeconds(DecimalYear(utcOfJDE.Year(), int(utcOfJDE.Month())))
	utJD := jde - deltaT/86400.0

	return FromJulianDay(utJD).In(CivilZone), nil
}

// AllSolarTerms returns all 24 solar terms for civil year, sorted by
// instant, each name (index) appearing exactly once.
func AllSolarTerms(year int) ([24]SolarTerm, error) {
	var terms [24]SolarTerm
	for i := 0; i < 24; i++ {
		instant, err := SolarTermInstant(year, i)
		if err != nil {
			return terms, err
		}
		terms[i] = SolarTerm{Index: i, Instant: instant}
	}
	// The terms are generated from a monotonic linear seed across the
	// year, so they come out instant-sorted already; a defensive sort
	// keeps the contract explicit even if the seed formula changes.
	for i := 1; i < 24; i++ {
		for j := i; j > 0 && terms[j].Instant.Before(terms[j-1].Instant); j-- {
			terms[j], terms[j-1] = terms[j-1], terms[j]
		}
	}
	return terms, nil
}

// PriorAndNextJie returns the latest jie term at or before instant and
// the earliest jie term after it, searching the civil year of instant and
// its neighbors so the result is correct near year boundaries.
func PriorAndNextJie(instant time.Time) (prior, next SolarTerm, err error) {
	year := instant.In(CivilZone).Year()

	var jieTerms []SolarTerm
	for _, y := range []int{year - 1, year, year + 1} {
		terms, e := AllSolarTerms(y)
		if e != nil {
			return SolarTerm{}, SolarTerm{}, e
		}
		for _, term := range terms {
			if term.IsJie() {
				jieTerms = append(jieTerms, term)
			}
		}
	}

	for i := 0; i < len(jieTerms); i++ {
		if !jieTerms[i].Instant.After(instant) {
			prior = jieTerms[i]
		} else {
			next = jieTerms[i]
			return prior, next, nil
		}
	}
	return prior, next, fmt.Errorf("astro: no next jie term found after %v", instant)
}
