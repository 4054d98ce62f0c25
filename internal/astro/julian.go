// Package astro implements the L0 astronomy layer: Julian day handling,
// the ΔT model, the reduced VSOP87 Earth series, IAU-1980 nutation, and
// the Newton solver that locates the 24 solar-term instants. Every
// function here is a pure computation over its arguments; the fixed
// coefficient tables are process-lifetime constants, never copied or
// mutated per call.
package astro

import (
	"math"
	"time"

	"github.com/carlosjhr64/jd"
)

// CivilZone is the fixed +08:00 offset every pillar boundary in this
// engine is expressed in. Every astro.Instant is a genuine time.Time
// tied to a real time.Location (UTC internally, CivilZone at the
// interface boundary); spec.md 4.1's "explicitly shift by +8h" is simply
// what time.Time.In(CivilZone) already does for a correctly constructed
// absolute instant, per the "dates with implicit offset" design note.
var CivilZone = time.FixedZone("+08", 8*60*60)

// JulianDay converts an instant to its Julian Day number, fractional part
// included. The instant is normalized to UTC first since the Julian Day
// is conventionally referenced to the UT/TT continuum, not to any local
// wall clock; jd.YMD2J supplies the integer JDN (Meeus's formula) for
// that UTC calendar date, and the time of day is folded in as an exact
// fractional offset, summed before any floor, per spec.md 4.1.
func JulianDay(t time.Time) float64 {
	u := t.UTC()
	jdn := jd.YMD2J(u.Year(), int(u.Month()), u.Day())
	secondsOfDay := float64(u.Hour()*3600+u.Minute()*60+u.Second()) +
		float64(u.Nanosecond())/1e9
	// jd.YMD2J is anchored at local midnight; JD itself is noon-anchored,
	// so the day fraction is offset by half a day.
	dayFraction := secondsOfDay/86400.0 - 0.5
	return float64(jdn) + dayFraction
}

// FromJulianDay is the inverse of JulianDay: it returns the UTC instant
// corresponding to Julian Day number d. Callers that need the +08 civil
// presentation call .In(CivilZone) on the result.
func FromJulianDay(d float64) time.Time {
	shifted := d + 0.5
	jdn := math.Floor(shifted)
	dayFraction := shifted - jdn
	year, month, day := jd.J2YMD(int(jdn))

	// A float64 Julian Day near 2.4e6 resolves only to a few microseconds,
	// so the time of day is rounded to the nearest millisecond.
	millis := int(math.Round(dayFraction * 86400000.0))
	// Guard against floating-point spill past the day boundary from the
	// Newton solver's sub-second convergence slack.
	if millis >= 86400000 {
		millis = 86400000 - 1
	}
	hour := millis / 3600000
	minute := (millis / 60000) % 60
	second := (millis / 1000) % 60
	nanos := (millis % 1000) * 1000000

	return time.Date(year, time.Month(month), day, hour, minute, second, nanos, time.UTC)
}

// JulianCenturiesJ2000 returns T, the number of Julian centuries of
// 36525 days elapsed since J2000.0 (JD 2451545.0), for a Julian Day jde
// expressed in dynamical time.
func JulianCenturiesJ2000(jde float64) float64 {
	return (jde - 2451545.0) / 36525.0
}
