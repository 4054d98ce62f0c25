package civil

import "time"

// TrueSolarReduction bundles a civil instant with its true-solar-time
// correction. ReducedInstant = OriginalInstant + (LongitudeOffsetMinutes +
// EquationOfTimeMinutes) * 60s, exactly the invariant of spec.md 3.
type TrueSolarReduction struct {
	OriginalInstant        time.Time
	ReducedInstant         time.Time
	LongitudeOffsetMinutes float64
	EquationOfTimeMinutes  float64
}

// ReduceToTrueSolar computes the true-solar-time reduction of instant at
// geographic longitude (decimal degrees, east-positive). The longitude
// offset is exactly (longitude - 120) * 4 minutes per degree, per
// spec.md 4.2; dayOfYear is read from instant's own calendar fields, so
// the caller must pass instant already expressed in the zone it should
// be read in (the root package always passes the +08 civil instant).
func ReduceToTrueSolar(instant time.Time, longitude float64) TrueSolarReduction {
	longitudeOffset := (longitude - 120) * 4
	eot := EquationOfTimeMinutes(instant.YearDay())

	correctionSeconds := (longitudeOffset + eot) * 60
	reduced := instant.Add(time.Duration(correctionSeconds * float64(time.Second)))

	return TrueSolarReduction{
		OriginalInstant:        instant,
		ReducedInstant:         reduced,
		LongitudeOffsetMinutes: longitudeOffset,
		EquationOfTimeMinutes:  eot,
	}
}
