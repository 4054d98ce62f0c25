// Package civil implements the L1 layer: true-solar-time reduction
// (equation of time plus longitude offset) and the 1986-1991 daylight
// saving correction, both pure functions of their arguments.
package civil

import "math"

// EquationOfTimeMinutes returns the equation of time, in minutes, for a
// day-of-year in [1, 366], per spec.md 4.2's low-precision approximation.
// The result is always within roughly [-15, 17] minutes.
func EquationOfTimeMinutes(dayOfYear int) float64 {
	b := 2 * math.Pi * float64(dayOfYear-81) / 365.25
	return 9.87*math.Sin(2*b) - 7.53*math.Cos(b) - 1.5*math.Sin(b)
}
