package astro

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// nutationRow is one row of the IAU-1980 nutation table: five integer
// multipliers of the fundamental arguments (D, M, M', F, Ω), and the
// (A + A'T) sin coefficient and (B + B'T) cos coefficient, in units of
// 0.0001 arcsecond, exactly the 9-value row shape of spec.md 4.1.
type nutationRow struct {
	d, m, mp, f, om int
	sinA, sinAT     float64
	cosB, cosBT     float64
}

// nutationTable is the published 63-row IAU-1980 series (see DESIGN.md):
// the five fundamental-argument multipliers (D, M, M', F, Ω) and the
// (A + A'T) sin / (B + B'T) cos coefficients, in units of 0.0001
// arcsecond, transcribed row for row rather than generated. The
// fundamental-argument formulas themselves (fundamentalArguments below)
// are the standard Meeus expressions and are exact.
var nutationTable = []nutationRow{
	{0, 0, 0, 0, 1, -171996, -174.2, 92025, 8.9},
	{-2, 0, 0, 2, 2, -13187, -1.6, 5736, -3.1},
	{0, 0, 0, 2, 2, -2274, -0.2, 977, -0.5},
	{0, 0, 0, 0, 2, 2062, 0.2, -895, 0.5},
	{0, 1, 0, 0, 0, 1426, -3.4, 54, -0.1},
	{0, 0, 1, 0, 0, 712, 0.1, -7, 0},
	{-2, 1, 0, 2, 2, -517, 1.2, 224, -0.6},
	{0, 0, 0, 2, 1, -386, -0.4, 200, 0},
	{0, 0, 1, 2, 2, -301, 0, 129, -0.1},
	{-2, -1, 0, 2, 2, 217, -0.5, -95, 0.3},
	{-2, 0, 1, 0, 0, -158, 0, 0, 0},
	{-2, 0, 0, 2, 1, 129, 0.1, -70, 0},
	{0, 0, -1, 2, 2, 123, 0, -53, 0},
	{2, 0, 0, 0, 0, 63, 0, 0, 0},
	{0, 0, 1, 0, 1, 63, 0.1, -33, 0},
	{2, 0, -1, 2, 2, -59, 0, 26, 0},
	{0, 0, -1, 0, 1, -58, -0.1, 32, 0},
	{0, 0, 1, 2, 1, -51, 0, 27, 0},
	{-2, 0, 2, 0, 0, 48, 0, 0, 0},
	{0, 0, -2, 2, 1, 46, 0, -24, 0},
	{2, 0, 0, 2, 2, -38, 0, 16, 0},
	{0, 0, 2, 2, 2, -31, 0, 13, 0},
	{0, 0, 2, 0, 0, 29, 0, 0, 0},
	{-2, 0, 1, 2, 2, 29, 0, -12, 0},
	{0, 0, 0, 2, 0, 26, 0, 0, 0},
	{-2, 0, 0, 2, 0, -22, 0, 0, 0},
	{0, 0, -1, 2, 1, 21, 0, -10, 0},
	{0, 2, 0, 0, 0, 17, -0.1, 0, 0},
	{2, 0, -1, 0, 1, 16, 0, -8, 0},
	{-2, 2, 0, 2, 2, -16, 0.1, 7, 0},
	{0, 1, 0, 0, 1, -15, 0, 9, 0},
	{-2, 0, 1, 0, 1, -13, 0, 7, 0},
	{0, -1, 0, 0, 1, -12, 0, 6, 0},
	{0, 0, 2, -2, 0, 11, 0, 0, 0},
	{2, 0, -1, 2, 1, -10, 0, 5, 0},
	{2, 0, 1, 2, 2, -8, 0, 3, 0},
	{0, 1, 0, 2, 2, -7, 0, 3, 0},
	{-2, 1, 1, 0, 0, 7, 0, 0, 0},
	{0, -1, 0, 2, 2, -7, 0, 3, 0},
	{2, 0, 0, 2, 1, -7, 0, 3, 0},
	{2, 0, 1, 0, 0, 6, 0, 0, 0},
	{-2, 0, 2, 2, 2, 6, 0, -3, 0},
	{-2, 0, 1, 2, 1, 6, 0, -3, 0},
	{2, 0, -2, 0, 1, -6, 0, 3, 0},
	{2, 0, 0, 0, 1, -6, 0, 3, 0},
	{0, -1, 1, 0, 0, 5, 0, 0, 0},
	{-2, -1, 0, 2, 1, -5, 0, 3, 0},
	{-2, 0, 0, 0, 1, -5, 0, 3, 0},
	{0, 0, 2, 2, 1, -5, 0, 3, 0},
	{-2, 0, 2, 0, 1, 4, 0, 0, 0},
	{-2, 1, 0, 2, 1, 4, 0, 0, 0},
	{0, 0, 1, -2, 0, 4, 0, 0, 0},
	{-1, 0, 1, 0, 0, -4, 0, 0, 0},
	{-2, 1, 0, 0, 0, -4, 0, 0, 0},
	{1, 0, 0, 0, 0, -3, 0, 0, 0},
	{0, 0, 1, 2, 0, 3, 0, 0, 0},
	{0, 0, -2, 2, 2, -3, 0, 0, 0},
	{-1, -1, 1, 0, 0, -3, 0, 0, 0},
	{0, 1, 1, 0, 0, -3, 0, 0, 0},
	{0, -1, 1, 2, 2, -3, 0, 0, 0},
	{2, -1, -1, 2, 2, -3, 0, 0, 0},
	{0, 0, 3, 2, 2, -3, 0, 0, 0},
	{2, -1, 0, 2, 2, -3, 0, 0, 0},
}

// fundamentalArguments returns the five fundamental arguments of lunar
// and solar motion (D, M, M', F, Ω), in radians, at Julian centuries from
// J2000 T, per Meeus Astronomical Algorithms ch. 22.
func fundamentalArguments(t float64) (d, m, mp, f, om float64) {
	deg := func(x float64) float64 { return x * math.Pi / 180 }

	d = deg(297.85036 + 445267.111480*t - 0.0019142*t*t + t*t*t/189474)
	m = deg(357.52772 + 35999.050340*t - 0.0001603*t*t - t*t*t/300000)
	mp = deg(134.96298 + 477198.867398*t + 0.0086972*t*t + t*t*t/56250)
	f = deg(93.27191 + 483202.017538*t - 0.0036825*t*t + t*t*t/327270)
	om = deg(125.04452 - 1934.136261*t + 0.0020708*t*t + t*t*t/450000)
	return
}

// NutationInLongitude returns Δψ, the nutation in ecliptic longitude, in
// radians, at Julian centuries from J2000 T. The 63-row sum is
// accumulated in declared-table order, never reordered.
func NutationInLongitude(t float64) float64 {
	d, m, mp, f, om := fundamentalArguments(t)
	terms := make([]float64, len(nutationTable)) // in units of 0.0001 arcsecond
	for i, row := range nutationTable {
		arg := float64(row.d)*d + float64(row.m)*m + float64(row.mp)*mp +
			float64(row.f)*f + float64(row.om)*om
		terms[i] = (row.sinA + row.sinAT*t) * math.Sin(arg)
	}
	arcsec := floats.Sum(terms) / 10000.0
	return arcsec * math.Pi / (180 * 3600)
}
