package astro

// DeltaTSeconds returns ΔT = TT − UT, in SI seconds, for a decimal civil
// year (year plus (month-0.5)/12 for sub-year resolution), using the
// Espenak–Meeus piecewise polynomial. The pieces are continuous to
// within a few seconds at each boundary, so callers never observe a
// discontinuity larger than the model's own precision.
func DeltaTSeconds(year float64) float64 {
	switch {
	case year < 1900:
		t := year - 1860
		return 7.62 + t*(0.5737+t*(-0.251754+t*(0.01680668+t*(-0.0004473624+t/233174))))
	case year < 1920:
		t := year - 1900
		return -2.79 + t*(1.494119+t*(-0.0598939+t*(0.0061966-0.000197*t)))
	case year < 1941:
		t := year - 1920
		return 21.20 + t*(0.84493+t*(-0.076100+0.0020936*t))
	case year < 1961:
		t := year - 1950
		return 29.07 + t*(0.407-t/233+t*t/2547)
	case year < 1986:
		t := year - 1975
		return 45.45 + t*(1.067-t/260-t*t/718)
	case year < 2005:
		t := year - 2000
		return 63.86 + t*(0.3345+t*(-0.060374+t*(0.0017275+t*(0.000651814+0.00002373599*t))))
	case year < 2050:
		t := year - 2000
		return 62.92 + t*(0.32217+0.005589*t)
	case year < 2150:
		u := (year - 1820) / 100
		return -20 + 32*u*u - 0.5628*(2150-year)
	default:
		u := (year - 1820) / 100
		return -20 + 32*u*u
	}
}

// DecimalYear converts a civil (year, month) pair into the decimal year
// used by DeltaTSeconds.
func DecimalYear(year, month int) float64 {
	return float64(year) + (float64(month)-0.5)/12.0
}
