package astro

import "testing"

func TestDeltaTContinuousAtBoundaries(t *testing.T) {
	boundaries := []float64{1900, 1920, 1941, 1961, 1986, 2005, 2050, 2150}
	for _, y := range boundaries {
		before := DeltaTSeconds(y - 1e-6)
		after := DeltaTSeconds(y)
		if diff := before - after; diff > 5 || diff < -5 {
			t.Errorf("year %f: ΔT jumps from %f to %f across boundary", y, before, after)
		}
	}
}

func TestDeltaTReasonableRangeForDomain(t *testing.T) {
	for year := 1900.0; year <= 2100; year += 10 {
		dt := DeltaTSeconds(year)
		if dt < -10 || dt > 210 {
			t.Errorf("year %f: ΔT=%f outside the plausible 1900-2100 envelope", year, dt)
		}
	}
}

func TestDecimalYear(t *testing.T) {
	if got := DecimalYear(2024, 1); got <= 2024 || got >= 2024.1 {
		t.Errorf("want ~2024.04, have %f", got)
	}
}
