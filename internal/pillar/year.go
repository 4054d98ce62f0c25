package pillar

import (
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// YearPillar derives the year pillar for the true-solar-reduced instant.
// The effective year is the civil year if instant is at or after that
// year's Start-of-Spring (solar term index 2), else civil year - 1.
func YearPillar(instant time.Time) (sexagenary.Pillar, error) {
	civilInstant := instant.In(astro.CivilZone)
	civilYear := civilInstant.Year()

	startOfSpring, err := astro.SolarTermInstant(civilYear, 2)
	if err != nil {
		return sexagenary.Pillar{}, err
	}

	effectiveYear := civilYear
	if civilInstant.Before(startOfSpring) {
		effectiveYear = civilYear - 1
	}

	stem := sexagenary.NewStem(positiveMod(effectiveYear-4, 10))
	branch := sexagenary.NewBranch(positiveMod(effectiveYear-4, 12))
	return sexagenary.Pillar{Stem: stem, Branch: branch}, nil
}
