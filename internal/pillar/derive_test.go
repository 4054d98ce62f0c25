package pillar

import (
	"testing"
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/civil"
)

func TestDeriveProducesFourSelfConsistentPillars(t *testing.T) {
	instant := time.Date(2024, 6, 15, 10, 0, 0, 0, astro.CivilZone)
	reduction := civil.ReduceToTrueSolar(instant, 120)

	fp, err := Derive(reduction, true)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	for name, p := range map[string]interface{ Valid() bool }{
		"year": fp.Year, "month": fp.Month, "day": fp.Day, "hour": fp.Hour,
	} {
		if !p.Valid() {
			t.Errorf("%s pillar is not a valid stem/branch parity combination", name)
		}
	}
}

func TestDeriveHourStemTracksDayStem(t *testing.T) {
	instant := time.Date(2024, 6, 15, 10, 0, 0, 0, astro.CivilZone)
	reduction := civil.ReduceToTrueSolar(instant, 120)

	fp, err := Derive(reduction, true)
	if err != nil {
		t.Fatalf("Derive: %v", err)
	}

	want := HourPillar(reduction.ReducedInstant, fp.Day.Stem)
	if fp.Hour.Stem.Index() != want.Stem.Index() || fp.Hour.Branch.Index() != want.Branch.Index() {
		t.Errorf("hour pillar does not match HourPillar(dayStem): have %s want %s", fp.Hour, want)
	}
}
