package pillar

import (
	"testing"
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestHourBranchIndexSectors(t *testing.T) {
	cases := []struct {
		hour int
		want int
	}{
		{23, 0}, {0, 0},
		{1, 1}, {2, 1},
		{3, 2}, {4, 2},
		{11, 6}, {12, 6},
		{21, 11}, {22, 11},
	}
	for _, c := range cases {
		if got := hourBranchIndex(c.hour); got != c.want {
			t.Errorf("hourBranchIndex(%d) = %d, want %d", c.hour, got, c.want)
		}
	}
}

func TestHourPillarFiveRatRuleOnJiaDay(t *testing.T) {
	jia := sexagenary.NewStem(0)
	instant := time.Date(2024, 1, 1, 0, 30, 0, 0, astro.CivilZone)
	p := HourPillar(instant, jia)
	if p.Stem.Index() != 0 || p.Branch.Index() != 0 {
		t.Errorf("甲 day, 子 hour: want 甲子, have %s", p)
	}
}

func TestHourPillarFiveRatRuleAdvancesTwoStemsPerSector(t *testing.T) {
	yi := sexagenary.NewStem(1)
	noon := time.Date(2024, 1, 1, 12, 30, 0, 0, astro.CivilZone)
	p := HourPillar(noon, yi)
	if p.Branch.Index() != 6 {
		t.Fatalf("noon should fall in the 午 sector, have branch %d", p.Branch.Index())
	}
	if p.Stem.Index() != positiveMod(6+fiveRatOffset[1%5], 10) {
		t.Errorf("unexpected hour stem for 乙 day at noon: %s", p)
	}
}
