package pillar

import (
	"testing"
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestMonthPillarBranchFollowsGoverningJie(t *testing.T) {
	jia := sexagenary.NewStem(0)
	startOfSpring, err := astro.SolarTermInstant(2024, 2)
	if err != nil {
		t.Fatalf("SolarTermInstant: %v", err)
	}

	p, err := MonthPillar(startOfSpring.Add(time.Hour), jia)
	if err != nil {
		t.Fatalf("MonthPillar: %v", err)
	}
	if p.Branch.Index() != 2 {
		t.Errorf("month just after 立春 must carry the 寅 branch (index 2), have %d", p.Branch.Index())
	}
}

func TestMonthPillarFiveTigerBaseOnJiaOrJiYear(t *testing.T) {
	jia := sexagenary.NewStem(0)
	startOfSpring, err := astro.SolarTermInstant(2024, 2)
	if err != nil {
		t.Fatalf("SolarTermInstant: %v", err)
	}

	p, err := MonthPillar(startOfSpring.Add(time.Hour), jia)
	if err != nil {
		t.Fatalf("MonthPillar: %v", err)
	}
	if p.Stem.Index() != fiveTigerBaseStem[0] {
		t.Errorf("first month stem on a 甲/己 year: want %d, have %d", fiveTigerBaseStem[0], p.Stem.Index())
	}
}
