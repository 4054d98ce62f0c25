package ornament

import (
	"testing"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestXunMissingBranchesCoverAllSixXun(t *testing.T) {
	want := [6][2]int{
		{10, 11}, {8, 9}, {6, 7}, {4, 5}, {2, 3}, {0, 1},
	}
	for xun := 0; xun < 6; xun++ {
		got := xunMissingBranches(xun)
		if got != want[xun] {
			t.Errorf("xun %d: want missing %v, have %v", xun, want[xun], got)
		}
	}
}

func TestShenshaTianyiForJiaDayStem(t *testing.T) {
	dayStem := sexagenary.NewStem(0) // 甲 -> 丑未
	branches := [4]sexagenary.Branch{
		sexagenary.NewBranch(1), sexagenary.NewBranch(3),
		sexagenary.NewBranch(5), sexagenary.NewBranch(7),
	}
	dayPillar := sexagenary.Pillar{Stem: dayStem, Branch: sexagenary.NewBranch(5)}

	hits := Shensha(branches, dayStem, dayPillar)
	found := false
	for _, h := range hits {
		if h.Name == "天乙贵人" {
			found = true
			if len(h.Positions) != 2 {
				t.Errorf("want both 丑 and 未 detected, have %v", h.Positions)
			}
		}
	}
	if !found {
		t.Errorf("want a 天乙贵人 hit for 甲 day stem with 丑/未 present, have %+v", hits)
	}
}

func TestShenshaEmptyChartYieldsNoFalsePositiveTianyi(t *testing.T) {
	dayStem := sexagenary.NewStem(2) // 丙 -> 亥酉
	branches := [4]sexagenary.Branch{
		sexagenary.NewBranch(2), sexagenary.NewBranch(3),
		sexagenary.NewBranch(4), sexagenary.NewBranch(6),
	}
	dayPillar := sexagenary.Pillar{Stem: dayStem, Branch: sexagenary.NewBranch(4)}

	for _, h := range Shensha(branches, dayStem, dayPillar) {
		if h.Name == "天乙贵人" {
			t.Errorf("no 亥/酉 present, want no 天乙贵人 hit, have %+v", h)
		}
	}
}
