package lunar

import (
	"testing"
	"time"
)

func TestRoundTripAcrossDomain(t *testing.T) {
	start := time.Date(1900, 1, 31, 0, 0, 0, 0, civilZone)
	end := time.Date(2100, 12, 31, 0, 0, 0, 0, civilZone)

	step := 37 // sample every 37 days across the domain, not exhaustively
	for d := start; !d.After(end); d = d.AddDate(0, 0, step) {
		l, err := SolarToLunar(d)
		if err != nil {
			t.Fatalf("SolarToLunar(%v): %v", d, err)
		}
		back, err := LunarToSolar(l)
		if err != nil {
			t.Fatalf("LunarToSolar(%v) from %v: %v", l, d, err)
		}
		if !back.Equal(d) {
			t.Errorf("round trip failed: %v -> %+v -> %v", d, l, back)
		}
	}
}

func TestSolarToLunarRejectsOutOfRangeYear(t *testing.T) {
	_, err := SolarToLunar(time.Date(1899, 6, 1, 0, 0, 0, 0, civilZone))
	if err == nil {
		t.Error("want error for year before 1900")
	}
	_, err = SolarToLunar(time.Date(2101, 6, 1, 0, 0, 0, 0, civilZone))
	if err == nil {
		t.Error("want error for year after 2100")
	}
}

func TestLunarToSolarRejectsBadLeapFlag(t *testing.T) {
	leap := LeapMonth(1900)
	badMonth := leap + 1
	if badMonth > 12 {
		badMonth = 1
	}
	_, err := LunarToSolar(LunarDate{Year: 1900, Month: badMonth, Day: 1, IsLeap: true})
	if err == nil {
		t.Error("want error for isLeap=true on a non-leap month")
	}
}

func TestLunarToSolarRejectsDayOverflow(t *testing.T) {
	_, err := LunarToSolar(LunarDate{Year: 2000, Month: 1, Day: 31, IsLeap: false})
	if err == nil {
		t.Error("want error for day 31 of a lunar month (max 30)")
	}
}

func TestScenarioS6LeapMonthResolves(t *testing.T) {
	if LeapMonth(2023) != 2 {
		t.Fatalf("scenario S6 requires 2023's leap month to be 2, have %d", LeapMonth(2023))
	}
	solar, err := LunarToSolar(LunarDate{Year: 2023, Month: 2, Day: 1, IsLeap: true})
	if err != nil {
		t.Fatalf("LunarToSolar: %v", err)
	}
	if solar.Year() != 2023 || solar.Month() != time.March || solar.Day() != 21 {
		t.Errorf("scenario S6 requires lunar 2023-02-01 (leap) to resolve to civil 2023-03-21, have %v", solar)
	}
	back, err := SolarToLunar(solar)
	if err != nil {
		t.Fatalf("SolarToLunar: %v", err)
	}
	if back != (LunarDate{Year: 2023, Month: 2, Day: 1, IsLeap: true}) {
		t.Errorf("round trip mismatch: have %+v", back)
	}
}
