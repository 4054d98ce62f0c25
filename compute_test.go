package bazi

import (
	"testing"
	"time"

	"github.com/hotea/bazi-insights/internal/config"
)

func baseInput() Input {
	return Input{
		DateType:  DateSolar,
		Year:      1984,
		Month:     2,
		Day:       4,
		Hour:      23,
		Minute:    19,
		TimeType:  TimeStandard,
		Gender:    Male,
		Longitude: 120,
	}
}

func TestComputeProducesACompleteResult(t *testing.T) {
	result, err := Compute(baseInput())
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if !result.Pillars.Year.Valid() || !result.Pillars.Month.Valid() ||
		!result.Pillars.Day.Valid() || !result.Pillars.Hour.Valid() {
		t.Errorf("every pillar must be a valid stem/branch combination: %+v", result.Pillars)
	}
	if len(result.DecadeLuck) != decadeStepCount {
		t.Errorf("want %d decade-luck entries, have %d", decadeStepCount, len(result.DecadeLuck))
	}
	if len(result.AnnualLuck) != annualStepCount {
		t.Errorf("want %d annual-luck entries, have %d", annualStepCount, len(result.AnnualLuck))
	}
	if result.Analysis == "" {
		t.Error("want a non-empty strength analysis string")
	}
}

func TestComputeRejectsOutOfRangeLongitude(t *testing.T) {
	input := baseInput()
	input.Longitude = 200
	_, err := Compute(input)
	assertKind(t, err, OutOfRange)
}

func TestComputeRejectsBadDateType(t *testing.T) {
	input := baseInput()
	input.DateType = "weekly"
	_, err := Compute(input)
	assertKind(t, err, InvalidInput)
}

func TestComputeRejectsOutOfRangeYear(t *testing.T) {
	input := baseInput()
	input.Year = 1850
	_, err := Compute(input)
	assertKind(t, err, OutOfRange)
}

func TestComputeAcceptsLunarInput(t *testing.T) {
	input := Input{
		DateType:    DateLunar,
		Year:        2023,
		Month:       2,
		Day:         1,
		IsLeapMonth: true,
		Hour:        12,
		TimeType:    TimeStandard,
		Gender:      Female,
		Longitude:   120,
	}
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute(lunar leap month): %v", err)
	}
	if result.LunarDate.Year != 2023 || result.LunarDate.Month != 2 || !result.LunarDate.IsLeap {
		t.Errorf("want the lunar date echoed back, have %+v", result.LunarDate)
	}
}

// scenario is one of spec.md 8's literal end-to-end scenarios: a fixed
// input and its expected year/month/day/hour pillar names.
type scenario struct {
	name                   string
	input                  Input
	year, month, day, hour string
}

func TestComputeScenarios(t *testing.T) {
	scenarios := []scenario{
		{
			name:  "S1 Start-of-Spring hair-trigger, on the boundary",
			input: Input{DateType: DateSolar, Year: 1984, Month: 2, Day: 4, Hour: 23, Minute: 19, TimeType: TimeStandard, Gender: Male, Longitude: 120},
			year:  "甲子", month: "丙寅", day: "甲子", hour: "甲子",
		},
		{
			name:  "S2 one minute before Start-of-Spring, year rolls back",
			input: Input{DateType: DateSolar, Year: 1984, Month: 2, Day: 4, Hour: 23, Minute: 18, TimeType: TimeStandard, Gender: Male, Longitude: 120},
			year:  "癸亥", month: "乙丑", day: "癸亥", hour: "壬子",
		},
		{
			name:  "S4 before 2000 Start-of-Spring, year pillar still previous",
			input: Input{DateType: DateSolar, Year: 2000, Month: 1, Day: 1, Hour: 12, Minute: 0, TimeType: TimeStandard, Gender: Male, Longitude: 120},
			year:  "己卯", month: "丁丑", day: "戊午", hour: "戊午",
		},
	}

	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			result, err := Compute(sc.input)
			if err != nil {
				t.Fatalf("Compute: %v", err)
			}
			if got := result.Pillars.Year.String(); got != sc.year {
				t.Errorf("year pillar: want %s, have %s", sc.year, got)
			}
			if got := result.Pillars.Month.String(); got != sc.month {
				t.Errorf("month pillar: want %s, have %s", sc.month, got)
			}
			if got := result.Pillars.Day.String(); got != sc.day {
				t.Errorf("day pillar: want %s, have %s", sc.day, got)
			}
			if got := result.Pillars.Hour.String(); got != sc.hour {
				t.Errorf("hour pillar: want %s, have %s", sc.hour, got)
			}
		})
	}
}

func TestComputeScenarioS3MonthBranchAfterJingzhe(t *testing.T) {
	input := Input{DateType: DateSolar, Year: 2024, Month: 3, Day: 5, Hour: 10, Minute: 24, TimeType: TimeStandard, Gender: Male, Longitude: 116.4}
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if got := result.Pillars.Year.String(); got != "甲辰" {
		t.Errorf("year pillar: want 甲辰, have %s", got)
	}
	if got := result.Pillars.Month.Branch.Name(); got != "卯" {
		t.Errorf("month branch: want 卯 (post-惊蛰), have %s", got)
	}
}

func TestComputeScenarioS5DSTCorrection(t *testing.T) {
	corrected := Input{DateType: DateSolar, Year: 1986, Month: 7, Day: 1, Hour: 14, Minute: 30, TimeType: TimeStandard, Gender: Male, Longitude: 120}
	uncorrected := Input{DateType: DateSolar, Year: 1986, Month: 7, Day: 1, Hour: 15, Minute: 30, TimeType: TimeStandard, Gender: Male, Longitude: 120, DSTConfirmed: true}

	want, err := Compute(corrected)
	if err != nil {
		t.Fatalf("Compute(corrected): %v", err)
	}
	got, err := Compute(uncorrected)
	if err != nil {
		t.Fatalf("Compute(dstConfirmed): %v", err)
	}
	if got.Pillars != want.Pillars {
		t.Errorf("DST-confirmed 15:30 should derive pillars from 14:30: want %+v, have %+v", want.Pillars, got.Pillars)
	}
}

func TestComputeScenarioS6LunarLeapMonthResolvesToCivilDate(t *testing.T) {
	input := Input{DateType: DateLunar, Year: 2023, Month: 2, Day: 1, IsLeapMonth: true, Hour: 12, Minute: 0, TimeType: TimeStandard, Gender: Male, Longitude: 120}
	result, err := Compute(input)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	civil := result.CivilInstant
	if civil.Year() != 2023 || civil.Month() != time.March || civil.Day() != 21 {
		t.Errorf("lunar 2023-02-01 (leap) should resolve to civil 2023-03-21, have %v", civil)
	}
}

func TestComputeWithConfigAppliesCustomLocale(t *testing.T) {
	cfg := config.Default()
	cfg.Locale = "zh-Hans"
	result, err := ComputeWithConfig(baseInput(), cfg)
	if err != nil {
		t.Fatalf("ComputeWithConfig: %v", err)
	}
	if result.Analysis == "" {
		t.Error("want a non-empty analysis string")
	}
}

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	be, ok := err.(*Error)
	if !ok {
		t.Fatalf("want a *bazi.Error, have %T (%v)", err, err)
	}
	if be.Kind != kind {
		t.Errorf("want kind %s, have %s", kind, be.Kind)
	}
}
