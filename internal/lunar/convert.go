package lunar

import (
	"fmt"
	"time"
)

// civilZone is the +08 civil clock every LunarDate's paired civil instant
// is expressed in. Declared independently of internal/civil and
// internal/astro's own copies: spec.md 2 calls out that L2 is independent
// of L0/L1, consumed only by the root package to annotate its output.
var civilZone = time.FixedZone("+08", 8*60*60)

// LunarDate is a lunisolar calendar date: Year in [1900, 2100], Month in
// [1, 12], Day in [1, 30], IsLeap true only if Year's encoded leap month
// equals Month.
type LunarDate struct {
	Year   int
	Month  int
	Day    int
	IsLeap bool
}

// ErrOutOfRange reports a lunar year outside [1900, 2100].
type ErrOutOfRange struct{ Year int }

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("lunar: year %d outside [%d, %d]", e.Year, MinYear, MaxYear)
}

// ErrInvalidLunarDate reports a structurally invalid LunarDate: a leap
// flag on a month that isn't the year's encoded leap month, or a day
// exceeding the chosen month's length.
type ErrInvalidLunarDate struct{ Reason string }

func (e ErrInvalidLunarDate) Error() string {
	return "lunar: invalid lunar date: " + e.Reason
}

func springFestivalInstant(year int) time.Time {
	month, day := SpringFestivalMonthDay(year)
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, civilZone)
}

func dateOnly(t time.Time) time.Time {
	t = t.In(civilZone)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, civilZone)
}

// SolarToLunar converts a civil instant to its LunarDate. It determines
// whether date falls before its own civil year's lunar New Year; if so
// the lunar year is civilYear-1 and the offset is measured from that
// year's New Year instead, exactly per spec.md 4.3.
func SolarToLunar(date time.Time) (LunarDate, error) {
	civilYear := date.In(civilZone).Year()
	if !inRange(civilYear) {
		return LunarDate{}, ErrOutOfRange{civilYear}
	}

	d := dateOnly(date)
	lunarYear := civilYear
	sf := springFestivalInstant(civilYear)
	if d.Before(sf) {
		lunarYear = civilYear - 1
		if !inRange(lunarYear) {
			return LunarDate{}, ErrOutOfRange{lunarYear}
		}
		sf = springFestivalInstant(lunarYear)
	}

	offsetDays := int(d.Sub(sf).Hours() / 24)
	if offsetDays < 0 {
		return LunarDate{}, ErrInvalidLunarDate{Reason: "date precedes its resolved lunar year's New Year"}
	}

	leap := LeapMonth(lunarYear)
	for m := 1; m <= 12; m++ {
		length := MonthDays(lunarYear, m)
		if offsetDays < length {
			return LunarDate{Year: lunarYear, Month: m, Day: offsetDays + 1, IsLeap: false}, nil
		}
		offsetDays -= length

		if leap == m {
			leapLength := leapMonthDays(lunarYear)
			if offsetDays < leapLength {
				return LunarDate{Year: lunarYear, Month: m, Day: offsetDays + 1, IsLeap: true}, nil
			}
			offsetDays -= leapLength
		}
	}
	return LunarDate{}, ErrInvalidLunarDate{Reason: "offset exceeds the lunar year's total length"}
}

// LunarToSolar converts a LunarDate to its civil instant (midnight, +08).
func LunarToSolar(l LunarDate) (time.Time, error) {
	if !inRange(l.Year) {
		return time.Time{}, ErrOutOfRange{l.Year}
	}
	if l.Month < 1 || l.Month > 12 {
		return time.Time{}, ErrInvalidLunarDate{Reason: fmt.Sprintf("month %d outside [1, 12]", l.Month)}
	}
	if l.IsLeap && LeapMonth(l.Year) != l.Month {
		return time.Time{}, ErrInvalidLunarDate{
			Reason: fmt.Sprintf("year %d has no leap month %d", l.Year, l.Month),
		}
	}

	monthLength := MonthDays(l.Year, l.Month)
	if l.IsLeap {
		monthLength = leapMonthDays(l.Year)
	}
	if l.Day < 1 || l.Day > monthLength {
		return time.Time{}, ErrInvalidLunarDate{
			Reason: fmt.Sprintf("day %d exceeds month length %d", l.Day, monthLength),
		}
	}

	offset := 0
	leap := LeapMonth(l.Year)
	for m := 1; m < l.Month; m++ {
		offset += MonthDays(l.Year, m)
		if leap == m {
			offset += leapMonthDays(l.Year)
		}
	}
	if l.IsLeap {
		// The leap month follows its ordinary same-numbered month.
		offset += MonthDays(l.Year, l.Month)
	}
	offset += l.Day - 1

	return springFestivalInstant(l.Year).AddDate(0, 0, offset), nil
}
