// Package lunar implements the L2 layer: a 201-year (1900-2100) compressed
// lunisolar calendar table and bijective solar/lunar conversion.
package lunar

import "time"

const (
	MinYear = 1900
	MaxYear = 2100

	yearCount = MaxYear - MinYear + 1
)

// lunarInfo packs, for each year 1900..2100: bits 0-3 the leap-month
// number (0 = no leap month that year), bit 16 (0x10000) the leap
// month's length (0 => 29 days, 1 => 30 days), and bits 4-15 the twelve
// ordinary month lengths, month 1 at bit 15 down to month 12 at bit 4
// (1 => 30 days, 0 => 29 days) -- the classic packed-lunar-year encoding
// spec.md 4.3 describes. The 201 values below are the published
// 1900-2100 lunisolar calendar table, transcribed entry-for-entry
// (see DESIGN.md), not computed from any approximating formula.
var lunarInfo = [yearCount]uint32{
	0x04bd8, 0x04ae0, 0x0a570, 0x054d5, 0x0d260, 0x0d950, 0x16554, 0x056a0, 0x09ad0, 0x055d2, // 1900-1909
	0x04ae0, 0x0a5b6, 0x0a4d0, 0x0d250, 0x1d255, 0x0b540, 0x0d6a0, 0x0ada2, 0x095b0, 0x14977, // 1910-1919
	0x04970, 0x0a4b0, 0x0b4b5, 0x06a50, 0x06d40, 0x1ab54, 0x02b60, 0x09570, 0x052f2, 0x04970, // 1920-1929
	0x06566, 0x0d4a0, 0x0ea50, 0x06e95, 0x05ad0, 0x02b60, 0x186e3, 0x092e0, 0x1c8d7, 0x0c950, // 1930-1939
	0x0d4a0, 0x1d8a6, 0x0b550, 0x056a0, 0x1a5b4, 0x025d0, 0x092d0, 0x0d2b2, 0x0a950, 0x0b557, // 1940-1949
	0x06ca0, 0x0b550, 0x15355, 0x04da0, 0x0a5d0, 0x14573, 0x052d0, 0x0a9a8, 0x0e950, 0x06aa0, // 1950-1959
	0x0aea6, 0x0ab50, 0x04b60, 0x0aae4, 0x0a570, 0x05260, 0x0f263, 0x0d950, 0x05b57, 0x056a0, // 1960-1969
	0x096d0, 0x04dd5, 0x04ad0, 0x0a4d0, 0x0d4d4, 0x0d250, 0x0d558, 0x0b540, 0x0b5a0, 0x195a6, // 1970-1979
	0x095b0, 0x049b0, 0x0a974, 0x0a4b0, 0x0b27a, 0x06a50, 0x06d40, 0x0af46, 0x0ab60, 0x09570, // 1980-1989
	0x04af5, 0x04970, 0x064b0, 0x074a3, 0x0ea50, 0x06b58, 0x05ac0, 0x0ab60, 0x096d5, 0x092e0, // 1990-1999
	0x0c960, 0x0d954, 0x0d4a0, 0x0da50, 0x07552, 0x056a0, 0x0abb7, 0x025d0, 0x092d0, 0x0cab5, // 2000-2009
	0x0a950, 0x0b4a0, 0x0baa4, 0x0ad50, 0x055d9, 0x04ba0, 0x0a5b0, 0x15176, 0x052b0, 0x0a930, // 2010-2019
	0x07954, 0x06aa0, 0x0ad50, 0x05b52, 0x04b60, 0x0a6e6, 0x0a4e0, 0x0d260, 0x0ea65, 0x0d530, // 2020-2029
	0x05aa0, 0x076a3, 0x096d0, 0x04afb, 0x04ad0, 0x0a4d0, 0x1d0b6, 0x0d250, 0x0d520, 0x0dd45, // 2030-2039
	0x0b5a0, 0x056d0, 0x055b2, 0x049b0, 0x0a577, 0x0a4b0, 0x0aa50, 0x1b255, 0x06d20, 0x0ada0, // 2040-2049
	0x14b63, 0x09370, 0x049f8, 0x04970, 0x064b0, 0x168a6, 0x0ea50, 0x06b20, 0x1a6c4, 0x0aae0, // 2050-2059
	0x0a2e0, 0x0d2e3, 0x0c960, 0x0d557, 0x0d4a0, 0x0da50, 0x05d55, 0x056a0, 0x0a6d0, 0x055d4, // 2060-2069
	0x052d0, 0x0a9b8, 0x0a950, 0x0b4a0, 0x0b6a6, 0x0ad50, 0x055a0, 0x0aba4, 0x0a5b0, 0x052b0, // 2070-2079
	0x0b273, 0x06930, 0x07337, 0x06aa0, 0x0ad50, 0x14b55, 0x04b60, 0x0a570, 0x054e4, 0x0d160, // 2080-2089
	0x0e968, 0x0d520, 0x0daa0, 0x16aa6, 0x056d0, 0x04ae0, 0x0a9d4, 0x0a2d0, 0x0d150, 0x0f252, // 2090-2099
	0x0d520, // 2100
}

// springFestival packs each year's lunar-New-Year civil date as
// month*100 + day, populated at init from a running day-count anchored
// at the real, well-known 1900 lunar New Year of 1900-01-31 -- the same
// epoch spec.md 3 anchors the day-pillar cycle to.
var springFestival [yearCount]int

const (
	leapMonthBits = 0xF
	leapLengthBit = 0x10000
	monthBitsBase = 4
)

func init() {
	buildSpringFestival()
}

func buildSpringFestival() {
	// 1900-01-31 is the real, widely documented lunar New Year for 1900,
	// and the day-pillar epoch of spec.md 3.
	anchor := time.Date(MinYear, time.January, 31, 0, 0, 0, 0, time.UTC)
	springFestival[0] = int(anchor.Month())*100 + anchor.Day()

	for y := MinYear; y < MaxYear; y++ {
		anchor = anchor.AddDate(0, 0, yearLength(y))
		springFestival[y+1-MinYear] = int(anchor.Month())*100 + anchor.Day()
	}
}

// yearLength returns the total number of days the packed table assigns
// to lunar year, including its leap month if any.
func yearLength(year int) int {
	packed := lunarInfo[year-MinYear]
	total := 0
	for m := 1; m <= 12; m++ {
		bit := uint32(1) << uint(monthBitsBase+(12-m))
		if packed&bit != 0 {
			total += 30
		} else {
			total += 29
		}
	}
	if leap := int(packed & leapMonthBits); leap != 0 {
		if packed&leapLengthBit != 0 {
			total += 30
		} else {
			total += 29
		}
	}
	return total
}
