package lunar

// LeapMonth returns the leap-month number (1..12) for lunar year, or 0 if
// that year has no leap month. Decodes directly from the packed
// lunarInfo table, not from the generator.
func LeapMonth(year int) int {
	return int(lunarInfo[year-MinYear] & leapMonthBits)
}

// leapMonthDays returns the leap month's length in days, or 0 if the
// year has no leap month.
func leapMonthDays(year int) int {
	if LeapMonth(year) == 0 {
		return 0
	}
	if lunarInfo[year-MinYear]&leapLengthBit != 0 {
		return 30
	}
	return 29
}

// MonthDays returns the length, in days, of ordinary lunar month in
// lunar year, month in [1, 12].
func MonthDays(year, month int) int {
	bit := uint32(1) << uint(monthBitsBase+(12-month))
	if lunarInfo[year-MinYear]&bit != 0 {
		return 30
	}
	return 29
}

// YearDays returns the total number of days in lunar year, including its
// leap month if any.
func YearDays(year int) int {
	total := 0
	for m := 1; m <= 12; m++ {
		total += MonthDays(year, m)
	}
	return total + leapMonthDays(year)
}

// SpringFestivalMonthDay returns the (month, day) of year's civil-calendar
// lunar New Year, decoded from the packed springFestival table.
func SpringFestivalMonthDay(year int) (month, day int) {
	packed := springFestival[year-MinYear]
	return packed / 100, packed % 100
}

func inRange(year int) bool {
	return year >= MinYear && year <= MaxYear
}
