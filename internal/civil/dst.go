package civil

import "time"

// DSTWindow is one civil daylight-saving window: membership is
// left-closed, right-open, [Start, End).
type DSTWindow struct {
	Year  int
	Start time.Time
	End   time.Time
}

// dstZone mirrors the +08 civil zone used throughout the engine; the DST
// windows below are historical Chinese daylight-saving dates, always
// quoted in that civil clock.
var dstZone = time.FixedZone("+08", 8*60*60)

func dstInstant(year int, month, day, hour int) time.Time {
	return time.Date(year, time.Month(month), day, hour, 0, 0, 0, dstZone)
}

// Windows is the six-entry DST window table for civil years 1986-1991
// inclusive, per spec.md 4.2.
var Windows = [6]DSTWindow{
	{1986, dstInstant(1986, 5, 4, 2), dstInstant(1986, 9, 14, 2)},
	{1987, dstInstant(1987, 4, 12, 2), dstInstant(1987, 9, 13, 2)},
	{1988, dstInstant(1988, 4, 10, 2), dstInstant(1988, 9, 11, 2)},
	{1989, dstInstant(1989, 4, 16, 2), dstInstant(1989, 9, 17, 2)},
	{1990, dstInstant(1990, 4, 15, 2), dstInstant(1990, 9, 16, 2)},
	{1991, dstInstant(1991, 4, 14, 2), dstInstant(1991, 9, 15, 2)},
}

// IsDSTActive reports whether instant falls within some window of Windows
// (left-closed, right-open), returning the matching window.
func IsDSTActive(instant time.Time) (DSTWindow, bool) {
	for _, w := range Windows {
		if !instant.Before(w.Start) && instant.Before(w.End) {
			return w, true
		}
	}
	return DSTWindow{}, false
}

// ApplyDSTCorrection subtracts exactly one hour from instant iff
// userConfirmed is true and instant lies in some DST window; otherwise it
// is the identity.
func ApplyDSTCorrection(instant time.Time, userConfirmed bool) time.Time {
	if !userConfirmed {
		return instant
	}
	if _, active := IsDSTActive(instant); active {
		return instant.Add(-time.Hour)
	}
	return instant
}
