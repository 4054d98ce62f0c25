package bazi

// DateType selects whether Input.Year/Month/Day are civil or lunar
// calendar parts.
type DateType string

const (
	DateSolar DateType = "solar"
	DateLunar DateType = "lunar"
)

// TimeType selects whether Input's clock fields are the caller's
// standard +08 civil clock or an already true-solar-reduced instant.
type TimeType string

const (
	TimeStandard  TimeType = "standard"
	TimeTrueSolar TimeType = "trueSolar"
)

// Gender selects the subject's sex, which determines luck direction.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
)

// Input is the engine's single entry-point record, per spec.md 6.
type Input struct {
	DateType DateType

	Year  int
	Month int
	Day   int

	// IsLeapMonth is meaningful only when DateType is DateLunar.
	IsLeapMonth bool

	Hour   int
	Minute int

	TimeType TimeType
	Gender   Gender

	// Longitude is decimal degrees east-positive, in [-180, 180].
	Longitude float64

	// DSTConfirmed, if true, means the caller's clock already includes
	// the 1986-1991 Chinese DST offset and it must be subtracted back
	// out before pillar derivation.
	DSTConfirmed bool

	// EarlyRatSplit selects whether 23:00-23:59 belongs to the next
	// day's pillar.
	EarlyRatSplit bool
}
