// Package luck implements the L5 layer: luck direction, start age, the
// ten-year and annual pillar sequences, and the three palaces, per
// spec.md 4.6.
package luck

import "github.com/hotea/bazi-insights/internal/sexagenary"

// Direction is the luck-cycle progression direction.
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Forward {
		return "forward"
	}
	return "backward"
}

// DirectionFor applies spec.md 4.6's direction rule: forward if the
// year stem is yang and the subject is male, or yin and female;
// backward otherwise.
func DirectionFor(yearStem sexagenary.Stem, male bool) Direction {
	yang := yearStem.Polarity() == sexagenary.Yang
	if yang == male {
		return Forward
	}
	return Backward
}
