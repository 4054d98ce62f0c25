// Package ornament implements the L4 layer: hidden stems, ten gods,
// nayin, shensha, and branch/stem relations derived from a FourPillars
// chart, per spec.md 4.5. Ten-gods, shensha, and relation detection are
// expressed as small data tables walked by a uniform interpreter rather
// than per-case code paths, per spec.md 9's dynamic-dispatch redesign
// note.
package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// TenGod is one of the ten relational labels a non-self stem can carry
// against the day stem.
type TenGod int

const (
	Companion   TenGod = iota // 比肩: same element, same polarity
	RobWealth                 // 劫财: same element, different polarity
	EatingGod                 // 食神: day generates it, same polarity
	HurtingOff                // 伤官: day generates it, different polarity
	IndirectWealth            // 偏财: day overcomes it, same polarity
	DirectWealth              // 正财: day overcomes it, different polarity
	SevenKillings             // 偏官: it overcomes day, same polarity
	DirectOfficer             // 正官: it overcomes day, different polarity
	IndirectResource          // 偏印: it generates day, same polarity
	DirectResource            // 正印: it generates day, different polarity
)

func (g TenGod) String() string {
	names := [10]string{
		"比肩", "劫财", "食神", "伤官", "偏财",
		"正财", "偏官", "正官", "偏印", "正印",
	}
	if g < 0 || int(g) >= len(names) {
		return "?"
	}
	return names[g]
}

// Classify labels stem s against day stem d through the ten-case matrix
// of spec.md 4.5. s may equal d (yielding Companion), though callers
// conventionally skip the day stem's own position.
func Classify(d, s sexagenary.Stem) TenGod {
	samePolarity := d.Polarity() == s.Polarity()

	switch {
	case d.Element() == s.Element():
		if samePolarity {
			return Companion
		}
		return RobWealth
	case d.Element().Generates(s.Element()):
		if samePolarity {
			return EatingGod
		}
		return HurtingOff
	case d.Element().Overcomes(s.Element()):
		if samePolarity {
			return IndirectWealth
		}
		return DirectWealth
	case s.Element().Overcomes(d.Element()):
		if samePolarity {
			return SevenKillings
		}
		return DirectOfficer
	default: // s.Element().Generates(d.Element())
		if samePolarity {
			return IndirectResource
		}
		return DirectResource
	}
}
