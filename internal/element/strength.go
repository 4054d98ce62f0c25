package element

import (
	"github.com/hotea/bazi-insights/internal/config"
	"github.com/hotea/bazi-insights/internal/pillar"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// Strength is the day-master's classification relative to the rest of
// the chart.
type Strength int

const (
	Neutral Strength = iota
	Strong
	Weak
)

func (s Strength) String() string {
	switch s {
	case Strong:
		return "strong"
	case Weak:
		return "weak"
	default:
		return "neutral"
	}
}

// Judge classifies the day master's strength from its own element plus
// its generator's share of the chart's total weighted score, then
// shifts the category by one step if the month branch's primary hidden
// stem matches, generates, or overcomes the day-master element.
// analysis is a localized sentence drawn from cfg's message catalog.
func Judge(fp pillar.FourPillars, cfg *config.Config) (status Strength, score float64, analysis string) {
	weights := cfg.ElementWeights
	tally := Score(fp, weights)
	total := tally.Total()

	dayElement := fp.Day.Stem.Element()
	generator := generatorOf(dayElement)

	supportive := tally[dayElement] + tally[generator]
	fraction := 0.0
	if total > 0 {
		fraction = supportive / total
	}

	status = classify(fraction, cfg.StrengthThresholds)
	status = shiftByMonthBranch(status, fp, dayElement)

	analysis = renderAnalysis(cfg, status, fraction)
	return status, fraction, analysis
}

func generatorOf(e sexagenary.Element) sexagenary.Element {
	for _, candidate := range allElements {
		if candidate.Generates(e) {
			return candidate
		}
	}
	return e
}

var allElements = [5]sexagenary.Element{
	sexagenary.Wood, sexagenary.Fire, sexagenary.Earth, sexagenary.Metal, sexagenary.Water,
}

func classify(fraction float64, thresholds config.StrengthThresholds) Strength {
	switch {
	case fraction >= thresholds.Strong:
		return Strong
	case fraction <= thresholds.Weak:
		return Weak
	default:
		return Neutral
	}
}

// shiftByMonthBranch moves status one step toward Strong if the month
// branch's primary hidden stem generates or matches the day-master
// element, one step toward Weak if it overcomes it.
func shiftByMonthBranch(status Strength, fp pillar.FourPillars, dayElement sexagenary.Element) Strength {
	hidden := fp.Month.Branch.HiddenStems()
	if len(hidden) == 0 {
		return status
	}
	primaryElement := hidden[0].Stem.Element()

	switch {
	case primaryElement == dayElement || primaryElement.Generates(dayElement):
		return stepToward(status, Strong)
	case primaryElement.Overcomes(dayElement):
		return stepToward(status, Weak)
	default:
		return status
	}
}

func stepToward(status, target Strength) Strength {
	if status == target {
		return status
	}
	if status == Neutral {
		return target
	}
	return Neutral
}

func renderAnalysis(cfg *config.Config, status Strength, fraction float64) string {
	p := cfg.Printer()
	percent := fraction * 100

	switch status {
	case Strong:
		return p.Sprintf(config.MsgStrengthStrong, percent)
	case Weak:
		return p.Sprintf(config.MsgStrengthWeak, percent)
	default:
		return p.Sprintf(config.MsgStrengthNeutral, percent)
	}
}
