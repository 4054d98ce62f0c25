package luck

import "github.com/hotea/bazi-insights/internal/sexagenary"

// DecadePillar is one step of the ten-year luck sequence.
type DecadePillar struct {
	Pillar       sexagenary.Pillar
	AgeFrom      float64
	AgeTo        float64
}

// DecadeSequence builds n consecutive ten-year pillars starting from
// the month pillar, advancing by +1 in the sexagenary cycle when
// forward, -1 when backward. Step i spans ages
// [startAge + 10*(i-1), startAge + 10*i).
func DecadeSequence(monthPillar sexagenary.Pillar, direction Direction, startAge StartAge, n int) []DecadePillar {
	step := 1
	if direction == Backward {
		step = -1
	}

	base := startAge.Float64()
	out := make([]DecadePillar, n)
	for i := 0; i < n; i++ {
		out[i] = DecadePillar{
			Pillar:  monthPillar.Advance(step * (i + 1)),
			AgeFrom: base + 10*float64(i),
			AgeTo:   base + 10*float64(i+1),
		}
	}
	return out
}

// AnnualPillar is one year's entry in the annual sequence.
type AnnualPillar struct {
	Year   int
	Pillar sexagenary.Pillar
}

// AnnualSequence emits n consecutive annual pillars starting at year.
// Pillar index for calendar year Y is (Y-4) mod 60.
func AnnualSequence(startYear, n int) []AnnualPillar {
	out := make([]AnnualPillar, n)
	for i := 0; i < n; i++ {
		y := startYear + i
		idx := ((y-4)%60 + 60) % 60
		out[i] = AnnualPillar{Year: y, Pillar: sexagenary.NewPillarFromCycle(idx)}
	}
	return out
}
