package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// Chart is the minimal view of a four-pillar chart the ornament layer
// needs: its four stems and branches, kept position-parallel.
type Chart struct {
	Stems    [4]sexagenary.Stem
	Branches [4]sexagenary.Branch
	Day      sexagenary.Pillar
}

// Annotations bundles every ornament derived from a chart.
type Annotations struct {
	TenGods         map[Position]TenGod
	Nayin           map[Position]Nayin
	Shensha         []ShenshaHit
	BranchRelations []BranchRelation
	StemRelations   []StemRelation
}

// Describe runs every ornament rule against chart and returns the
// combined result. The day position never receives a ten-god label
// since it is compared against itself.
func Describe(chart Chart) Annotations {
	dayStem := chart.Stems[PositionDay]

	tenGods := make(map[Position]TenGod, 3)
	nayin := make(map[Position]Nayin, 4)
	for i, pos := range positionsInOrder {
		if pos != PositionDay {
			tenGods[pos] = Classify(dayStem, chart.Stems[i])
		}
		nayin[pos] = NayinOf(sexagenary.Pillar{Stem: chart.Stems[i], Branch: chart.Branches[i]})
	}

	return Annotations{
		TenGods:         tenGods,
		Nayin:           nayin,
		Shensha:         Shensha(chart.Branches, dayStem, chart.Day),
		BranchRelations: DetectBranchRelations(chart.Branches),
		StemRelations:   DetectStemRelations(chart.Stems),
	}
}
