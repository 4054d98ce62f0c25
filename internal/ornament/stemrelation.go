package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// StemRelationKind distinguishes the two stem-relation patterns of
// spec.md 4.5.
type StemRelationKind int

const (
	StemCombine StemRelationKind = iota
	StemOvercome
)

func (k StemRelationKind) String() string {
	if k == StemCombine {
		return "combine"
	}
	return "overcome"
}

// Position names a pillar slot within a FourPillars chart.
type Position int

const (
	PositionYear Position = iota
	PositionMonth
	PositionDay
	PositionHour
)

func (p Position) String() string {
	return [4]string{"year", "month", "day", "hour"}[p]
}

// StemRelation records one detected stem-relation hit between two
// chart positions.
type StemRelation struct {
	Kind      StemRelationKind
	Positions [2]Position
}

// stemCombinePairs are the five-combine pairs 甲己, 乙庚, 丙辛, 丁壬, 戊癸,
// stored as unordered stem-index pairs.
var stemCombinePairs = [5][2]int{
	{0, 5}, {1, 6}, {2, 7}, {3, 8}, {4, 9},
}

func isStemCombine(a, b sexagenary.Stem) bool {
	for _, pair := range stemCombinePairs {
		if (a.Index() == pair[0] && b.Index() == pair[1]) || (a.Index() == pair[1] && b.Index() == pair[0]) {
			return true
		}
	}
	return false
}

func isStemOvercome(a, b sexagenary.Stem) bool {
	return a.Element().Overcomes(b.Element()) || b.Element().Overcomes(a.Element())
}

// DetectStemRelations enumerates every position pair among the four
// stems and reports each combine or overcome hit.
func DetectStemRelations(stems [4]sexagenary.Stem) []StemRelation {
	var hits []StemRelation
	positions := [4]Position{PositionYear, PositionMonth, PositionDay, PositionHour}

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			a, b := stems[i], stems[j]
			switch {
			case isStemCombine(a, b):
				hits = append(hits, StemRelation{Kind: StemCombine, Positions: [2]Position{positions[i], positions[j]}})
			case isStemOvercome(a, b):
				hits = append(hits, StemRelation{Kind: StemOvercome, Positions: [2]Position{positions[i], positions[j]}})
			}
		}
	}
	return hits
}
