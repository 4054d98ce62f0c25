package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// BranchRelationKind distinguishes the seven branch-relation patterns
// of spec.md 4.5.
type BranchRelationKind int

const (
	SixCombine BranchRelationKind = iota
	ThreeHarmony
	ThreeAssembly
	SixClash
	SixHarm
	ThreePunish
	Destruction
)

func (k BranchRelationKind) String() string {
	names := [7]string{
		"six-combine", "three-harmony", "three-assembly",
		"six-clash", "six-harm", "three-punish", "destruction",
	}
	return names[k]
}

// BranchRelation records one detected branch-relation hit.
type BranchRelation struct {
	Kind      BranchRelationKind
	Positions []Position
}

// branchPairRule is a two-branch pattern, indexed by branch index.
type branchPairRule struct {
	kind BranchRelationKind
	a, b int
}

// branchTripleRule is a three-branch pattern, indexed by branch index.
type branchTripleRule struct {
	kind       BranchRelationKind
	a, b, c    int
}

var branchPairRules = []branchPairRule{
	// six-combine
	{SixCombine, 0, 1}, {SixCombine, 2, 11}, {SixCombine, 3, 10},
	{SixCombine, 4, 9}, {SixCombine, 5, 8}, {SixCombine, 6, 7},
	// six-clash
	{SixClash, 0, 6}, {SixClash, 1, 7}, {SixClash, 2, 8},
	{SixClash, 3, 9}, {SixClash, 4, 10}, {SixClash, 5, 11},
	// six-harm
	{SixHarm, 0, 7}, {SixHarm, 1, 6}, {SixHarm, 2, 5},
	{SixHarm, 3, 4}, {SixHarm, 8, 11}, {SixHarm, 9, 10},
	// destruction
	{Destruction, 0, 9}, {Destruction, 1, 4}, {Destruction, 2, 11},
	{Destruction, 3, 6}, {Destruction, 5, 8}, {Destruction, 7, 10},
	// three-punish pair case (子卯, 无礼之刑)
	{ThreePunish, 0, 3},
}

var branchTripleRules = []branchTripleRule{
	// three-harmony (申子辰, 亥卯未, 寅午戌, 巳酉丑)
	{ThreeHarmony, 8, 0, 4}, {ThreeHarmony, 11, 3, 7},
	{ThreeHarmony, 2, 6, 10}, {ThreeHarmony, 5, 9, 1},
	// three-assembly (寅卯辰, 巳午未, 申酉戌, 亥子丑)
	{ThreeAssembly, 2, 3, 4}, {ThreeAssembly, 5, 6, 7},
	{ThreeAssembly, 8, 9, 10}, {ThreeAssembly, 11, 0, 1},
	// three-punish triples (寅巳申, 丑戌未)
	{ThreePunish, 2, 5, 8}, {ThreePunish, 1, 10, 7},
}

// selfPunishBranches are the four branches that punish themselves when
// they appear at two or more positions (辰辰, 午午, 酉酉, 亥亥).
var selfPunishBranches = [4]int{4, 6, 9, 11}

// DetectBranchRelations enumerates the positional subsets of size 2 and
// 3 among the four branches and reports every matching pattern.
func DetectBranchRelations(branches [4]sexagenary.Branch) []BranchRelation {
	positions := [4]Position{PositionYear, PositionMonth, PositionDay, PositionHour}
	var hits []BranchRelation

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			bi, bj := branches[i].Index(), branches[j].Index()
			for _, rule := range branchPairRules {
				if (bi == rule.a && bj == rule.b) || (bi == rule.b && bj == rule.a) {
					hits = append(hits, BranchRelation{Kind: rule.kind, Positions: []Position{positions[i], positions[j]}})
				}
			}
			if bi == bj {
				for _, self := range selfPunishBranches {
					if bi == self {
						hits = append(hits, BranchRelation{Kind: ThreePunish, Positions: []Position{positions[i], positions[j]}})
					}
				}
			}
		}
	}

	for i := 0; i < 4; i++ {
		for j := i + 1; j < 4; j++ {
			for k := j + 1; k < 4; k++ {
				set := map[int]Position{
					branches[i].Index(): positions[i],
					branches[j].Index(): positions[j],
					branches[k].Index(): positions[k],
				}
				for _, rule := range branchTripleRules {
					pa, okA := set[rule.a]
					pb, okB := set[rule.b]
					pc, okC := set[rule.c]
					if okA && okB && okC {
						hits = append(hits, BranchRelation{Kind: rule.kind, Positions: []Position{pa, pb, pc}})
					}
				}
			}
		}
	}

	return hits
}
