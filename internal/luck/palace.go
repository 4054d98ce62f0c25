package luck

import (
	"github.com/hotea/bazi-insights/internal/pillar"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// Palaces bundles the three traditional palace pillars.
type Palaces struct {
	TaiYuan  sexagenary.Pillar // 胎元
	MingGong sexagenary.Pillar // 命宫
	ShenGong sexagenary.Pillar // 身宫
}

// yinOrdinal renumbers a branch index so that 寅 (index 2) becomes
// ordinal 1, the conventional base for the 命宫/身宫 formulas.
func yinOrdinal(branchIndex int) int {
	return positiveModLuck(branchIndex-2, 12) + 1
}

func fromYinOrdinal(ordinal int) int {
	return positiveModLuck(ordinal-1+2, 12)
}

func positiveModLuck(n, m int) int {
	r := n % m
	if r < 0 {
		r += m
	}
	return r
}

// ComputePalaces derives 胎元, 命宫, and 身宫 from the year stem, month
// pillar, and hour branch, per spec.md 4.6.
func ComputePalaces(yearStem sexagenary.Stem, month sexagenary.Pillar, hourBranch sexagenary.Branch) Palaces {
	taiYuanBranch := positiveModLuck(month.Branch.Index()+3, 12)
	taiYuanStem := sexagenary.NewStem(positiveModLuck(month.Stem.Index()+1, 10))
	taiYuan := sexagenary.Pillar{Stem: taiYuanStem, Branch: sexagenary.NewBranch(taiYuanBranch)}

	m := yinOrdinal(month.Branch.Index())
	h := yinOrdinal(hourBranch.Index())

	mingOrdinal := positiveModLuck(14-m-h-1, 12) + 1
	mingBranchIndex := fromYinOrdinal(mingOrdinal)
	mingGong := sexagenary.Pillar{
		Stem:   pillar.FiveTigerStem(yearStem, mingBranchIndex),
		Branch: sexagenary.NewBranch(mingBranchIndex),
	}

	shenOrdinal := positiveModLuck(m+h-1, 12) + 1
	shenBranchIndex := fromYinOrdinal(shenOrdinal)
	shenGong := sexagenary.Pillar{
		Stem:   pillar.FiveTigerStem(yearStem, shenBranchIndex),
		Branch: sexagenary.NewBranch(shenBranchIndex),
	}

	return Palaces{TaiYuan: taiYuan, MingGong: mingGong, ShenGong: shenGong}
}
