package ornament

import "github.com/hotea/bazi-insights/internal/sexagenary"

// ShenshaHit records one detected shensha and the positions that bear
// it.
type ShenshaHit struct {
	Name      string
	Positions []Position
}

// shenshaRule is the uniform interpreter's unit of work: given the
// chart's four branches, the day stem, and the day pillar, it reports
// which positions bear the shensha named Name.
type shenshaRule struct {
	Name  string
	Match func(branches [4]sexagenary.Branch, dayStem sexagenary.Stem, dayPillar sexagenary.Pillar) []Position
}

var positionsInOrder = [4]Position{PositionYear, PositionMonth, PositionDay, PositionHour}

// matchBranchSet reports positions whose branch index is in targets.
func matchBranchSet(branches [4]sexagenary.Branch, targets map[int]bool) []Position {
	var hits []Position
	for i, b := range branches {
		if targets[b.Index()] {
			hits = append(hits, positionsInOrder[i])
		}
	}
	return hits
}

// tianyiTable is the 天乙贵人 day-stem -> pair-of-branches rule.
var tianyiTable = map[int][2]int{
	0: {1, 7}, 5: {1, 7}, // 甲己 -> 丑未
	1: {0, 8}, 6: {0, 8}, // 乙庚 -> 子申
	2: {11, 9}, 7: {11, 9}, // 丙辛 -> 亥酉
	3: {11, 9}, 8: {11, 9}, // 丁壬 -> 亥酉
	4: {2, 6}, 9: {2, 6}, // 戊癸 -> 寅午
}

// taohuaTable is the 桃花 year-or-day branch (reduced to its three-harmony
// group) -> one specific branch rule.
var taohuaTable = map[int]int{
	8: 9, 0: 9, 4: 9, // 申子辰 -> 酉
	11: 0, 3: 0, 7: 0, // 亥卯未 -> 子
	2: 3, 6: 3, 10: 3, // 寅午戌 -> 卯
	5: 6, 9: 6, 1: 6, // 巳酉丑 -> 午
}

// yimaTable is the 驿马 rule: a branch's three-harmony group points at
// one travel branch.
var yimaTable = map[int]int{
	8: 2, 0: 2, 4: 2, // 申子辰 -> 寅
	11: 5, 3: 5, 7: 5, // 亥卯未 -> 巳
	2: 8, 6: 8, 10: 8, // 寅午戌 -> 申
	5: 11, 9: 11, 1: 11, // 巳酉丑 -> 亥
}

// jiangxingTable is the 将星 rule: a branch's three-harmony group points
// at its own middle (帝旺) branch.
var jiangxingTable = map[int]int{
	8: 0, 0: 0, 4: 0, // 申子辰 -> 子
	11: 3, 3: 3, 7: 3, // 亥卯未 -> 卯
	2: 6, 6: 6, 10: 6, // 寅午戌 -> 午
	5: 9, 9: 9, 1: 9, // 巳酉丑 -> 酉
}

// huagaiTable is the 华盖 rule: a branch's three-harmony group points at
// its own storage (墓库) branch.
var huagaiTable = map[int]int{
	8: 4, 0: 4, 4: 4, // 申子辰 -> 辰
	11: 7, 3: 7, 7: 7, // 亥卯未 -> 未
	2: 10, 6: 10, 10: 10, // 寅午戌 -> 戌
	5: 1, 9: 1, 1: 1, // 巳酉丑 -> 丑
}

// yangrenTable is the 羊刃 rule: a yang day stem points at the branch
// one step past its 禄 seat (luTable).
var yangrenTable = map[int]int{
	0: 3,  // 甲 -> 卯
	2: 6,  // 丙 -> 午
	4: 6,  // 戊 -> 午
	6: 9,  // 庚 -> 酉
	8: 0,  // 壬 -> 子
}

// wenchangTable is the 文昌贵人 day-stem -> branch rule.
var wenchangTable = map[int]int{
	0: 5, 1: 6, 2: 8, 3: 9, 4: 8, 5: 9, 6: 11, 7: 0, 8: 2, 9: 3,
}

// luTable is the 禄神 day-stem -> branch rule.
var luTable = map[int]int{
	0: 2, 1: 3, 2: 5, 3: 6, 4: 5, 5: 6, 6: 8, 7: 9, 8: 11, 9: 0,
}

var shenshaRules = []shenshaRule{
	{
		Name: "天乙贵人",
		Match: func(branches [4]sexagenary.Branch, dayStem sexagenary.Stem, _ sexagenary.Pillar) []Position {
			pair, ok := tianyiTable[dayStem.Index()]
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{pair[0]: true, pair[1]: true})
		},
	},
	{
		Name: "桃花",
		Match: func(branches [4]sexagenary.Branch, _ sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := taohuaTable[branches[PositionYear].Index()]
			if !ok {
				anchor, ok = taohuaTable[branches[PositionDay].Index()]
			}
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "驿马",
		Match: func(branches [4]sexagenary.Branch, _ sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := yimaTable[branches[PositionYear].Index()]
			if !ok {
				anchor, ok = yimaTable[branches[PositionDay].Index()]
			}
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "将星",
		Match: func(branches [4]sexagenary.Branch, _ sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := jiangxingTable[branches[PositionYear].Index()]
			if !ok {
				anchor, ok = jiangxingTable[branches[PositionDay].Index()]
			}
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "华盖",
		Match: func(branches [4]sexagenary.Branch, _ sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := huagaiTable[branches[PositionYear].Index()]
			if !ok {
				anchor, ok = huagaiTable[branches[PositionDay].Index()]
			}
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "羊刃",
		Match: func(branches [4]sexagenary.Branch, dayStem sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := yangrenTable[dayStem.Index()]
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "文昌贵人",
		Match: func(branches [4]sexagenary.Branch, dayStem sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := wenchangTable[dayStem.Index()]
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "禄神",
		Match: func(branches [4]sexagenary.Branch, dayStem sexagenary.Stem, _ sexagenary.Pillar) []Position {
			anchor, ok := luTable[dayStem.Index()]
			if !ok {
				return nil
			}
			return matchBranchSet(branches, map[int]bool{anchor: true})
		},
	},
	{
		Name: "空亡",
		Match: func(branches [4]sexagenary.Branch, _ sexagenary.Stem, dayPillar sexagenary.Pillar) []Position {
			xun := dayPillar.Xun()
			missing := xunMissingBranches(xun)
			return matchBranchSet(branches, map[int]bool{missing[0]: true, missing[1]: true})
		},
	},
}

// xunMissingBranches returns the two branches absent from the ten-stem
// block starting at xun*10: each xun uses ten consecutive stems paired
// with ten of the twelve branches, skipping the two branches that would
// fall past index 11 before the stems wrap.
func xunMissingBranches(xun int) [2]int {
	start := (xun * 10) % 12
	missing := [2]int{}
	for i, b := 0, start+10; i < 2; i, b = i+1, b+1 {
		missing[i] = b % 12
	}
	return missing
}

// Shensha runs every rule against the chart and returns the hits.
func Shensha(branches [4]sexagenary.Branch, dayStem sexagenary.Stem, dayPillar sexagenary.Pillar) []ShenshaHit {
	var hits []ShenshaHit
	for _, rule := range shenshaRules {
		if positions := rule.Match(branches, dayStem, dayPillar); len(positions) > 0 {
			hits = append(hits, ShenshaHit{Name: rule.Name, Positions: positions})
		}
	}
	return hits
}
