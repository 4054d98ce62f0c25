package ornament

import (
	"testing"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func hasRelation(hits []BranchRelation, kind BranchRelationKind, positions ...Position) bool {
	for _, h := range hits {
		if h.Kind != kind || len(h.Positions) != len(positions) {
			continue
		}
		match := true
		for i, p := range positions {
			if h.Positions[i] != p {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestDetectBranchRelationsSixCombine(t *testing.T) {
	branches := [4]sexagenary.Branch{
		sexagenary.NewBranch(0), sexagenary.NewBranch(1),
		sexagenary.NewBranch(5), sexagenary.NewBranch(7),
	}
	hits := DetectBranchRelations(branches)
	if !hasRelation(hits, SixCombine, PositionYear, PositionMonth) {
		t.Errorf("子丑 at year/month should be a six-combine hit, have %+v", hits)
	}
}

func TestDetectBranchRelationsSixClash(t *testing.T) {
	branches := [4]sexagenary.Branch{
		sexagenary.NewBranch(0), sexagenary.NewBranch(6),
		sexagenary.NewBranch(5), sexagenary.NewBranch(7),
	}
	hits := DetectBranchRelations(branches)
	if !hasRelation(hits, SixClash, PositionYear, PositionMonth) {
		t.Errorf("子午 at year/month should be a six-clash hit, have %+v", hits)
	}
}

func TestDetectBranchRelationsThreeHarmonyTriple(t *testing.T) {
	branches := [4]sexagenary.Branch{
		sexagenary.NewBranch(8), sexagenary.NewBranch(0),
		sexagenary.NewBranch(4), sexagenary.NewBranch(7),
	}
	hits := DetectBranchRelations(branches)
	if !hasRelation(hits, ThreeHarmony, PositionYear, PositionMonth, PositionDay) {
		t.Errorf("申子辰 at year/month/day should be a three-harmony hit, have %+v", hits)
	}
}

func TestDetectBranchRelationsSelfPunish(t *testing.T) {
	branches := [4]sexagenary.Branch{
		sexagenary.NewBranch(4), sexagenary.NewBranch(4),
		sexagenary.NewBranch(1), sexagenary.NewBranch(2),
	}
	hits := DetectBranchRelations(branches)
	if !hasRelation(hits, ThreePunish, PositionYear, PositionMonth) {
		t.Errorf("辰辰 repeated at year/month should self-punish, have %+v", hits)
	}
}
