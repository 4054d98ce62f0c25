package luck

import (
	"testing"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestComputePalacesProducesValidPillars(t *testing.T) {
	yearStem := sexagenary.NewStem(0)
	month := sexagenary.Pillar{Stem: sexagenary.NewStem(2), Branch: sexagenary.NewBranch(2)}
	hourBranch := sexagenary.NewBranch(6)

	p := ComputePalaces(yearStem, month, hourBranch)
	for name, pillar := range map[string]sexagenary.Pillar{
		"taiyuan": p.TaiYuan, "minggong": p.MingGong, "shengong": p.ShenGong,
	} {
		if !pillar.Valid() {
			t.Errorf("%s pillar %s is not a valid stem/branch combination", name, pillar)
		}
	}
}

func TestTaiYuanBranchIsMonthBranchPlusThree(t *testing.T) {
	yearStem := sexagenary.NewStem(0)
	month := sexagenary.Pillar{Stem: sexagenary.NewStem(2), Branch: sexagenary.NewBranch(2)}
	hourBranch := sexagenary.NewBranch(6)

	p := ComputePalaces(yearStem, month, hourBranch)
	want := positiveModLuck(month.Branch.Index()+3, 12)
	if p.TaiYuan.Branch.Index() != want {
		t.Errorf("胎元 branch: want %d, have %d", want, p.TaiYuan.Branch.Index())
	}
}

func TestYinOrdinalRoundTrip(t *testing.T) {
	for b := 0; b < 12; b++ {
		if got := fromYinOrdinal(yinOrdinal(b)); got != b {
			t.Errorf("round trip for branch %d: have %d", b, got)
		}
	}
}
