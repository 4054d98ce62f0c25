package sexagenary

import "fmt"

// Pillar is a (Stem, Branch) pair. Every valid Pillar satisfies the
// sexagenary parity constraint: Stem.Index() mod 2 == Branch.Index() mod 2.
type Pillar struct {
	Stem   Stem
	Branch Branch
}

// NewPillarFromCycle builds the pillar at position n (0..59) of the
// sixty-pillar sexagenary cycle: stem index n mod 10, branch index n mod
// 12, with n first reduced into [0, 60).
func NewPillarFromCycle(n int) Pillar {
	n = ((n % 60) + 60) % 60
	return Pillar{Stem: NewStem(n), Branch: NewBranch(n)}
}

// CycleIndex returns this pillar's position in [0, 60) in the sexagenary
// cycle, or -1 if the pillar violates the parity constraint and so is
// not a member of the cycle.
func (p Pillar) CycleIndex() int {
	if p.Stem.Index()%2 != p.Branch.Index()%2 {
		return -1
	}
	for n := 0; n < 60; n++ {
		if n%10 == p.Stem.Index() && n%12 == p.Branch.Index() {
			return n
		}
	}
	return -1
}

// Valid reports whether the pillar satisfies the sexagenary parity
// constraint.
func (p Pillar) Valid() bool {
	return p.Stem.Index()%2 == p.Branch.Index()%2
}

// Advance returns the pillar n steps forward (or, for negative n,
// backward) in the sexagenary cycle.
func (p Pillar) Advance(n int) Pillar {
	idx := p.CycleIndex()
	if idx < 0 {
		return p
	}
	return NewPillarFromCycle(idx + n)
}

// Name renders the pillar as its two Han characters, e.g. "甲子".
func (p Pillar) Name() string { return p.Stem.Name() + p.Branch.Name() }

func (p Pillar) String() string {
	return fmt.Sprintf("%s%s", p.Stem.Name(), p.Branch.Name())
}

// Xun returns the pillar's xun index (0..5), the sexagenary-cycle group
// of ten sharing the same leading stem-branch offset; used by the 空亡
// shensha rule.
func (p Pillar) Xun() int {
	idx := p.CycleIndex()
	if idx < 0 {
		return -1
	}
	return idx / 10
}
