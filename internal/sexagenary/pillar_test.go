package sexagenary

import "testing"

func TestPillarCycleAnchor(t *testing.T) {
	p := NewPillarFromCycle(0)
	if p.Name() != "甲子" {
		t.Errorf("want 甲子, have %s", p.Name())
	}
	if !p.Valid() {
		t.Error("anchor pillar must be valid")
	}
}

func TestPillarCycleWraps(t *testing.T) {
	p0 := NewPillarFromCycle(0)
	p60 := NewPillarFromCycle(60)
	if p0 != p60 {
		t.Errorf("want cycle to wrap at 60: %v != %v", p0, p60)
	}
}

func TestPillarAdvanceRoundTrips(t *testing.T) {
	p := NewPillarFromCycle(37)
	if p.Advance(1).Advance(-1) != p {
		t.Error("advance by +1 then -1 must be the identity")
	}
}

func TestPillarInvalidParity(t *testing.T) {
	p := Pillar{Stem: NewStem(0), Branch: NewBranch(1)}
	if p.Valid() {
		t.Error("stem 0 (yang) with branch 1 (yin) must be invalid")
	}
	if p.CycleIndex() != -1 {
		t.Errorf("want -1, have %d", p.CycleIndex())
	}
}

func TestPillarXun(t *testing.T) {
	for n := 0; n < 60; n++ {
		p := NewPillarFromCycle(n)
		if p.Xun() != n/10 {
			t.Errorf("pillar %d: want xun %d, have %d", n, n/10, p.Xun())
		}
	}
}
