package luck

import (
	"testing"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestDecadeSequenceAdvancesForward(t *testing.T) {
	month := sexagenary.NewPillarFromCycle(10)
	seq := DecadeSequence(month, Forward, StartAge{Years: 3}, 4)
	if len(seq) != 4 {
		t.Fatalf("want 4 entries, have %d", len(seq))
	}
	for i, d := range seq {
		want := month.Advance(i + 1)
		if d.Pillar.CycleIndex() != want.CycleIndex() {
			t.Errorf("step %d: want %s, have %s", i, want, d.Pillar)
		}
		if d.AgeFrom != 3+10*float64(i) || d.AgeTo != 3+10*float64(i+1) {
			t.Errorf("step %d: unexpected age window [%.1f,%.1f)", i, d.AgeFrom, d.AgeTo)
		}
	}
}

func TestDecadeSequenceAdvancesBackward(t *testing.T) {
	month := sexagenary.NewPillarFromCycle(10)
	seq := DecadeSequence(month, Backward, StartAge{}, 3)
	for i, d := range seq {
		want := month.Advance(-(i + 1))
		if d.Pillar.CycleIndex() != want.CycleIndex() {
			t.Errorf("step %d: want %s, have %s", i, want, d.Pillar)
		}
	}
}

func TestAnnualSequenceMatchesCycleFormula(t *testing.T) {
	seq := AnnualSequence(2024, 5)
	for _, entry := range seq {
		want := ((entry.Year-4)%60 + 60) % 60
		if entry.Pillar.CycleIndex() != want {
			t.Errorf("year %d: want cycle index %d, have %d", entry.Year, want, entry.Pillar.CycleIndex())
		}
	}
}
