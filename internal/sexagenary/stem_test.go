package sexagenary

import "testing"

func TestStemPolarity(t *testing.T) {
	for i := 0; i < 10; i++ {
		s := NewStem(i)
		want := Yang
		if i%2 != 0 {
			want = Yin
		}
		if s.Polarity() != want {
			t.Errorf("stem %d: want %s, have %s", i, want, s.Polarity())
		}
	}
}

func TestStemElementPairs(t *testing.T) {
	cases := []struct {
		index int
		want  Element
	}{
		{0, Wood}, {1, Wood},
		{2, Fire}, {3, Fire},
		{4, Earth}, {5, Earth},
		{6, Metal}, {7, Metal},
		{8, Water}, {9, Water},
	}
	for _, c := range cases {
		if got := NewStem(c.index).Element(); got != c.want {
			t.Errorf("stem %d element: want %s, have %s", c.index, c.want, got)
		}
	}
}

func TestNewStemWraps(t *testing.T) {
	if NewStem(10).Index() != 0 {
		t.Errorf("want 0, have %d", NewStem(10).Index())
	}
	if NewStem(-1).Index() != 9 {
		t.Errorf("want 9, have %d", NewStem(-1).Index())
	}
}

func TestElementGenerationCycle(t *testing.T) {
	if !Wood.generates(Fire) {
		t.Error("wood should generate fire")
	}
	if !Water.generates(Wood) {
		t.Error("water should generate wood")
	}
	if Wood.generates(Earth) {
		t.Error("wood should not generate earth")
	}
}

func TestElementOvercomeCycle(t *testing.T) {
	if !Wood.overcomes(Earth) {
		t.Error("wood should overcome earth")
	}
	if !Metal.overcomes(Wood) {
		t.Error("metal should overcome wood")
	}
	if Wood.overcomes(Fire) {
		t.Error("wood should not overcome fire")
	}
}
