package luck

import (
	"testing"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestDirectionForYangMaleIsForward(t *testing.T) {
	jia := sexagenary.NewStem(0) // yang
	if d := DirectionFor(jia, true); d != Forward {
		t.Errorf("yang year stem, male: want Forward, have %s", d)
	}
}

func TestDirectionForYangFemaleIsBackward(t *testing.T) {
	jia := sexagenary.NewStem(0) // yang
	if d := DirectionFor(jia, false); d != Backward {
		t.Errorf("yang year stem, female: want Backward, have %s", d)
	}
}

func TestDirectionForYinFemaleIsForward(t *testing.T) {
	yi := sexagenary.NewStem(1) // yin
	if d := DirectionFor(yi, false); d != Forward {
		t.Errorf("yin year stem, female: want Forward, have %s", d)
	}
}

func TestDirectionForYinMaleIsBackward(t *testing.T) {
	yi := sexagenary.NewStem(1) // yin
	if d := DirectionFor(yi, true); d != Backward {
		t.Errorf("yin year stem, male: want Backward, have %s", d)
	}
}
