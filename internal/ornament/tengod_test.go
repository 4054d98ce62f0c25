package ornament

import (
	"testing"

	"github.com/hotea/bazi-insights/internal/sexagenary"
)

func TestClassifySameStemIsCompanion(t *testing.T) {
	jia := sexagenary.NewStem(0)
	if g := Classify(jia, jia); g != Companion {
		t.Errorf("甲 against 甲: want Companion, have %s", g)
	}
}

func TestClassifySameElementOppositePolarityIsRobWealth(t *testing.T) {
	jia := sexagenary.NewStem(0)
	yi := sexagenary.NewStem(1)
	if g := Classify(jia, yi); g != RobWealth {
		t.Errorf("甲 against 乙: want RobWealth, have %s", g)
	}
}

func TestClassifyGenerationAndOvercomeDirections(t *testing.T) {
	jia := sexagenary.NewStem(0) // wood, yang

	bing := sexagenary.NewStem(2) // fire, yang: wood generates fire
	if g := Classify(jia, bing); g != EatingGod {
		t.Errorf("甲 generates 丙(yang): want EatingGod, have %s", g)
	}

	geng := sexagenary.NewStem(6) // metal, yang: metal overcomes wood
	if g := Classify(jia, geng); g != SevenKillings {
		t.Errorf("庚(yang) overcomes 甲: want SevenKillings, have %s", g)
	}

	ren := sexagenary.NewStem(8) // water, yang: water generates wood
	if g := Classify(jia, ren); g != IndirectResource {
		t.Errorf("壬(yang) generates 甲: want IndirectResource, have %s", g)
	}

	wu := sexagenary.NewStem(4) // earth, yang: wood overcomes earth
	if g := Classify(jia, wu); g != IndirectWealth {
		t.Errorf("甲 overcomes 戊(yang): want IndirectWealth, have %s", g)
	}
}

func TestClassifyCoversAllTenCases(t *testing.T) {
	jia := sexagenary.NewStem(0)
	seen := make(map[TenGod]bool)
	for _, s := range sexagenary.Stems {
		seen[Classify(jia, s)] = true
	}
	if len(seen) != 10 {
		t.Errorf("want all 10 ten-god cases reachable from a fixed day stem, saw %d", len(seen))
	}
}
