package bazi

import (
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/civil"
	"github.com/hotea/bazi-insights/internal/element"
	"github.com/hotea/bazi-insights/internal/lunar"
	"github.com/hotea/bazi-insights/internal/luck"
	"github.com/hotea/bazi-insights/internal/ornament"
	"github.com/hotea/bazi-insights/internal/pillar"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// Result bundles every artifact of one Compute call, per spec.md 3's
// Result record.
type Result struct {
	CivilInstant time.Time
	LunarDate    lunar.LunarDate

	TrueSolar civil.TrueSolarReduction

	YearSolarTerms [24]astro.SolarTerm

	Pillars pillar.FourPillars

	HiddenStems map[ornament.Position][]sexagenary.HiddenStem
	TenGods     map[ornament.Position]ornament.TenGod
	Nayin       map[ornament.Position]ornament.Nayin

	Shensha         []ornament.ShenshaHit
	BranchRelations []ornament.BranchRelation
	StemRelations   []ornament.StemRelation

	LuckDirection luck.Direction
	StartAge      luck.StartAge
	DecadeLuck    []luck.DecadePillar
	AnnualLuck    []luck.AnnualPillar
	Palaces       luck.Palaces

	ElementCount  element.Tally
	ElementScore  element.Tally
	Strength      element.Strength
	StrengthScore float64
	Analysis      string
}
