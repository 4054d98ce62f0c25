// Package bazi is the L7 orchestration layer: a single pure entry
// point, Compute, composing the astronomy, civil-calendar, lunisolar,
// pillar, ornament, luck, and five-element layers into one
// self-describing Result, per spec.md 6.
package bazi

import (
	"time"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/civil"
	"github.com/hotea/bazi-insights/internal/config"
	"github.com/hotea/bazi-insights/internal/element"
	"github.com/hotea/bazi-insights/internal/lunar"
	"github.com/hotea/bazi-insights/internal/luck"
	"github.com/hotea/bazi-insights/internal/ornament"
	"github.com/hotea/bazi-insights/internal/pillar"
	"github.com/hotea/bazi-insights/internal/sexagenary"
)

// decadeStepCount is the number of ten-year luck pillars Compute emits;
// spec.md 4.6 allows "eight or nine", this engine emits nine.
const decadeStepCount = 9

// annualStepCount is the number of annual pillars Compute emits,
// starting at the civil birth year.
const annualStepCount = 10

// Compute runs the full pipeline with the engine's default weights and
// thresholds. Use ComputeWithConfig to override them.
func Compute(input Input) (Result, error) {
	return ComputeWithConfig(input, config.Default())
}

// ComputeWithConfig runs the full pipeline with an explicit
// configuration. The core remains pure: cfg only tunes the five-element
// weighting and localization, never reads the filesystem itself.
func ComputeWithConfig(input Input, cfg *config.Config) (Result, error) {
	if err := validateInput(input); err != nil {
		return Result{}, err
	}

	civilInstant, lunarDate, err := resolveCivilInstant(input)
	if err != nil {
		return Result{}, err
	}

	standardInstant := civil.ApplyDSTCorrection(civilInstant, input.DSTConfirmed)

	var reduction civil.TrueSolarReduction
	if input.TimeType == TimeTrueSolar {
		reduction = civil.TrueSolarReduction{OriginalInstant: standardInstant, ReducedInstant: standardInstant}
	} else {
		reduction = civil.ReduceToTrueSolar(standardInstant, input.Longitude)
	}

	fp, err := pillar.Derive(reduction, input.EarlyRatSplit)
	if err != nil {
		return Result{}, newError(OutOfRange, "deriving four pillars", err)
	}

	yearTerms, err := astro.AllSolarTerms(civilInstant.In(astro.CivilZone).Year())
	if err != nil {
		return Result{}, newError(OutOfRange, "computing the civil year's solar terms", err)
	}

	chart := ornament.Chart{
		Stems:    [4]sexagenary.Stem{fp.Year.Stem, fp.Month.Stem, fp.Day.Stem, fp.Hour.Stem},
		Branches: [4]sexagenary.Branch{fp.Year.Branch, fp.Month.Branch, fp.Day.Branch, fp.Hour.Branch},
		Day:      fp.Day,
	}
	annotations := ornament.Describe(chart)

	hiddenStems := map[ornament.Position][]sexagenary.HiddenStem{
		ornament.PositionYear:  fp.Year.Branch.HiddenStems(),
		ornament.PositionMonth: fp.Month.Branch.HiddenStems(),
		ornament.PositionDay:   fp.Day.Branch.HiddenStems(),
		ornament.PositionHour:  fp.Hour.Branch.HiddenStems(),
	}

	direction := luck.DirectionFor(fp.Year.Stem, input.Gender == Male)
	startAge, err := luck.Compute(reduction.ReducedInstant, direction)
	if err != nil {
		return Result{}, newError(OutOfRange, "computing luck start age", err)
	}
	decade := luck.DecadeSequence(fp.Month, direction, startAge, decadeStepCount)
	annual := luck.AnnualSequence(civilInstant.In(astro.CivilZone).Year(), annualStepCount)
	palaces := luck.ComputePalaces(fp.Year.Stem, fp.Month, fp.Hour.Branch)

	count := element.Count(fp)
	score := element.Score(fp, cfg.ElementWeights)
	strength, strengthScore, analysis := element.Judge(fp, cfg)

	return Result{
		CivilInstant:    civilInstant,
		LunarDate:       lunarDate,
		TrueSolar:       reduction,
		YearSolarTerms:  yearTerms,
		Pillars:         fp,
		HiddenStems:     hiddenStems,
		TenGods:         annotations.TenGods,
		Nayin:           annotations.Nayin,
		Shensha:         annotations.Shensha,
		BranchRelations: annotations.BranchRelations,
		StemRelations:   annotations.StemRelations,
		LuckDirection:   direction,
		StartAge:        startAge,
		DecadeLuck:      decade,
		AnnualLuck:      annual,
		Palaces:         palaces,
		ElementCount:    count,
		ElementScore:    score,
		Strength:        strength,
		StrengthScore:   strengthScore,
		Analysis:        analysis,
	}, nil
}

// resolveCivilInstant builds the civil (+08) instant and its paired
// LunarDate from input, handling both DateSolar and DateLunar entry
// points.
func resolveCivilInstant(input Input) (time.Time, lunar.LunarDate, error) {
	if input.DateType == DateLunar {
		l := lunar.LunarDate{Year: input.Year, Month: input.Month, Day: input.Day, IsLeap: input.IsLeapMonth}
		midnight, err := lunar.LunarToSolar(l)
		if err != nil {
			return time.Time{}, lunar.LunarDate{}, translateLunarError(err)
		}
		instant := time.Date(midnight.Year(), midnight.Month(), midnight.Day(), input.Hour, input.Minute, 0, 0, astro.CivilZone)
		return instant, l, nil
	}

	instant := time.Date(input.Year, time.Month(input.Month), input.Day, input.Hour, input.Minute, 0, 0, astro.CivilZone)
	lunarDate, err := lunar.SolarToLunar(instant)
	if err != nil {
		return time.Time{}, lunar.LunarDate{}, translateLunarError(err)
	}
	return instant, lunarDate, nil
}

func translateLunarError(err error) *Error {
	switch err.(type) {
	case lunar.ErrOutOfRange:
		return newError(OutOfRange, "lunar year outside the supported range", err)
	default:
		return newError(InvalidLunarDate, "invalid lunar date", err)
	}
}

func validateInput(input Input) error {
	switch input.DateType {
	case DateSolar, DateLunar:
	default:
		return newError(InvalidInput, "dateType must be \"solar\" or \"lunar\"", nil)
	}
	switch input.TimeType {
	case TimeStandard, TimeTrueSolar:
	default:
		return newError(InvalidInput, "timeType must be \"standard\" or \"trueSolar\"", nil)
	}
	switch input.Gender {
	case Male, Female:
	default:
		return newError(InvalidInput, "gender must be \"male\" or \"female\"", nil)
	}
	if input.Longitude < -180 || input.Longitude > 180 {
		return newError(OutOfRange, "longitude outside [-180, 180]", nil)
	}
	if input.Hour < 0 || input.Hour > 23 || input.Minute < 0 || input.Minute > 59 {
		return newError(InvalidInput, "hour/minute outside a valid clock range", nil)
	}
	return nil
}
