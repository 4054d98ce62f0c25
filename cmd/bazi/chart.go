package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	bazi "github.com/hotea/bazi-insights"
	"github.com/hotea/bazi-insights/internal/config"
)

type chartFlags struct {
	date          string
	clock         string
	longitude     float64
	gender        string
	timeType      string
	earlyRatSplit bool
	dstConfirmed  bool
	lunar         bool
	isLeapMonth   bool
	configPath    string
	logLevel      string
	table         bool
}

func newChartCommand() *cobra.Command {
	flags := &chartFlags{}

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Compute a four-pillar chart for a birth moment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, flags)
		},
	}

	cmd.Flags().StringVar(&flags.date, "date", "", "calendar date, YYYY-MM-DD (required)")
	cmd.Flags().StringVar(&flags.clock, "time", "00:00", "wall-clock time, HH:MM")
	cmd.Flags().Float64Var(&flags.longitude, "longitude", 120, "decimal degrees east-positive, [-180, 180]")
	cmd.Flags().StringVar(&flags.gender, "gender", "male", "\"male\" or \"female\"")
	cmd.Flags().StringVar(&flags.timeType, "time-type", "standard", "\"standard\" or \"trueSolar\"")
	cmd.Flags().BoolVar(&flags.earlyRatSplit, "early-rat-split", true, "fold 23:00-23:59 into the next day's pillar")
	cmd.Flags().BoolVar(&flags.dstConfirmed, "dst-confirmed", false, "clock already includes the 1986-1991 DST offset")
	cmd.Flags().BoolVar(&flags.lunar, "lunar", false, "interpret --date as a lunisolar calendar date")
	cmd.Flags().BoolVar(&flags.isLeapMonth, "leap-month", false, "--date's month is the year's leap insertion (lunar only)")
	cmd.Flags().StringVar(&flags.configPath, "config", "", "optional YAML config overriding element weights and locale")
	cmd.Flags().StringVar(&flags.logLevel, "log-level", "info", "zap log level")
	cmd.Flags().BoolVar(&flags.table, "table", false, "render a formatted table instead of JSON")
	cmd.MarkFlagRequired("date")

	return cmd
}

func runChart(cmd *cobra.Command, flags *chartFlags) error {
	logger := loadLogger(flags.logLevel)
	defer logger.Sync()

	year, month, day, err := parseDate(flags.date)
	if err != nil {
		return err
	}
	hour, minute, err := parseClock(flags.clock)
	if err != nil {
		return err
	}

	input := bazi.Input{
		DateType:      bazi.DateSolar,
		Year:          year,
		Month:         month,
		Day:           day,
		IsLeapMonth:   flags.isLeapMonth,
		Hour:          hour,
		Minute:        minute,
		TimeType:      bazi.TimeType(flags.timeType),
		Gender:        bazi.Gender(flags.gender),
		Longitude:     flags.longitude,
		DSTConfirmed:  flags.dstConfirmed,
		EarlyRatSplit: flags.earlyRatSplit,
	}
	if flags.lunar {
		input.DateType = bazi.DateLunar
	}

	cfg := config.Default()
	if flags.configPath != "" {
		loaded, err := config.Load(flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	start := time.Now()
	result, err := bazi.ComputeWithConfig(input, cfg)
	elapsed := time.Since(start)

	if err != nil {
		logger.Error("compute failed",
			zap.String("date", flags.date), zap.String("time", flags.clock),
			zap.Duration("elapsed", elapsed), zap.Error(err))
		return err
	}
	logger.Info("compute succeeded",
		zap.String("date", flags.date), zap.String("time", flags.clock),
		zap.Duration("elapsed", elapsed),
		zap.String("pillars", fmt.Sprintf("%s %s %s %s", result.Pillars.Year, result.Pillars.Month, result.Pillars.Day, result.Pillars.Hour)))

	if flags.table {
		renderTable(cmd, result)
		return nil
	}
	return renderJSON(cmd, result)
}

func parseDate(s string) (year, month, day int, err error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("--date must be YYYY-MM-DD, have %q", s)
	}
	year, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("--date: bad year: %w", err)
	}
	month, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("--date: bad month: %w", err)
	}
	day, err = strconv.Atoi(parts[2])
	if err != nil {
		return 0, 0, 0, fmt.Errorf("--date: bad day: %w", err)
	}
	return year, month, day, nil
}

func parseClock(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("--time must be HH:MM, have %q", s)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("--time: bad hour: %w", err)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("--time: bad minute: %w", err)
	}
	return hour, minute, nil
}

func renderJSON(cmd *cobra.Command, result bazi.Result) error {
	encoded, err := json.MarshalIndent(newChartViewFrom(result), "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(encoded))
	return nil
}

func renderTable(cmd *cobra.Command, result bazi.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Year  %s\n", result.Pillars.Year)
	fmt.Fprintf(out, "Month %s\n", result.Pillars.Month)
	fmt.Fprintf(out, "Day   %s\n", result.Pillars.Day)
	fmt.Fprintf(out, "Hour  %s\n", result.Pillars.Hour)
	fmt.Fprintf(out, "Strength: %s (%.1f%%)\n", result.Strength, result.StrengthScore*100)
	fmt.Fprintf(out, "%s\n", result.Analysis)
}

// chartView is a JSON-friendly projection of Result; Result itself
// carries time.Time and map[ornament.Position]... keys that don't
// round-trip cleanly through encoding/json's default rules.
type chartView struct {
	Year          string `json:"year"`
	Month         string `json:"month"`
	Day           string `json:"day"`
	Hour          string `json:"hour"`
	LunarYear     int    `json:"lunarYear"`
	LunarMonth    int    `json:"lunarMonth"`
	LunarDay      int    `json:"lunarDay"`
	LunarIsLeap   bool   `json:"lunarIsLeap"`
	Strength      string `json:"strength"`
	StrengthScore float64 `json:"strengthScore"`
	Analysis      string `json:"analysis"`
}

func newChartViewFrom(result bazi.Result) chartView {
	return chartView{
		Year:          result.Pillars.Year.String(),
		Month:         result.Pillars.Month.String(),
		Day:           result.Pillars.Day.String(),
		Hour:          result.Pillars.Hour.String(),
		LunarYear:     result.LunarDate.Year,
		LunarMonth:    result.LunarDate.Month,
		LunarDay:      result.LunarDate.Day,
		LunarIsLeap:   result.LunarDate.IsLeap,
		Strength:      result.Strength.String(),
		StrengthScore: result.StrengthScore,
		Analysis:      result.Analysis,
	}
}
