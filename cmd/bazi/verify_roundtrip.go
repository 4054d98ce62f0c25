package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/hotea/bazi-insights/internal/astro"
	"github.com/hotea/bazi-insights/internal/lunar"
)

func newVerifyRoundtripCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify-roundtrip <YYYY-MM-DD>",
		Short: "Check that solar->lunar->solar conversion round-trips for a date",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, month, day, err := parseDate(args[0])
			if err != nil {
				return err
			}

			civilDate := time.Date(year, time.Month(month), day, 0, 0, 0, 0, astro.CivilZone)
			lunarDate, err := lunar.SolarToLunar(civilDate)
			if err != nil {
				return err
			}
			roundTripped, err := lunar.LunarToSolar(lunarDate)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "civil:      %s\n", civilDate.Format("2006-01-02"))
			fmt.Fprintf(out, "lunar:      %04d-%02d-%02d leap=%v\n", lunarDate.Year, lunarDate.Month, lunarDate.Day, lunarDate.IsLeap)
			fmt.Fprintf(out, "round-trip: %s\n", roundTripped.Format("2006-01-02"))
			if !roundTripped.Equal(civilDate) {
				return fmt.Errorf("round trip mismatch: %s != %s", roundTripped.Format("2006-01-02"), civilDate.Format("2006-01-02"))
			}
			fmt.Fprintln(out, "OK")
			return nil
		},
	}
}
