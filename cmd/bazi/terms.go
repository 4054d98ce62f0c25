package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/hotea/bazi-insights/internal/astro"
)

func newTermsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "terms <year>",
		Short: "Print the 24 solar-term instants for a civil year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("terms: bad year %q: %w", args[0], err)
			}

			all, err := astro.AllSolarTerms(year)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, term := range all {
				kind := "qi"
				if term.IsJie() {
					kind = "jie"
				}
				fmt.Fprintf(out, "%2d  %-3s  %s\n", term.Index, kind, term.Instant.In(astro.CivilZone).Format("2006-01-02 15:04:05"))
			}
			return nil
		},
	}
}
