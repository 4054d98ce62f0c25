package main

import "github.com/spf13/cobra"

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "bazi",
		Short: "Compute Four Pillars of Destiny charts",
	}

	root.AddCommand(newChartCommand())
	root.AddCommand(newTermsCommand())
	root.AddCommand(newVerifyRoundtripCommand())
	return root
}
