package main

import (
	"github.com/jgoulah/elecalc/internal/report"
	"github.com/spf13/cobra"
)

var tipsCmd = &cobra.Command{
	Use:   "tips",
	Short: "Show energy saving tips",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		report.WriteTips(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(tipsCmd)
}
