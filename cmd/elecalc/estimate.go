package main

import (
	"fmt"

	"github.com/jgoulah/elecalc/internal/report"
	"github.com/spf13/cobra"
)

var (
	estimateInputs inputFlags
	estimateFormat string
	estimateChart  bool
	chartWidth     int
	chartHeight    int
)

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate weekly consumption and cost",
	Long: `Computes the base load, appliance load and total for each day Monday to Sunday,
the weekly total and daily average, and the weekly and monthly cost.

Appliances: ac, fridge, washer (or all / none). Each used appliance adds 3 kWh
to that day. Example:

  elecalc estimate -b 2 --all-days fridge --day mon=ac,fridge --day sat=all`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	addInputFlags(estimateCmd, &estimateInputs, true)
	estimateCmd.Flags().StringVarP(&estimateFormat, "format", "f", "table", "output format (table or json)")
	estimateCmd.Flags().BoolVar(&estimateChart, "chart", false, "draw daily consumption charts")
	estimateCmd.Flags().IntVar(&chartWidth, "width", 60, "chart width")
	estimateCmd.Flags().IntVar(&chartHeight, "height", 10, "chart height")
	rootCmd.AddCommand(estimateCmd)
}

func runEstimate(cmd *cobra.Command, args []string) error {
	if estimateFormat != "table" && estimateFormat != "json" {
		return fmt.Errorf("unknown format: %s (available: table, json)", estimateFormat)
	}

	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	in, err := estimateInputs.resolve(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}

	est := in.estimate()
	out := cmd.OutOrStdout()

	if estimateFormat == "json" {
		return report.JSON(out, est, cfg.GetCurrency())
	}

	fmt.Fprintf(out, "Weekly Consumption for %d BHK\n", est.Profile.Bedrooms)
	report.Breakdown(out, est)
	fmt.Fprintln(out)
	report.Summary(out, est, cfg.GetCurrency())

	if estimateChart {
		fmt.Fprintln(out)
		report.Chart(out, est, chartWidth, chartHeight)
	}

	return nil
}
