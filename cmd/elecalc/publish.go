package main

import (
	"fmt"
	"time"

	"github.com/jgoulah/elecalc/internal/publisher"
	"github.com/spf13/cobra"
)

var publishInputs inputFlags

var publishCmd = &cobra.Command{
	Use:   "publish",
	Short: "Publish an estimate to MQTT and/or Home Assistant",
	Long: `Computes an estimate from the given inputs (or a saved scenario) and publishes
it to the MQTT broker and/or Home Assistant configured in config.yaml.`,
	Args: cobra.NoArgs,
	RunE: runPublish,
}

func init() {
	addInputFlags(publishCmd, &publishInputs, true)
	rootCmd.AddCommand(publishCmd)
}

func runPublish(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "=== Publish started at %s ===\n", time.Now().Format("2006-01-02 15:04:05 MST"))

	// Load config
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	in, err := publishInputs.resolve(cmd.Context(), cmd, cfg)
	if err != nil {
		return err
	}

	// Create publisher
	pub, err := publisher.New(cfg.MQTT, cfg.HomeAssistant)
	if err != nil {
		return fmt.Errorf("creating publisher: %w", err)
	}
	defer pub.Close()

	est := in.estimate()
	fmt.Fprintf(out, "Publishing estimate for %d BHK (%.2f kWh/week)... ", est.Profile.Bedrooms, est.Summary.TotalWeekly)
	if err := pub.Publish(cmd.Context(), est, cfg.GetCurrency()); err != nil {
		fmt.Fprintln(out, "FAILED")
		return fmt.Errorf("publishing estimate: %w", err)
	}
	fmt.Fprintln(out, "✓")

	return nil
}
