package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jgoulah/elecalc/internal/config"
	"github.com/jgoulah/elecalc/internal/input"
	"github.com/spf13/cobra"
)

var (
	initBedrooms int
	initRate     float64
	initCurrency string
	initForce    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default estimate inputs",
	Args:  cobra.NoArgs,
	RunE:  runConfigInit,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration (file plus environment)",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

func init() {
	configInitCmd.Flags().IntVarP(&initBedrooms, "bedrooms", "b", 2, "default number of bedrooms (BHK)")
	configInitCmd.Flags().Float64VarP(&initRate, "rate", "r", 5.0, "default tariff rate per kWh")
	configInitCmd.Flags().StringVar(&initCurrency, "currency", "₹", "currency symbol for reports")
	configInitCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	configCmd.AddCommand(configInitCmd, configShowCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := getConfigPath()
	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("config file %s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking config file: %w", err)
	}

	if err := input.Validate(initBedrooms, initRate); err != nil {
		return err
	}

	cfg := &config.Config{}
	cfg.Defaults.Bedrooms = initBedrooms
	cfg.SetTariffRate(initRate)
	cfg.Defaults.Currency = initCurrency

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Config file: %s\n", getConfigPath())
	fmt.Fprintf(out, "Bedrooms:    %d\n", cfg.GetBedrooms())
	fmt.Fprintf(out, "Rate:        %.2f/kWh\n", cfg.GetTariffRate())
	fmt.Fprintf(out, "Currency:    %s\n", cfg.GetCurrency())
	fmt.Fprintf(out, "MQTT:        %s\n", sinkStatus(cfg.MQTT.Enabled, cfg.MQTT.Broker))
	fmt.Fprintf(out, "HA:          %s\n", sinkStatus(cfg.HomeAssistant.Enabled, cfg.HomeAssistant.URL))
	return nil
}

func sinkStatus(enabled bool, target string) string {
	if !enabled {
		return "disabled"
	}
	return "enabled (" + target + ")"
}
