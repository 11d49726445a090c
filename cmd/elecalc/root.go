package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jgoulah/elecalc/internal/config"
	"github.com/jgoulah/elecalc/internal/database"
	"github.com/jgoulah/elecalc/internal/logger"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	envFile string
	dbPath  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "elecalc",
	Short: "Estimate weekly household electricity consumption and cost",
	Long: `elecalc estimates daily, weekly and monthly electricity consumption for an
apartment from its bedroom count (BHK) and which appliances (air conditioner,
refrigerator, washing machine) were used on each day of the week.
Input scenarios can be saved to a local SQLite database and estimates can be
published to MQTT or Home Assistant.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "env file (default is ./.env)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "database file (default is ./data.db)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// getConfigPath returns the config file path
func getConfigPath() string {
	if cfgFile != "" {
		return cfgFile
	}
	return config.DefaultConfigPath()
}

// getEnvPath returns the .env file path
func getEnvPath() string {
	if envFile != "" {
		return envFile
	}
	return config.DefaultEnvPath()
}

// getDBPath returns the database file path (local directory)
func getDBPath() string {
	if dbPath != "" {
		return dbPath
	}
	return "data.db"
}

// loadConfig loads the configuration file and environment overrides
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadWithEnv(getConfigPath(), getEnvPath())
	if err != nil {
		return nil, err
	}
	logger.Debug("config loaded", "path", getConfigPath(), "bedrooms", cfg.GetBedrooms(), "rate", cfg.GetTariffRate())
	return cfg, nil
}

// openDB opens the database connection
func openDB() (*database.DB, error) {
	path := getDBPath()

	// Ensure directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating database directory: %w", err)
	}

	return database.New(path)
}
