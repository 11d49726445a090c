package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables that override the config file
const (
	EnvBedrooms     = "ELECALC_BEDROOMS"
	EnvTariffRate   = "ELECALC_TARIFF_RATE"
	EnvCurrency     = "ELECALC_CURRENCY"
	EnvMQTTBroker   = "ELECALC_MQTT_BROKER"
	EnvMQTTUsername = "ELECALC_MQTT_USERNAME"
	EnvMQTTPassword = "ELECALC_MQTT_PASSWORD"
	EnvHAURL        = "ELECALC_HA_URL"
	EnvHAToken      = "ELECALC_HA_TOKEN"
)

// DefaultEnvPath returns the default .env path (local directory)
func DefaultEnvPath() string {
	return ".env"
}

// LoadWithEnv reads the config file, then the .env file at envPath (if any),
// then applies ELECALC_* variables from the environment on top.
// Variables already set in the process environment win over .env entries.
func LoadWithEnv(configPath, envPath string) (*Config, error) {
	cfg, err := Load(configPath)
	if err != nil {
		return nil, err
	}

	if envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return nil, fmt.Errorf("loading %s: %w", envPath, err)
			}
		}
	}

	if err := cfg.ApplyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ApplyEnv overrides config values from ELECALC_* environment variables.
// Setting a broker or HA URL also enables the matching publisher.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvBedrooms); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvBedrooms, err)
		}
		c.Defaults.Bedrooms = n
	}

	if v := os.Getenv(EnvTariffRate); v != "" {
		rate, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("parsing %s: %w", EnvTariffRate, err)
		}
		c.SetTariffRate(rate)
	}

	setString(&c.Defaults.Currency, EnvCurrency)

	if setString(&c.MQTT.Broker, EnvMQTTBroker) {
		c.MQTT.Enabled = true
	}
	setString(&c.MQTT.Username, EnvMQTTUsername)
	setString(&c.MQTT.Password, EnvMQTTPassword)

	if setString(&c.HomeAssistant.URL, EnvHAURL) {
		c.HomeAssistant.Enabled = true
	}
	setString(&c.HomeAssistant.Token, EnvHAToken)

	return nil
}

func setString(dst *string, key string) bool {
	if v := os.Getenv(key); v != "" {
		*dst = v
		return true
	}
	return false
}
