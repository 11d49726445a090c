package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Fallbacks used when the config file leaves a value unset
const (
	DefaultBedrooms    = 2
	DefaultTariffRate  = 5.0
	DefaultCurrency    = "₹"
	DefaultTopicPrefix = "elecalc"
	DefaultEntityID    = "sensor.elecalc_weekly_energy"
)

// Config holds the application configuration
type Config struct {
	Defaults      DefaultsConfig `yaml:"defaults"`
	MQTT          MQTTConfig     `yaml:"mqtt,omitempty"`
	HomeAssistant HAConfig       `yaml:"home_assistant,omitempty"`
}

// DefaultsConfig holds calculator inputs used when no flag overrides them
type DefaultsConfig struct {
	Bedrooms   int      `yaml:"bedrooms,omitempty"`
	TariffRate *float64 `yaml:"tariff_rate,omitempty"` // Cost per kWh; nil means unset so 0 stays expressible
	Currency   string   `yaml:"currency,omitempty"`
}

// MQTTConfig holds MQTT broker configuration
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`                 // host:port, e.g. "localhost:1883"
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"` // default "elecalc"
	Retain      bool   `yaml:"retain,omitempty"`
}

// HAConfig holds Home Assistant HTTP API configuration
type HAConfig struct {
	Enabled  bool   `yaml:"enabled"`
	URL      string `yaml:"url"`       // e.g., "http://homeassistant.local:8123"
	Token    string `yaml:"token"`     // Long-lived access token
	EntityID string `yaml:"entity_id"` // e.g., "sensor.elecalc_weekly_energy"
}

// Load reads the config file
func Load(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			// Return empty config if file doesn't exist
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	return &cfg, nil
}

// Save writes the config to file
func Save(configPath string, cfg *Config) error {
	// Ensure directory exists
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	// Broker passwords and HA tokens live here
	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetBedrooms returns the configured bedroom count with a default of 2
func (c *Config) GetBedrooms() int {
	if c.Defaults.Bedrooms <= 0 {
		return DefaultBedrooms
	}
	return c.Defaults.Bedrooms
}

// GetTariffRate returns the configured cost per kWh with a default of 5.0
func (c *Config) GetTariffRate() float64 {
	if c.Defaults.TariffRate == nil {
		return DefaultTariffRate
	}
	return *c.Defaults.TariffRate
}

// SetTariffRate stores an explicit cost per kWh
func (c *Config) SetTariffRate(rate float64) {
	c.Defaults.TariffRate = &rate
}

// GetCurrency returns the currency symbol used in reports
func (c *Config) GetCurrency() string {
	if c.Defaults.Currency == "" {
		return DefaultCurrency
	}
	return c.Defaults.Currency
}

// GetTopicPrefix returns the MQTT topic prefix, falling back to "elecalc"
func (c *MQTTConfig) GetTopicPrefix() string {
	if c.TopicPrefix == "" {
		return DefaultTopicPrefix
	}
	return c.TopicPrefix
}

// GetEntityID returns the Home Assistant entity, falling back to the default sensor
func (c *HAConfig) GetEntityID() string {
	if c.EntityID == "" {
		return DefaultEntityID
	}
	return c.EntityID
}
