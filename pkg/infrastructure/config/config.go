// Package config loads dashboard settings from an optional YAML file with
// sane defaults, so `cafeops` runs with no configuration at all.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config is the full runtime configuration
type Config struct {
	HTTP HTTPConfig `mapstructure:"http"`
	Log  LogConfig  `mapstructure:"log"`
	Cafe CafeConfig `mapstructure:"cafe"`
}

// HTTPConfig controls the presentation surface
type HTTPConfig struct {
	Addr string `mapstructure:"addr"`
}

// LogConfig controls logger construction
type LogConfig struct {
	// Development switches to the human-readable zap development encoder.
	Development bool `mapstructure:"development"`
}

// BusinessHours is display metadata only; nothing gates on it
type BusinessHours struct {
	Open  string `mapstructure:"open"`
	Close string `mapstructure:"close"`
}

// CafeConfig carries the cafe's settings. ServiceChargePct is stored for the
// settings screen but is not part of the totals formula.
type CafeConfig struct {
	Name             string        `mapstructure:"name"`
	Address          string        `mapstructure:"address"`
	Phone            string        `mapstructure:"phone"`
	Email            string        `mapstructure:"email"`
	Currency         string        `mapstructure:"currency"`
	TaxPct           float64       `mapstructure:"tax_pct"`
	ServiceChargeOn  bool          `mapstructure:"service_charge_enabled"`
	ServiceChargePct float64       `mapstructure:"service_charge_pct"`
	Hours            BusinessHours `mapstructure:"hours"`
}

// Load reads configuration from the given file path. An empty path or a
// missing file yields the defaults.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.development", false)
	v.SetDefault("cafe.name", "Cafe Dashboard")
	v.SetDefault("cafe.currency", "₹")
	v.SetDefault("cafe.tax_pct", 5.0)
	v.SetDefault("cafe.service_charge_enabled", false)
	v.SetDefault("cafe.service_charge_pct", 10.0)
	v.SetDefault("cafe.hours.open", "08:00")
	v.SetDefault("cafe.hours.close", "22:00")

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("failed to read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return &cfg, nil
}
