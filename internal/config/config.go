package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI     UIConfig     `mapstructure:"ui"`
	Report ReportConfig `mapstructure:"report"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	DateFormat string `mapstructure:"date_format"`
	Timezone   string `mapstructure:"timezone"`
}

// ReportConfig holds reporting defaults. These seed the picker on startup;
// the ranges a user selects are never written back here.
type ReportConfig struct {
	FinancialYearStartMonth int    `mapstructure:"financial_year_start_month"`
	DefaultDuration         string `mapstructure:"default_duration"`
	PeriodsToCompare        int    `mapstructure:"periods_to_compare"`
}

// Load reads configuration from file and env. Env var overrides use prefix REPORTRANGE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.date_format", "02 Jan 2006")
	v.SetDefault("ui.timezone", "Australia/Melbourne")
	v.SetDefault("report.financial_year_start_month", 7)
	v.SetDefault("report.default_duration", "3 months")
	v.SetDefault("report.periods_to_compare", 4)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("REPORTRANGE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "reportrange"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("REPORTRANGE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if
// needed. Only preferences land here, never a selected range.
func Save(cfg Config) error {
	path := os.Getenv("REPORTRANGE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "reportrange", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.date_format", cfg.UI.DateFormat)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("report.financial_year_start_month", cfg.Report.FinancialYearStartMonth)
	v.Set("report.default_duration", cfg.Report.DefaultDuration)
	v.Set("report.periods_to_compare", cfg.Report.PeriodsToCompare)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
