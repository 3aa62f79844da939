// Package config handles configuration loading for stockinfo.
// It supports YAML config files with environment variable overrides.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of every environment override.
const EnvPrefix = "STOCKINFO"

// Config represents the complete application configuration.
type Config struct {
	Provider   ProviderConfig   `mapstructure:"provider"   yaml:"provider"`
	History    HistoryConfig    `mapstructure:"history"    yaml:"history"`
	Financials FinancialsConfig `mapstructure:"financials" yaml:"financials"`
	Report     ReportConfig     `mapstructure:"report"     yaml:"report"`
	Logging    LoggingConfig    `mapstructure:"logging"    yaml:"logging"`
	API        APIConfig        `mapstructure:"api"        yaml:"api"`
}

// ProviderConfig selects the market-data provider and its endpoints.
type ProviderConfig struct {
	Name       string            `mapstructure:"name"        yaml:"name"`
	BaseURL    string            `mapstructure:"base_url"    yaml:"base_url"`
	AuthURL    string            `mapstructure:"auth_url"    yaml:"auth_url"` // cookie bootstrap
	NewsURL    string            `mapstructure:"news_url"    yaml:"news_url"`
	UserAgent  string            `mapstructure:"user_agent"  yaml:"user_agent"`
	TimeoutSec int               `mapstructure:"timeout_sec" yaml:"timeout_sec"`
	Headers    map[string]string `mapstructure:"headers"     yaml:"headers"` // sent on every request
}

// HistoryConfig holds the default price history window.
type HistoryConfig struct {
	Period   string `mapstructure:"period"   yaml:"period"`
	Interval string `mapstructure:"interval" yaml:"interval"`
}

// FinancialsConfig holds statement defaults.
type FinancialsConfig struct {
	Frequency string `mapstructure:"frequency" yaml:"frequency"` // "quarterly" or "annual"
}

// ReportConfig controls terminal rendering.
type ReportConfig struct {
	Color       bool   `mapstructure:"color"        yaml:"color"`
	MaxRows     int    `mapstructure:"max_rows"     yaml:"max_rows"` // 0 prints every row
	Placeholder string `mapstructure:"placeholder"  yaml:"placeholder"`
	IncludeNews bool   `mapstructure:"include_news" yaml:"include_news"`
	NewsLimit   int    `mapstructure:"news_limit"   yaml:"news_limit"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"  yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `mapstructure:"format" yaml:"format"` // "text" or "json"
}

// APIConfig holds settings for the JSON API server.
type APIConfig struct {
	Host        string   `mapstructure:"host"         yaml:"host"`
	Port        int      `mapstructure:"port"         yaml:"port"`
	CORSOrigins []string `mapstructure:"cors_origins" yaml:"cors_origins"`
}

// Load reads the configuration from file and environment variables.
// Config file search order:
//  1. ./config/config.yaml (project root)
//  2. ~/.stockinfo/config.yaml (home directory)
//  3. /etc/stockinfo/config.yaml (system)
//
// Environment variables override config file values.
// Format: STOCKINFO_<SECTION>_<KEY>, e.g., STOCKINFO_PROVIDER_TIMEOUT_SEC
func Load() (*Config, error) {
	v := newViper()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(filepath.Join(homeDir(), ".stockinfo"))
	v.AddConfigPath("/etc/stockinfo")

	// Read config file (not required to exist)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	return decode(v)
}

// LoadFromFile reads configuration from a specific file path.
func LoadFromFile(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	return decode(v)
}

func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return v
}

func decode(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the configuration used when no file or env var is present.
func Default() *Config {
	cfg, err := decode(newDefaultsOnly())
	if err != nil {
		// defaults always validate
		panic(err)
	}
	return cfg
}

func newDefaultsOnly() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

// setDefaults sets sensible defaults for all config values.
func setDefaults(v *viper.Viper) {
	// Provider defaults
	v.SetDefault("provider.name", "yfinance")
	v.SetDefault("provider.base_url", "https://query2.finance.yahoo.com")
	v.SetDefault("provider.auth_url", "https://fc.yahoo.com")
	v.SetDefault("provider.news_url", "https://feeds.finance.yahoo.com/rss/2.0/headline")
	v.SetDefault("provider.user_agent", "")
	v.SetDefault("provider.timeout_sec", 10)

	// History defaults
	v.SetDefault("history.period", "1y")
	v.SetDefault("history.interval", "1d")

	v.SetDefault("financials.frequency", "quarterly")

	// Report defaults
	v.SetDefault("report.color", true)
	v.SetDefault("report.max_rows", 0)
	v.SetDefault("report.placeholder", "N/A")
	v.SetDefault("report.include_news", false)
	v.SetDefault("report.news_limit", 5)

	// Logging defaults (stdout carries the report)
	v.SetDefault("logging.level", "warn")
	v.SetDefault("logging.format", "text")

	// API server defaults
	v.SetDefault("api.host", "127.0.0.1")
	v.SetDefault("api.port", 8080)
	v.SetDefault("api.cors_origins", []string{"*"})
}

var (
	validPeriods   = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}
	validIntervals = []string{
		"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo",
	}
	validFrequencies = []string{"quarterly", "annual"}
	validLevels      = []string{"trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled"}
	validFormats     = []string{"text", "json"}
)

// Validate checks enumerated values and numeric bounds.
func (c *Config) Validate() error {
	if c.Provider.Name == "" {
		return fmt.Errorf("config: provider.name is required")
	}
	if c.Provider.TimeoutSec <= 0 {
		return fmt.Errorf("config: provider.timeout_sec must be positive, got %d", c.Provider.TimeoutSec)
	}
	checks := []struct {
		key, value string
		allowed    []string
	}{
		{"history.period", c.History.Period, validPeriods},
		{"history.interval", c.History.Interval, validIntervals},
		{"financials.frequency", c.Financials.Frequency, validFrequencies},
		{"logging.level", strings.ToLower(c.Logging.Level), validLevels},
		{"logging.format", strings.ToLower(c.Logging.Format), validFormats},
	}
	for _, ch := range checks {
		if !contains(ch.allowed, ch.value) {
			return fmt.Errorf("config: invalid %s %q (allowed: %s)", ch.key, ch.value, strings.Join(ch.allowed, ", "))
		}
	}
	if c.Report.MaxRows < 0 {
		return fmt.Errorf("config: report.max_rows must not be negative, got %d", c.Report.MaxRows)
	}
	if c.Report.NewsLimit < 0 {
		return fmt.Errorf("config: report.news_limit must not be negative, got %d", c.Report.NewsLimit)
	}
	if c.API.Port < 1 || c.API.Port > 65535 {
		return fmt.Errorf("config: api.port out of range, got %d", c.API.Port)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// homeDir returns the user's home directory.
func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
