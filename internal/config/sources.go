package config

import (
	"os"
	"strconv"
	"strings"
)

// Source represents where a setting's value comes from.
type Source string

const (
	SourceEnv     Source = "env"
	SourceConfig  Source = "config"
	SourceDefault Source = "default"
)

// SettingStatus describes one effective setting for the status command.
type SettingStatus struct {
	Key    string `json:"key"`
	Value  string `json:"value"`
	Source Source `json:"source"`
}

// EnvName returns the environment variable that overrides key,
// e.g. "provider.base_url" -> "STOCKINFO_PROVIDER_BASE_URL".
func EnvName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// CheckSettings returns the effective provider and report settings along with
// their origin. Values equal to the built-in default are reported as default.
func CheckSettings(cfg *Config) []SettingStatus {
	def := Default()
	return []SettingStatus{
		checkSetting("provider.name", cfg.Provider.Name, def.Provider.Name),
		checkSetting("provider.base_url", cfg.Provider.BaseURL, def.Provider.BaseURL),
		checkSetting("provider.auth_url", cfg.Provider.AuthURL, def.Provider.AuthURL),
		checkSetting("provider.news_url", cfg.Provider.NewsURL, def.Provider.NewsURL),
		checkSetting("provider.timeout_sec", strconv.Itoa(cfg.Provider.TimeoutSec), strconv.Itoa(def.Provider.TimeoutSec)),
		checkSetting("history.period", cfg.History.Period, def.History.Period),
		checkSetting("history.interval", cfg.History.Interval, def.History.Interval),
		checkSetting("financials.frequency", cfg.Financials.Frequency, def.Financials.Frequency),
		checkSetting("logging.level", cfg.Logging.Level, def.Logging.Level),
	}
}

func checkSetting(key, value, defValue string) SettingStatus {
	status := SettingStatus{Key: key, Value: value}
	switch {
	case os.Getenv(EnvName(key)) != "":
		status.Source = SourceEnv
	case value != defValue:
		status.Source = SourceConfig
	default:
		status.Source = SourceDefault
	}
	return status
}
