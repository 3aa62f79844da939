// Package providers creates the concrete data providers and registers them
// with a provider registry.
package providers

import (
	"time"

	"github.com/seenimoa/stockinfo/internal/config"
	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/internal/providers/yfinance"
)

// RegisterAll creates and registers all available providers with the
// global registry.
func RegisterAll(cfg config.ProviderConfig) error {
	return RegisterAllTo(provider.Global(), cfg)
}

// RegisterAllTo registers all available providers to the given registry.
// Endpoint and client settings from cfg apply to every provider.
func RegisterAllTo(reg *provider.Registry, cfg config.ProviderConfig) error {
	// --- YFinance (free, no API key) ---
	yf := yfinance.New(yfinance.Options{
		BaseURL:   cfg.BaseURL,
		AuthURL:   cfg.AuthURL,
		NewsURL:   cfg.NewsURL,
		UserAgent: cfg.UserAgent,
		Headers:   cfg.Headers,
		Timeout:   time.Duration(cfg.TimeoutSec) * time.Second,
	})
	return reg.Register(yf)
}
