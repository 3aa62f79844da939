// Package provider defines the market-data provider abstraction: the four
// request shapes a provider answers, the loosely typed payloads it returns,
// the error kinds callers classify on, and a registry that maps configured
// names to provider instances.
package provider

//go:generate mockgen -destination=../marketdata/mock_provider_test.go -package=marketdata github.com/seenimoa/stockinfo/internal/provider Provider,NewsProvider

import (
	"context"
	"time"

	"github.com/seenimoa/stockinfo/pkg/models"
)

// Capability names a request shape a provider supports.
type Capability string

const (
	CapLookup     Capability = "lookup"
	CapChart      Capability = "chart"
	CapStatements Capability = "statements"
	CapNews       Capability = "news"
)

// ProviderInfo holds metadata about a registered provider.
type ProviderInfo struct {
	Name         string       `json:"name"`        // e.g., "yfinance"
	Description  string       `json:"description"` // human-readable description
	Website      string       `json:"website"`
	Capabilities []Capability `json:"capabilities"`
}

// Provider is the interface every market-data source implements.
// Each method performs one blocking round-trip (plus session setup).
type Provider interface {
	// Info returns metadata about this provider.
	Info() ProviderInfo

	// Ping verifies the provider is reachable.
	Ping(ctx context.Context) error

	// Lookup returns the flat metadata payload for symbol.
	Lookup(ctx context.Context, symbol string) (InfoPayload, error)

	// Chart returns the raw price series and, when requested, corporate events.
	Chart(ctx context.Context, symbol string, q ChartQuery) (*ChartData, error)

	// Statement returns one financial statement's line-item series.
	Statement(ctx context.Context, symbol string, kind models.StatementKind, freq models.Frequency) (*StatementData, error)
}

// NewsProvider is implemented by providers that can list headlines.
type NewsProvider interface {
	Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error)
}

// CapabilityChecker is implemented by providers that declare their
// capabilities. BaseProvider satisfies it.
type CapabilityChecker interface {
	Supports(c Capability) bool
}

// InfoPayload is a flat provider key → value map. Values are whatever the
// wire format decoded to (float64, json.Number, string, bool, nil).
type InfoPayload map[string]any

// ChartQuery selects the window and bar size of a chart request.
type ChartQuery struct {
	Range    string
	Interval string
	Events   bool // include dividends and splits
}

// ChartData is a columnar price series as returned by the provider.
// Price and volume slices are aligned with Timestamps; nil entries are gaps.
type ChartData struct {
	Symbol     string
	Timestamps []int64 // unix seconds
	Open       []*float64
	High       []*float64
	Low        []*float64
	Close      []*float64
	Volume     []*float64
	Dividends  []RawDividend
	Splits     []RawSplit
}

// RawDividend is one dividend event.
type RawDividend struct {
	Date   int64
	Amount *float64
}

// RawSplit is one split event. Ratio is the provider's display form ("4:1").
type RawSplit struct {
	Date        int64
	Numerator   *float64
	Denominator *float64
	Ratio       string
}

// StatementData is the set of line-item series for one statement.
// Lines keep the provider's order; points within a line are unordered.
type StatementData struct {
	Symbol    string
	Kind      models.StatementKind
	Frequency models.Frequency
	Lines     []StatementLine
}

// StatementLine is one line item keyed by its provider name (e.g. "TotalRevenue").
type StatementLine struct {
	Key    string
	Points []StatementPoint
}

// StatementPoint is a value reported for the period ending AsOf.
type StatementPoint struct {
	AsOf  time.Time
	Value *float64
}
