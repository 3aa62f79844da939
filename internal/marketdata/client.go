// Package marketdata is the query layer between the CLI and a market-data
// provider. Each operation issues its provider requests sequentially under a
// per-call timeout and normalizes the loosely typed payloads into the records
// in pkg/models.
package marketdata

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
	"github.com/seenimoa/stockinfo/pkg/utils"
)

// DefaultTimeout bounds each operation.
const DefaultTimeout = 10 * time.Second

// Event queries always ask for the full history at monthly bars.
const (
	eventsRange    = models.PeriodMax
	eventsInterval = models.Interval1Mon
)

// Client runs market-data queries against one provider.
type Client struct {
	provider  provider.Provider
	timeout   time.Duration
	frequency models.Frequency
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-operation timeout. Non-positive values are ignored.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// WithFrequency sets the statement frequency used by Financials.
func WithFrequency(f models.Frequency) Option {
	return func(c *Client) {
		if f != "" {
			c.frequency = f
		}
	}
}

// New creates a Client for p.
func New(p provider.Provider, opts ...Option) *Client {
	c := &Client{
		provider:  p,
		timeout:   DefaultTimeout,
		frequency: models.FrequencyQuarterly,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Timeout returns the per-operation timeout.
func (c *Client) Timeout() time.Duration { return c.timeout }

// Frequency returns the statement frequency.
func (c *Client) Frequency() models.Frequency { return c.frequency }

// ProviderInfo describes the underlying provider.
func (c *Client) ProviderInfo() provider.ProviderInfo { return c.provider.Info() }

// Ping checks the provider under the client timeout.
func (c *Client) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	return c.classify(ctx, "ping", c.provider.Ping(ctx))
}

// Quote returns the quote snapshot for symbol.
func (c *Client) Quote(ctx context.Context, symbol string) (*models.QuoteSnapshot, error) {
	q, _, err := c.overview(ctx, "quote", symbol)
	return q, err
}

// Analysts returns the analyst summary for symbol.
func (c *Client) Analysts(ctx context.Context, symbol string) (*models.AnalystSummary, error) {
	_, a, err := c.overview(ctx, "analysts", symbol)
	return a, err
}

// Overview returns the quote snapshot and analyst summary from one lookup.
func (c *Client) Overview(ctx context.Context, symbol string) (*models.QuoteSnapshot, *models.AnalystSummary, error) {
	return c.overview(ctx, "overview", symbol)
}

func (c *Client) overview(ctx context.Context, op, symbol string) (*models.QuoteSnapshot, *models.AnalystSummary, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	payload, err := c.provider.Lookup(ctx, symbol)
	if err == nil && len(payload) == 0 {
		err = &provider.NotFoundError{Symbol: symbol, Detail: "empty payload"}
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s %s: %w", op, symbol, c.classify(ctx, "lookup", err))
	}

	zerolog.Ctx(ctx).Debug().
		Str("op", op).
		Str("symbol", symbol).
		Int("fields", len(payload)).
		Dur("elapsed", time.Since(start)).
		Msg("lookup complete")
	return quoteFromPayload(symbol, payload), analystFromPayload(symbol, payload), nil
}

// History returns the price series for symbol. Empty period and interval
// take the defaults (1y, 1d). Unknown values are rejected before any request.
// A symbol the provider does not know yields an empty series.
func (c *Client) History(ctx context.Context, symbol string, period models.Period, interval models.Interval) (*models.PriceSeries, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	p, err := models.ParsePeriod(string(period))
	if err != nil {
		return nil, &provider.InvalidParamError{Param: "period", Value: string(period), Allowed: periodNames()}
	}
	iv, err := models.ParseInterval(string(interval))
	if err != nil {
		return nil, &provider.InvalidParamError{Param: "interval", Value: string(interval), Allowed: intervalNames()}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	series := &models.PriceSeries{Symbol: symbol, Period: p, Interval: iv, Bars: []models.PriceBar{}}
	data, err := c.provider.Chart(ctx, symbol, provider.ChartQuery{Range: string(p), Interval: string(iv)})
	if err != nil {
		if c.emptyOnNotFound(ctx, "history", symbol, err) {
			return series, nil
		}
		return nil, fmt.Errorf("history %s: %w", symbol, c.classify(ctx, "chart", err))
	}

	series.Bars = barsFromChart(data)
	zerolog.Ctx(ctx).Debug().
		Str("symbol", symbol).
		Str("period", string(p)).
		Str("interval", string(iv)).
		Int("bars", len(series.Bars)).
		Msg("history complete")
	return series, nil
}

// Dividends returns every dividend on record, oldest first.
func (c *Client) Dividends(ctx context.Context, symbol string) (*models.EventSeries, error) {
	return c.events(ctx, symbol, models.EventDividend)
}

// Splits returns every split on record, oldest first.
func (c *Client) Splits(ctx context.Context, symbol string) (*models.EventSeries, error) {
	return c.events(ctx, symbol, models.EventSplit)
}

func (c *Client) events(ctx context.Context, symbol string, kind models.EventKind) (*models.EventSeries, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	series := &models.EventSeries{Symbol: symbol, Kind: kind, Events: []models.Event{}}
	data, err := c.provider.Chart(ctx, symbol, provider.ChartQuery{
		Range:    string(eventsRange),
		Interval: string(eventsInterval),
		Events:   true,
	})
	if err != nil {
		if c.emptyOnNotFound(ctx, string(kind), symbol, err) {
			return series, nil
		}
		return nil, fmt.Errorf("%s %s: %w", kind, symbol, c.classify(ctx, "chart", err))
	}

	if kind == models.EventDividend {
		series.Events = dividendsFromChart(data)
	} else {
		series.Events = splitsFromChart(data)
	}
	return series, nil
}

// Financials returns the income statement, balance sheet and cash flow
// statement at the client frequency. A statement the provider has no data for
// is left empty; an upstream failure in any of them fails the call.
func (c *Client) Financials(ctx context.Context, symbol string) (*models.FinancialStatementSet, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	set := &models.FinancialStatementSet{Symbol: symbol, Frequency: c.frequency}
	targets := []struct {
		kind models.StatementKind
		dst  *models.FinancialStatement
	}{
		{models.StatementIncome, &set.Income},
		{models.StatementBalance, &set.Balance},
		{models.StatementCashFlow, &set.CashFlow},
	}
	for _, t := range targets {
		data, err := c.provider.Statement(ctx, symbol, t.kind, c.frequency)
		if err != nil {
			if !c.emptyOnNotFound(ctx, string(t.kind), symbol, err) {
				return nil, fmt.Errorf("financials %s: %w", symbol, c.classify(ctx, "statement", err))
			}
		}
		*t.dst = statementFromData(t.kind, c.frequency, data)
	}
	return set, nil
}

// Headlines returns recent news for symbol when the provider supports it.
func (c *Client) Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error) {
	symbol, err := normalizeSymbol(symbol)
	if err != nil {
		return nil, err
	}
	np, ok := c.provider.(provider.NewsProvider)
	if !ok || !supports(c.provider, provider.CapNews) {
		return nil, fmt.Errorf("headlines: %w", provider.ErrNotSupported)
	}
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	items, err := np.Headlines(ctx, symbol, limit)
	if err != nil {
		if c.emptyOnNotFound(ctx, "headlines", symbol, err) {
			return []models.Headline{}, nil
		}
		return nil, fmt.Errorf("headlines %s: %w", symbol, c.classify(ctx, "headlines", err))
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items, nil
}

// emptyOnNotFound reports whether err means the symbol is unknown, in which
// case the caller returns an empty result.
func (c *Client) emptyOnNotFound(ctx context.Context, op, symbol string, err error) bool {
	if !provider.IsNotFound(err) {
		return false
	}
	zerolog.Ctx(ctx).Debug().Str("op", op).Str("symbol", symbol).Err(err).Msg("not found, returning empty result")
	return true
}

// classify leaves NotFoundError, UpstreamError and InvalidParamError as they
// are and wraps anything else, including context expiry, as UpstreamError.
func (c *Client) classify(ctx context.Context, op string, err error) error {
	if err == nil {
		return nil
	}
	var invalid *provider.InvalidParamError
	switch {
	case provider.IsNotFound(err), errors.As(err, &invalid):
		return err
	case provider.IsUpstream(err):
		zerolog.Ctx(ctx).Warn().Str("op", op).Err(err).Msg("provider request failed")
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
		err = fmt.Errorf("%w: %v", ctxErr, err)
	}
	zerolog.Ctx(ctx).Warn().Str("op", op).Err(err).Msg("provider request failed")
	return &provider.UpstreamError{Provider: c.provider.Info().Name, Op: op, Err: err}
}

// supports reports whether p advertises capability. Providers that do not
// declare capabilities are assumed to support everything they implement.
func supports(p provider.Provider, capability provider.Capability) bool {
	if cp, ok := p.(provider.CapabilityChecker); ok {
		return cp.Supports(capability)
	}
	return true
}

func normalizeSymbol(symbol string) (string, error) {
	s := utils.NormalizeTicker(symbol)
	if s == "" {
		return "", &provider.InvalidParamError{Param: "symbol", Value: symbol}
	}
	return s, nil
}

func periodNames() []string {
	out := make([]string, 0, len(models.Periods()))
	for _, p := range models.Periods() {
		out = append(out, string(p))
	}
	return out
}

func intervalNames() []string {
	out := make([]string, 0, len(models.Intervals()))
	for _, iv := range models.Intervals() {
		out = append(out, string(iv))
	}
	return out
}
