// Package yfinance implements the Yahoo Finance data provider.
// It wraps Yahoo Finance's public APIs (v10 quoteSummary, v8 chart,
// fundamentals-timeseries and the headline RSS feed) behind provider.Provider.
//
// Yahoo Finance is a free, no-API-key provider; quoteSummary requests need a
// session cookie plus crumb, which the provider obtains lazily.
package yfinance

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/seenimoa/stockinfo/internal/infra"
	"github.com/seenimoa/stockinfo/internal/provider"
)

const providerName = "yfinance"

// Default endpoints.
const (
	DefaultBaseURL = "https://query2.finance.yahoo.com"
	DefaultAuthURL = "https://fc.yahoo.com"
	DefaultNewsURL = "https://feeds.finance.yahoo.com/rss/2.0/headline"
)

// Options configures a Provider. Empty fields take the defaults.
type Options struct {
	BaseURL   string
	AuthURL   string
	NewsURL   string
	UserAgent string
	Timeout   time.Duration
	Headers   map[string]string // extra headers sent on every request
	Doer      infra.HTTPDoer    // replaces the default cookie-jar client
}

// Provider implements provider.Provider and provider.NewsProvider for
// Yahoo Finance.
type Provider struct {
	provider.BaseProvider

	baseURL string
	newsURL string
	http    *infra.Client
	session *session
	now     func() time.Time
}

// New creates a new YFinance provider.
func New(opts Options) *Provider {
	baseURL := strings.TrimRight(coalesce(opts.BaseURL, DefaultBaseURL), "/")
	authURL := coalesce(opts.AuthURL, DefaultAuthURL)

	clientOpts := []infra.Option{infra.WithUserAgent(opts.UserAgent)}
	for k, v := range opts.Headers {
		clientOpts = append(clientOpts, infra.WithHeader(k, v))
	}
	if opts.Doer != nil {
		clientOpts = append(clientOpts, infra.WithDoer(opts.Doer))
	}
	client := infra.NewClient(opts.Timeout, clientOpts...)

	return &Provider{
		BaseProvider: provider.NewBaseProvider(
			providerName,
			"Yahoo Finance - free global financial data",
			"https://finance.yahoo.com",
			provider.CapLookup, provider.CapChart, provider.CapStatements, provider.CapNews,
		),
		baseURL: baseURL,
		newsURL: coalesce(opts.NewsURL, DefaultNewsURL),
		http:    client,
		session: newSession(client, authURL, baseURL+"/v1/test/getcrumb"),
		now:     time.Now,
	}
}

// Ping checks connectivity to Yahoo Finance by establishing a session.
func (p *Provider) Ping(ctx context.Context) error {
	if _, err := p.session.crumb(ctx); err != nil {
		return p.Upstream("ping", err)
	}
	return nil
}

// --- Shared helpers ---

func jsonHeaders() map[string]string {
	return map[string]string{"Accept": "application/json"}
}

// fetchJSON performs a GET request and decodes the response into dest.
// Numbers decode as json.Number.
func (p *Provider) fetchJSON(ctx context.Context, rawURL string, dest any) error {
	zerolog.Ctx(ctx).Debug().Str("provider", providerName).Str("url", rawURL).Msg("GET")

	data, err := p.http.GetBytes(ctx, rawURL, jsonHeaders())
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(dest); err != nil {
		return fmt.Errorf("parse JSON: %w", err)
	}
	return nil
}

// classify turns transport and API errors into provider error kinds.
// A 404, or an API error whose code is "Not Found", means the symbol is unknown.
func (p *Provider) classify(op, symbol string, err error) error {
	if provider.IsUpstream(err) || provider.IsNotFound(err) {
		return err
	}
	var httpErr *infra.ErrHTTP
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return &provider.NotFoundError{Symbol: symbol, Detail: apiErrorDetail(httpErr.Body)}
	}
	var apiErr *yfError
	if errors.As(err, &apiErr) && apiErr.notFound() {
		return &provider.NotFoundError{Symbol: symbol, Detail: apiErr.Description}
	}
	return p.Upstream(op, err)
}

// isStatus reports whether err is an HTTP error with the given status.
func isStatus(err error, status int) bool {
	var httpErr *infra.ErrHTTP
	return errors.As(err, &httpErr) && httpErr.StatusCode == status
}

// apiErrorDetail extracts the description from an error body such as
// {"chart":{"result":null,"error":{"code":"Not Found","description":"..."}}}.
func apiErrorDetail(body string) string {
	var envelope map[string]struct {
		Error *yfError `json:"error"`
	}
	if err := json.Unmarshal([]byte(body), &envelope); err != nil {
		return ""
	}
	for _, v := range envelope {
		if v.Error != nil {
			return v.Error.Description
		}
	}
	return ""
}

// symbolPath escapes a ticker for use as a path segment ("BRK-B", "^GSPC").
func symbolPath(symbol string) string {
	return url.PathEscape(symbol)
}

// coalesce returns the first non-empty string.
func coalesce(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
