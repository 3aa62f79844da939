// Package report gathers a symbol's market data and renders it as a
// terminal report.
package report

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
)

// ════════════════════════════════════════════════════════════════════
// Report Config
// ════════════════════════════════════════════════════════════════════

// Section identifies a block of the report.
type Section string

const (
	SectionQuote      Section = "quote"
	SectionHistory    Section = "history"
	SectionDividends  Section = "dividends"
	SectionSplits     Section = "splits"
	SectionFinancials Section = "financials"
	SectionAnalysts   Section = "analysts"
	SectionNews       Section = "news"
)

// AllSections returns the sections of the full report in display order.
// Headlines are opt-in and not part of it.
func AllSections() []Section {
	return []Section{
		SectionQuote,
		SectionHistory,
		SectionDividends,
		SectionSplits,
		SectionFinancials,
		SectionAnalysts,
	}
}

// ReportConfig controls which data Collect fetches.
type ReportConfig struct {
	Sections  []Section       // sections to include (default: AllSections)
	Period    models.Period   // history window
	Interval  models.Interval // history bar size
	NewsLimit int             // max headlines, 0 for all
}

// DefaultReportConfig returns the full report with default history settings.
func DefaultReportConfig() ReportConfig {
	return ReportConfig{
		Sections: AllSections(),
		Period:   models.DefaultPeriod,
		Interval: models.DefaultInterval,
	}
}

// hasSection returns true if the section is included in the config.
func (rc ReportConfig) hasSection(s Section) bool {
	for _, sec := range rc.Sections {
		if sec == s {
			return true
		}
	}
	return false
}

// ════════════════════════════════════════════════════════════════════
// Collect
// ════════════════════════════════════════════════════════════════════

// Source is the query surface Collect needs. *marketdata.Client satisfies it.
type Source interface {
	Overview(ctx context.Context, symbol string) (*models.QuoteSnapshot, *models.AnalystSummary, error)
	History(ctx context.Context, symbol string, period models.Period, interval models.Interval) (*models.PriceSeries, error)
	Dividends(ctx context.Context, symbol string) (*models.EventSeries, error)
	Splits(ctx context.Context, symbol string) (*models.EventSeries, error)
	Financials(ctx context.Context, symbol string) (*models.FinancialStatementSet, error)
	Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error)
}

// Report is everything fetched for one symbol. A nil section was not
// requested.
type Report struct {
	Symbol     string
	Sections   []Section
	Quote      *models.QuoteSnapshot
	History    *models.PriceSeries
	Dividends  *models.EventSeries
	Splits     *models.EventSeries
	Financials *models.FinancialStatementSet
	Analysts   *models.AnalystSummary
	Headlines  []models.Headline
}

// Collect fetches the configured sections one after another. The quote
// metadata is fetched first, so an unknown symbol fails before any other
// request. The first error aborts the report.
func Collect(ctx context.Context, src Source, symbol string, cfg ReportConfig) (*Report, error) {
	if len(cfg.Sections) == 0 {
		cfg.Sections = AllSections()
	}
	rep := &Report{Symbol: symbol, Sections: cfg.Sections}
	var err error

	if cfg.hasSection(SectionQuote) || cfg.hasSection(SectionAnalysts) {
		quote, analysts, err := src.Overview(ctx, symbol)
		if err != nil {
			return nil, err
		}
		rep.Symbol = quote.Symbol
		if cfg.hasSection(SectionQuote) {
			rep.Quote = quote
		}
		if cfg.hasSection(SectionAnalysts) {
			rep.Analysts = analysts
		}
	}
	if cfg.hasSection(SectionHistory) {
		if rep.History, err = src.History(ctx, rep.Symbol, cfg.Period, cfg.Interval); err != nil {
			return nil, err
		}
	}
	if cfg.hasSection(SectionDividends) {
		if rep.Dividends, err = src.Dividends(ctx, rep.Symbol); err != nil {
			return nil, err
		}
	}
	if cfg.hasSection(SectionSplits) {
		if rep.Splits, err = src.Splits(ctx, rep.Symbol); err != nil {
			return nil, err
		}
	}
	if cfg.hasSection(SectionFinancials) {
		if rep.Financials, err = src.Financials(ctx, rep.Symbol); err != nil {
			return nil, err
		}
	}
	if cfg.hasSection(SectionNews) {
		rep.Headlines, err = src.Headlines(ctx, rep.Symbol, cfg.NewsLimit)
		switch {
		case errors.Is(err, provider.ErrNotSupported):
			zerolog.Ctx(ctx).Warn().Str("symbol", rep.Symbol).Msg("headlines not supported by provider, skipping")
			rep.Headlines = []models.Headline{}
		case err != nil:
			return nil, fmt.Errorf("headlines: %w", err)
		case rep.Headlines == nil:
			rep.Headlines = []models.Headline{}
		}
	}
	return rep, nil
}
