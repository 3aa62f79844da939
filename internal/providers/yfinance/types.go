package yfinance

import (
	"encoding/json"
	"strings"
)

// --- Yahoo Finance API response types ---

type yfError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *yfError) Error() string {
	return "yfinance API error: " + e.Code + ": " + e.Description
}

func (e *yfError) notFound() bool {
	return strings.EqualFold(e.Code, "Not Found")
}

// yfQuoteSummaryResponse wraps the v10 quoteSummary API response. Each
// result maps a module name to its fields; numbers decode as json.Number.
type yfQuoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]map[string]any `json:"result"`
		Error  *yfError                    `json:"error"`
	} `json:"quoteSummary"`
}

// yfChartResponse wraps the v8 chart API response.
type yfChartResponse struct {
	Chart struct {
		Result []yfChartResult `json:"result"`
		Error  *yfError        `json:"error"`
	} `json:"chart"`
}

type yfChartResult struct {
	Meta       yfChartMeta    `json:"meta"`
	Timestamp  []int64        `json:"timestamp"`
	Events     *yfChartEvents `json:"events"`
	Indicators yfIndicators   `json:"indicators"`
}

type yfChartMeta struct {
	Symbol          string `json:"symbol"`
	Currency        string `json:"currency"`
	InstrumentType  string `json:"instrumentType"`
	ExchangeName    string `json:"exchangeName"`
	DataGranularity string `json:"dataGranularity"`
	Range           string `json:"range"`
}

type yfIndicators struct {
	Quote []yfOHLCV `json:"quote"`
}

type yfOHLCV struct {
	Open   []*float64 `json:"open"`
	High   []*float64 `json:"high"`
	Low    []*float64 `json:"low"`
	Close  []*float64 `json:"close"`
	Volume []*float64 `json:"volume"`
}

type yfChartEvents struct {
	Dividends map[string]yfDividendEvent `json:"dividends"`
	Splits    map[string]yfSplitEvent    `json:"splits"`
}

type yfDividendEvent struct {
	Amount *float64 `json:"amount"`
	Date   int64    `json:"date"`
}

type yfSplitEvent struct {
	Date        int64    `json:"date"`
	Numerator   *float64 `json:"numerator"`
	Denominator *float64 `json:"denominator"`
	Ratio       string   `json:"splitRatio"`
}

// yfTimeseriesResponse wraps the fundamentals-timeseries response. Each
// result carries "meta" plus one array keyed by the requested type name.
type yfTimeseriesResponse struct {
	Timeseries struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *yfError                     `json:"error"`
	} `json:"timeseries"`
}

type yfTimeseriesMeta struct {
	Symbol []string `json:"symbol"`
	Type   []string `json:"type"`
}

type yfTimeseriesPoint struct {
	AsOfDate      string   `json:"asOfDate"`
	PeriodType    string   `json:"periodType"`
	CurrencyCode  string   `json:"currencyCode"`
	ReportedValue yfFinVal `json:"reportedValue"`
}

type yfFinVal struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}
