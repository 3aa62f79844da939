package models

import (
	"github.com/guregu/null/v6"
)

// Recommendations holds the per-symbol figures listed under the
// "Recommendations" heading. The labels follow the provider keys they were
// read from; PreviousSplitFactor carries trailingAnnualDividendRate.
type Recommendations struct {
	PreviousSplitFactor null.Float  `json:"previous_split_factor"`
	TrailingEPS         null.Float  `json:"trailing_eps"`
	LastSplitFactor     null.String `json:"last_split_factor"`
	LastSplitDate       null.Time   `json:"last_split_date"`
}

// AnalystSummary is derived from the same metadata payload as QuoteSnapshot.
type AnalystSummary struct {
	Symbol                  string          `json:"symbol"`
	Recommendations         Recommendations `json:"recommendations"`
	EarningsQuarterlyGrowth null.Float      `json:"earnings_quarterly_growth"` // fraction
	DividendYield           null.Float      `json:"dividend_yield"`            // trailingAnnualDividendRate
	ReturnOnAssets          null.Float      `json:"return_on_assets"`          // fraction
}

// RecommendationFields returns the recommendations block in report order.
func (a *AnalystSummary) RecommendationFields() []Field {
	r := a.Recommendations
	return []Field{
		NumberField("previous_split_factor", "Previous Split Factor", KindNumber, r.PreviousSplitFactor),
		NumberField("trailing_eps", "Trailing EPS", KindNumber, r.TrailingEPS),
		TextField("last_split_factor", "Last Split Factor", r.LastSplitFactor),
		DateField("last_split_date", "Last Split Date", r.LastSplitDate),
	}
}

// EarningsFields returns the current-earnings block.
func (a *AnalystSummary) EarningsFields() []Field {
	return []Field{
		NumberField("earnings_quarterly_growth", "Earnings Quarterly Growth", KindPercent, a.EarningsQuarterlyGrowth),
	}
}

// RatioFields returns the trailing ratios printed after the earnings block.
func (a *AnalystSummary) RatioFields() []Field {
	return []Field{
		NumberField("dividend_yield", "Dividend Yield", KindPercent, a.DividendYield),
		NumberField("return_on_assets", "RoA", KindPercent, a.ReturnOnAssets),
	}
}
