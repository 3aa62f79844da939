// Package models defines the record types produced by the market-data client
// and consumed by the report renderer.
package models

import (
	"github.com/guregu/null/v6"
)

// QuoteSnapshot is the normalized metadata for a single symbol.
// Every field other than Symbol is optional; an invalid null value means the
// provider did not report it.
type QuoteSnapshot struct {
	Symbol   string      `json:"symbol"`
	Name     null.String `json:"name"`
	Sector   null.String `json:"sector"`
	Industry null.String `json:"industry"`

	MarketCap     null.Float `json:"market_cap"`
	CurrentPrice  null.Float `json:"current_price"`
	PreviousClose null.Float `json:"previous_close"`
	OpenPrice     null.Float `json:"open_price"`
	HighPrice     null.Float `json:"high_price"`
	LowPrice      null.Float `json:"low_price"`

	Volume             null.Int `json:"volume"`
	AverageDailyVolume null.Int `json:"average_daily_volume"`

	FiftyTwoWeekHigh null.Float `json:"fifty_two_week_high"`
	FiftyTwoWeekLow  null.Float `json:"fifty_two_week_low"`

	SharesOutstanding null.Int `json:"shares_outstanding"`
	FloatShares       null.Int `json:"float_shares"`

	Beta                null.Float `json:"beta"`
	ShortPercentOfFloat null.Float `json:"short_percent_of_float"` // fraction, 0..1
}

// Fields returns the snapshot as display fields, in report order.
func (q *QuoteSnapshot) Fields() []Field {
	return []Field{
		TextField("symbol", "Symbol", null.StringFrom(q.Symbol)),
		TextField("name", "Name", q.Name),
		TextField("sector", "Sector", q.Sector),
		TextField("industry", "Industry", q.Industry),
		NumberField("market_cap", "Market Cap", KindCurrency, q.MarketCap),
		NumberField("current_price", "Current Price", KindCurrency, q.CurrentPrice),
		NumberField("previous_close", "Previous Close", KindCurrency, q.PreviousClose),
		NumberField("open_price", "Open Price", KindCurrency, q.OpenPrice),
		NumberField("high_price", "High Price", KindCurrency, q.HighPrice),
		NumberField("low_price", "Low Price", KindCurrency, q.LowPrice),
		IntField("volume", "Volume", KindCount, q.Volume),
		IntField("average_daily_volume", "Average Daily Volume", KindCount, q.AverageDailyVolume),
		NumberField("fifty_two_week_high", "52 Week High", KindCurrency, q.FiftyTwoWeekHigh),
		NumberField("fifty_two_week_low", "52 Week Low", KindCurrency, q.FiftyTwoWeekLow),
		IntField("shares_outstanding", "Shares Outstanding", KindBillions, q.SharesOutstanding),
		IntField("float_shares", "Float", KindBillions, q.FloatShares),
		NumberField("beta", "Beta", KindMultiplier, q.Beta),
		NumberField("short_percent_of_float", "Short % of Float", KindPercent, q.ShortPercentOfFloat),
	}
}

// Change returns the move from the previous close to the current price, as an
// amount and as a percentage. Both are absent unless both prices are present
// and the previous close is non-zero.
func (q *QuoteSnapshot) Change() (amount, pct null.Float) {
	if !q.CurrentPrice.Valid || !q.PreviousClose.Valid || q.PreviousClose.Float64 == 0 {
		return null.Float{}, null.Float{}
	}
	diff := q.CurrentPrice.Float64 - q.PreviousClose.Float64
	return null.FloatFrom(diff), null.FloatFrom(diff / q.PreviousClose.Float64 * 100)
}
