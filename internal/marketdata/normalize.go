package marketdata

import (
	"encoding/json"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/guregu/null/v6"

	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
	"github.com/seenimoa/stockinfo/pkg/utils"
)

// --- scalar coercion ---

// toFloat coerces a payload value to a number. Absent, null, non-numeric and
// non-finite values are invalid.
func toFloat(v any) null.Float {
	var f float64
	switch t := v.(type) {
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int32:
		f = float64(t)
	case int64:
		f = float64(t)
	case uint32:
		f = float64(t)
	case uint64:
		f = float64(t)
	case json.Number:
		parsed, err := t.Float64()
		if err != nil {
			return null.Float{}
		}
		f = parsed
	default:
		return null.Float{}
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return null.Float{}
	}
	return null.FloatFrom(f)
}

// toInt coerces a payload value to an integer. Integral floats such as 1.5e9
// are accepted; fractional values are truncated toward zero.
func toInt(v any) null.Int {
	if n, ok := v.(json.Number); ok {
		if i, err := strconv.ParseInt(string(n), 10, 64); err == nil {
			return null.IntFrom(i)
		}
	}
	return floatToInt(toFloat(v))
}

func floatToInt(f null.Float) null.Int {
	if !f.Valid {
		return null.Int{}
	}
	t := math.Trunc(f.Float64)
	if t > math.MaxInt64 || t < math.MinInt64 {
		return null.Int{}
	}
	return null.IntFrom(int64(t))
}

// toString returns a trimmed, non-empty string value.
func toString(v any) null.String {
	s, ok := v.(string)
	if !ok {
		return null.String{}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return null.String{}
	}
	return null.StringFrom(s)
}

// toTime converts epoch seconds to a UTC time.
func toTime(v any) null.Time {
	i := toInt(v)
	if !i.Valid {
		return null.Time{}
	}
	return null.TimeFrom(utils.FromUnix(i.Int64))
}

func ptrFloat(p *float64) null.Float {
	if p == nil {
		return null.Float{}
	}
	return toFloat(*p)
}

// --- payload records ---

// quoteFromPayload maps the flat metadata payload onto a QuoteSnapshot.
func quoteFromPayload(symbol string, p provider.InfoPayload) *models.QuoteSnapshot {
	return &models.QuoteSnapshot{
		Symbol:              symbol,
		Name:                toString(p["shortName"]),
		Sector:              toString(p["sector"]),
		Industry:            toString(p["industry"]),
		MarketCap:           toFloat(p["marketCap"]),
		CurrentPrice:        toFloat(p["currentPrice"]),
		PreviousClose:       toFloat(p["previousClose"]),
		OpenPrice:           toFloat(p["open"]),
		HighPrice:           toFloat(p["dayHigh"]),
		LowPrice:            toFloat(p["dayLow"]),
		Volume:              toInt(p["volume"]),
		AverageDailyVolume:  toInt(p["averageDailyVolume3Month"]),
		FiftyTwoWeekHigh:    toFloat(p["fiftyTwoWeekHigh"]),
		FiftyTwoWeekLow:     toFloat(p["fiftyTwoWeekLow"]),
		SharesOutstanding:   toInt(p["sharesOutstanding"]),
		FloatShares:         toInt(p["floatShares"]),
		Beta:                toFloat(p["beta"]),
		ShortPercentOfFloat: toFloat(p["shortPercentOfFloat"]),
	}
}

// analystFromPayload maps the same payload onto an AnalystSummary.
// previous_split_factor and dividend_yield both read
// trailingAnnualDividendRate.
func analystFromPayload(symbol string, p provider.InfoPayload) *models.AnalystSummary {
	growth := toFloat(p["earningsQuarterlyGrowth"])
	if !growth.Valid {
		growth = toFloat(p["earningsQuarterlyGrowthRate"])
	}
	return &models.AnalystSummary{
		Symbol: symbol,
		Recommendations: models.Recommendations{
			PreviousSplitFactor: toFloat(p["trailingAnnualDividendRate"]),
			TrailingEPS:         toFloat(p["trailingEps"]),
			LastSplitFactor:     toString(p["lastSplitFactor"]),
			LastSplitDate:       toTime(p["lastSplitDate"]),
		},
		EarningsQuarterlyGrowth: growth,
		DividendYield:           toFloat(p["trailingAnnualDividendRate"]),
		ReturnOnAssets:          toFloat(p["returnOnAssets"]),
	}
}

// --- series ---

// barsFromChart builds ascending bars. Rows without any price are dropped and
// a repeated timestamp keeps the row reported last.
func barsFromChart(data *provider.ChartData) []models.PriceBar {
	if data == nil {
		return []models.PriceBar{}
	}
	at := func(col []*float64, i int) *float64 {
		if i < len(col) {
			return col[i]
		}
		return nil
	}

	byTS := make(map[int64]int, len(data.Timestamps))
	bars := make([]models.PriceBar, 0, len(data.Timestamps))
	for i, ts := range data.Timestamps {
		bar := models.PriceBar{
			Timestamp: utils.FromUnix(ts),
			Open:      ptrFloat(at(data.Open, i)),
			High:      ptrFloat(at(data.High, i)),
			Low:       ptrFloat(at(data.Low, i)),
			Close:     ptrFloat(at(data.Close, i)),
			Volume:    floatToInt(ptrFloat(at(data.Volume, i))),
		}
		if !bar.Open.Valid && !bar.High.Valid && !bar.Low.Valid && !bar.Close.Valid {
			continue
		}
		if j, dup := byTS[ts]; dup {
			bars[j] = bar
			continue
		}
		byTS[ts] = len(bars)
		bars = append(bars, bar)
	}

	sort.SliceStable(bars, func(i, j int) bool { return bars[i].Timestamp.Before(bars[j].Timestamp) })
	return bars
}

// dividendsFromChart returns dividend events in ascending order.
func dividendsFromChart(data *provider.ChartData) []models.Event {
	events := []models.Event{}
	if data == nil {
		return events
	}
	for _, d := range data.Dividends {
		amount := ptrFloat(d.Amount)
		if !amount.Valid {
			continue
		}
		events = append(events, models.Event{Timestamp: utils.FromUnix(d.Date), Value: amount.Float64})
	}
	sortEvents(events)
	return events
}

// splitsFromChart returns split ratios (numerator/denominator) in ascending
// order, falling back to the "N:M" display ratio when the parts are missing.
func splitsFromChart(data *provider.ChartData) []models.Event {
	events := []models.Event{}
	if data == nil {
		return events
	}
	for _, s := range data.Splits {
		ratio, ok := splitRatio(s)
		if !ok {
			continue
		}
		events = append(events, models.Event{Timestamp: utils.FromUnix(s.Date), Value: ratio})
	}
	sortEvents(events)
	return events
}

func splitRatio(s provider.RawSplit) (float64, bool) {
	num, den := ptrFloat(s.Numerator), ptrFloat(s.Denominator)
	if num.Valid && den.Valid && den.Float64 != 0 {
		return num.Float64 / den.Float64, true
	}
	parts := strings.SplitN(s.Ratio, ":", 2)
	if len(parts) != 2 {
		parts = strings.SplitN(s.Ratio, "/", 2)
	}
	if len(parts) != 2 {
		return 0, false
	}
	n, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	d, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0, false
	}
	return n / d, true
}

func sortEvents(events []models.Event) {
	sort.SliceStable(events, func(i, j int) bool { return events[i].Timestamp.Before(events[j].Timestamp) })
}

// statementFromData pivots line-item series into a table with periods newest
// first. Line items with no reported value are dropped.
func statementFromData(kind models.StatementKind, freq models.Frequency, data *provider.StatementData) models.FinancialStatement {
	st := models.FinancialStatement{
		Kind:      kind,
		Frequency: freq,
		Periods:   []time.Time{},
		Items:     []models.LineItem{},
	}
	if data == nil {
		return st
	}

	seen := make(map[time.Time]bool)
	for _, line := range data.Lines {
		for _, pt := range line.Points {
			if !ptrFloat(pt.Value).Valid || seen[pt.AsOf] {
				continue
			}
			seen[pt.AsOf] = true
			st.Periods = append(st.Periods, pt.AsOf)
		}
	}
	sort.Slice(st.Periods, func(i, j int) bool { return st.Periods[i].After(st.Periods[j]) })

	col := make(map[time.Time]int, len(st.Periods))
	for i, p := range st.Periods {
		col[p] = i
	}

	for _, line := range data.Lines {
		item := models.LineItem{
			Label:  utils.SplitCamel(line.Key),
			Values: make([]null.Float, len(st.Periods)),
		}
		reported := false
		for _, pt := range line.Points {
			v := ptrFloat(pt.Value)
			if !v.Valid {
				continue
			}
			item.Values[col[pt.AsOf]] = v
			reported = true
		}
		if reported {
			st.Items = append(st.Items, item)
		}
	}
	return st
}
