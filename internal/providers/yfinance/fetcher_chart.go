package yfinance

import (
	"context"
	"fmt"
	"net/url"
	"sort"

	"github.com/seenimoa/stockinfo/internal/provider"
)

// Chart returns the price series for symbol, with dividends and splits when
// q.Events is set. A symbol with no trading in the window yields empty data.
func (p *Provider) Chart(ctx context.Context, symbol string, q provider.ChartQuery) (*provider.ChartData, error) {
	v := url.Values{}
	v.Set("range", q.Range)
	v.Set("interval", q.Interval)
	if q.Events {
		v.Set("events", "div,splits")
	}
	u := fmt.Sprintf("%s/v8/finance/chart/%s?%s", p.baseURL, symbolPath(symbol), v.Encode())

	var resp yfChartResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, p.classify("chart", symbol, err)
	}
	if resp.Chart.Error != nil {
		return nil, p.classify("chart", symbol, resp.Chart.Error)
	}

	data := &provider.ChartData{Symbol: symbol}
	if len(resp.Chart.Result) == 0 {
		return data, nil
	}
	parseChart(resp.Chart.Result[0], data)
	return data, nil
}

// parseChart copies the columnar series into data, padding short columns
// with nil so every column is aligned with the timestamps.
func parseChart(result yfChartResult, data *provider.ChartData) {
	n := len(result.Timestamp)
	data.Timestamps = append([]int64(nil), result.Timestamp...)

	var q yfOHLCV
	if len(result.Indicators.Quote) > 0 {
		q = result.Indicators.Quote[0]
	}
	data.Open = align(q.Open, n)
	data.High = align(q.High, n)
	data.Low = align(q.Low, n)
	data.Close = align(q.Close, n)
	data.Volume = align(q.Volume, n)

	if result.Events == nil {
		return
	}
	for _, d := range result.Events.Dividends {
		data.Dividends = append(data.Dividends, provider.RawDividend{Date: d.Date, Amount: d.Amount})
	}
	sort.Slice(data.Dividends, func(i, j int) bool { return data.Dividends[i].Date < data.Dividends[j].Date })

	for _, s := range result.Events.Splits {
		data.Splits = append(data.Splits, provider.RawSplit{
			Date:        s.Date,
			Numerator:   s.Numerator,
			Denominator: s.Denominator,
			Ratio:       s.Ratio,
		})
	}
	sort.Slice(data.Splits, func(i, j int) bool { return data.Splits[i].Date < data.Splits[j].Date })
}

func align(col []*float64, n int) []*float64 {
	out := make([]*float64, n)
	copy(out, col)
	return out
}
