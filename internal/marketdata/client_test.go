package marketdata

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
)

func newMockProvider(t *testing.T) *MockProvider {
	t.Helper()
	ctrl := gomock.NewController(t)
	p := NewMockProvider(ctrl)
	p.EXPECT().Info().Return(provider.ProviderInfo{Name: "mock"}).AnyTimes()
	return p
}

// applePayload mixes decoded JSON numbers and plain floats the way real
// payloads do.
func applePayload() provider.InfoPayload {
	return provider.InfoPayload{
		"shortName":                  "Apple Inc.",
		"sector":                     "Technology",
		"industry":                   "Consumer Electronics",
		"marketCap":                  json.Number("3500000000000"),
		"currentPrice":               230.1,
		"previousClose":              json.Number("228.5"),
		"open":                       229.0,
		"dayHigh":                    231.2,
		"dayLow":                     227.9,
		"volume":                     json.Number("48000000"),
		"averageDailyVolume3Month":   5.5e7,
		"fiftyTwoWeekHigh":           237.23,
		"fiftyTwoWeekLow":            164.08,
		"sharesOutstanding":          json.Number("15204100000"),
		"floatShares":                1.5179e10,
		"beta":                       1.24,
		"shortPercentOfFloat":        0.0072,
		"trailingAnnualDividendRate": 0.98,
		"trailingEps":                6.57,
		"lastSplitFactor":            "4:1",
		"lastSplitDate":              json.Number("1598832000"),
		"earningsQuarterlyGrowth":    -0.336,
		"returnOnAssets":             0.2146,
	}
}

func TestQuoteMapsEveryField(t *testing.T) {
	t.Parallel()

	// Arrange
	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "AAPL").Return(applePayload(), nil)
	c := New(p)

	// Act
	q, err := c.Quote(context.Background(), " aapl ")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "AAPL", q.Symbol)
	assert.Equal(t, "Apple Inc.", q.Name.String)
	assert.Equal(t, "Technology", q.Sector.String)
	assert.InDelta(t, 3.5e12, q.MarketCap.Float64, 1)
	assert.InDelta(t, 230.1, q.CurrentPrice.Float64, 1e-9)
	assert.InDelta(t, 228.5, q.PreviousClose.Float64, 1e-9)
	assert.InDelta(t, 229.0, q.OpenPrice.Float64, 1e-9)
	assert.InDelta(t, 231.2, q.HighPrice.Float64, 1e-9)
	assert.InDelta(t, 227.9, q.LowPrice.Float64, 1e-9)
	assert.Equal(t, int64(48000000), q.Volume.Int64)
	assert.Equal(t, int64(55000000), q.AverageDailyVolume.Int64)
	assert.Equal(t, int64(15204100000), q.SharesOutstanding.Int64)
	assert.Equal(t, int64(15179000000), q.FloatShares.Int64)
	assert.InDelta(t, 1.24, q.Beta.Float64, 1e-9)
	assert.InDelta(t, 0.0072, q.ShortPercentOfFloat.Float64, 1e-12)

	for _, f := range q.Fields() {
		assert.True(t, f.Present(), f.Key)
	}
}

func TestQuoteMissingFieldsAreAbsent(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "NEWCO").Return(provider.InfoPayload{
		"shortName": "NewCo",
		"volume":    json.Number("0"),
		"beta":      nil,
		"marketCap": "n/a",
	}, nil)
	c := New(p)

	q, err := c.Quote(context.Background(), "NEWCO")
	require.NoError(t, err)

	assert.True(t, q.Name.Valid)
	assert.True(t, q.Volume.Valid, "zero is a value")
	assert.Equal(t, int64(0), q.Volume.Int64)
	assert.False(t, q.Beta.Valid)
	assert.False(t, q.MarketCap.Valid, "non-numeric counts as absent")
	assert.False(t, q.Sector.Valid)
	assert.False(t, q.ShortPercentOfFloat.Valid)
	assert.False(t, q.SharesOutstanding.Valid)
}

func TestQuoteNotFound(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "ZZZZ").Return(nil, &provider.NotFoundError{Symbol: "ZZZZ"})
	c := New(p)

	_, err := c.Quote(context.Background(), "ZZZZ")
	require.Error(t, err)
	assert.True(t, provider.IsNotFound(err))
	assert.False(t, provider.IsUpstream(err))
}

func TestQuoteEmptyPayloadIsNotFound(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "ZZZZ").Return(provider.InfoPayload{}, nil)
	c := New(p)

	_, err := c.Quote(context.Background(), "ZZZZ")
	assert.True(t, provider.IsNotFound(err))
}

func TestQuoteWrapsUnclassifiedErrors(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "AAPL").Return(nil, errors.New("connection reset by peer"))
	c := New(p)

	_, err := c.Quote(context.Background(), "AAPL")
	require.Error(t, err)
	var up *provider.UpstreamError
	require.ErrorAs(t, err, &up)
	assert.Equal(t, "mock", up.Provider)
	assert.Contains(t, err.Error(), "connection reset by peer")
}

func TestQuoteTimeout(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "AAPL").DoAndReturn(func(ctx context.Context, _ string) (provider.InfoPayload, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})
	c := New(p, WithTimeout(20*time.Millisecond))

	start := time.Now()
	_, err := c.Quote(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, provider.IsUpstream(err))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestQuoteRejectsBlankSymbol(t *testing.T) {
	t.Parallel()

	c := New(newMockProvider(t))
	_, err := c.Quote(context.Background(), "  $ ")
	var invalid *provider.InvalidParamError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "symbol", invalid.Param)
}

func TestQuotePassesUnusualSymbolsToProvider(t *testing.T) {
	t.Parallel()

	for _, symbol := range []string{"BRK B", "AB/C", "FOO?"} {
		t.Run(symbol, func(t *testing.T) {
			// Arrange
			p := newMockProvider(t)
			p.EXPECT().Lookup(gomock.Any(), symbol).Return(nil, &provider.NotFoundError{Symbol: symbol})
			c := New(p)

			// Act
			_, err := c.Quote(context.Background(), " "+symbol)

			// Assert
			require.Error(t, err)
			assert.True(t, provider.IsNotFound(err))
		})
	}
}

func TestAnalystsMapping(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "AAPL").Return(applePayload(), nil)
	c := New(p)

	a, err := c.Analysts(context.Background(), "AAPL")
	require.NoError(t, err)

	assert.InDelta(t, 0.98, a.Recommendations.PreviousSplitFactor.Float64, 1e-9)
	assert.InDelta(t, 6.57, a.Recommendations.TrailingEPS.Float64, 1e-9)
	assert.Equal(t, "4:1", a.Recommendations.LastSplitFactor.String)
	assert.Equal(t, time.Date(2020, 8, 31, 0, 0, 0, 0, time.UTC), a.Recommendations.LastSplitDate.Time)
	assert.InDelta(t, -0.336, a.EarningsQuarterlyGrowth.Float64, 1e-9)
	assert.InDelta(t, 0.98, a.DividendYield.Float64, 1e-9)
	assert.InDelta(t, 0.2146, a.ReturnOnAssets.Float64, 1e-9)
}

func TestAnalystsGrowthFallbackKey(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "MSFT").Return(provider.InfoPayload{
		"shortName":                   "Microsoft",
		"earningsQuarterlyGrowthRate": 0.1,
	}, nil)
	c := New(p)

	a, err := c.Analysts(context.Background(), "MSFT")
	require.NoError(t, err)
	assert.InDelta(t, 0.1, a.EarningsQuarterlyGrowth.Float64, 1e-9)
	assert.False(t, a.ReturnOnAssets.Valid)
	assert.False(t, a.Recommendations.LastSplitDate.Valid)
}

func TestOverviewUsesOneLookup(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Lookup(gomock.Any(), "AAPL").Return(applePayload(), nil).Times(1)
	c := New(p)

	q, a, err := c.Overview(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, "Apple Inc.", q.Name.String)
	assert.Equal(t, "AAPL", a.Symbol)
}

func TestHistoryDefaultsAndOrdering(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().
		Chart(gomock.Any(), "AAPL", provider.ChartQuery{Range: "1y", Interval: "1d"}).
		Return(&provider.ChartData{
			Timestamps: []int64{1704378600, 1704205800},
			Open:       []*float64{fp(182.15), fp(187.15)},
			High:       []*float64{fp(183.09), fp(188.44)},
			Low:        []*float64{fp(180.88), fp(183.89)},
			Close:      []*float64{fp(181.91), fp(185.64)},
			Volume:     []*float64{fp(71983600), fp(82488700)},
		}, nil)
	c := New(p)

	s, err := c.History(context.Background(), "AAPL", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.Period1Year, s.Period)
	assert.Equal(t, models.Interval1Day, s.Interval)
	require.Equal(t, 2, s.Len())
	assert.True(t, s.Bars[0].Timestamp.Before(s.Bars[1].Timestamp))
	assert.Equal(t, int64(82488700), s.Bars[0].Volume.Int64)
}

func TestHistoryRejectsUnknownValuesBeforeRequest(t *testing.T) {
	t.Parallel()

	// no Chart expectation: any call fails the test
	c := New(newMockProvider(t))

	_, err := c.History(context.Background(), "AAPL", "7y", "1d")
	var invalid *provider.InvalidParamError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "period", invalid.Param)

	_, err = c.History(context.Background(), "AAPL", "1y", "2h")
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "interval", invalid.Param)
}

func TestHistoryNotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Chart(gomock.Any(), "ZZZZ", gomock.Any()).Return(nil, &provider.NotFoundError{Symbol: "ZZZZ"})
	c := New(p)

	s, err := c.History(context.Background(), "ZZZZ", models.Period5Day, models.Interval1Hour)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.Bars)
}

func TestHistoryUpstreamRejection(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Chart(gomock.Any(), "AAPL", provider.ChartQuery{Range: "max", Interval: "1m"}).
		Return(nil, &provider.UpstreamError{Provider: "mock", Op: "chart", Err: errors.New("HTTP 422")})
	c := New(p)

	_, err := c.History(context.Background(), "AAPL", models.PeriodMax, models.Interval1Min)
	assert.True(t, provider.IsUpstream(err))
}

func TestDividends(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().
		Chart(gomock.Any(), "KO", provider.ChartQuery{Range: "max", Interval: "1mo", Events: true}).
		Return(&provider.ChartData{Dividends: []provider.RawDividend{
			{Date: 1700000000, Amount: fp(0.46)},
			{Date: 1600000000, Amount: fp(0.41)},
		}}, nil)
	c := New(p)

	s, err := c.Dividends(context.Background(), "KO")
	require.NoError(t, err)
	assert.Equal(t, models.EventDividend, s.Kind)
	require.Equal(t, 2, s.Len())
	assert.InDelta(t, 0.41, s.Events[0].Value, 1e-9)
}

func TestDividendsNeverPaidIsEmpty(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Chart(gomock.Any(), "TSLA", gomock.Any()).Return(&provider.ChartData{}, nil)
	c := New(p)

	s, err := c.Dividends(context.Background(), "TSLA")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.NotNil(t, s.Events)
}

func TestSplits(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Chart(gomock.Any(), "AAPL", gomock.Any()).Return(&provider.ChartData{Splits: []provider.RawSplit{
		{Date: 1598880600, Numerator: fp(4), Denominator: fp(1), Ratio: "4:1"},
		{Date: 1402321200, Numerator: fp(7), Denominator: fp(1), Ratio: "7:1"},
	}}, nil)
	c := New(p)

	s, err := c.Splits(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, models.EventSplit, s.Kind)
	require.Equal(t, 2, s.Len())
	assert.InDelta(t, 7, s.Events[0].Value, 1e-9)
	assert.InDelta(t, 4, s.Events[1].Value, 1e-9)
}

func TestSplitsNotFoundIsEmpty(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Chart(gomock.Any(), "ZZZZ", gomock.Any()).Return(nil, &provider.NotFoundError{Symbol: "ZZZZ"})
	c := New(p)

	s, err := c.Splits(context.Background(), "ZZZZ")
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func statement(key string, asOf time.Time, v float64) *provider.StatementData {
	return &provider.StatementData{Lines: []provider.StatementLine{
		{Key: key, Points: []provider.StatementPoint{{AsOf: asOf, Value: fp(v)}}},
	}}
}

func TestFinancialsMissingStatementIsEmpty(t *testing.T) {
	t.Parallel()

	q := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	p := newMockProvider(t)
	gomock.InOrder(
		p.EXPECT().Statement(gomock.Any(), "AAPL", models.StatementIncome, models.FrequencyQuarterly).
			Return(statement("TotalRevenue", q, 85.7e9), nil),
		p.EXPECT().Statement(gomock.Any(), "AAPL", models.StatementBalance, models.FrequencyQuarterly).
			Return(nil, &provider.NotFoundError{Symbol: "AAPL"}),
		p.EXPECT().Statement(gomock.Any(), "AAPL", models.StatementCashFlow, models.FrequencyQuarterly).
			Return(statement("FreeCashFlow", q, 26.7e9), nil),
	)
	c := New(p)

	set, err := c.Financials(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, models.FrequencyQuarterly, set.Frequency)
	assert.False(t, set.Income.Empty())
	assert.True(t, set.Balance.Empty())
	assert.Equal(t, models.StatementBalance, set.Balance.Kind)
	assert.False(t, set.CashFlow.Empty())
	assert.Equal(t, "Free Cash Flow", set.CashFlow.Items[0].Label)
}

func TestFinancialsAnnual(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Statement(gomock.Any(), "AAPL", gomock.Any(), models.FrequencyAnnual).
		Return(&provider.StatementData{}, nil).Times(3)
	c := New(p, WithFrequency(models.FrequencyAnnual))

	set, err := c.Financials(context.Background(), "AAPL")
	require.NoError(t, err)
	assert.Equal(t, models.FrequencyAnnual, set.Frequency)
	for _, st := range set.Statements() {
		assert.True(t, st.Empty())
	}
}

func TestFinancialsUpstreamFailure(t *testing.T) {
	t.Parallel()

	q := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	p := newMockProvider(t)
	p.EXPECT().Statement(gomock.Any(), "AAPL", models.StatementIncome, gomock.Any()).
		Return(statement("TotalRevenue", q, 1), nil)
	p.EXPECT().Statement(gomock.Any(), "AAPL", models.StatementBalance, gomock.Any()).
		Return(nil, errors.New("HTTP 500"))
	c := New(p)

	_, err := c.Financials(context.Background(), "AAPL")
	require.Error(t, err)
	assert.True(t, provider.IsUpstream(err))
}

// newsProvider combines the two mocks into a provider with headlines.
type newsProvider struct {
	*MockProvider
	*MockNewsProvider
}

func TestHeadlines(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	base := NewMockProvider(ctrl)
	news := NewMockNewsProvider(ctrl)
	news.EXPECT().Headlines(gomock.Any(), "AAPL", 2).Return([]models.Headline{
		{Title: "one"}, {Title: "two"}, {Title: "three"},
	}, nil)
	c := New(newsProvider{base, news})

	items, err := c.Headlines(context.Background(), "aapl", 2)
	require.NoError(t, err)
	assert.Len(t, items, 2, "limit enforced")
}

func TestHeadlinesNotSupported(t *testing.T) {
	t.Parallel()

	c := New(newMockProvider(t))
	_, err := c.Headlines(context.Background(), "AAPL", 5)
	assert.ErrorIs(t, err, provider.ErrNotSupported)
}

// newsWithoutCapability implements headlines but does not declare CapNews.
type newsWithoutCapability struct {
	newsProvider
}

func (newsWithoutCapability) Supports(c provider.Capability) bool {
	return c != provider.CapNews
}

func TestHeadlinesRequiresNewsCapability(t *testing.T) {
	t.Parallel()

	// no Headlines expectation: any call fails the test
	ctrl := gomock.NewController(t)
	c := New(newsWithoutCapability{newsProvider{NewMockProvider(ctrl), NewMockNewsProvider(ctrl)}})

	_, err := c.Headlines(context.Background(), "AAPL", 5)
	assert.ErrorIs(t, err, provider.ErrNotSupported)
}

func TestPing(t *testing.T) {
	t.Parallel()

	p := newMockProvider(t)
	p.EXPECT().Ping(gomock.Any()).Return(nil)
	c := New(p)

	require.NoError(t, c.Ping(context.Background()))
	assert.Equal(t, "mock", c.ProviderInfo().Name)
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, models.FrequencyQuarterly, c.Frequency())
}

func TestOptionsIgnoreZeroValues(t *testing.T) {
	t.Parallel()

	c := New(newMockProvider(t), WithTimeout(0), WithFrequency(""))
	assert.Equal(t, DefaultTimeout, c.Timeout())
	assert.Equal(t, models.FrequencyQuarterly, c.Frequency())
}
