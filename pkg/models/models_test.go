package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/guregu/null/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFieldPresent(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  bool
	}{
		{"text set", TextField("name", "Name", null.StringFrom("Apple")), true},
		{"text absent", TextField("name", "Name", null.String{}), false},
		{"number zero", NumberField("beta", "Beta", KindMultiplier, null.FloatFrom(0)), true},
		{"number absent", NumberField("beta", "Beta", KindMultiplier, null.Float{}), false},
		{"int zero", IntField("volume", "Volume", KindCount, null.IntFrom(0)), true},
		{"int absent", IntField("volume", "Volume", KindCount, null.Int{}), false},
		{"date set", DateField("d", "D", null.TimeFrom(time.Unix(0, 0))), true},
		{"date absent", DateField("d", "D", null.Time{}), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.field.Present())
		})
	}
}

func TestQuoteFieldsOrder(t *testing.T) {
	q := &QuoteSnapshot{Symbol: "AAPL", Volume: null.IntFrom(10)}

	fields := q.Fields()

	require.Len(t, fields, 18)
	assert.Equal(t, "symbol", fields[0].Key)
	assert.Equal(t, "AAPL", fields[0].Text.String)
	assert.Equal(t, "short_percent_of_float", fields[len(fields)-1].Key)
	for _, f := range fields {
		if f.Key == "volume" {
			assert.Equal(t, KindCount, f.Kind)
			assert.Equal(t, 10.0, f.Number.Float64)
		}
	}
}

func TestQuoteChange(t *testing.T) {
	q := &QuoteSnapshot{CurrentPrice: null.FloatFrom(110), PreviousClose: null.FloatFrom(100)}
	amount, pct := q.Change()
	require.True(t, amount.Valid)
	assert.InDelta(t, 10.0, amount.Float64, 1e-9)
	assert.InDelta(t, 10.0, pct.Float64, 1e-9)

	q.PreviousClose = null.FloatFrom(0)
	amount, pct = q.Change()
	assert.False(t, amount.Valid)
	assert.False(t, pct.Valid)

	q.PreviousClose = null.Float{}
	amount, _ = q.Change()
	assert.False(t, amount.Valid)
}

func TestQuoteAbsentMarshalsAsNull(t *testing.T) {
	q := QuoteSnapshot{Symbol: "X", Beta: null.FloatFrom(0)}

	data, err := json.Marshal(q)

	require.NoError(t, err)
	assert.Contains(t, string(data), `"beta":0`)
	assert.Contains(t, string(data), `"market_cap":null`)
}

func TestFieldAbsentMarshalsAsNull(t *testing.T) {
	f := NumberField("beta", "Beta", KindMultiplier, null.Float{})

	data, err := json.Marshal(f)

	require.NoError(t, err)
	assert.JSONEq(t, `{"key":"beta","label":"Beta","kind":"multiplier","text":null,"number":null,"time":null}`, string(data))
}

func TestParsePeriodAndInterval(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, Period1Year, p)

	p, err = ParsePeriod("ytd")
	require.NoError(t, err)
	assert.Equal(t, PeriodYTD, p)

	_, err = ParsePeriod("7d")
	assert.Error(t, err)

	iv, err := ParseInterval("")
	require.NoError(t, err)
	assert.Equal(t, Interval1Day, iv)

	_, err = ParseInterval("2h")
	assert.Error(t, err)
}

func TestIntervalIntraday(t *testing.T) {
	assert.True(t, Interval1Min.Intraday())
	assert.True(t, Interval1Hour.Intraday())
	assert.False(t, Interval1Day.Intraday())
	assert.False(t, Interval3Mon.Intraday())
}

func TestPriceSeriesSpan(t *testing.T) {
	var s PriceSeries
	_, _, ok := s.Span()
	assert.False(t, ok)

	t1 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	t2 := t1.AddDate(0, 0, 1)
	s.Bars = []PriceBar{{Timestamp: t1}, {Timestamp: t2}}
	first, last, ok := s.Span()
	require.True(t, ok)
	assert.Equal(t, t1, first)
	assert.Equal(t, t2, last)
	assert.Equal(t, 2, s.Len())
}

func TestStatementHelpers(t *testing.T) {
	st := FinancialStatement{Kind: StatementIncome}
	assert.True(t, st.Empty())

	st.Periods = []time.Time{time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)}
	st.Items = []LineItem{{Label: "Total Revenue", Values: []null.Float{null.FloatFrom(1)}}}
	assert.False(t, st.Empty())

	it, ok := st.Item("Total Revenue")
	require.True(t, ok)
	assert.Equal(t, 1.0, it.Values[0].Float64)
	_, ok = st.Item("Missing")
	assert.False(t, ok)

	assert.Equal(t, "Income Statement", StatementIncome.Title())
	assert.Equal(t, "Balance Sheet", StatementBalance.Title())
	assert.Equal(t, "Cash Flow Statement", StatementCashFlow.Title())

	set := FinancialStatementSet{}
	stmts := set.Statements()
	require.Len(t, stmts, 3)
	assert.Same(t, &set.Income, stmts[0])
	assert.Same(t, &set.CashFlow, stmts[2])
}

func TestAnalystFieldBlocks(t *testing.T) {
	a := &AnalystSummary{
		Recommendations: Recommendations{LastSplitFactor: null.StringFrom("4:1")},
		ReturnOnAssets:  null.FloatFrom(0.21),
	}

	rec := a.RecommendationFields()
	require.Len(t, rec, 4)
	assert.Equal(t, "Last Split Factor", rec[2].Label)
	assert.True(t, rec[2].Present())
	assert.False(t, rec[0].Present())

	earn := a.EarningsFields()
	require.Len(t, earn, 1)
	assert.Equal(t, KindPercent, earn[0].Kind)

	ratios := a.RatioFields()
	require.Len(t, ratios, 2)
	assert.Equal(t, "RoA", ratios[1].Label)
	assert.True(t, ratios[1].Present())
}
