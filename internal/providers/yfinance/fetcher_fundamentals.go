package yfinance

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/seenimoa/stockinfo/internal/provider"
	"github.com/seenimoa/stockinfo/pkg/models"
)

// timeseriesStart is the earliest period1 the timeseries endpoint accepts.
const timeseriesStart = 493590046

// statementKeys lists the line items requested per statement, in display order.
var statementKeys = map[models.StatementKind][]string{
	models.StatementIncome: {
		"TotalRevenue",
		"CostOfRevenue",
		"GrossProfit",
		"OperatingExpense",
		"ResearchAndDevelopment",
		"SellingGeneralAndAdministration",
		"OperatingIncome",
		"InterestExpense",
		"PretaxIncome",
		"TaxProvision",
		"NetIncome",
		"DilutedEPS",
		"BasicEPS",
		"EBITDA",
		"EBIT",
		"DilutedAverageShares",
	},
	models.StatementBalance: {
		"TotalAssets",
		"CurrentAssets",
		"CashAndCashEquivalents",
		"Inventory",
		"AccountsReceivable",
		"NetPPE",
		"Goodwill",
		"TotalLiabilitiesNetMinorityInterest",
		"CurrentLiabilities",
		"AccountsPayable",
		"LongTermDebt",
		"TotalDebt",
		"StockholdersEquity",
		"RetainedEarnings",
		"OrdinarySharesNumber",
		"WorkingCapital",
	},
	models.StatementCashFlow: {
		"OperatingCashFlow",
		"InvestingCashFlow",
		"FinancingCashFlow",
		"CapitalExpenditure",
		"FreeCashFlow",
		"CashDividendsPaid",
		"RepurchaseOfCapitalStock",
		"IssuanceOfDebt",
		"RepaymentOfDebt",
		"EndCashPosition",
		"DepreciationAndAmortization",
		"StockBasedCompensation",
	},
}

// Statement returns one statement's line items from the fundamentals
// timeseries endpoint. A statement the provider has no data for comes back
// with no lines.
func (p *Provider) Statement(ctx context.Context, symbol string, kind models.StatementKind, freq models.Frequency) (*provider.StatementData, error) {
	keys, ok := statementKeys[kind]
	if !ok {
		return nil, &provider.InvalidParamError{
			Param:   "statement",
			Value:   string(kind),
			Allowed: []string{string(models.StatementIncome), string(models.StatementBalance), string(models.StatementCashFlow)},
		}
	}
	if freq != models.FrequencyQuarterly && freq != models.FrequencyAnnual {
		return nil, &provider.InvalidParamError{
			Param:   "frequency",
			Value:   string(freq),
			Allowed: []string{string(models.FrequencyQuarterly), string(models.FrequencyAnnual)},
		}
	}

	prefix := string(freq)
	types := make([]string, len(keys))
	for i, k := range keys {
		types[i] = prefix + k
	}

	v := url.Values{}
	v.Set("symbol", symbol)
	v.Set("type", strings.Join(types, ","))
	v.Set("period1", strconv.FormatInt(timeseriesStart, 10))
	v.Set("period2", strconv.FormatInt(p.now().Unix(), 10))
	u := fmt.Sprintf("%s/ws/fundamentals-timeseries/v1/finance/timeseries/%s?%s",
		p.baseURL, symbolPath(symbol), v.Encode())

	var resp yfTimeseriesResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, p.classify("statement", symbol, err)
	}
	if resp.Timeseries.Error != nil {
		return nil, p.classify("statement", symbol, resp.Timeseries.Error)
	}

	byKey, err := parseTimeseries(resp.Timeseries.Result, prefix)
	if err != nil {
		return nil, p.Upstream("statement", err)
	}

	data := &provider.StatementData{Symbol: symbol, Kind: kind, Frequency: freq}
	for _, k := range keys {
		if pts := byKey[k]; len(pts) > 0 {
			data.Lines = append(data.Lines, provider.StatementLine{Key: k, Points: pts})
		}
	}
	zerolog.Ctx(ctx).Debug().
		Str("provider", providerName).
		Str("statement", string(kind)).
		Int("lines", len(data.Lines)).
		Msg("statement parsed")
	return data, nil
}

// parseTimeseries groups the reported points by line-item key with the
// frequency prefix removed. Null entries and undated points are skipped.
func parseTimeseries(results []map[string]json.RawMessage, prefix string) (map[string][]provider.StatementPoint, error) {
	byKey := make(map[string][]provider.StatementPoint)
	for _, res := range results {
		var meta yfTimeseriesMeta
		if raw, ok := res["meta"]; ok {
			if err := json.Unmarshal(raw, &meta); err != nil {
				return nil, fmt.Errorf("parse timeseries meta: %w", err)
			}
		}
		if len(meta.Type) == 0 {
			continue
		}
		typ := meta.Type[0]
		raw, ok := res[typ]
		if !ok {
			continue
		}

		var points []*yfTimeseriesPoint
		if err := json.Unmarshal(raw, &points); err != nil {
			return nil, fmt.Errorf("parse timeseries %s: %w", typ, err)
		}

		key := strings.TrimPrefix(typ, prefix)
		for _, pt := range points {
			if pt == nil {
				continue
			}
			asOf, err := time.Parse("2006-01-02", pt.AsOfDate)
			if err != nil {
				continue
			}
			byKey[key] = append(byKey[key], provider.StatementPoint{AsOf: asOf, Value: pt.ReportedValue.Raw})
		}
	}
	return byKey, nil
}
