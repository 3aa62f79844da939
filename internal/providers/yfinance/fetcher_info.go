package yfinance

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog"

	"github.com/seenimoa/stockinfo/internal/provider"
)

// summaryModules are requested in this order; when two modules carry the same
// key the earlier one wins.
var summaryModules = []string{
	"price",
	"summaryDetail",
	"defaultKeyStatistics",
	"financialData",
	"assetProfile",
	"quoteType",
}

// Lookup returns the flattened quoteSummary payload for symbol.
func (p *Provider) Lookup(ctx context.Context, symbol string) (provider.InfoPayload, error) {
	payload, err := p.lookup(ctx, symbol)
	if err != nil && isStatus(err, http.StatusUnauthorized) {
		zerolog.Ctx(ctx).Debug().Str("provider", providerName).Msg("crumb rejected, refreshing session")
		p.session.reset()
		payload, err = p.lookup(ctx, symbol)
	}
	if err != nil {
		return nil, p.classify("lookup", symbol, err)
	}
	return payload, nil
}

func (p *Provider) lookup(ctx context.Context, symbol string) (provider.InfoPayload, error) {
	crumb, err := p.session.crumb(ctx)
	if err != nil {
		return nil, p.Upstream("session", err)
	}

	u := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?modules=%s&crumb=%s",
		p.baseURL, symbolPath(symbol), strings.Join(summaryModules, ","), url.QueryEscape(crumb))

	var resp yfQuoteSummaryResponse
	if err := p.fetchJSON(ctx, u, &resp); err != nil {
		return nil, err
	}
	if resp.QuoteSummary.Error != nil {
		return nil, resp.QuoteSummary.Error
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, &provider.NotFoundError{Symbol: symbol, Detail: "empty quoteSummary result"}
	}

	payload := flattenModules(resp.QuoteSummary.Result[0])
	if len(payload) == 0 {
		return nil, &provider.NotFoundError{Symbol: symbol, Detail: "no fields returned"}
	}
	return payload, nil
}

// flattenModules merges the module maps into one payload.
// {"raw": x, "fmt": ...} becomes x; empty objects and nulls are dropped.
func flattenModules(result map[string]map[string]any) provider.InfoPayload {
	out := make(provider.InfoPayload)
	for _, mod := range summaryModules {
		for k, v := range result[mod] {
			if _, seen := out[k]; seen {
				continue
			}
			if val, ok := flattenValue(v); ok {
				out[k] = val
			}
		}
	}
	return out
}

func flattenValue(v any) (any, bool) {
	switch t := v.(type) {
	case nil:
		return nil, false
	case map[string]any:
		raw, ok := t["raw"]
		if !ok || raw == nil {
			return nil, false
		}
		return raw, true
	default:
		return v, true
	}
}
