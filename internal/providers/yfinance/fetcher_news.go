package yfinance

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/guregu/null/v6"
	"github.com/mmcdole/gofeed"

	"github.com/seenimoa/stockinfo/pkg/models"
)

// Headlines returns up to limit recent headlines for symbol from the RSS
// feed. A non-positive limit returns every item.
func (p *Provider) Headlines(ctx context.Context, symbol string, limit int) ([]models.Headline, error) {
	v := url.Values{}
	v.Set("s", symbol)
	v.Set("region", "US")
	v.Set("lang", "en-US")
	u := p.newsURL + "?" + v.Encode()

	data, err := p.http.GetBytes(ctx, u, map[string]string{"Accept": "application/rss+xml, application/xml"})
	if err != nil {
		return nil, p.classify("headlines", symbol, err)
	}

	feed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return nil, p.Upstream("headlines", fmt.Errorf("parse RSS: %w", err))
	}

	headlines := make([]models.Headline, 0, len(feed.Items))
	for _, item := range feed.Items {
		h := models.Headline{
			Title:   strings.TrimSpace(item.Title),
			Link:    item.Link,
			Summary: cleanHTML(item.Description),
		}
		if len(item.Authors) > 0 && item.Authors[0] != nil {
			h.Publisher = item.Authors[0].Name
		}
		if item.PublishedParsed != nil {
			h.PublishedAt = null.TimeFrom(item.PublishedParsed.UTC())
		}
		headlines = append(headlines, h)
		if limit > 0 && len(headlines) == limit {
			break
		}
	}
	return headlines, nil
}

// cleanHTML strips HTML tags from a string using goquery.
func cleanHTML(s string) string {
	if s == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader("<body>" + s + "</body>"))
	if err != nil {
		return s
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
