package models

import (
	"fmt"
	"time"

	"github.com/guregu/null/v6"
)

// Period is the look-back window of a price history request.
type Period string

const (
	Period1Day   Period = "1d"
	Period5Day   Period = "5d"
	Period1Mon   Period = "1mo"
	Period3Mon   Period = "3mo"
	Period6Mon   Period = "6mo"
	Period1Year  Period = "1y"
	Period2Year  Period = "2y"
	Period5Year  Period = "5y"
	Period10Year Period = "10y"
	PeriodYTD    Period = "ytd"
	PeriodMax    Period = "max"
)

// Interval is the bar size of a price history request.
type Interval string

const (
	Interval1Min  Interval = "1m"
	Interval2Min  Interval = "2m"
	Interval5Min  Interval = "5m"
	Interval15Min Interval = "15m"
	Interval30Min Interval = "30m"
	Interval60Min Interval = "60m"
	Interval90Min Interval = "90m"
	Interval1Hour Interval = "1h"
	Interval1Day  Interval = "1d"
	Interval5Day  Interval = "5d"
	Interval1Week Interval = "1wk"
	Interval1Mon  Interval = "1mo"
	Interval3Mon  Interval = "3mo"
)

// DefaultPeriod and DefaultInterval are used when a caller leaves them empty.
const (
	DefaultPeriod   = Period1Year
	DefaultInterval = Interval1Day
)

// Periods lists every accepted period, shortest first.
func Periods() []Period {
	return []Period{
		Period1Day, Period5Day, Period1Mon, Period3Mon, Period6Mon,
		Period1Year, Period2Year, Period5Year, Period10Year, PeriodYTD, PeriodMax,
	}
}

// Intervals lists every accepted interval, shortest first.
func Intervals() []Interval {
	return []Interval{
		Interval1Min, Interval2Min, Interval5Min, Interval15Min, Interval30Min,
		Interval60Min, Interval90Min, Interval1Hour, Interval1Day, Interval5Day,
		Interval1Week, Interval1Mon, Interval3Mon,
	}
}

// ParsePeriod returns the Period for s, or DefaultPeriod when s is empty.
func ParsePeriod(s string) (Period, error) {
	if s == "" {
		return DefaultPeriod, nil
	}
	for _, p := range Periods() {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown period %q", s)
}

// ParseInterval returns the Interval for s, or DefaultInterval when s is empty.
func ParseInterval(s string) (Interval, error) {
	if s == "" {
		return DefaultInterval, nil
	}
	for _, iv := range Intervals() {
		if string(iv) == s {
			return iv, nil
		}
	}
	return "", fmt.Errorf("unknown interval %q", s)
}

// PriceBar is one OHLCV bucket. At least one of the prices is valid.
type PriceBar struct {
	Timestamp time.Time  `json:"timestamp"`
	Open      null.Float `json:"open"`
	High      null.Float `json:"high"`
	Low       null.Float `json:"low"`
	Close     null.Float `json:"close"`
	Volume    null.Int   `json:"volume"`
}

// PriceSeries is an ascending sequence of bars for one history request.
type PriceSeries struct {
	Symbol   string     `json:"symbol"`
	Period   Period     `json:"period"`
	Interval Interval   `json:"interval"`
	Bars     []PriceBar `json:"bars"`
}

// Len returns the number of bars.
func (s *PriceSeries) Len() int { return len(s.Bars) }

// Span returns the first and last bar timestamps. ok is false for an empty series.
func (s *PriceSeries) Span() (first, last time.Time, ok bool) {
	if len(s.Bars) == 0 {
		return time.Time{}, time.Time{}, false
	}
	return s.Bars[0].Timestamp, s.Bars[len(s.Bars)-1].Timestamp, true
}

// Intraday reports whether bars of this size carry a time of day.
func (iv Interval) Intraday() bool {
	switch iv {
	case Interval1Min, Interval2Min, Interval5Min, Interval15Min, Interval30Min,
		Interval60Min, Interval90Min, Interval1Hour:
		return true
	}
	return false
}
