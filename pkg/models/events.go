package models

import "time"

// EventKind distinguishes dividend and split series.
type EventKind string

const (
	EventDividend EventKind = "dividend"
	EventSplit    EventKind = "split"
)

// Event is a dated corporate action. Value is the cash amount per share for
// dividends and numerator/denominator for splits (4:1 → 4).
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// EventSeries is an ascending sequence of events of one kind.
type EventSeries struct {
	Symbol string    `json:"symbol"`
	Kind   EventKind `json:"kind"`
	Events []Event   `json:"events"`
}

// Len returns the number of events.
func (s *EventSeries) Len() int { return len(s.Events) }
