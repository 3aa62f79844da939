package models

import (
	"github.com/guregu/null/v6"
)

// Headline is a news item about a symbol.
type Headline struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	Publisher   string    `json:"publisher,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt null.Time `json:"published_at"`
}
