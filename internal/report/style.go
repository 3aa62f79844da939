package report

import (
	"github.com/fatih/color"
)

// Style holds the emphasis used by a Renderer. Each value carries its own
// enabled state, so disabling one Style never affects another.
type Style struct {
	Heading  *color.Color
	Label    *color.Color
	Positive *color.Color
	Negative *color.Color
	Muted    *color.Color
}

// NewStyle returns the default palette: bold white headings, yellow labels,
// bold green/red for gains and losses. With enabled false every value prints
// plain text.
func NewStyle(enabled bool) Style {
	s := Style{
		Heading:  color.New(color.Bold, color.FgWhite),
		Label:    color.New(color.FgYellow),
		Positive: color.New(color.Bold, color.FgGreen),
		Negative: color.New(color.Bold, color.FgRed),
		Muted:    color.New(color.Faint),
	}
	for _, c := range s.colors() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

// PlainStyle returns a Style with color disabled.
func PlainStyle() Style { return NewStyle(false) }

func (s Style) colors() []*color.Color {
	return []*color.Color{s.Heading, s.Label, s.Positive, s.Negative, s.Muted}
}

func (s Style) heading(text string) string { return s.Heading.Sprint(text) }

func (s Style) label(text string) string { return s.Label.Sprint(text) }

func (s Style) muted(text string) string { return s.Muted.Sprint(text) }

// signed colors text by the sign of v; zero stays plain.
func (s Style) signed(v float64, text string) string {
	switch {
	case v > 0:
		return s.Positive.Sprint(text)
	case v < 0:
		return s.Negative.Sprint(text)
	}
	return text
}
