package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/guregu/null/v6"

	"github.com/seenimoa/stockinfo/pkg/models"
	"github.com/seenimoa/stockinfo/pkg/utils"
)

// DefaultPlaceholder is printed for absent values.
const DefaultPlaceholder = "N/A"

// Options configures a Renderer.
type Options struct {
	Style       Style
	Placeholder string // absent-value text (default: DefaultPlaceholder)
	MaxRows     int    // table row cap, 0 for no limit
}

// Renderer writes report sections to w. Write errors are sticky: after the
// first failure nothing more is written and Err returns it.
type Renderer struct {
	w           io.Writer
	style       Style
	placeholder string
	maxRows     int
	err         error
}

// NewRenderer returns a Renderer writing to w.
func NewRenderer(w io.Writer, opts Options) *Renderer {
	if opts.Style.Heading == nil {
		opts.Style = PlainStyle()
	}
	if opts.Placeholder == "" {
		opts.Placeholder = DefaultPlaceholder
	}
	if opts.MaxRows < 0 {
		opts.MaxRows = 0
	}
	return &Renderer{
		w:           w,
		style:       opts.Style,
		placeholder: opts.Placeholder,
		maxRows:     opts.MaxRows,
	}
}

// Err returns the first write error.
func (r *Renderer) Err() error { return r.err }

func (r *Renderer) setErr(err error) {
	if r.err == nil {
		r.err = err
	}
}

func (r *Renderer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.w, format, args...); err != nil {
		r.setErr(err)
	}
}

func (r *Renderer) heading(title string) {
	r.printf("%s\n", r.style.heading(title))
}

func (r *Renderer) field(f models.Field) {
	r.printf("%s %s\n", r.style.label(f.Label+":"), r.formatField(f))
}

// ════════════════════════════════════════════════════════════════════
// Sections
// ════════════════════════════════════════════════════════════════════

// Render writes every section of rep in its configured order, separated by
// blank lines.
func (r *Renderer) Render(rep *Report) error {
	first := true
	for _, s := range rep.Sections {
		if !first {
			r.printf("\n")
		}
		first = false
		switch s {
		case SectionQuote:
			r.Quote(rep.Quote)
		case SectionHistory:
			r.History(rep.History)
		case SectionDividends:
			r.Events("Dividends:", rep.Dividends)
		case SectionSplits:
			r.Events("Stock Splits:", rep.Splits)
		case SectionFinancials:
			r.Financials(rep.Financials)
		case SectionAnalysts:
			r.Analysts(rep.Analysts)
		case SectionNews:
			r.Headlines(rep.Headlines)
		}
	}
	return r.err
}

// Quote writes the "Stock Information" block followed by the day's change.
func (r *Renderer) Quote(q *models.QuoteSnapshot) error {
	r.heading("Stock Information:")
	if q == nil {
		r.printf("%s\n", r.placeholder)
		return r.err
	}
	for _, f := range q.Fields() {
		r.field(f)
	}
	amount, pct := q.Change()
	text := r.placeholder
	if amount.Valid {
		text = r.style.signed(amount.Float64,
			fmt.Sprintf("%s (%s)", utils.FormatSigned(amount.Float64), utils.FormatPct(pct.Float64)))
	}
	r.printf("%s %s\n", r.style.label("Change:"), text)
	return r.err
}

// History writes the OHLCV table.
func (r *Renderer) History(s *models.PriceSeries) error {
	r.heading("Historical Prices:")
	if s == nil {
		s = &models.PriceSeries{}
	}
	intraday := s.Interval.Intraday()
	t := table{header: []string{"Date", "Open", "High", "Low", "Close", "Volume"}}
	for _, b := range s.Bars {
		t.rows = append(t.rows, []string{
			utils.FormatBarTime(b.Timestamp, intraday),
			r.price(b.Open),
			r.price(b.High),
			r.price(b.Low),
			r.price(b.Close),
			r.count(b.Volume),
		})
	}
	r.writeTable(t)
	return r.err
}

// Events writes a dividend or split table under title.
func (r *Renderer) Events(title string, s *models.EventSeries) error {
	r.heading(title)
	if s == nil {
		s = &models.EventSeries{}
	}
	valueHeader := "Dividends"
	if s.Kind == models.EventSplit {
		valueHeader = "Stock Splits"
	}
	t := table{header: []string{"Date", valueHeader}}
	for _, e := range s.Events {
		t.rows = append(t.rows, []string{
			utils.FormatDate(e.Timestamp),
			utils.FormatNumber(e.Value),
		})
	}
	r.writeTable(t)
	return r.err
}

// Financials writes the three statements as line item by period tables.
func (r *Renderer) Financials(set *models.FinancialStatementSet) error {
	r.heading("Financials:")
	if set == nil {
		set = &models.FinancialStatementSet{}
	}
	for _, st := range set.Statements() {
		kind := st.Kind
		if kind == "" {
			continue
		}
		freq := st.Frequency
		if freq == "" {
			freq = set.Frequency
		}
		r.printf("%s\n", r.style.label(fmt.Sprintf("%s (%s)", kind.Title(), freq)))
		header := []string{"Line Item"}
		for _, p := range st.Periods {
			header = append(header, utils.FormatDate(p))
		}
		t := table{header: header}
		for _, it := range st.Items {
			row := []string{it.Label}
			for i := range st.Periods {
				var v null.Float
				if i < len(it.Values) {
					v = it.Values[i]
				}
				row = append(row, r.compact(v))
			}
			t.rows = append(t.rows, row)
		}
		r.writeTable(t)
	}
	return r.err
}

// Analysts writes the recommendations, earnings and ratio blocks.
func (r *Renderer) Analysts(a *models.AnalystSummary) error {
	r.heading("Analysts:")
	if a == nil {
		r.printf("%s\n", r.placeholder)
		return r.err
	}
	r.printf("%s\n", r.style.label("Recommendations:"))
	for _, f := range a.RecommendationFields() {
		r.printf("  ")
		r.field(f)
	}
	r.printf("%s\n", r.style.label("Current Earnings:"))
	for _, f := range a.EarningsFields() {
		r.printf("  ")
		r.field(f)
	}
	for _, f := range a.RatioFields() {
		r.field(f)
	}
	return r.err
}

// Headlines writes a numbered list of news items.
func (r *Renderer) Headlines(items []models.Headline) error {
	r.heading("Headlines:")
	for i, h := range items {
		meta := make([]string, 0, 2)
		if h.Publisher != "" {
			meta = append(meta, h.Publisher)
		}
		if h.PublishedAt.Valid {
			meta = append(meta, utils.FormatDate(h.PublishedAt.Time))
		}
		r.printf("%d. %s\n", i+1, h.Title)
		if len(meta) > 0 {
			r.printf("   %s\n", r.style.muted(strings.Join(meta, " | ")))
		}
		if h.Link != "" {
			r.printf("   %s\n", h.Link)
		}
	}
	r.printf("%s\n", r.style.muted(fmt.Sprintf("[%d items]", len(items))))
	return r.err
}
