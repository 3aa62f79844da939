package report

import (
	"fmt"
	"strings"
	"text/tabwriter"
)

// table is a plain grid. Cells are written through a tabwriter, so they
// carry no color codes.
type table struct {
	header []string
	rows   [][]string
}

// writeTable prints the table, keeping only the first and last rows when
// maxRows is positive and exceeded, and ends with a "[N rows]" footer.
func (r *Renderer) writeTable(t table) {
	tw := tabwriter.NewWriter(r.w, 0, 0, 2, ' ', 0)
	writeRow := func(cells []string) {
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}

	writeRow(t.header)
	n := len(t.rows)
	if r.maxRows > 0 && n > r.maxRows {
		head := (r.maxRows + 1) / 2
		tail := r.maxRows / 2
		for _, row := range t.rows[:head] {
			writeRow(row)
		}
		ellipsis := make([]string, len(t.header))
		for i := range ellipsis {
			ellipsis[i] = "..."
		}
		writeRow(ellipsis)
		for _, row := range t.rows[n-tail:] {
			writeRow(row)
		}
	} else {
		for _, row := range t.rows {
			writeRow(row)
		}
	}
	if err := tw.Flush(); err != nil {
		r.setErr(err)
	}
	r.printf("%s\n", r.style.muted(fmt.Sprintf("[%d rows]", n)))
}
