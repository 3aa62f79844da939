package models

import (
	"time"

	"github.com/guregu/null/v6"
)

// StatementKind identifies one of the three financial statements.
type StatementKind string

const (
	StatementIncome   StatementKind = "income"
	StatementBalance  StatementKind = "balance_sheet"
	StatementCashFlow StatementKind = "cash_flow"
)

// Title returns the display name of the statement.
func (k StatementKind) Title() string {
	switch k {
	case StatementIncome:
		return "Income Statement"
	case StatementBalance:
		return "Balance Sheet"
	case StatementCashFlow:
		return "Cash Flow Statement"
	}
	return string(k)
}

// Frequency is the reporting period of a statement.
type Frequency string

const (
	FrequencyQuarterly Frequency = "quarterly"
	FrequencyAnnual    Frequency = "annual"
)

// LineItem is one row of a statement. Values is aligned with the owning
// statement's Periods; an invalid entry means the period did not report it.
type LineItem struct {
	Label  string       `json:"label"`
	Values []null.Float `json:"values"`
}

// FinancialStatement is a table of line items by period-end date.
// Periods are ordered newest first.
type FinancialStatement struct {
	Kind      StatementKind `json:"kind"`
	Frequency Frequency     `json:"frequency"`
	Periods   []time.Time   `json:"periods"`
	Items     []LineItem    `json:"items"`
}

// Empty reports whether the statement has no data.
func (s *FinancialStatement) Empty() bool {
	return len(s.Items) == 0 || len(s.Periods) == 0
}

// Item returns the line item with the given label.
func (s *FinancialStatement) Item(label string) (LineItem, bool) {
	for _, it := range s.Items {
		if it.Label == label {
			return it, true
		}
	}
	return LineItem{}, false
}

// FinancialStatementSet groups the three statements for a symbol.
type FinancialStatementSet struct {
	Symbol    string             `json:"symbol"`
	Frequency Frequency          `json:"frequency"`
	Income    FinancialStatement `json:"income"`
	Balance   FinancialStatement `json:"balance_sheet"`
	CashFlow  FinancialStatement `json:"cash_flow"`
}

// Statements returns the three statements in report order.
func (s *FinancialStatementSet) Statements() []*FinancialStatement {
	return []*FinancialStatement{&s.Income, &s.Balance, &s.CashFlow}
}
