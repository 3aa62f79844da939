// Package utils provides formatting and symbol helpers shared by the CLI and
// the report renderer.
package utils

import (
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits in thousands ("1,234,567.89").
var printer = message.NewPrinter(language.English)

// FormatNumber formats a value with two decimals and thousands separators.
// e.g., 1234567.891 → "1,234,567.89"
func FormatNumber(v float64) string {
	return printer.Sprintf("%.2f", v)
}

// FormatCurrency formats a dollar amount: 1234.5 → "$1,234.50", -3 → "-$3.00".
func FormatCurrency(v float64) string {
	if v < 0 {
		return "-$" + FormatNumber(-v)
	}
	return "$" + FormatNumber(v)
}

// FormatCount formats a whole count with thousands separators.
// Fractions are rounded to the nearest unit.
func FormatCount(v float64) string {
	return printer.Sprintf("%d", int64(math.Round(v)))
}

// FormatPercent scales a fraction by 100: 0.0123 → "1.23%".
func FormatPercent(fraction float64) string {
	return FormatNumber(fraction*100) + "%"
}

// FormatPct formats an already-scaled percentage with sign.
// e.g., 2.45 → "+2.45%", -1.23 → "-1.23%"
func FormatPct(pct float64) string {
	if pct >= 0 {
		return "+" + FormatNumber(pct) + "%"
	}
	return FormatNumber(pct) + "%"
}

// FormatSigned formats a change amount with sign: 1.5 → "+1.50".
func FormatSigned(v float64) string {
	if v >= 0 {
		return "+" + FormatNumber(v)
	}
	return FormatNumber(v)
}

// FormatBillions formats a raw count in billions: 15441900000 → "15.44 B".
func FormatBillions(v float64) string {
	return FormatNumber(v/1e9) + " B"
}

// FormatMultiplier formats a dimensionless factor: 1.24 → "1.24 x".
func FormatMultiplier(v float64) string {
	return FormatNumber(v) + " x"
}

// compactUnits are the magnitude suffixes, smallest first.
var compactUnits = []struct {
	scale  float64
	suffix string
}{
	{1e3, "K"},
	{1e6, "M"},
	{1e9, "B"},
	{1e12, "T"},
}

// FormatCompact formats large amounts with a magnitude suffix.
// e.g., 85777000000 → "85.78B", -1500000 → "-1.5M", 950 → "950"
// The suffix is chosen after rounding, so 999999.999 is "1M", not "1,000K".
func FormatCompact(v float64) string {
	sign := ""
	if v < 0 {
		sign = "-"
		v = math.Abs(v)
	}

	n, suffix := v, ""
	for _, u := range compactUnits {
		if math.Round(n*100)/100 < 1000 {
			break
		}
		n, suffix = v/u.scale, u.suffix
	}
	return sign + formatWithDecimals(n) + suffix
}

func formatWithDecimals(n float64) string {
	s := printer.Sprintf("%.2f", n)
	s = strings.TrimRight(s, "0")
	s = strings.TrimRight(s, ".")
	return s
}
