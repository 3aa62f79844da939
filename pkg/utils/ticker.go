package utils

import (
	"strings"
	"unicode"
)

// NormalizeTicker cleans up user input before it is sent to a provider.
// It trims whitespace, drops a leading "$" (common in chat) and uppercases.
// No further validation is done; the provider decides whether it exists.
func NormalizeTicker(ticker string) string {
	ticker = strings.TrimSpace(ticker)
	ticker = strings.TrimPrefix(ticker, "$")
	return strings.ToUpper(strings.TrimSpace(ticker))
}

// SplitCamel turns a provider line-item key into a display label.
// e.g., "TotalRevenue" → "Total Revenue", "DilutedEPS" → "Diluted EPS"
func SplitCamel(key string) string {
	runes := []rune(key)
	var b strings.Builder
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte(' ')
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
