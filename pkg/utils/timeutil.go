package utils

import (
	"time"
)

// DateLayout is the layout used for dates in reports.
const DateLayout = "2006-01-02"

// FromUnix converts epoch seconds to UTC.
func FromUnix(sec int64) time.Time {
	return time.Unix(sec, 0).UTC()
}

// FormatDate formats t as "2006-01-02" in UTC.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// FormatBarTime formats a bar timestamp. Intraday bars keep the clock time.
func FormatBarTime(t time.Time, intraday bool) string {
	if intraday {
		return t.UTC().Format("2006-01-02 15:04")
	}
	return FormatDate(t)
}

// ParseDate parses a "2006-01-02" date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}
