package utils

import (
	"strings"
	"time"
)

const layoutDate = "2006-01-02"

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FormatTimestamp renders t as RFC3339 in UTC.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// DateOnly trims an RFC3339 or "YYYY-MM-DD ..." value down to its date part.
// Values it can't recognize are returned trimmed.
func DateOnly(s string) string {
	s = strings.TrimSpace(s)
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.Format(layoutDate)
	}
	if len(s) >= len(layoutDate) {
		if _, err := time.Parse(layoutDate, s[:len(layoutDate)]); err == nil {
			return s[:len(layoutDate)]
		}
	}
	return s
}
