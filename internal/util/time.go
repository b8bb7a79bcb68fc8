package util

import (
	"fmt"
	"time"
)

const (
	// DateFormat is the calendar date format used for expiration dates.
	// Items store dates as plain YYYY-MM-DD strings so range filters can
	// compare them lexically.
	DateFormat = "2006-01-02"

	// TimestampFormat is the RFC3339 format used for created/updated stamps.
	TimestampFormat = time.RFC3339
)

// FormatDate formats a time as a YYYY-MM-DD date string.
func FormatDate(t time.Time) string {
	return t.Format(DateFormat)
}

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return t, nil
}

// IsValidDate reports whether s is a well-formed YYYY-MM-DD date string.
func IsValidDate(s string) bool {
	_, err := time.Parse(DateFormat, s)
	return err == nil
}

// FormatTimestamp formats a time as an RFC3339 timestamp string.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}

// ParseTimestamp parses an RFC3339 timestamp string.
func ParseTimestamp(s string) (time.Time, error) {
	return time.Parse(TimestampFormat, s)
}

// StartOfDay returns midnight of the given day.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// DaysUntil calculates whole calendar days from `from` until `to`.
// Negative results mean `to` is in the past.
func DaysUntil(from, to time.Time) int {
	from = StartOfDay(from)
	to = StartOfDay(to)
	return int(to.Sub(from).Hours() / 24)
}

// RelativeDateString returns a short label for an expiration date relative to
// now: "EXPIRED", "TODAY", "12d", or the date itself when more than a month out.
func RelativeDateString(date string, now time.Time) string {
	t, err := ParseDate(date)
	if err != nil {
		return date
	}

	days := DaysUntil(now, t)
	switch {
	case days < 0:
		return "EXPIRED"
	case days == 0:
		return "TODAY"
	case days < 30:
		return fmt.Sprintf("%dd", days)
	default:
		return date
	}
}
