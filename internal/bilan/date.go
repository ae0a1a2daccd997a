package bilan

import (
	"fmt"
	"time"
)

// DateLayout is the layout of stored bilan dates, e.g.
// "2024-03-01T00:00:00.000Z".
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

const dayLayout = "2006-01-02"

// FormatDate formats t in UTC with DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Day truncates t to midnight UTC of its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate accepts a calendar day ("2024-03-01") or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(dayLayout, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD or RFC 3339", s)
}

// NormalizeDate turns user input into the stored form of a bilan date.
// A calendar day maps to its midnight UTC; a timestamp keeps its instant.
func NormalizeDate(s string) (string, error) {
	t, err := ParseDate(s)
	if err != nil {
		return "", err
	}
	return FormatDate(t), nil
}
