// Package calendar provides whole-day date arithmetic for biocycle.
//
// Every date handled by biocycle is a calendar day, represented as a
// time.Time at midnight UTC. Normalize converts any instant to that form by
// keeping its own year, month and day (the instant is not shifted into UTC
// first), so "the 3rd in Tokyo" stays the 3rd.
//
// Day counts are computed between normalized values, which keeps them exact
// across daylight-saving transitions and leap years.
package calendar

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Layout is the textual form of a calendar date (ISO 8601, date only).
const Layout = "2006-01-02"

const secondsPerDay = 24 * 60 * 60

// ErrBadDate indicates that a string is not a valid Layout date.
var ErrBadDate = errors.New("calendar: invalid date")

// Date returns the calendar day y-m-d at midnight UTC.
// Out-of-range month/day values roll over as in time.Date.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Normalize strips the clock from t, keeping t's own calendar day.
func Normalize(t time.Time) time.Time {
	y, m, d := t.Date()

	return Date(y, m, d)
}

// DaysBetween returns the signed number of calendar days from 'from' to 'to'.
// It is negative when to precedes from.
func DaysBetween(from, to time.Time) int {
	// Unix seconds rather than Sub: time.Duration saturates near 292 years.
	delta := Normalize(to).Unix() - Normalize(from).Unix()

	return int(delta / secondsPerDay)
}

// AddDays shifts a normalized copy of t by n calendar days.
func AddDays(t time.Time, n int) time.Time {
	return Normalize(t).AddDate(0, 0, n)
}

// MonthRange returns the first and last day of the month containing t.
func MonthRange(t time.Time) (first, last time.Time) {
	y, m, _ := t.Date()
	first = Date(y, m, 1)
	last = first.AddDate(0, 1, -1)

	return first, last
}

// Parse reads a Layout date. Leading and trailing spaces are ignored.
func Parse(s string) (time.Time, error) {
	t, err := time.Parse(Layout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("%q: %w", s, ErrBadDate)
	}

	return t, nil
}

// Format renders the calendar day of t in Layout.
func Format(t time.Time) string {
	return Normalize(t).Format(Layout)
}
