package calendar_test

import (
	"testing"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_KeepsLocalDay(t *testing.T) {
	tokyo := time.FixedZone("JST", 9*60*60)
	late := time.Date(2024, time.March, 3, 23, 30, 0, 0, tokyo)

	got := calendar.Normalize(late)
	assert.Equal(t, calendar.Date(2024, time.March, 3), got)
	assert.Equal(t, time.UTC, got.Location())
}

// TestDaysBetween covers sign, leap years and a DST boundary.
func TestDaysBetween(t *testing.T) {
	birth := calendar.Date(2000, time.January, 1)

	assert.Equal(t, 0, calendar.DaysBetween(birth, birth))
	assert.Equal(t, 366, calendar.DaysBetween(birth, calendar.Date(2001, time.January, 1)), "2000 is a leap year")
	assert.Equal(t, -1, calendar.DaysBetween(birth, calendar.Date(1999, time.December, 31)))

	paris, err := time.LoadLocation("Europe/Paris")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}
	before := time.Date(2024, time.March, 30, 12, 0, 0, 0, paris)
	after := time.Date(2024, time.April, 1, 0, 30, 0, 0, paris)
	assert.Equal(t, 2, calendar.DaysBetween(before, after), "DST switch must not lose a day")
}

func TestAddDays(t *testing.T) {
	d := calendar.Date(2024, time.February, 28)
	assert.Equal(t, calendar.Date(2024, time.February, 29), calendar.AddDays(d, 1))
	assert.Equal(t, calendar.Date(2024, time.March, 1), calendar.AddDays(d, 2))
	assert.Equal(t, calendar.Date(2024, time.February, 27), calendar.AddDays(d, -1))
}

func TestMonthRange(t *testing.T) {
	first, last := calendar.MonthRange(calendar.Date(2024, time.February, 17))
	assert.Equal(t, calendar.Date(2024, time.February, 1), first)
	assert.Equal(t, calendar.Date(2024, time.February, 29), last)

	first, last = calendar.MonthRange(calendar.Date(2023, time.December, 31))
	assert.Equal(t, calendar.Date(2023, time.December, 1), first)
	assert.Equal(t, calendar.Date(2023, time.December, 31), last)
}

func TestParseFormat(t *testing.T) {
	d, err := calendar.Parse(" 1990-05-17 ")
	require.NoError(t, err)
	assert.Equal(t, calendar.Date(1990, time.May, 17), d)
	assert.Equal(t, "1990-05-17", calendar.Format(d))

	for _, bad := range []string{"", "17/05/1990", "1990-13-01", "1990-02-30"} {
		_, err := calendar.Parse(bad)
		assert.ErrorIs(t, err, calendar.ErrBadDate, bad)
	}
}

// TestDaysBetween_Centuries exercises spans longer than time.Duration can hold.
func TestDaysBetween_Centuries(t *testing.T) {
	from := calendar.Date(1700, time.January, 1)
	to := calendar.Date(2100, time.January, 1)
	// 400 Gregorian years contain exactly 146097 days.
	assert.Equal(t, 146097, calendar.DaysBetween(from, to))
	assert.Equal(t, -146097, calendar.DaysBetween(to, from))
}
