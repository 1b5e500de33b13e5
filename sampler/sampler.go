package sampler

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/biocycle/biorhythm"
	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
)

// ErrInvalidRange indicates a start date after the end date.
var ErrInvalidRange = errors.New("sampler: start date after end date")

// Sample evaluates cycle c once per calendar day in [start, end].
//
// Errors:
//   - ErrInvalidRange: start is after end (compared as calendar days).
//   - cycle.ErrUnknownCycle: c is not a declared cycle.
//
// Complexity: O(n) for n = DaysBetween(start, end) + 1.
func Sample(birth time.Time, c cycle.Cycle, start, end time.Time) (Series, error) {
	if !c.Valid() {
		return Series{}, fmt.Errorf("sample %s: %w", c, cycle.ErrUnknownCycle)
	}

	n := calendar.DaysBetween(start, end) + 1
	if n < 1 {
		return Series{}, fmt.Errorf("sample %s..%s: %w",
			calendar.Format(start), calendar.Format(end), ErrInvalidRange)
	}

	day := calendar.Normalize(start)
	samples := make([]Point, n)
	for i := 0; i < n; i++ {
		samples[i] = Point{
			Date:  day,
			Value: biorhythm.ValueAt(birth, day, c),
		}
		day = day.AddDate(0, 0, 1)
	}

	return Series{Cycle: c, Samples: samples}, nil
}

// SampleAll samples every cycle over [start, end], in cycle.All() order.
func SampleAll(birth, start, end time.Time) ([]Series, error) {
	all := cycle.All()
	out := make([]Series, 0, len(all))
	for _, c := range all {
		s, err := Sample(birth, c, start, end)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// SampleMonth samples cycle c over the calendar month containing day.
func SampleMonth(birth time.Time, c cycle.Cycle, day time.Time) (Series, error) {
	first, last := calendar.MonthRange(day)

	return Sample(birth, c, first, last)
}
