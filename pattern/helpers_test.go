package pattern_test

import (
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/sampler"
)

var (
	birth = calendar.Date(2000, time.January, 1)
	day0  = calendar.Date(2024, time.May, 1)
)

// seriesOf builds a hand-crafted Physical series starting at day0.
func seriesOf(values ...float64) sampler.Series {
	s := sampler.Series{Cycle: cycle.Physical, Samples: make([]sampler.Point, len(values))}
	for i, v := range values {
		s.Samples[i] = sampler.Point{Date: calendar.AddDays(day0, i), Value: v}
	}

	return s
}

// day returns day0 shifted by i days.
func day(i int) time.Time {
	return calendar.AddDays(day0, i)
}

// dates renders a slice of dates in calendar.Layout for compact assertions.
func dates(ds []time.Time) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = calendar.Format(d)
	}

	return out
}
