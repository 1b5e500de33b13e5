package sampler

import (
	"time"

	"github.com/katalvlaran/biocycle/cycle"
)

// Point is one cycle value on one calendar day.
type Point struct {
	Date  time.Time // midnight UTC
	Value float64   // in [-1, 1]
}

// Series is a gap-free, date-ascending run of samples for a single cycle.
type Series struct {
	Cycle   cycle.Cycle
	Samples []Point
}

// Len returns the number of samples.
func (s Series) Len() int { return len(s.Samples) }

// Start returns the first date, or the zero time for an empty series.
func (s Series) Start() time.Time {
	if len(s.Samples) == 0 {
		return time.Time{}
	}

	return s.Samples[0].Date
}

// End returns the last date, or the zero time for an empty series.
func (s Series) End() time.Time {
	if len(s.Samples) == 0 {
		return time.Time{}
	}

	return s.Samples[len(s.Samples)-1].Date
}

// Values returns the sample values in date order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Samples))
	for i, smp := range s.Samples {
		out[i] = smp.Value
	}

	return out
}
