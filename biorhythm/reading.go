package biorhythm

import (
	"math"
	"time"

	"github.com/katalvlaran/biocycle/cycle"
)

// Phase classifies a reading by the sign of its rounded percentage.
type Phase int

const (
	// Critical means the rounded percentage is exactly zero.
	Critical Phase = iota
	// Positive means the cycle is above zero.
	Positive
	// Negative means the cycle is below zero.
	Negative
)

// String returns a lower-case label.
func (p Phase) String() string {
	switch p {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "critical"
	}
}

// Reading is the day summary of one cycle.
type Reading struct {
	Cycle   cycle.Cycle
	Value   float64 // raw value in [-1, 1]
	Percent float64 // Value*100 rounded to one decimal place
	Phase   Phase
}

// ReadingFor returns one Reading per cycle, in cycle.All() order.
func ReadingFor(birth, day time.Time) []Reading {
	tr := Evaluate(birth, day)
	out := make([]Reading, 0, len(cycle.All()))
	for _, c := range cycle.All() {
		out = append(out, NewReading(c, tr.Value(c)))
	}

	return out
}

// NewReading derives Percent and Phase from a raw value.
func NewReading(c cycle.Cycle, value float64) Reading {
	pct := math.Round(value*1000) / 10
	if pct == 0 {
		// collapse -0 so it prints as 0.0
		pct = 0
	}

	phase := Critical
	switch {
	case pct > 0:
		phase = Positive
	case pct < 0:
		phase = Negative
	}

	return Reading{Cycle: c, Value: value, Percent: pct, Phase: phase}
}
