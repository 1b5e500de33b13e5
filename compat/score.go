package compat

import (
	"math"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
)

// Score is the phase agreement of one cycle between two birth dates.
type Score struct {
	Cycle   cycle.Cycle
	Shift   int     // Δ mod period, in [0, period)
	Percent float64 // rounded to one decimal place
}

// Scores returns one Score per cycle, in cycle.All() order. The result is
// symmetric in its arguments up to Shift, which becomes period-Shift.
func Scores(birthA, birthB time.Time) []Score {
	d := calendar.DaysBetween(birthA, birthB)
	out := make([]Score, 0, len(cycle.All()))
	for _, c := range cycle.All() {
		p := c.Period()
		shift := ((d % p) + p) % p
		agree := (1 + math.Cos(2*math.Pi*float64(shift)/float64(p))) / 2
		out = append(out, Score{
			Cycle:   c,
			Shift:   shift,
			Percent: math.Round(agree*1000) / 10,
		})
	}

	return out
}
