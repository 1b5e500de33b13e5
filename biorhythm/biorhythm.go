package biorhythm

import (
	"math"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
)

// Triple holds one value per cycle for a single day.
type Triple struct {
	Physical     float64
	Emotional    float64
	Intellectual float64
}

// Value selects the component for c. Invalid cycles yield 0.
func (t Triple) Value(c cycle.Cycle) float64 {
	switch c {
	case cycle.Physical:
		return t.Physical
	case cycle.Emotional:
		return t.Emotional
	case cycle.Intellectual:
		return t.Intellectual
	default:
		return 0
	}
}

// Evaluate computes all three cycle values for target, counted from birth.
// Complexity: O(1).
func Evaluate(birth, target time.Time) Triple {
	d := calendar.DaysBetween(birth, target)

	return Triple{
		Physical:     phaseValue(d, cycle.PhysicalPeriod),
		Emotional:    phaseValue(d, cycle.EmotionalPeriod),
		Intellectual: phaseValue(d, cycle.IntellectualPeriod),
	}
}

// ValueAt computes a single cycle value. Invalid cycles yield 0.
func ValueAt(birth, target time.Time, c cycle.Cycle) float64 {
	if !c.Valid() {
		return 0
	}

	return phaseValue(calendar.DaysBetween(birth, target), c.Period())
}

// phaseValue returns sin(2π·d/p) with d reduced into [0, p).
func phaseValue(d, p int) float64 {
	r := d % p
	if r < 0 {
		r += p
	}
	if r == 0 {
		return 0
	}

	return math.Sin(2 * math.Pi * float64(r) / float64(p))
}
