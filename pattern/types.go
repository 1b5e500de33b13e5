package pattern

import (
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
)

// Period is a maximal run of days on which a cycle stays at or above a
// threshold. Both ends are inclusive.
type Period struct {
	Start time.Time
	End   time.Time
	Cycle cycle.Cycle
}

// Days returns the inclusive length of the period.
func (p Period) Days() int {
	return calendar.DaysBetween(p.Start, p.End) + 1
}

// Contains reports whether day falls inside the period.
func (p Period) Contains(day time.Time) bool {
	d := calendar.Normalize(day)

	return !d.Before(p.Start) && !d.After(p.End)
}
