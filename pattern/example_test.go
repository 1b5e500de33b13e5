package pattern_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/katalvlaran/biocycle/sampler"
)

// ExampleCriticalDays lists the Physical transition days in a month.
// Note that 2000-01-02 is flagged because the birth-day sample is exactly 0,
// while 2000-01-01 itself is the first sample and is not judged.
func ExampleCriticalDays() {
	b := calendar.Date(2000, time.January, 1)
	s, _ := sampler.Sample(b, cycle.Physical, b, calendar.Date(2000, time.January, 31))

	days, _ := pattern.CriticalDays(s, pattern.WithEpsilon(pattern.DefaultEpsilon))
	for _, d := range days {
		fmt.Println(calendar.Format(d))
	}
	// Output:
	// 2000-01-02
	// 2000-01-13
	// 2000-01-24
	// 2000-01-25
}

// ExampleFavorablePeriods finds the windows where each cycle stays ≥ 0.3
// over thirty days.
func ExampleFavorablePeriods() {
	b := calendar.Date(2000, time.January, 1)
	from := calendar.Date(2024, time.May, 1)
	for _, c := range cycle.All() {
		s, _ := sampler.Sample(b, c, from, calendar.AddDays(from, 29))
		periods, _ := pattern.FavorablePeriods(s, 0.3)
		for _, p := range periods {
			fmt.Printf("%-12s %s..%s (%d days)\n", p.Cycle, calendar.Format(p.Start), calendar.Format(p.End), p.Days())
		}
	}
	// Output:
	// Physical     2024-05-01..2024-05-02 (2 days)
	// Physical     2024-05-17..2024-05-25 (9 days)
	// Emotional    2024-05-01..2024-05-02 (2 days)
	// Emotional    2024-05-20..2024-05-30 (11 days)
	// Intellectual 2024-05-01..2024-05-05 (5 days)
	// Intellectual 2024-05-26..2024-05-30 (5 days)
}
