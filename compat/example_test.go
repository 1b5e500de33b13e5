package compat_test

import (
	"fmt"
	"time"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/compat"
)

func ExampleScores() {
	a := calendar.Date(2000, time.January, 1)
	b := calendar.Date(2000, time.January, 4)
	for _, s := range compat.Scores(a, b) {
		fmt.Printf("%-12s shift=%2d %5.1f%%\n", s.Cycle, s.Shift, s.Percent)
	}
	// Output:
	// Physical     shift= 3  84.1%
	// Emotional    shift= 3  89.1%
	// Intellectual shift= 3  92.1%
}
