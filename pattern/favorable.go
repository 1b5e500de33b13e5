package pattern

import (
	"github.com/katalvlaran/biocycle/sampler"
)

// FavorablePeriods returns the maximal runs of s where value ≥ threshold.
//
// Algorithm (single pass):
//  1. Open a period on the first day with value ≥ threshold.
//  2. Close it at the previous day on the first later day with value < threshold.
//  3. If the series ends while open, close it at the last day.
//
// Periods are disjoint, ordered by Start, and cannot be extended inside the
// series range. Each carries s.Cycle. A NaN threshold matches nothing.
//
// Errors:
//   - ErrEmptySeries: s has no samples.
//
// Complexity: O(n) time, O(k) memory for k periods.
func FavorablePeriods(s sampler.Series, threshold float64) ([]Period, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}

	var (
		periods []Period
		open    bool
		start   int
	)
	for i, smp := range s.Samples {
		switch {
		case smp.Value >= threshold && !open:
			open, start = true, i
		case smp.Value < threshold && open:
			periods = append(periods, Period{
				Start: s.Samples[start].Date,
				End:   s.Samples[i-1].Date,
				Cycle: s.Cycle,
			})
			open = false
		}
	}
	if open {
		periods = append(periods, Period{
			Start: s.Samples[start].Date,
			End:   s.End(),
			Cycle: s.Cycle,
		})
	}

	return periods, nil
}
