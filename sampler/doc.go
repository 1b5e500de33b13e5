// Package sampler turns the biorhythm evaluator into day-by-day signals.
//
// A Series is the ordered, gap-free list of one cycle's values over an
// inclusive date range:
//
//	len(series.Samples) == calendar.DaysBetween(start, end) + 1
//
// Sampling is cheap (one sine per day) and nothing is memoized: callers
// re-sample whenever the range or the birth date changes. A Series sampled
// for one birth date is meaningless for another.
//
// ⚙️ Usage:
//
//	s, err := sampler.Sample(birth, cycle.Physical, from, to)
//	if errors.Is(err, sampler.ErrInvalidRange) {
//	  // from is after to
//	}
//
//	month, _ := sampler.SampleMonth(birth, cycle.Emotional, today)
//
// Complexity: O(n) time and memory for an n-day range.
package sampler
