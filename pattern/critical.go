package pattern

import (
	"math"
	"time"

	"github.com/katalvlaran/biocycle/sampler"
)

// CriticalDays returns, in date order, every day i ≥ 1 of s for which
//
//	s[i-1].Value * s[i].Value <= 0   (sign change between samples), or
//	|s[i].Value| < ε                 (sample near zero).
//
// Sample 0 is never returned.
//
// The result is idempotent for a fixed (s, ε) and can only grow as ε grows.
//
// Errors:
//   - ErrEmptySeries: s has no samples.
//
// Complexity: O(n) time, O(k) memory for k critical days.
func CriticalDays(s sampler.Series, opts ...Option) ([]time.Time, error) {
	if s.Len() == 0 {
		return nil, ErrEmptySeries
	}
	cfg := newDetectConfig(opts...)

	var (
		days       []time.Time
		prev, curr float64
	)
	for i := 1; i < len(s.Samples); i++ {
		prev, curr = s.Samples[i-1].Value, s.Samples[i].Value
		if prev*curr <= 0 || math.Abs(curr) < cfg.epsilon {
			days = append(days, s.Samples[i].Date)
		}
	}

	return days, nil
}
