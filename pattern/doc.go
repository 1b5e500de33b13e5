// Package pattern extracts structural features from a sampled cycle signal.
//
// Two pure functions operate on a sampler.Series:
//
//   - CriticalDays: transition days. Day i (i ≥ 1) is critical when
//     s[i-1]·s[i] ≤ 0 (the signal changed sign, or touched zero, between two
//     samples) or |s[i]| < ε (the sample itself lies near zero).
//   - FavorablePeriods: maximal runs of consecutive days with value ≥ threshold.
//
// 🚧 First-day asymmetry:
//
//	The first sample of a series has no predecessor and is never classified
//	by CriticalDays. To have day D judged, sample from D-1. This is the
//	historical behavior of the detector and is kept as is.
//
// ⚙️ Usage:
//
//	days, err := pattern.CriticalDays(series)                         // ε = 0.05
//	days, err  = pattern.CriticalDays(series, pattern.WithEpsilon(0.1))
//	periods, err := pattern.FavorablePeriods(series, 0.3)
//
// Errors:
//   - ErrEmptySeries: the series has no samples.
//
// Complexity: O(n) time for both functions; output is at most n entries.
package pattern
