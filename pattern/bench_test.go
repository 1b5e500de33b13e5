package pattern_test

import (
	"testing"

	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/katalvlaran/biocycle/sampler"
)

// yearSeries samples one year of the Emotional cycle for benchmarks.
func yearSeries(b *testing.B) sampler.Series {
	s, err := sampler.Sample(birth, cycle.Emotional, day0, calendar.AddDays(day0, 364))
	if err != nil {
		b.Fatalf("Sample failed: %v", err)
	}

	return s
}

// BenchmarkCriticalDays_Year benchmarks detection over 365 samples.
func BenchmarkCriticalDays_Year(b *testing.B) {
	s := yearSeries(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pattern.CriticalDays(s)
	}
}

// BenchmarkFavorablePeriods_Year benchmarks period extraction over 365 samples.
func BenchmarkFavorablePeriods_Year(b *testing.B) {
	s := yearSeries(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = pattern.FavorablePeriods(s, 0.3)
	}
}
