package activity_test

import (
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/biocycle/activity"
	"github.com/katalvlaran/biocycle/calendar"
	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/katalvlaran/biocycle/sampler"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

var birth = calendar.Date(2000, time.January, 1)

// sequentialIDs returns a deterministic ID generator: a1, a2, ...
func sequentialIDs() func() string {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("a%d", n)
	}
}

func TestRegistry_AddAndList(t *testing.T) {
	r := activity.NewRegistry(activity.WithIDFunc(sequentialIDs()))

	run, err := r.Add("  Running ", cycle.Physical, 0.4)
	require.NoError(t, err)
	assert.Equal(t, activity.Activity{ID: "a1", Name: "Running", Category: cycle.Physical, Threshold: 0.4}, run)

	_, err = r.Add("Chess", cycle.Intellectual, activity.DefaultThreshold)
	require.NoError(t, err)
	_, err = r.Add("Running", cycle.Physical, 0.5)
	require.NoError(t, err, "names are not deduplicated")

	list := r.List()
	require.Len(t, list, 3)
	assert.Equal(t, []string{"a1", "a2", "a3"}, ids(list))
	assert.Equal(t, 3, r.Len())

	// List returns a copy
	list[0].Name = "mutated"
	got, err := r.Get("a1")
	require.NoError(t, err)
	assert.Equal(t, "Running", got.Name)
}

func TestRegistry_AddDefaultIDsAreUnique(t *testing.T) {
	r := activity.NewRegistry()
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		a, err := r.Add("x", cycle.Emotional, 0.3)
		require.NoError(t, err)
		require.NotEmpty(t, a.ID)
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
}

// TestRegistry_AddValidation checks each rejection leaves the list untouched.
func TestRegistry_AddValidation(t *testing.T) {
	r := activity.NewRegistry()
	_, err := r.Add("Yoga", cycle.Emotional, 0.3)
	require.NoError(t, err)

	cases := []struct {
		name      string
		label     string
		category  cycle.Cycle
		threshold float64
		want      error
	}{
		{"empty name", "", cycle.Physical, 0.3, activity.ErrInvalidName},
		{"whitespace name", " \t\n", cycle.Physical, 0.3, activity.ErrInvalidName},
		{"unknown category", "Swim", cycle.Cycle(9), 0.3, cycle.ErrUnknownCycle},
		{"negative threshold", "Swim", cycle.Physical, -0.1, activity.ErrInvalidThreshold},
		{"threshold above one", "Swim", cycle.Physical, 1.01, activity.ErrInvalidThreshold},
		{"NaN threshold", "Swim", cycle.Physical, math.NaN(), activity.ErrInvalidThreshold},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := r.Add(tc.label, tc.category, tc.threshold)
			assert.ErrorIs(t, err, tc.want)
			assert.Equal(t, 1, r.Len(), "failed Add must not change the list")
		})
	}

	for _, th := range []float64{0, 1} {
		_, err := r.Add("edge", cycle.Physical, th)
		assert.NoError(t, err, "threshold %v is inclusive", th)
	}
}

func TestRegistry_Remove(t *testing.T) {
	r := activity.NewRegistry(activity.WithIDFunc(sequentialIDs()))
	for _, n := range []string{"A", "B", "C", "D"} {
		_, err := r.Add(n, cycle.Physical, 0.3)
		require.NoError(t, err)
	}

	require.NoError(t, r.Remove("a2"))
	assert.Equal(t, []string{"a1", "a3", "a4"}, ids(r.List()), "survivors keep their order")

	err := r.Remove("a2")
	assert.ErrorIs(t, err, activity.ErrNotFound)
	err = r.Remove("nope")
	assert.ErrorIs(t, err, activity.ErrNotFound)
	assert.Equal(t, []string{"a1", "a3", "a4"}, ids(r.List()), "failed Remove must not touch others")

	_, err = r.Get("a2")
	assert.ErrorIs(t, err, activity.ErrNotFound)

	// a fresh add after removal does not reuse or renumber
	a, err := r.Add("E", cycle.Physical, 0.3)
	require.NoError(t, err)
	assert.Equal(t, "a5", a.ID)
	assert.Equal(t, []string{"a1", "a3", "a4", "a5"}, ids(r.List()))
}

// TestRegistry_FavorablePeriodsFor joins an activity to a 30-day series.
func TestRegistry_FavorablePeriodsFor(t *testing.T) {
	r := activity.NewRegistry()
	a, err := r.Add("Sprint", cycle.Physical, 0.3)
	require.NoError(t, err)

	from := calendar.Date(2024, time.May, 1)
	s, err := sampler.Sample(birth, cycle.Physical, from, calendar.AddDays(from, 29))
	require.NoError(t, err)

	periods, err := r.FavorablePeriodsFor(a, s)
	require.NoError(t, err)
	require.NotEmpty(t, periods)

	want, err := pattern.FavorablePeriods(s, 0.3)
	require.NoError(t, err)
	assert.Equal(t, want, periods)

	for _, p := range periods {
		for _, smp := range s.Samples {
			if p.Contains(smp.Date) {
				assert.GreaterOrEqual(t, smp.Value, 0.3, calendar.Format(smp.Date))
			}
		}
	}
}

func TestRegistry_FavorablePeriodsForErrors(t *testing.T) {
	r := activity.NewRegistry()
	a, err := r.Add("Debate", cycle.Intellectual, 0.3)
	require.NoError(t, err)

	wrong, err := sampler.Sample(birth, cycle.Emotional, birth, calendar.AddDays(birth, 5))
	require.NoError(t, err)
	_, err = r.FavorablePeriodsFor(a, wrong)
	assert.ErrorIs(t, err, activity.ErrCategoryMismatch)

	_, err = r.FavorablePeriodsFor(a, sampler.Series{Cycle: cycle.Intellectual})
	assert.ErrorIs(t, err, pattern.ErrEmptySeries)
}

// TestRegistry_Logging verifies mutations are logged at debug level.
func TestRegistry_Logging(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	r := activity.NewRegistry(activity.WithLogger(zap.New(core)), activity.WithIDFunc(sequentialIDs()))

	_, err := r.Add("Read", cycle.Intellectual, 0.5)
	require.NoError(t, err)
	require.NoError(t, r.Remove("a1"))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "activity added", entries[0].Message)
	assert.Equal(t, "Intellectual", entries[0].ContextMap()["category"])
	assert.Equal(t, "activity removed", entries[1].Message)
}

func TestRegistry_OptionPanics(t *testing.T) {
	assert.Panics(t, func() { activity.WithLogger(nil) })
	assert.Panics(t, func() { activity.WithIDFunc(nil) })
}

// TestRegistry_Concurrent mixes writers and readers; run with -race.
func TestRegistry_Concurrent(t *testing.T) {
	r := activity.NewRegistry()
	const workers = 50

	var wg sync.WaitGroup
	wg.Add(2 * workers)
	for i := 0; i < workers; i++ {
		go func(i int) {
			defer wg.Done()
			a, err := r.Add(fmt.Sprintf("act-%d", i), cycle.All()[i%3], 0.3)
			if err == nil && i%2 == 0 {
				_ = r.Remove(a.ID)
			}
		}(i)
		go func() {
			defer wg.Done()
			_ = r.List()
			_ = r.Len()
		}()
	}
	wg.Wait()

	assert.Equal(t, workers/2, r.Len())
}

// TestRegistry_ConcurrentSequentialIDs drives a non-synchronized ID
// generator from many goroutines; every ID must still be unique.
func TestRegistry_ConcurrentSequentialIDs(t *testing.T) {
	r := activity.NewRegistry(activity.WithIDFunc(sequentialIDs()))
	const workers = 64

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_, _ = r.Add("run", cycle.Physical, 0.3)
		}()
	}
	wg.Wait()

	seen := make(map[string]bool, workers)
	for _, a := range r.List() {
		require.False(t, seen[a.ID], "duplicate id %s", a.ID)
		seen[a.ID] = true
	}
	assert.Len(t, seen, workers)
}

func ids(list []activity.Activity) []string {
	out := make([]string, len(list))
	for i, a := range list {
		out[i] = a.ID
	}

	return out
}
