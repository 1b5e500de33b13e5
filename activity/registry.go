package activity

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/katalvlaran/biocycle/cycle"
	"github.com/katalvlaran/biocycle/pattern"
	"github.com/katalvlaran/biocycle/sampler"
	"go.uber.org/zap"
)

// Registry is an ordered, in-memory set of activities owned by one session.
// mu guards items; all methods are safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	items  []Activity
	newID  func() string
	logger *zap.Logger
}

// NewRegistry creates an empty Registry.
// By default IDs are UUIDv4 strings and logging is disabled.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		newID:  newUUID,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Add validates and appends a new activity, returning it with a fresh ID.
// The name is stored with surrounding whitespace removed. Names are not
// deduplicated.
//
// Errors (checked in this order):
//   - ErrInvalidName: name is empty after trimming.
//   - cycle.ErrUnknownCycle: category is not declared.
//   - ErrInvalidThreshold: threshold is NaN or outside [0, 1].
//
// Complexity: O(1) amortized.
func (r *Registry) Add(name string, category cycle.Cycle, threshold float64) (Activity, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Activity{}, ErrInvalidName
	}
	if !category.Valid() {
		return Activity{}, fmt.Errorf("add %q: %w", name, cycle.ErrUnknownCycle)
	}
	if math.IsNaN(threshold) || threshold < 0 || threshold > 1 {
		return Activity{}, fmt.Errorf("add %q: threshold %v: %w", name, threshold, ErrInvalidThreshold)
	}

	r.mu.Lock()
	a := Activity{
		ID:        r.newID(),
		Name:      name,
		Category:  category,
		Threshold: threshold,
	}
	r.items = append(r.items, a)
	r.mu.Unlock()

	r.logger.Debug("activity added",
		zap.String("id", a.ID),
		zap.String("name", a.Name),
		zap.Stringer("category", a.Category),
		zap.Float64("threshold", a.Threshold))

	return a, nil
}

// Remove deletes the activity with the given ID. Survivors keep their order.
//
// Errors:
//   - ErrNotFound: no activity has that ID.
//
// Complexity: O(n).
func (r *Registry) Remove(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return fmt.Errorf("remove %q: %w", id, ErrNotFound)
	}
	r.items = slices.Delete(r.items, i, i+1)

	r.logger.Debug("activity removed", zap.String("id", id), zap.Int("remaining", len(r.items)))

	return nil
}

// Get returns the activity with the given ID.
func (r *Registry) Get(id string) (Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return Activity{}, fmt.Errorf("get %q: %w", id, ErrNotFound)
	}

	return r.items[i], nil
}

// List returns a copy of all activities in insertion order.
func (r *Registry) List() []Activity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.items)
}

// Len returns the number of activities.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.items)
}

// FavorablePeriodsFor returns the runs of s where the activity's cycle stays
// at or above a.Threshold. s must be sampled for a.Category.
//
// Errors:
//   - ErrCategoryMismatch: s.Cycle != a.Category.
//   - pattern.ErrEmptySeries: s has no samples.
func (r *Registry) FavorablePeriodsFor(a Activity, s sampler.Series) ([]pattern.Period, error) {
	if s.Cycle != a.Category {
		return nil, fmt.Errorf("%q wants %s, got %s series: %w", a.Name, a.Category, s.Cycle, ErrCategoryMismatch)
	}

	periods, err := pattern.FavorablePeriods(s, a.Threshold)
	if err != nil {
		return nil, fmt.Errorf("%q: %w", a.Name, err)
	}

	return periods, nil
}

// indexOf returns the slice index for id, or -1. Caller holds mu.
func (r *Registry) indexOf(id string) int {
	return slices.IndexFunc(r.items, func(a Activity) bool { return a.ID == id })
}
