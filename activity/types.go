package activity

import (
	"errors"

	"github.com/katalvlaran/biocycle/cycle"
)

// DefaultThreshold is the favorable-period threshold for new activities.
const DefaultThreshold = 0.3

// Sentinel errors for registry operations.
var (
	// ErrInvalidName indicates an empty or whitespace-only activity name.
	ErrInvalidName = errors.New("activity: name is empty")

	// ErrInvalidThreshold indicates a threshold outside [0, 1].
	ErrInvalidThreshold = errors.New("activity: threshold out of range")

	// ErrNotFound indicates that no activity has the requested ID.
	ErrNotFound = errors.New("activity: not found")

	// ErrCategoryMismatch indicates a series sampled for another cycle.
	ErrCategoryMismatch = errors.New("activity: series cycle does not match category")
)

// Activity is a user-declared label bound to one cycle and a threshold.
type Activity struct {
	ID        string
	Name      string
	Category  cycle.Cycle
	Threshold float64
}
