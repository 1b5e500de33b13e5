package session

import (
	"math"

	"github.com/katalvlaran/biocycle/activity"
	"github.com/katalvlaran/biocycle/pattern"
	"go.uber.org/zap"
)

// Option configures a Session at construction time.
type Option func(*Session)

// WithLogger routes session logs to l. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("session: WithLogger(nil)")
	}

	return func(s *Session) { s.logger = l }
}

// WithEpsilon sets the critical-day tolerance. Panics on negative or NaN.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("session: WithEpsilon requires a non-negative number")
	}

	return func(s *Session) { s.epsilon = eps }
}

// WithDefaultThreshold sets the threshold used by "add" when none is given.
// Panics outside [0, 1] or on NaN.
func WithDefaultThreshold(th float64) Option {
	if th < 0 || th > 1 || math.IsNaN(th) {
		panic("session: WithDefaultThreshold requires a value in [0, 1]")
	}

	return func(s *Session) { s.threshold = th }
}

// WithRegistry uses r instead of a fresh registry. Panics on nil.
// r must not be shared with another Session.
func WithRegistry(r *activity.Registry) Option {
	if r == nil {
		panic("session: WithRegistry(nil)")
	}

	return func(s *Session) { s.registry = r }
}

// defaultEpsilon mirrors the detector default.
const defaultEpsilon = pattern.DefaultEpsilon
