package activity

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RegistryOption configures a Registry before first use.
type RegistryOption func(*Registry)

// WithLogger routes mutation logs to l. Panics on nil.
func WithLogger(l *zap.Logger) RegistryOption {
	if l == nil {
		panic("activity: WithLogger(nil)")
	}

	return func(r *Registry) { r.logger = l }
}

// WithIDFunc replaces the UUID generator, e.g. for golden tests.
// The function must return a distinct value on every call. The Registry
// calls it under its write lock, so it need not be safe for concurrent use.
// Panics on nil.
func WithIDFunc(fn func() string) RegistryOption {
	if fn == nil {
		panic("activity: WithIDFunc(nil)")
	}

	return func(r *Registry) { r.newID = fn }
}

// newUUID returns a random (version 4) UUID string.
func newUUID() string {
	return uuid.NewString()
}
