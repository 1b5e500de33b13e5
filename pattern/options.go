// SPDX-License-Identifier: MIT
// Package: biocycle/pattern
//
// options.go: functional options for CriticalDays.
//
// Contract:
//   • Options mutate a detectConfig resolved once per call.
//   • Later options override earlier ones.
//   • Constructors VALIDATE and PANIC on meaningless input (negative or NaN ε).

package pattern

import "math"

// DefaultEpsilon is the near-zero band used when no WithEpsilon is given.
const DefaultEpsilon = 0.05

// Option customizes a detection call.
type Option func(*detectConfig)

// detectConfig holds resolved detection knobs.
type detectConfig struct {
	epsilon float64 // ≥ 0; |v| < epsilon marks a near-zero sample
}

// WithEpsilon sets the near-zero band. ε = 0 disables the band, leaving only
// sign changes. Panics on ε < 0 or NaN.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) {
		panic("pattern: WithEpsilon(eps<0 or NaN)")
	}

	return func(c *detectConfig) {
		c.epsilon = eps
	}
}

// newDetectConfig applies opts over the defaults.
func newDetectConfig(opts ...Option) detectConfig {
	cfg := detectConfig{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
