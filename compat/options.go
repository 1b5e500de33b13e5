// SPDX-License-Identifier: MIT
package compat

import "math"

// unbounded marks the absence of a Sakoe–Chiba band.
const unbounded = -1

// Option customizes Align.
type Option func(*alignConfig)

type alignConfig struct {
	window int
	slope  float64
}

// WithWindow limits pairings to |i-j| <= w days. Panics if w < 0.
func WithWindow(w int) Option {
	if w < 0 {
		panic("compat: WithWindow requires w >= 0")
	}

	return func(c *alignConfig) { c.window = w }
}

// WithSlopePenalty adds p to every non-diagonal step. Panics on negative or
// NaN p.
func WithSlopePenalty(p float64) Option {
	if p < 0 || math.IsNaN(p) {
		panic("compat: WithSlopePenalty requires a non-negative number")
	}

	return func(c *alignConfig) { c.slope = p }
}

func newAlignConfig(opts ...Option) alignConfig {
	cfg := alignConfig{window: unbounded}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
