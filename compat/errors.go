// SPDX-License-Identifier: MIT
package compat

import "errors"

var (
	// ErrEmptySeries indicates that a series passed to Align has no samples.
	ErrEmptySeries = errors.New("compat: series must be non-empty")

	// ErrCycleMismatch indicates two series sampled for different cycles.
	ErrCycleMismatch = errors.New("compat: series cycles differ")

	// ErrWindowTooNarrow indicates that no path fits inside the band, which
	// happens when the lengths differ by more than the window.
	ErrWindowTooNarrow = errors.New("compat: window too narrow for series lengths")
)
