// SPDX-License-Identifier: MIT
// Package: biocycle/pattern
//
// errors.go: sentinel errors for the pattern package.
//
// Error policy:
//   • Only package-level sentinels are exposed; branch with errors.Is.
//   • Detection functions return sentinels unwrapped; callers add context.
//   • Option constructors panic on meaningless values; detectors never panic.

package pattern

import "errors"

// ErrEmptySeries indicates a detector received a series with no samples.
var ErrEmptySeries = errors.New("pattern: empty series")
