// Package activity holds user-declared activities and joins each one to the
// favorable periods of the cycle it depends on.
//
// An Activity binds a name to one cycle.Cycle and a threshold in [0, 1]
// (DefaultThreshold = 0.3). Its favorable periods are the runs of days on
// which that cycle stays at or above the threshold.
//
// A Registry is a caller-owned, in-memory collection with insertion-order
// listing. It is meant to live exactly as long as one user session; create a
// fresh Registry per session and never share one across sessions.
//
// The Registry holds no signal data. FavorablePeriodsFor takes a Series the
// caller sampled for the activity's category, and callers must re-sample
// whenever the birth date changes.
//
// Errors:
//
//	ErrInvalidName       – empty or whitespace-only name
//	ErrInvalidThreshold  – threshold outside [0, 1] or NaN
//	ErrNotFound          – no activity with the given ID
//	ErrCategoryMismatch  – series sampled for a different cycle
//	cycle.ErrUnknownCycle – category is not a declared cycle
package activity
