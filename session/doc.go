// Package session binds a birth date, an activity registry and detection
// settings into one caller-owned unit of work, and drives it from a
// line-oriented command stream.
//
// 🚀 What is a Session?
//
//	A Session is the state one user accumulates while exploring their cycles:
//	  • an optional birth date (nothing can be evaluated without it);
//	  • an *activity.Registry owned exclusively by this session;
//	  • the critical-day epsilon used by CriticalDays.
//
//	Sessions hold no cache. Every query re-samples from the birth date, so a
//	birth-date change never serves stale numbers. SetBirthDate reports whether
//	the date actually changed, so a shell can tell its user that results it
//	printed earlier are out of date.
//
// ✨ Command stream
//
//	Exec runs one text command, Run loops over a reader until EOF or "quit":
//
//	  birth 1990-05-17
//	  add physical 0.4 Morning run
//	  periods 2024-05-01 2024-05-31
//	  critical emotional 2024-05-01 2024-05-31
//	  remove <id>
//
//	Malformed commands fail with ErrUsage, unknown verbs with
//	ErrUnknownCommand; queries before "birth" fail with ErrNoBirthDate. Run
//	prints such errors and keeps reading.
//
// ⚙️ Rendering
//
//	The Write* helpers in render.go print readings, series, dates, periods
//	and activities as aligned plain-text tables (text/tabwriter). The CLI
//	reuses them so both surfaces print identically.
package session
