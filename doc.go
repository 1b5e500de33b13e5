// Package biocycle is a small engine for biorhythm cycles: evaluating them,
// sampling them day by day, and detecting the days and stretches that matter.
//
// 🚀 What is in the box?
//
//	Three sinusoidal cycles counted from a birth date, plus the tooling around them:
//		• Cycle model: Physical (23 days), Emotional (28), Intellectual (33)
//		• Evaluator: sin(2π·d/p) for any date, before or after birth
//		• Sampler: one value per calendar day over an inclusive window
//		• Pattern detector: critical days and favorable periods
//		• Activity registry: user labels bound to a cycle and a threshold
//		• Compatibility: phase scores and DTW lag between two people
//
// ✨ Design
//
//   - Pure core – no clock, files or network; "today" is always an argument
//   - Calendar days – dates are midnight UTC, day counts are DST-proof
//   - Sentinel errors – match with errors.Is, never string compare
//   - Caller-owned state – every session gets its own Registry
//
// Packages, leaf to root:
//
//	cycle/     the Cycle enum, periods and label parsing
//	calendar/  date normalization, day arithmetic, month windows
//	biorhythm/ Evaluate, ValueAt and day Readings
//	sampler/   Series over [start, end], per month, all cycles
//	pattern/   CriticalDays and FavorablePeriods
//	activity/  the Activity Registry
//	compat/    Scores and Align between two birth dates
//	session/   birth date + registry + command interpreter
//	cmd/biocycle the command-line shell
//
// One Physical cycle at its quarter points:
//
//	d = 0      →  0  (critical)
//	d = 5.75   → +1  (peak)
//	d = 11.5   →  0  (critical)
//	d = 17.25  → -1  (trough)
//	d = 23     →  0  (next cycle)
//
//	go install github.com/katalvlaran/biocycle/cmd/biocycle@latest
package biocycle
