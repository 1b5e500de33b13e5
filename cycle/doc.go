// Package cycle defines the closed set of biorhythm cycles and their periods.
//
// 🚀 What is a cycle?
//
//	A cycle is a named sinusoid that starts at zero on the day of birth and
//	repeats every Period() days:
//	  • Physical: 23 days
//	  • Emotional: 28 days
//	  • Intellectual: 33 days
//
// The set is fixed at compile time. Every other package in biocycle refers to
// a cycle through the Cycle type, never through free-form text; Parse is the
// only entry point from text and is meant for configuration and CLI input.
//
// ⚙️ Usage:
//
//	for _, c := range cycle.All() {
//	  fmt.Println(c, c.Period())
//	}
//
//	c, err := cycle.Parse("emotional")
//	if errors.Is(err, cycle.ErrUnknownCycle) {
//	  // reject input
//	}
package cycle
