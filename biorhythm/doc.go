// Package biorhythm evaluates the three cycle values for a birth date and a
// target date.
//
// ✨ Model:
//
//	d     = calendar.DaysBetween(birth, target)   // signed, may be negative
//	value = sin(2π · d / period)                   // in [-1, 1]
//
// Evaluation is pure and total: any two dates yield a Triple, dates before
// birth included. On the day of birth (d = 0) every cycle is exactly 0.
//
// The elapsed count is reduced modulo the period before the sine is taken, so
// every whole period boundary is an exact zero as well and very old birth
// dates do not lose precision.
//
// ⚙️ Usage:
//
//	tr := biorhythm.Evaluate(birth, today)
//	fmt.Printf("%.3f %.3f %.3f\n", tr.Physical, tr.Emotional, tr.Intellectual)
//
//	for _, r := range biorhythm.ReadingFor(birth, today) {
//	  fmt.Println(r.Cycle, r.Percent, r.Phase)
//	}
package biorhythm
