// Package compat compares the cycles of two people.
//
// 🚀 Two views of "in sync"
//
//  1. Score: the closed-form phase agreement of two birth dates. Both people
//     share every period, so their curves differ only by a constant shift of
//     Δ = DaysBetween(birthA, birthB) mod p days. The score per cycle is
//
//     (1 + cos(2π·Δ/p)) / 2 · 100
//
//     100% for identical phase, 0% for opposite phase.
//
//  2. Align: Dynamic Time Warping between two sampled series of the same
//     cycle. It finds the cheapest monotone pairing of days and reports the
//     total cost together with the typical lag (in days) of b behind a.
//     Useful when the window is short and the closed form hides how far the
//     curves actually drift apart inside it.
//
// ✨ Align recurrence
//
//	D[0][0] = 0, D[i][0] = D[0][j] = +∞
//	D[i][j] = |a[i-1] - b[j-1]| + min(D[i-1][j-1], D[i-1][j]+slope, D[i][j-1]+slope)
//
//	cells with |i-j| > window stay +∞ (Sakoe–Chiba band).
//
// ⚙️ Options
//
//	WithWindow(w)       band half-width in days; default unbounded.
//	WithSlopePenalty(p) extra cost of a non-diagonal step; default 0.
//
//	Both panic on negative or NaN input. Align itself never panics.
//
// Complexity: Align is O(n·m) time and memory, O(n·w) time with a window.
package compat
