package compat

import (
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/biocycle/sampler"
)

// Alignment is the result of Align.
type Alignment struct {
	// Distance is the accumulated cost of the optimal warping path.
	Distance float64

	// Path lists the paired sample indexes (i in a, j in b), starting at
	// (0, 0) and ending at (len(a)-1, len(b)-1).
	Path [][2]int

	// Lag is the median of j-i along Path: how many days b typically runs
	// behind a. Negative when b runs ahead.
	Lag int
}

// Align warps b onto a with Dynamic Time Warping.
//
// Errors:
//   - ErrEmptySeries: either series has no samples.
//   - ErrCycleMismatch: a.Cycle != b.Cycle.
//   - ErrWindowTooNarrow: |len(a)-len(b)| exceeds the window.
func Align(a, b sampler.Series, opts ...Option) (Alignment, error) {
	n, m := a.Len(), b.Len()
	if n == 0 || m == 0 {
		return Alignment{}, ErrEmptySeries
	}
	if a.Cycle != b.Cycle {
		return Alignment{}, fmt.Errorf("%s vs %s: %w", a.Cycle, b.Cycle, ErrCycleMismatch)
	}
	cfg := newAlignConfig(opts...)
	av, bv := a.Values(), b.Values()

	inf := math.Inf(1)
	dp := make([][]float64, n+1)
	for i := range dp {
		dp[i] = make([]float64, m+1)
		for j := range dp[i] {
			dp[i][j] = inf
		}
	}
	dp[0][0] = 0

	for i := 1; i <= n; i++ {
		lo, hi := 1, m
		if cfg.window != unbounded {
			lo, hi = max(1, i-cfg.window), min(m, i+cfg.window)
		}
		for j := lo; j <= hi; j++ {
			cost := math.Abs(av[i-1] - bv[j-1])
			dp[i][j] = cost + min(dp[i-1][j-1], dp[i-1][j]+cfg.slope, dp[i][j-1]+cfg.slope)
		}
	}
	if math.IsInf(dp[n][m], 1) {
		return Alignment{}, fmt.Errorf("lengths %d and %d, window %d: %w", n, m, cfg.window, ErrWindowTooNarrow)
	}

	path := backtrack(dp, n, m, cfg.slope)

	return Alignment{Distance: dp[n][m], Path: path, Lag: medianLag(path)}, nil
}

// backtrack walks from (n, m) to (1, 1) choosing the cheapest predecessor,
// diagonal first on ties, and returns the path in forward order.
func backtrack(dp [][]float64, n, m int, slope float64) [][2]int {
	path := [][2]int{{n - 1, m - 1}}
	i, j := n, m
	for i > 1 || j > 1 {
		di, dj := 0, 0
		best := math.Inf(1)
		if i > 1 && j > 1 {
			best, di, dj = dp[i-1][j-1], -1, -1
		}
		if i > 1 && dp[i-1][j]+slope < best {
			best, di, dj = dp[i-1][j]+slope, -1, 0
		}
		if j > 1 && dp[i][j-1]+slope < best {
			di, dj = 0, -1
		}
		i, j = i+di, j+dj
		path = append(path, [2]int{i - 1, j - 1})
	}
	slices.Reverse(path)

	return path
}

func medianLag(path [][2]int) int {
	lags := make([]int, len(path))
	for k, p := range path {
		lags[k] = p[1] - p[0]
	}
	slices.Sort(lags)

	return lags[len(lags)/2]
}
