package dtw

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// DTW - Dynamic Time Warping
//
// Algorithm Outline (Full-Matrix):
//  1. Let n = len(a), m = len(b). Allocate (n+1)x(m+1) DP matrix D.
//  2. Initialize:
//     D[0][0] = 0
//     D[i][0] = +∞ for i=1..n
//     D[0][j] = +∞ for j=1..m
//  3. For i = 1..n:
//     For j = 1..m (and |i-j| ≤ Window, if constrained):
//     cost  = ‖a[i-1] − b[j-1]‖₂
//     match = D[i-1][j-1]
//     ins   = D[i-1][j]   + SlopePenalty
//     del   = D[i][j-1]   + SlopePenalty
//     D[i][j] = cost + min(match, ins, del)
//  4. distance = D[n][m].
//  5. If ReturnPath, walk back from (n,m) to (1,1) stepping to the
//     predecessor with minimal D-value (ties: match, ins, del).
//
// Errors:
//   - ErrEmptyInput        - if either input is empty.
//   - ErrDimensionMismatch - if points differ in dimension.
//   - ErrBadInput          - if Window < -1 or SlopePenalty < 0.
//   - ErrPathNeedsMatrix   - if ReturnPath=true with TwoRows mode.
//   - ErrNoPath            - if ReturnPath=true and distance is +Inf.
//
// A nil opts behaves like DefaultOptions().
func DTW(a, b [][]float64, opts *Options) (distance float64, path []Coord, err error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if err = checkDims(a, b); err != nil {
		return 0, nil, err
	}

	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Window < -1 || o.SlopePenalty < 0 || math.IsNaN(o.SlopePenalty) {
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	if o.MemoryMode == TwoRows {
		return twoRows(a, b, o), nil, nil
	}

	dp := fullMatrix(a, b, o)
	distance = dp[n][m]
	if !o.ReturnPath {
		return distance, nil, nil
	}
	if math.IsInf(distance, 1) {
		return distance, nil, ErrNoPath
	}

	path, err = backtrack(dp, o.SlopePenalty)
	if err != nil {
		return distance, nil, err
	}

	return distance, path, nil
}

// Mapping groups a warping path by its first index: Mapping(path, n)[i]
// lists, ascending, every J aligned with I == i. Indices of the first
// sequence that the path never visits get an empty slice.
func Mapping(path []Coord, n int) [][]int {
	out := make([][]int, n)
	var k int
	for k = range path {
		c := path[k]
		if c.I < 0 || c.I >= n {
			continue
		}
		out[c.I] = append(out[c.I], c.J)
	}

	return out
}

// fullMatrix fills the (n+1)x(m+1) cumulative-cost table.
func fullMatrix(a, b [][]float64, o Options) [][]float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	dp := make([][]float64, n+1)
	var i, j int
	for i = range dp {
		dp[i] = make([]float64, m+1)
	}
	for i = 1; i <= n; i++ {
		dp[i][0] = inf
	}
	for j = 1; j <= m; j++ {
		dp[0][j] = inf
	}

	for i = 1; i <= n; i++ {
		for j = 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				dp[i][j] = inf
				continue
			}
			best := min3(dp[i-1][j-1], dp[i-1][j]+o.SlopePenalty, dp[i][j-1]+o.SlopePenalty)
			dp[i][j] = floats.Distance(a[i-1], b[j-1], 2) + best
		}
	}

	return dp
}

// twoRows computes the distance keeping only two rows of the table.
func twoRows(a, b [][]float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	var i, j int
	for j = 1; j <= m; j++ {
		prev[j] = inf
	}

	for i = 1; i <= n; i++ {
		curr[0] = inf
		for j = 1; j <= m; j++ {
			if outside(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			best := min3(prev[j-1], prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty)
			curr[j] = floats.Distance(a[i-1], b[j-1], 2) + best
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// backtrack walks from (n,m) to (1,1) and returns the path in forward
// order, translated to 0-based indices.
func backtrack(dp [][]float64, penalty float64) ([]Coord, error) {
	i, j := len(dp)-1, len(dp[0])-1
	inf := math.Inf(1)
	path := make([]Coord, 0, i+j)

	for i > 1 || j > 1 {
		path = append(path, Coord{I: i - 1, J: j - 1})

		diag, up, left := inf, inf, inf
		if i > 1 && j > 1 {
			diag = dp[i-1][j-1]
		}
		if i > 1 {
			up = dp[i-1][j] + penalty
		}
		if j > 1 {
			left = dp[i][j-1] + penalty
		}

		switch {
		case math.IsInf(diag, 1) && math.IsInf(up, 1) && math.IsInf(left, 1):
			return nil, ErrNoPath
		case diag <= up && diag <= left:
			i--
			j--
		case up <= left:
			i--
		default:
			j--
		}
	}
	path = append(path, Coord{I: 0, J: 0})

	// reverse path in-place
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path, nil
}

func checkDims(a, b [][]float64) error {
	d := len(a[0])
	if d == 0 {
		return ErrDimensionMismatch
	}
	var k int
	for k = range a {
		if len(a[k]) != d {
			return ErrDimensionMismatch
		}
	}
	for k = range b {
		if len(b[k]) != d {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// outside reports whether (i,j) lies outside the Sakoe–Chiba band.
func outside(i, j, window int) bool {
	return window >= 0 && abs(i-j) > window
}

// abs returns the absolute value of an int.
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}
