// SPDX-License-Identifier: MIT

package drift

import (
	"math"

	"github.com/katalvlaran/lvdrift/fixation"
	"gonum.org/v1/gonum/stat"
)

// Merge - progressive run merging
//
// Algorithm Outline:
//  1. A new run starts wherever x decreases or |Δy| exceeds the y-threshold
//     (default 32px).
//  2. For each Phase in order, while there are more runs than lines:
//     try every pair (i < j) with len(run_i) >= MinI and len(run_j) >= MinJ,
//     fit a straight line to the union of their points by least squares and
//     take the RMS residual as the pair's error. Unless the phase is
//     unconstrained, a pair is legal only if |slope| < gradient threshold
//     (0.1) and error < error threshold (20). Merge the legal pair with the
//     lowest error; when no legal pair exists the phase ends.
//  3. Runs are ordered by mean y and mapped onto the lines ascending.
//
// The merged run is appended at the end of the run list and its two parts
// removed, so later candidates are visited in that order (this matters for
// exact ties).
//
// Errors: ErrUnmerged when a custom phase schedule without an unconstrained
// phase leaves more runs than lines.
//
// Complexity: O(P · R³ · n) in the worst case for R initial runs.
func Merge(seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
	if err := prepare(opMerge, seq, lines); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	n, m := len(seq), len(lines)
	xs, ys := seq.Xs(), seq.Ys()

	// Stage 1: initial segmentation.
	runs := make([][]int, 0, 16)
	start := 0
	var i, j int
	for i = 1; i < n; i++ {
		if xs[i]-xs[i-1] < 0 || math.Abs(ys[i]-ys[i-1]) > o.yThreshold {
			runs = append(runs, span(start, i))
			start = i
		}
	}
	runs = append(runs, span(start, n))
	tracer().Debugf("merge: %d initial runs for %d lines", len(runs), m)

	// Stage 2: phased best-first merging.
	var (
		bestI, bestJ  int
		bestErr       float64
		slope, rmsErr float64
	)
	for _, ph := range o.phases {
		for len(runs) > m {
			bestI, bestJ, bestErr = -1, -1, math.Inf(1)
			for i = 0; i < len(runs)-1; i++ {
				if len(runs[i]) < ph.MinI {
					continue
				}
				for j = i + 1; j < len(runs); j++ {
					if len(runs[j]) < ph.MinJ {
						continue
					}
					slope, rmsErr = fitLine(xs, ys, runs[i], runs[j])
					if !ph.NoConstraints && (math.Abs(slope) >= o.gradientThreshold || rmsErr >= o.errorThreshold) {
						continue
					}
					if rmsErr < bestErr {
						bestI, bestJ, bestErr = i, j, rmsErr
					}
				}
			}
			if bestI < 0 {
				break
			}
			runs = mergeRuns(runs, bestI, bestJ)
		}
	}
	if len(runs) > m {
		return nil, wrap(opMerge, ErrUnmerged)
	}

	// Stage 3: order runs by mean y and map to lines.
	means := make([]float64, len(runs))
	for i = range runs {
		means[i] = meanAt(ys, runs[i])
	}
	assigned := make([]float64, n)
	for i, j = range argsortStable(means) {
		for _, k := range runs[j] {
			assigned[k] = lines[i]
		}
	}

	return seq.WithYs(assigned), nil
}

// mergeRuns removes runs i < j and appends their concatenation.
func mergeRuns(runs [][]int, i, j int) [][]int {
	merged := make([]int, 0, len(runs[i])+len(runs[j]))
	merged = append(merged, runs[i]...)
	merged = append(merged, runs[j]...)

	next := make([][]int, 0, len(runs)-1)
	for k := range runs {
		if k != i && k != j {
			next = append(next, runs[k])
		}
	}

	return append(next, merged)
}

// fitLine fits y = slope·x + intercept to the points of runs a and b by
// least squares and returns the slope and the RMS residual.
//
// When all x are equal the system is rank deficient. The columns of the
// design matrix are scaled to unit norm before the minimum-norm solve, which
// for x ≡ c ≠ 0 gives slope = ȳ/(2c) and intercept = ȳ/2; for c = 0 the
// slope is 0 and the intercept ȳ. Either way the residuals are y − ȳ.
func fitLine(xs, ys []float64, a, b []int) (slope, rms float64) {
	n := len(a) + len(b)
	px := make([]float64, 0, n)
	py := make([]float64, 0, n)
	for _, k := range a {
		px = append(px, xs[k])
		py = append(py, ys[k])
	}
	for _, k := range b {
		px = append(px, xs[k])
		py = append(py, ys[k])
	}

	var intercept float64
	if constant(px) {
		c := px[0]
		ybar := stat.Mean(py, nil)
		if c == 0 {
			slope, intercept = 0, ybar
		} else {
			slope, intercept = ybar/(2*c), ybar/2
		}
	} else {
		intercept, slope = stat.LinearRegression(px, py, nil, false)
	}

	var ss, r float64
	for k := range px {
		r = py[k] - (slope*px[k] + intercept)
		ss += r * r
	}

	return slope, math.Sqrt(ss / float64(n))
}

func constant(v []float64) bool {
	for _, x := range v[1:] {
		if x != v[0] {
			return false
		}
	}
	return true
}

func span(start, end int) []int {
	s := make([]int, end-start)
	for k := range s {
		s[k] = start + k
	}
	return s
}

func meanAt(v []float64, idx []int) float64 {
	var sum float64
	for _, k := range idx {
		sum += v[k]
	}
	return sum / float64(len(idx))
}
