// SPDX-License-Identifier: MIT

package drift

import (
	"math"
	"sort"

	"github.com/katalvlaran/lvdrift/fixation"
	"gonum.org/v1/gonum/stat"
)

// prepare validates the common inputs of every line-based algorithm.
func prepare(op string, seq fixation.Sequence, lines []float64) error {
	if err := fixation.Validate(seq); err != nil {
		return wrap(op, err)
	}
	if err := fixation.ValidateLines(lines); err != nil {
		return wrap(op, err)
	}

	return nil
}

// nearestLine returns the index of the line closest to y; on equal distance
// the lower index wins.
func nearestLine(lines []float64, y float64) int {
	best, bestD := 0, math.Inf(1)
	var (
		i int
		d float64
	)
	for i = range lines {
		d = math.Abs(lines[i] - y)
		if d < bestD {
			best, bestD = i, d
		}
	}

	return best
}

// assignRuns snaps every run [start, end) of out to the line nearest the
// run's mean y. ends must be ascending and finish with len(out).
func assignRuns(out fixation.Sequence, lines []float64, ends []int) {
	start := 0
	var (
		end, i int
		line   float64
	)
	for _, end = range ends {
		if end <= start {
			continue
		}
		line = lines[nearestLine(lines, stat.Mean(out[start:end].Ys(), nil))]
		for i = start; i < end; i++ {
			out[i].Y = line
		}
		start = end
	}
}

// argsortStable returns the indices that sort v ascending; equal values keep
// their original order.
func argsortStable(v []float64) []int {
	idx := make([]int, len(v))
	var i int
	for i = range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool { return v[idx[a]] < v[idx[b]] })

	return idx
}

// groupMeans returns the mean of values per label 0..k-1.
func groupMeans(values []float64, labels []int, k int) []float64 {
	sums := make([]float64, k)
	counts := make([]float64, k)
	var i int
	for i = range values {
		sums[labels[i]] += values[i]
		counts[labels[i]]++
	}
	for i = range sums {
		if counts[i] > 0 {
			sums[i] /= counts[i]
		} else {
			sums[i] = math.NaN()
		}
	}

	return sums
}
