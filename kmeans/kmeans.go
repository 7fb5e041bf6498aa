// SPDX-License-Identifier: MIT

package kmeans

import (
	"context"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Fit1D clusters values into k groups. See FitContext.
func Fit1D(values []float64, k int, opts ...Option) (Result, error) {
	return FitContext(context.Background(), values, k, opts...)
}

// FitContext clusters values into k groups, keeping the restart with the
// lowest inertia. ctx is checked before every restart; a cancelled context
// returns ctx.Err().
//
// Every cluster of the returned Result is non-empty.
//
// Errors: ErrEmptyInput, ErrNonFinite, ErrBadK, ctx.Err().
func FitContext(ctx context.Context, values []float64, k int, opts ...Option) (Result, error) {
	// Stage 1: validate input.
	if len(values) == 0 {
		return Result{}, ErrEmptyInput
	}
	var i int
	for i = range values {
		if math.IsNaN(values[i]) || math.IsInf(values[i], 0) {
			return Result{}, ErrNonFinite
		}
	}
	if k < 1 || k > len(values) {
		return Result{}, ErrBadK
	}

	// Stage 2: restarts on independent streams.
	o := gatherOptions(opts)
	base := baseRNG(o)
	tol := o.tol * stat.PopVariance(values, nil)

	var (
		best Result
		run  Result
		r    int
	)
	for r = 0; r < o.nInit; r++ {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		run = lloyd(values, k, o.maxIter, tol, deriveRNG(base, uint64(r)))
		if r == 0 || run.Inertia < best.Inertia {
			best = run
		}
	}

	if !best.Converged {
		tracer().Infof("k-means (k=%d, n=%d) hit the iteration cap %d; using final assignment",
			k, len(values), o.maxIter)
	}
	tracer().Debugf("k-means (k=%d) inertia=%g after %d iterations", k, best.Inertia, best.Iterations)

	return best, nil
}

// lloyd runs one seeded k-means restart.
func lloyd(values []float64, k, maxIter int, tol float64, rng *rand.Rand) Result {
	n := len(values)
	centers := seedPlusPlus(values, k, rng)
	labels := make([]int, n)
	prev := make([]float64, k)

	var (
		iter      int
		converged bool
		shift     float64
		c         int
	)
	for iter = 1; iter <= maxIter; iter++ {
		copy(prev, centers)
		assign(values, centers, labels)
		recenter(values, centers, labels)

		shift = 0
		for c = 0; c < k; c++ {
			shift += (centers[c] - prev[c]) * (centers[c] - prev[c])
		}
		if shift <= tol {
			converged = true
			break
		}
	}
	if iter > maxIter {
		iter = maxIter
	}

	// final E-step so labels agree with the reported centres
	assign(values, centers, labels)
	recenter(values, centers, labels)

	var inertia float64
	for i := range values {
		d := values[i] - centers[labels[i]]
		inertia += d * d
	}

	return Result{
		Labels:     labels,
		Centers:    centers,
		Inertia:    inertia,
		Iterations: iter,
		Converged:  converged,
	}
}

// seedPlusPlus picks k initial centres with D² weighting.
func seedPlusPlus(values []float64, k int, rng *rand.Rand) []float64 {
	n := len(values)
	centers := make([]float64, 0, k)
	centers = append(centers, values[rng.Intn(n)])

	d2 := make([]float64, n)
	var i int
	for i = range values {
		d2[i] = sq(values[i] - centers[0])
	}

	for len(centers) < k {
		total := floats.Sum(d2)
		pick := rng.Intn(n)
		if total > 0 {
			target := rng.Float64() * total
			var acc float64
			for i = range d2 {
				acc += d2[i]
				if acc > target {
					pick = i
					break
				}
			}
		}
		c := values[pick]
		centers = append(centers, c)
		for i = range values {
			if d := sq(values[i] - c); d < d2[i] {
				d2[i] = d
			}
		}
	}

	return centers
}

// assign labels every value with its nearest centre (first index on ties).
func assign(values, centers []float64, labels []int) {
	var (
		i, c, bestC int
		d, bestD    float64
	)
	for i = range values {
		bestC, bestD = 0, math.Inf(1)
		for c = range centers {
			d = sq(values[i] - centers[c])
			if d < bestD {
				bestC, bestD = c, d
			}
		}
		labels[i] = bestC
	}
}

// recenter moves every centre to the mean of its members. An empty cluster
// takes over the point farthest from its current centre among clusters with
// more than one member, so every cluster keeps at least one point.
func recenter(values, centers []float64, labels []int) {
	k := len(centers)
	counts := make([]int, k)
	var i, c int
	for i = range labels {
		counts[labels[i]]++
	}

	for c = 0; c < k; c++ {
		if counts[c] > 0 {
			continue
		}
		far, farD := -1, -1.0
		for i = range values {
			if counts[labels[i]] < 2 {
				continue
			}
			if d := sq(values[i] - centers[labels[i]]); d > farD {
				far, farD = i, d
			}
		}
		if far < 0 {
			continue // unreachable while k <= n
		}
		tracer().Debugf("k-means: relocating empty cluster %d to sample %d", c, far)
		counts[labels[far]]--
		labels[far] = c
		counts[c] = 1
	}

	sums := make([]float64, k)
	for i = range values {
		sums[labels[i]] += values[i]
	}
	for c = 0; c < k; c++ {
		if counts[c] > 0 {
			centers[c] = sums[c] / float64(counts[c])
		}
	}
}

func sq(v float64) float64 { return v * v }
