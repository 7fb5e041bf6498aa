// SPDX-License-Identifier: MIT

package kmeans

import "errors"

var (
	// ErrEmptyInput indicates no samples were given.
	ErrEmptyInput = errors.New("kmeans: input must be non-empty")

	// ErrBadK indicates k < 1 or more clusters than samples.
	ErrBadK = errors.New("kmeans: k must satisfy 1 <= k <= len(values)")

	// ErrNonFinite indicates a NaN or ±Inf sample.
	ErrNonFinite = errors.New("kmeans: samples must be finite")
)

// Result is the outcome of the best restart.
type Result struct {
	// Labels[i] is the cluster of values[i], in 0..k-1.
	Labels []int

	// Centers[c] is the centre of cluster c.
	Centers []float64

	// Inertia is Σ (values[i] − Centers[Labels[i]])².
	Inertia float64

	// Iterations is the number of Lloyd iterations of the winning run.
	Iterations int

	// Converged reports whether the winning run met the tolerance.
	Converged bool
}

// Sizes returns the number of samples per cluster.
func (r Result) Sizes() []int {
	sz := make([]int, len(r.Centers))
	var i int
	for i = range r.Labels {
		sz[r.Labels[i]]++
	}

	return sz
}
