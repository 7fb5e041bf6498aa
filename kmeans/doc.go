// SPDX-License-Identifier: MIT

// Package kmeans clusters one-dimensional samples with Lloyd's algorithm.
//
// The drift-correction algorithms use it twice: cluster groups fixation
// y-coordinates into one cluster per text line, split separates return
// sweeps from ordinary forward saccades by clustering x-displacements into
// two groups.
//
// Algorithm:
//   - k-means++ seeding,
//   - Lloyd iterations until the squared centre shift drops below
//     Tol·Var(values) or MaxIter is reached,
//   - NInit independent restarts; the run with the lowest inertia wins,
//   - empty clusters are re-seeded with the point farthest from its centre.
//
// Determinism:
//   - WithSeed fixes the random stream (seed 0 ⇒ a documented fixed default).
//   - Without WithSeed the stream is derived from the wall clock, so repeated
//     calls may disagree on data without a clear cluster structure.
//
// Non-convergence is not an error: Result.Converged reports it and the
// final assignment is returned as is.
//
// Complexity: O(NInit · MaxIter · n · k) time, O(n + k) extra space.
package kmeans

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'lvdrift.kmeans'.
func tracer() tracing.Trace {
	return tracing.Select("lvdrift.kmeans")
}
