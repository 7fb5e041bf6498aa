// SPDX-License-Identifier: MIT

// Package drift implements the vertical drift-correction algorithms for
// fixation sequences recorded while reading multi-line text.
//
// Raw gaze positions drift away from the line of text that was actually
// being read. Each algorithm reassigns every fixation's Y to one of a fixed
// set of line positions (or, for Warp, to the line of the words it aligns
// with), leaving X and Duration untouched:
//
//	Attach   nearest line per fixation, no context
//	Chain    runs split at large jumps, each run to the line nearest its mean
//	Cluster  1-D k-means on y, clusters ordered by mean → lines ascending
//	Merge    progressive merging of left-to-right runs by line-fit quality
//	Regress  maximum-likelihood fit of slope, offset and spread, then argmax
//	Segment  the m-1 largest leftward jumps are return sweeps
//	Split    2-means on x-displacements separates return sweeps
//	Stretch  bounded affine y' = scale·y + offset minimising snap distance
//	Warp     DTW alignment with word centres, mode of aligned words' y
//
// Contract:
//   - value-in / value-out: the input Sequence is never modified,
//   - len(output) == len(input), output[i].X == input[i].X,
//   - every output Y is an element of lines (Warp: of the word y-values),
//   - tie-breaks are deterministic (first index / first encountered).
//
// Errors are the sentinels in errors.go wrapped with the operation name;
// compare with errors.Is. Numerical non-convergence is never an error: the
// best parameters found are used and the event is traced.
//
// Cluster and Split depend on randomised k-means restarts. Pass WithSeed for
// reproducible output; without it results may vary between runs.
package drift

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lvdrift.drift'.
func tracer() tracing.Trace {
	return tracing.Select("lvdrift.drift")
}

// Operation names used for error wrapping and registry lookup.
const (
	opAttach  = "attach"
	opChain   = "chain"
	opCluster = "cluster"
	opMerge   = "merge"
	opRegress = "regress"
	opSegment = "segment"
	opSplit   = "split"
	opStretch = "stretch"
	opWarp    = "warp"
	opCompare = "compare"
)

func wrap(op string, err error) error {
	return fmt.Errorf("drift: %s: %w", op, err)
}
