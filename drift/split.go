// SPDX-License-Identifier: MIT

package drift

import (
	"context"

	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/katalvlaran/lvdrift/kmeans"
)

// Split clusters the x-displacements into two groups with k-means
// (default 10 restarts). The group with the lower mean displacement holds
// the return sweeps; every fixation that follows a sweep starts a new
// segment, and each segment is snapped as a whole to the line nearest its
// mean y.
//
// Requires at least 3 fixations (two displacements), otherwise
// ErrTooFewFixations.
//
// Options: WithSplitRestarts, WithMaxIter, WithSeed.
func Split(ctx context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
	if err := prepare(opSplit, seq, lines); err != nil {
		return nil, err
	}
	if len(seq) < 3 {
		return nil, wrap(opSplit, ErrTooFewFixations)
	}
	o := gatherOptions(opts)

	diffs := fixation.Diffs(seq.Xs())
	res, err := kmeans.FitContext(ctx, diffs, 2, kmeansOptions(o, o.splitRestarts)...)
	if err != nil {
		return nil, wrap(opSplit, err)
	}

	means := groupMeans(diffs, res.Labels, 2)
	sweep := 0
	if means[1] < means[0] {
		sweep = 1
	}

	ends := make([]int, 0, 8)
	var i int
	for i = range res.Labels {
		if res.Labels[i] == sweep {
			ends = append(ends, i+1)
		}
	}
	ends = append(ends, len(seq))
	tracer().Debugf("split: %d sweeps (mean dx %.1f vs %.1f)", len(ends)-1, means[sweep], means[1-sweep])

	out := seq.Clone()
	assignRuns(out, lines, ends)

	return out, nil
}
