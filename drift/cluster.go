// SPDX-License-Identifier: MIT

package drift

import (
	"context"

	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/katalvlaran/lvdrift/kmeans"
)

// Cluster groups the fixation y-coordinates into m = len(lines) clusters
// with k-means (default 100 restarts, 300 iterations) and maps clusters,
// ordered by mean y, onto the lines in ascending order.
//
// Requires len(seq) >= len(lines), otherwise ErrTooFewFixations.
// Without WithSeed the k-means stream is time-derived.
//
// Options: WithClusterRestarts, WithMaxIter, WithSeed.
func Cluster(ctx context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
	if err := prepare(opCluster, seq, lines); err != nil {
		return nil, err
	}
	m := len(lines)
	if len(seq) < m {
		return nil, wrap(opCluster, ErrTooFewFixations)
	}
	o := gatherOptions(opts)

	ys := seq.Ys()
	res, err := kmeans.FitContext(ctx, ys, m, kmeansOptions(o, o.clusterRestarts)...)
	if err != nil {
		return nil, wrap(opCluster, err)
	}

	// rank[c] is the position of cluster c when ordered by mean y
	order := argsortStable(groupMeans(ys, res.Labels, m))
	rank := make([]int, m)
	var i int
	for i = range order {
		rank[order[i]] = i
	}

	out := seq.Clone()
	for i = range out {
		out[i].Y = lines[rank[res.Labels[i]]]
	}

	return out, nil
}

func kmeansOptions(o Options, restarts int) []kmeans.Option {
	ko := []kmeans.Option{
		kmeans.WithRestarts(restarts),
		kmeans.WithMaxIter(o.maxIter),
	}
	if o.seeded {
		ko = append(ko, kmeans.WithSeed(o.seed))
	}

	return ko
}
