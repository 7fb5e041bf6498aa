// SPDX-License-Identifier: MIT

package drift

import (
	"context"

	"github.com/katalvlaran/lvdrift/fixation"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
	"gonum.org/v1/gonum/stat/distuv"
)

// regressParams is the number of free parameters (slope, offset, spread).
const regressParams = 3

// Regress fits the reading as m parallel straight lines and assigns each
// fixation to its most likely line.
//
// Model: the y of a fixation on line i is Normal(k·x + lines[i] + o, s).
// The global parameters are squashed into their bounds through the standard
// normal CDF, p ↦ lo + (hi−lo)·Φ(p), so the search is unconstrained:
//
//	k ∈ [-0.1, 0.1]   slope       (WithSlopeBounds)
//	o ∈ [-50, 50]     offset, px  (WithOffsetBounds)
//	s ∈ [1, 20]       spread, px  (WithSpreadBounds)
//
// The objective −Σ_fixations max_i log N(y; k·x + lines[i] + o, s) is
// minimised with BFGS and a central finite-difference gradient, starting at
// the midpoint of every range. Each fixation then goes to the line with the
// highest log-density (first line on ties).
//
// Options: WithSlopeBounds, WithOffsetBounds, WithSpreadBounds,
// WithMaxOptimizerIterations (default 200 per parameter).
func Regress(ctx context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
	if err := prepare(opRegress, seq, lines); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	xs, ys := seq.Xs(), seq.Ys()
	density := make([]float64, len(lines))

	squash := func(p []float64) (k, off, s float64) {
		k = o.slopeBounds.Lo + o.slopeBounds.Width()*distuv.UnitNormal.CDF(p[0])
		off = o.offsetBounds.Lo + o.offsetBounds.Width()*distuv.UnitNormal.CDF(p[1])
		s = o.spreadBounds.Lo + o.spreadBounds.Width()*distuv.UnitNormal.CDF(p[2])
		return k, off, s
	}
	// densities fills density with the log-density of fixation f on each line.
	densities := func(f int, k, off, s float64) {
		for l := range lines {
			nd := distuv.Normal{Mu: k*xs[f] + lines[l] + off, Sigma: s}
			density[l] = nd.LogProb(ys[f])
		}
	}
	objective := func(p []float64) float64 {
		k, off, s := squash(p)
		var total float64
		for f := range xs {
			densities(f, k, off, s)
			total += floats.Max(density)
		}
		return -total
	}

	iters := o.optimizerIters
	if iters == 0 {
		iters = 200 * regressParams
	}
	grad := &fd.Settings{Formula: fd.Central}
	problem := optimize.Problem{
		Func: objective,
		Grad: func(g, x []float64) { fd.Gradient(g, objective, x, grad) },
	}
	best, err := minimize(ctx, opRegress, problem, make([]float64, regressParams), iters, &optimize.BFGS{})
	if err != nil {
		return nil, err
	}

	k, off, s := squash(best)
	tracer().Debugf("regress: slope=%.4f offset=%.2f spread=%.2f", k, off, s)

	out := seq.Clone()
	for f := range out {
		densities(f, k, off, s)
		out[f].Y = lines[floats.MaxIdx(density)]
	}

	return out, nil
}
