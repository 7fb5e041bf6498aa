// SPDX-License-Identifier: MIT

package drift

import (
	"context"
	"math"

	"github.com/katalvlaran/lvdrift/fixation"
	"gonum.org/v1/gonum/optimize"
)

// stretchParams is the number of free parameters (scale, offset).
const stretchParams = 2

// Stretch fits the affine map y' = scale·y + offset that brings the
// fixations closest to the lines, then snaps every transformed y to its
// nearest line.
//
// The objective Σ |y'ᵢ − nearest(y'ᵢ)| is piecewise linear, so it is
// minimised with the derivative-free Nelder–Mead method. The search runs in
// normalised coordinates, one unit per half-width of each range, and every
// candidate is projected onto the bounds before it is evaluated:
//
//	scale  ∈ [0.9, 1.1]  (WithScaleBounds)
//	offset ∈ [-50, 50]   (WithStretchOffsetBounds)
//
// The start is scale=1, offset=0 (projected onto the bounds).
//
// Options: WithScaleBounds, WithStretchOffsetBounds,
// WithMaxOptimizerIterations (default 200 per parameter).
func Stretch(ctx context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
	if err := prepare(opStretch, seq, lines); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)
	ys := seq.Ys()

	sb, ob := o.scaleBounds, o.stretchOffsetBounds
	sMid, sHalf := (sb.Lo+sb.Hi)/2, sb.Width()/2
	oMid, oHalf := (ob.Lo+ob.Hi)/2, ob.Width()/2
	unpack := func(p []float64) (scale, offset float64) {
		return sb.Clamp(sMid + sHalf*p[0]), ob.Clamp(oMid + oHalf*p[1])
	}
	objective := func(p []float64) float64 {
		scale, offset := unpack(p)
		var total, c float64
		for _, y := range ys {
			c = scale*y + offset
			total += math.Abs(c - lines[nearestLine(lines, c)])
		}
		return total
	}

	x0 := []float64{
		(sb.Clamp(1) - sMid) / sHalf,
		(ob.Clamp(0) - oMid) / oHalf,
	}
	iters := o.optimizerIters
	if iters == 0 {
		iters = 200 * stretchParams
	}
	best, err := minimize(ctx, opStretch, optimize.Problem{Func: objective}, x0, iters, &optimize.NelderMead{})
	if err != nil {
		return nil, err
	}

	scale, offset := unpack(best)
	tracer().Debugf("stretch: scale=%.4f offset=%.2f", scale, offset)

	out := seq.Clone()
	for i := range out {
		out[i].Y = lines[nearestLine(lines, scale*out[i].Y+offset)]
	}

	return out, nil
}
