package hybrid

import (
	"context"

	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/katalvlaran/lvdrift/regression"
)

// Cleanup warps the forward-reading fixations onto the words, reinserts the
// raw regressions and then runs secondary over the reassembled trial.
//
// Errors: ErrNoSecondary, and those of regression.Slice, drift.Warp,
// regression.Insert and secondary, wrapped with the operation name.
func Cleanup(ctx context.Context, seq fixation.Sequence, words []aoi.Point, lines []float64, secondary Secondary, opts ...Option) (fixation.Sequence, error) {
	if secondary == nil {
		return nil, wrap(opCleanup, ErrNoSecondary)
	}
	o := gatherOptions(opts)

	s, forward, err := warpForward(seq, words, lines, o)
	if err != nil {
		return nil, wrap(opCleanup, err)
	}
	merged, err := regression.Insert(forward, s.Regressions, s.Index)
	if err != nil {
		return nil, wrap(opCleanup, err)
	}
	out, err := secondary(ctx, merged, lines)
	if err != nil {
		return nil, wrap(opCleanup, err)
	}

	return out, nil
}

// Isolated warps the forward-reading fixations onto the words, corrects only
// the regressions with secondary (skipped when there are none) and reinserts
// them at their original positions.
//
// Errors: as Cleanup.
func Isolated(ctx context.Context, seq fixation.Sequence, words []aoi.Point, lines []float64, secondary Secondary, opts ...Option) (fixation.Sequence, error) {
	if secondary == nil {
		return nil, wrap(opIsolated, ErrNoSecondary)
	}
	o := gatherOptions(opts)

	s, forward, err := warpForward(seq, words, lines, o)
	if err != nil {
		return nil, wrap(opIsolated, err)
	}
	regs := s.Regressions
	if len(regs) > 0 {
		if regs, err = secondary(ctx, regs, lines); err != nil {
			return nil, wrap(opIsolated, err)
		}
	}
	out, err := regression.Insert(forward, regs, s.Index)
	if err != nil {
		return nil, wrap(opIsolated, err)
	}

	return out, nil
}

// Adaptive corrects a copy with Regress and checks it for regressions. When
// there are none the trial is plain forward reading and Warp alone is used;
// otherwise it is Isolated with Regress as secondary.
//
// Errors: those of drift.Regress, regression.Detect, drift.Warp and
// Isolated, wrapped with the operation name.
func Adaptive(ctx context.Context, seq fixation.Sequence, words []aoi.Point, lines []float64, opts ...Option) (fixation.Sequence, error) {
	o := gatherOptions(opts)

	probe, err := drift.Regress(ctx, seq, lines, o.drift...)
	if err != nil {
		return nil, wrap(opAdaptive, err)
	}
	found, err := regression.Detect(probe, lines, o.slice...)
	if err != nil {
		return nil, wrap(opAdaptive, err)
	}
	if !found {
		tracer().Debugf("adaptive: no regressions detected, using warp")
		out, err := drift.Warp(seq, words)
		if err != nil {
			return nil, wrap(opAdaptive, err)
		}
		return out, nil
	}

	tracer().Debugf("adaptive: regressions detected, using warp with isolated regress")
	return Isolated(ctx, seq, words, lines, FromLine(drift.Regress, o.drift...), opts...)
}

// warpForward slices seq and warps the forward part.
func warpForward(seq fixation.Sequence, words []aoi.Point, lines []float64, o options) (regression.Split, fixation.Sequence, error) {
	s, err := regression.Slice(seq, lines, o.slice...)
	if err != nil {
		return regression.Split{}, nil, err
	}
	tracer().Debugf("%d forward fixations, %d regressions", len(s.Forward), len(s.Regressions))

	forward, err := drift.Warp(s.Forward, words)
	if err != nil {
		return regression.Split{}, nil, err
	}

	return s, forward, nil
}
