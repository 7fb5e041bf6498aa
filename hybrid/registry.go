package hybrid

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
)

const (
	suffixCleanup  = "_cleanup"
	suffixIsolated = "_regs"
	prefixWarp     = "warp_"
)

// Names returns every named composition: warp_<secondary>_cleanup and
// warp_<secondary>_regs for each of SecondaryNames, then "adaptive".
func Names() []string {
	names := make([]string, 0, 2*len(SecondaryNames)+1)
	for _, s := range SecondaryNames {
		names = append(names, prefixWarp+s+suffixCleanup, prefixWarp+s+suffixIsolated)
	}

	return append(names, opAdaptive)
}

// Lookup returns the named composition in the call shape of drift.Lookup.
// Options given at call time are appended to those of WithDriftOptions and
// reach the secondary and the Adaptive detector.
//
// Errors: drift.ErrUnknownAlgorithm.
func Lookup(name string, opts ...Option) (drift.Algorithm, error) {
	base := gatherOptions(opts)

	if name == opAdaptive {
		return func(ctx context.Context, seq fixation.Sequence, ref drift.Reference, dopts ...drift.Option) (fixation.Sequence, error) {
			all := append(append([]Option(nil), opts...), WithDriftOptions(dopts...))
			return Adaptive(ctx, seq, ref.Words, ref.Lines, all...)
		}, nil
	}

	var compose func(context.Context, fixation.Sequence, []aoi.Point, []float64, Secondary, ...Option) (fixation.Sequence, error)
	var sec string
	switch {
	case strings.HasPrefix(name, prefixWarp) && strings.HasSuffix(name, suffixCleanup):
		compose, sec = Cleanup, strings.TrimSuffix(strings.TrimPrefix(name, prefixWarp), suffixCleanup)
	case strings.HasPrefix(name, prefixWarp) && strings.HasSuffix(name, suffixIsolated):
		compose, sec = Isolated, strings.TrimSuffix(strings.TrimPrefix(name, prefixWarp), suffixIsolated)
	default:
		return nil, fmt.Errorf("%w: %q", drift.ErrUnknownAlgorithm, name)
	}
	if _, err := SecondaryByName(sec); err != nil {
		return nil, fmt.Errorf("%w: %q", drift.ErrUnknownAlgorithm, name)
	}

	return func(ctx context.Context, seq fixation.Sequence, ref drift.Reference, dopts ...drift.Option) (fixation.Sequence, error) {
		all := append(append([]drift.Option(nil), base.drift...), dopts...)
		secondary, err := SecondaryByName(sec, all...)
		if err != nil {
			return nil, err
		}
		return compose(ctx, seq, ref.Words, ref.Lines, secondary, opts...)
	}, nil
}
