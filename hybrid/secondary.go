package hybrid

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
)

// Secondary is the line-based correction a compositor applies besides Warp.
type Secondary func(ctx context.Context, seq fixation.Sequence, lines []float64) (fixation.Sequence, error)

// SecondaryNames lists the algorithms usable as a secondary, in the order
// Names enumerates them.
var SecondaryNames = []string{"attach", "chain", "regress", "stretch"}

// FromLine binds opts to a drift line algorithm.
func FromLine(fn drift.LineFunc, opts ...drift.Option) Secondary {
	return func(ctx context.Context, seq fixation.Sequence, lines []float64) (fixation.Sequence, error) {
		return fn(ctx, seq, lines, opts...)
	}
}

// SecondaryByName resolves one of SecondaryNames.
//
// Errors: ErrUnknownSecondary.
func SecondaryByName(name string, opts ...drift.Option) (Secondary, error) {
	var known bool
	for _, s := range SecondaryNames {
		if s == name {
			known = true
			break
		}
	}
	if !known {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSecondary, name)
	}
	fn, err := drift.Line(name)
	if err != nil {
		return nil, err
	}

	return FromLine(fn, opts...), nil
}
