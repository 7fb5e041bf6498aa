// SPDX-License-Identifier: MIT

package drift

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/fixation"
)

// Reference bundles the two geometric references a correction may need.
type Reference struct {
	// Lines holds the ascending line centres (every algorithm but warp).
	Lines []float64

	// Words holds the word centres in reading order (warp).
	Words []aoi.Point
}

// LineFunc is the common shape of the line-based algorithms. Algorithms
// without a context or options simply ignore them.
type LineFunc func(ctx context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error)

// Algorithm is the uniform call shape of every registered algorithm.
type Algorithm func(ctx context.Context, seq fixation.Sequence, ref Reference, opts ...Option) (fixation.Sequence, error)

var lineAlgorithms = map[string]LineFunc{
	opAttach: func(_ context.Context, seq fixation.Sequence, lines []float64, _ ...Option) (fixation.Sequence, error) {
		return Attach(seq, lines)
	},
	opChain: func(_ context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
		return Chain(seq, lines, opts...)
	},
	opCluster: Cluster,
	opMerge: func(_ context.Context, seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
		return Merge(seq, lines, opts...)
	},
	opRegress: Regress,
	opSegment: func(_ context.Context, seq fixation.Sequence, lines []float64, _ ...Option) (fixation.Sequence, error) {
		return Segment(seq, lines)
	},
	opSplit:   Split,
	opStretch: Stretch,
}

// Names returns the registered algorithm names, sorted.
func Names() []string {
	names := make([]string, 0, len(lineAlgorithms)+1)
	for name := range lineAlgorithms {
		names = append(names, name)
	}
	names = append(names, opWarp)
	sort.Strings(names)

	return names
}

// Line returns the line-based algorithm registered under name.
//
// Errors: ErrUnknownAlgorithm, ErrNotLineBased (for "warp").
func Line(name string) (LineFunc, error) {
	if fn, ok := lineAlgorithms[name]; ok {
		return fn, nil
	}
	if name == opWarp {
		return nil, fmt.Errorf("%w: %q", ErrNotLineBased, name)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Lookup returns the algorithm registered under name in the uniform
// Reference-based shape.
//
// Errors: ErrUnknownAlgorithm.
func Lookup(name string) (Algorithm, error) {
	if name == opWarp {
		return func(_ context.Context, seq fixation.Sequence, ref Reference, _ ...Option) (fixation.Sequence, error) {
			return Warp(seq, ref.Words)
		}, nil
	}
	fn, err := Line(name)
	if err != nil {
		return nil, err
	}

	return func(ctx context.Context, seq fixation.Sequence, ref Reference, opts ...Option) (fixation.Sequence, error) {
		return fn(ctx, seq, ref.Lines, opts...)
	}, nil
}
