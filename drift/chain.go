// SPDX-License-Identifier: MIT

package drift

import (
	"math"

	"github.com/katalvlaran/lvdrift/fixation"
)

// Chain splits the sequence into chains wherever consecutive fixations are
// more than the x-threshold (default 192px) or y-threshold (default 32px)
// apart, then snaps each chain as a whole to the line nearest its mean y.
//
// Chain boundaries are fixed before any assignment happens.
//
// Options: WithXThreshold, WithYThreshold.
// Complexity: O(n·m).
func Chain(seq fixation.Sequence, lines []float64, opts ...Option) (fixation.Sequence, error) {
	if err := prepare(opChain, seq, lines); err != nil {
		return nil, err
	}
	o := gatherOptions(opts)

	out := seq.Clone()
	ends := make([]int, 0, 8)
	var i int
	for i = 1; i < len(out); i++ {
		if math.Abs(out[i].X-out[i-1].X) > o.xThreshold || math.Abs(out[i].Y-out[i-1].Y) > o.yThreshold {
			ends = append(ends, i)
		}
	}
	ends = append(ends, len(out))
	tracer().Debugf("chain: %d chains over %d fixations", len(ends), len(out))

	assignRuns(out, lines, ends)

	return out, nil
}
