// SPDX-License-Identifier: MIT

package drift

import "github.com/katalvlaran/lvdrift/fixation"

// Attach snaps every fixation to the line whose y is numerically closest.
// No sequence context is used. On equal distance the upper (lower-index)
// line wins.
//
// Attach is idempotent: a sequence whose y-values are all line positions is
// returned unchanged.
//
// Complexity: O(n·m).
func Attach(seq fixation.Sequence, lines []float64) (fixation.Sequence, error) {
	if err := prepare(opAttach, seq, lines); err != nil {
		return nil, err
	}

	out := seq.Clone()
	var i int
	for i = range out {
		out[i].Y = lines[nearestLine(lines, out[i].Y)]
	}

	return out, nil
}
