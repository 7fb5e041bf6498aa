// SPDX-License-Identifier: MIT

package drift

import "github.com/katalvlaran/lvdrift/fixation"

// Segment treats the m-1 most negative x-displacements (the longest
// leftward jumps, i.e. return sweeps) as line changes and walks the
// sequence assigning consecutive lines, top to bottom.
//
// Displacements are ordered with a stable ascending sort, so among equal
// jumps the earlier one is chosen. The counter advances after the fixation
// that precedes a selected jump: with one sweep after fixation k the result
// is k+1 fixations on line 0 followed by the rest on line 1.
//
// Complexity: O(n log n).
func Segment(seq fixation.Sequence, lines []float64) (fixation.Sequence, error) {
	if err := prepare(opSegment, seq, lines); err != nil {
		return nil, err
	}

	out := seq.Clone()
	order := argsortStable(fixation.Diffs(out.Xs()))
	k := len(lines) - 1
	if k > len(order) {
		k = len(order)
	}
	change := make(map[int]struct{}, k)
	var i int
	for i = 0; i < k; i++ {
		change[order[i]] = struct{}{}
	}

	line := 0
	var ok bool
	for i = range out {
		out[i].Y = lines[line]
		if _, ok = change[i]; ok {
			line++
		}
	}

	return out, nil
}
