// SPDX-License-Identifier: MIT

package drift

import (
	"math"

	"github.com/katalvlaran/lvdrift/fixation"
)

// Report summarises how two corrections of the same trial agree.
type Report struct {
	// N is the number of fixations compared.
	N int

	// Matching counts fixations whose y agree within the tolerance.
	Matching int

	// Accuracy is Matching / N.
	Accuracy float64

	// Mismatched lists the indices that disagree, ascending.
	Mismatched []int
}

// Compare checks got against want (typically an algorithm's output against a
// manually corrected gold standard) fixation by fixation. Two fixations agree
// when their y differ by at most tolerance pixels.
//
// Errors: ErrEmptySequence, ErrLengthMismatch.
func Compare(got, want fixation.Sequence, tolerance float64) (Report, error) {
	if len(want) == 0 {
		return Report{}, wrap(opCompare, ErrEmptySequence)
	}
	if len(got) != len(want) {
		return Report{}, wrap(opCompare, ErrLengthMismatch)
	}

	r := Report{N: len(want)}
	var i int
	for i = range want {
		if math.Abs(got[i].Y-want[i].Y) <= tolerance {
			r.Matching++
		} else {
			r.Mismatched = append(r.Mismatched, i)
		}
	}
	r.Accuracy = float64(r.Matching) / float64(r.N)

	return r, nil
}
