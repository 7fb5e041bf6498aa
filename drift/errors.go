// SPDX-License-Identifier: MIT

package drift

import (
	"errors"

	"github.com/katalvlaran/lvdrift/fixation"
)

var (
	// ErrTooFewFixations indicates fewer fixations than an algorithm needs
	// (n < number of lines for Cluster, n < 3 for Split).
	ErrTooFewFixations = errors.New("drift: too few fixations for this algorithm")

	// ErrNoWords indicates an empty word reference for Warp.
	ErrNoWords = errors.New("drift: word reference must contain at least one word")

	// ErrUnaligned indicates a fixation that DTW aligned with no word.
	ErrUnaligned = errors.New("drift: fixation aligned to no word")

	// ErrUnmerged indicates Merge phases ended with more runs than lines.
	ErrUnmerged = errors.New("drift: could not merge runs down to the number of lines")

	// ErrUnknownAlgorithm indicates a registry lookup for an unknown name.
	ErrUnknownAlgorithm = errors.New("drift: unknown algorithm")

	// ErrNotLineBased indicates a word-based algorithm requested as a line algorithm.
	ErrNotLineBased = errors.New("drift: algorithm does not work on a line reference")

	// ErrLengthMismatch indicates two sequences of different length in Compare.
	ErrLengthMismatch = errors.New("drift: sequences differ in length")
)

// Aliases of the data-model sentinels so callers need only this package
// for errors.Is checks.
var (
	ErrEmptySequence = fixation.ErrEmptySequence
	ErrEmptyLines    = fixation.ErrEmptyLines
	ErrUnsortedLines = fixation.ErrUnsortedLines
	ErrNonFinite     = fixation.ErrNonFinite
)
