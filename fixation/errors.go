package fixation

import "errors"

var (
	// ErrEmptySequence indicates a fixation sequence with no fixations.
	ErrEmptySequence = errors.New("fixation: sequence must contain at least one fixation")

	// ErrNonFinite indicates a NaN or ±Inf coordinate.
	ErrNonFinite = errors.New("fixation: coordinates must be finite")

	// ErrEmptyLines indicates a line reference with no lines.
	ErrEmptyLines = errors.New("fixation: line reference must contain at least one line")

	// ErrUnsortedLines indicates a line reference that is not strictly ascending.
	ErrUnsortedLines = errors.New("fixation: line reference must be strictly ascending")
)
