package regression

import "errors"

var (
	// ErrIndexMismatch indicates a different number of regressions and indices.
	ErrIndexMismatch = errors.New("regression: regressions and index differ in length")

	// ErrIndexOrder indicates indices that are not strictly ascending.
	ErrIndexOrder = errors.New("regression: index must be strictly ascending")

	// ErrIndexRange indicates an index outside the reassembled sequence.
	ErrIndexRange = errors.New("regression: index out of range")

	// ErrBadLineHeight indicates a non-positive or non-finite line height.
	ErrBadLineHeight = errors.New("regression: line height must be finite and positive")
)
