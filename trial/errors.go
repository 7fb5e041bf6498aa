package trial

import "errors"

var (
	// ErrBadKey indicates a fixation key that is not a positive integer.
	ErrBadKey = errors.New("trial: fixation key must be a positive integer")

	// ErrBadEntry indicates a fixation entry that is not [x, y] or [x, y, duration].
	ErrBadEntry = errors.New("trial: fixation entry must have 2 or 3 numbers")

	// ErrNotJSON indicates a path without a .json extension.
	ErrNotJSON = errors.New("trial: file must have .json extension")
)
