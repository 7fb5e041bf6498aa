package hybrid

import "errors"

var (
	// ErrNoSecondary indicates a nil secondary algorithm.
	ErrNoSecondary = errors.New("hybrid: secondary algorithm is required")

	// ErrUnknownSecondary indicates a secondary name outside SecondaryNames.
	ErrUnknownSecondary = errors.New("hybrid: unknown secondary algorithm")
)
