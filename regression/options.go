package regression

import "math"

// DefaultLineHeight is the line height (px) used when the line reference has
// fewer than two lines.
const DefaultLineHeight = 50.0

// Direction is the horizontal reading direction.
type Direction int

const (
	// LeftToRight reading: forward saccades increase x.
	LeftToRight Direction = iota

	// RightToLeft reading: forward saccades decrease x.
	RightToLeft
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case LeftToRight:
		return "ltr"
	case RightToLeft:
		return "rtl"
	}
	return "unknown"
}

// Option configures Slice and Detect.
type Option func(*options)

type options struct {
	height    float64 // 0 ⇒ LineHeight(lines)
	direction Direction
}

// WithLineHeight fixes the line height instead of deriving it from the lines.
// Panics on a non-positive or non-finite value.
func WithLineHeight(h float64) Option {
	if math.IsNaN(h) || math.IsInf(h, 0) || h <= 0 {
		panic(ErrBadLineHeight.Error())
	}
	return func(o *options) { o.height = h }
}

// WithDirection sets the reading direction (default LeftToRight).
func WithDirection(d Direction) Option {
	return func(o *options) { o.direction = d }
}

// LineHeight returns the mean distance between consecutive lines, or
// DefaultLineHeight when there are fewer than two.
func LineHeight(lines []float64) float64 {
	if len(lines) < 2 {
		return DefaultLineHeight
	}

	return (lines[len(lines)-1] - lines[0]) / float64(len(lines)-1)
}
