package fixation

import "math"

// Validate checks that s is non-empty and that every coordinate is finite.
func Validate(s Sequence) error {
	if len(s) == 0 {
		return ErrEmptySequence
	}
	var i int
	for i = range s {
		if !finite(s[i].X) || !finite(s[i].Y) {
			return ErrNonFinite
		}
	}

	return nil
}

// ValidateLines checks that lines is non-empty, finite and strictly ascending.
func ValidateLines(lines []float64) error {
	if len(lines) == 0 {
		return ErrEmptyLines
	}
	var i int
	for i = range lines {
		if !finite(lines[i]) {
			return ErrNonFinite
		}
		if i > 0 && lines[i] <= lines[i-1] {
			return ErrUnsortedLines
		}
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
