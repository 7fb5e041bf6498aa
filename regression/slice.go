package regression

import (
	"math"

	"github.com/katalvlaran/lvdrift/fixation"
)

// Split is the result of Slice. Regressions[k] came from position Index[k]
// of the input; Forward holds every other fixation in input order.
type Split struct {
	Regressions fixation.Sequence
	Forward     fixation.Sequence
	Index       []int
}

// Slice walks seq once and separates the regressions from forward reading.
// The line height is LineHeight(lines) unless WithLineHeight is given, in
// which case lines may be empty.
//
// Errors: fixation.ErrEmptySequence, fixation.ErrNonFinite and, without
// WithLineHeight, the line reference errors of fixation.ValidateLines.
//
// Complexity: O(n).
func Slice(seq fixation.Sequence, lines []float64, opts ...Option) (Split, error) {
	if err := fixation.Validate(seq); err != nil {
		return Split{}, err
	}
	o := options{direction: LeftToRight}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	h := o.height
	if h == 0 {
		if err := fixation.ValidateLines(lines); err != nil {
			return Split{}, err
		}
		h = LineHeight(lines)
	}

	backward := func(x, ref float64) bool { return x < ref-h/2 }
	ahead := func(x, ref float64) bool { return x > ref }
	if o.direction == RightToLeft {
		backward = func(x, ref float64) bool { return x > ref+h/2 }
		ahead = func(x, ref float64) bool { return x < ref }
	}

	s := Split{
		Forward: fixation.Sequence{seq[0]},
	}
	var (
		inRegression bool
		before, f    fixation.Fixation
		last         = seq[0]
		i            int
	)
	for i = 1; i < len(seq); i++ {
		f = seq[i]
		switch {
		case !inRegression && (f.Y < last.Y-h || (backward(f.X, last.X) && math.Abs(f.Y-last.Y) < h/2)):
			inRegression = true
			before = last
			s.Regressions = append(s.Regressions, f)
			s.Index = append(s.Index, i)
		case inRegression && (f.Y > before.Y+h/2 || (ahead(f.X, before.X) && f.Y >= before.Y)):
			inRegression = false
			// the fixation seen just before the end test is forward reading
			k := len(s.Regressions) - 1
			s.Forward = append(s.Forward, s.Regressions[k], f)
			s.Regressions = s.Regressions[:k]
			s.Index = s.Index[:k]
		case inRegression:
			s.Regressions = append(s.Regressions, f)
			s.Index = append(s.Index, i)
		default:
			s.Forward = append(s.Forward, f)
		}
		last = f
	}
	tracer().Debugf("slice: %d of %d fixations are regressions (h=%.1f, %s)",
		len(s.Regressions), len(seq), h, o.direction)

	return s, nil
}

// Detect reports whether seq contains at least one regression.
func Detect(seq fixation.Sequence, lines []float64, opts ...Option) (bool, error) {
	s, err := Slice(seq, lines, opts...)
	if err != nil {
		return false, err
	}

	return len(s.Regressions) > 0, nil
}
