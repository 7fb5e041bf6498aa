package fixation

// Fixation is a single gaze dwell point on the stimulus image.
//
// X and Y are pixel coordinates, Duration is the dwell time in milliseconds.
type Fixation struct {
	X        float64
	Y        float64
	Duration float64
}

// Sequence is an ordered list of fixations in temporal order.
type Sequence []Fixation

// Clone returns a deep copy of s. A nil Sequence clones to nil.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Xs returns the X channel of s as a fresh slice.
func (s Sequence) Xs() []float64 {
	xs := make([]float64, len(s))
	var i int
	for i = range s {
		xs[i] = s[i].X
	}

	return xs
}

// Ys returns the Y channel of s as a fresh slice.
func (s Sequence) Ys() []float64 {
	ys := make([]float64, len(s))
	var i int
	for i = range s {
		ys[i] = s[i].Y
	}

	return ys
}

// Points returns the (x, y) coordinates of s as 2-vectors, the shape the dtw
// package aligns.
func (s Sequence) Points() [][]float64 {
	pts := make([][]float64, len(s))
	var i int
	for i = range s {
		pts[i] = []float64{s[i].X, s[i].Y}
	}

	return pts
}

// WithYs returns a copy of s whose Y channel is replaced by ys.
// It panics if len(ys) != len(s).
func (s Sequence) WithYs(ys []float64) Sequence {
	if len(ys) != len(s) {
		panic("fixation: WithYs: length mismatch")
	}
	out := s.Clone()
	var i int
	for i = range out {
		out[i].Y = ys[i]
	}

	return out
}

// Diffs returns the n-1 consecutive differences of v (v[i+1]-v[i]).
// For len(v) < 2 it returns an empty slice.
func Diffs(v []float64) []float64 {
	if len(v) < 2 {
		return []float64{}
	}
	d := make([]float64, len(v)-1)
	var i int
	for i = 0; i < len(v)-1; i++ {
		d[i] = v[i+1] - v[i]
	}

	return d
}
