package aoi

import (
	"math"
	"sort"
)

// LineCenters returns the distinct vertical centres of the rows in t,
// ascending. Rows belonging to the same text line share a centre, so the
// result has one entry per line.
//
// Errors: ErrEmptyTable, ErrBadBox.
func LineCenters(t Table) ([]float64, error) {
	if err := validate(t); err != nil {
		return nil, err
	}

	ys := make([]float64, 0, len(t))
	seen := make(map[float64]struct{}, len(t))
	var (
		i  int
		cy float64
		ok bool
	)
	for i = range t {
		cy = t[i].Y + t[i].Height/2
		if _, ok = seen[cy]; ok {
			continue
		}
		seen[cy] = struct{}{}
		ys = append(ys, cy)
	}
	sort.Float64s(ys)

	return ys, nil
}

// WordCenters returns the centre of every row of t in table order.
//
// Errors: ErrEmptyTable, ErrBadBox.
func WordCenters(t Table) ([]Point, error) {
	if err := validate(t); err != nil {
		return nil, err
	}
	pts := make([]Point, len(t))
	var i int
	for i = range t {
		pts[i] = Point{X: t[i].X + t[i].Width/2, Y: t[i].Y + t[i].Height/2}
	}

	return pts, nil
}

// Vectors converts word centres into the 2-vectors the dtw package aligns.
func Vectors(pts []Point) [][]float64 {
	out := make([][]float64, len(pts))
	var i int
	for i = range pts {
		out[i] = []float64{pts[i].X, pts[i].Y}
	}

	return out
}

func validate(t Table) error {
	if len(t) == 0 {
		return ErrEmptyTable
	}
	var i int
	for i = range t {
		a := t[i]
		if bad(a.X) || bad(a.Y) || bad(a.Width) || bad(a.Height) {
			return ErrBadBox
		}
		if a.Width <= 0 || a.Height <= 0 {
			return ErrBadBox
		}
	}

	return nil
}

func bad(v float64) bool { return math.IsNaN(v) || math.IsInf(v, 0) }
