// SPDX-License-Identifier: MIT

package drift

import (
	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/dtw"
	"github.com/katalvlaran/lvdrift/fixation"
)

// Warp aligns the fixation sequence with the word centres (both as (x, y)
// points, in reading order) by dynamic time warping and gives each fixation
// the most frequent y among the words aligned to it. On equal counts the
// value met first in ascending word order wins.
//
// Output y-values are drawn from the word y-values, not from a line list.
//
// Errors: ErrNoWords, ErrUnaligned (unreachable given DTW's coverage of
// every fixation), and the dtw sentinels.
//
// Complexity: O(n·w) time and memory for w words.
func Warp(seq fixation.Sequence, words []aoi.Point) (fixation.Sequence, error) {
	if err := fixation.Validate(seq); err != nil {
		return nil, wrap(opWarp, err)
	}
	if len(words) == 0 {
		return nil, wrap(opWarp, ErrNoWords)
	}

	opts := dtw.DefaultOptions()
	opts.ReturnPath = true
	cost, path, err := dtw.DTW(seq.Points(), aoi.Vectors(words), &opts)
	if err != nil {
		return nil, wrap(opWarp, err)
	}
	tracer().Debugf("warp: alignment cost %.1f over %d steps", cost, len(path))

	out := seq.Clone()
	for i, js := range dtw.Mapping(path, len(out)) {
		if len(js) == 0 {
			return nil, wrap(opWarp, ErrUnaligned)
		}
		out[i].Y = modeY(words, js)
	}

	return out, nil
}

// modeY returns the most frequent y of words[js...]; the first value to
// reach the winning count in js order wins ties.
func modeY(words []aoi.Point, js []int) float64 {
	counts := make(map[float64]int, len(js))
	order := make([]float64, 0, len(js))
	var (
		y  float64
		ok bool
	)
	for _, j := range js {
		y = words[j].Y
		if _, ok = counts[y]; !ok {
			order = append(order, y)
		}
		counts[y]++
	}

	best := order[0]
	for _, y = range order[1:] {
		if counts[y] > counts[best] {
			best = y
		}
	}

	return best
}
