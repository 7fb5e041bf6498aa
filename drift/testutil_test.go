// Package drift_test holds shared fixtures for the algorithm tests.
package drift_test

import (
	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/katalvlaran/lvdrift/fixation"
)

const seedDet = int64(11)

// threeLines is the line reference of the synthetic passage.
var threeLines = []float64{100, 200, 300}

// passage returns three lines of four fixations each, read left to right
// with a return sweep between lines, drawn dy pixels below the text.
func passage(dy float64) fixation.Sequence {
	seq := make(fixation.Sequence, 0, 12)
	for _, line := range threeLines {
		for k := 0; k < 4; k++ {
			seq = append(seq, fixation.Fixation{
				X:        float64(50 + 100*k),
				Y:        line + dy + float64(k%2)*3,
				Duration: 200,
			})
		}
	}
	return seq
}

// passageWords returns word centres matching passage's layout.
func passageWords() []aoi.Point {
	words := make([]aoi.Point, 0, 12)
	for _, line := range threeLines {
		for k := 0; k < 4; k++ {
			words = append(words, aoi.Point{X: float64(50 + 100*k), Y: line})
		}
	}
	return words
}

// expectedPassage is the correct line of every fixation of passage.
func expectedPassage() []float64 {
	return []float64{100, 100, 100, 100, 200, 200, 200, 200, 300, 300, 300, 300}
}

func seq2(pts ...[2]float64) fixation.Sequence {
	s := make(fixation.Sequence, len(pts))
	for i, p := range pts {
		s[i] = fixation.Fixation{X: p[0], Y: p[1]}
	}
	return s
}
