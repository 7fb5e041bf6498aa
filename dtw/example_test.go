package dtw_test

import (
	"fmt"

	"github.com/katalvlaran/lvdrift/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Three fixations along one line against two word centres.
//	  fixations = [(0,0), (1,0), (2,0)]
//	  words     = [(0,0), (2,0)]
//
// The middle fixation is equally cheap to align with either word; the
// backtrack prefers the diagonal step, so it ends up on the first word.
func ExampleDTW() {
	fixations := [][]float64{{0, 0}, {1, 0}, {2, 0}}
	words := [][]float64{{0, 0}, {2, 0}}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(fixations, words, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\nmapping=%v\n", dist, path, dtw.Mapping(path, len(fixations)))
	// Output:
	// distance=1
	// path=[{0 0} {1 0} {2 1}]
	// mapping=[[0] [0] [1]]
}
