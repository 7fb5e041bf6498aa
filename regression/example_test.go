package regression_test

import (
	"fmt"

	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/katalvlaran/lvdrift/regression"
)

func ExampleSlice() {
	seq := fixation.Sequence{
		{X: 0, Y: 100}, {X: 100, Y: 100}, {X: 200, Y: 100}, {X: 300, Y: 100},
		{X: 150, Y: 100}, {X: 200, Y: 100}, {X: 400, Y: 100},
	}

	s, _ := regression.Slice(seq, []float64{100, 200})
	fmt.Println("regressions at", s.Index)
	fmt.Println("forward:", len(s.Forward))

	back, _ := regression.Insert(s.Forward, s.Regressions, s.Index)
	fmt.Println("restored:", len(back))
	// Output:
	// regressions at [4]
	// forward: 6
	// restored: 7
}
