package drift_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
)

// ExampleAttach snaps fixations to the nearest line.
func ExampleAttach() {
	seq := fixation.Sequence{
		{X: 100, Y: 10, Duration: 180},
		{X: 200, Y: 12, Duration: 220},
		{X: 300, Y: 400, Duration: 150},
	}

	out, err := drift.Attach(seq, []float64{10, 400})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(out.Ys())
	// Output: [10 10 400]
}

// ExampleSegment assigns lines by counting return sweeps.
func ExampleSegment() {
	seq := fixation.Sequence{
		{X: 0, Y: 12}, {X: 100, Y: 11}, {X: 200, Y: 13},
		{X: 0, Y: 48}, {X: 100, Y: 52}, {X: 200, Y: 50},
	}

	out, _ := drift.Segment(seq, []float64{10, 50})
	fmt.Println(out.Ys())
	// Output: [10 10 10 50 50 50]
}

// ExampleLookup runs an algorithm by name.
func ExampleLookup() {
	correct, err := drift.Lookup("chain")
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	seq := fixation.Sequence{{X: 100, Y: 40}, {X: 150, Y: 55}, {X: 200, Y: 60}}
	out, _ := correct(context.Background(), seq, drift.Reference{Lines: []float64{50}})
	fmt.Println(out.Ys())
	// Output: [50 50 50]
}
