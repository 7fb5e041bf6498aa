package drift_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLineAlgorithms_Contract checks the properties shared by every
// line-based algorithm: shape preserved, X untouched, every Y a line
// position, input not modified, and the synthetic passage corrected.
func TestLineAlgorithms_Contract(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvdrift.drift")
	defer teardown()

	for _, name := range []string{"attach", "chain", "cluster", "merge", "regress", "segment", "split", "stretch"} {
		name := name
		t.Run(name, func(t *testing.T) {
			fn, err := drift.Line(name)
			require.NoError(t, err)

			in := passage(18)
			before := in.Clone()
			out, err := fn(context.Background(), in, threeLines, drift.WithSeed(seedDet))
			require.NoError(t, err)

			assert.Empty(t, cmp.Diff(before, in), "input must not be modified")
			require.Len(t, out, len(in))
			assert.Equal(t, in.Xs(), out.Xs(), "x channel must pass through")
			for i := range out {
				assert.Contains(t, threeLines, out[i].Y, "fixation %d", i)
				assert.Equal(t, in[i].Duration, out[i].Duration)
			}
			assert.Equal(t, expectedPassage(), out.Ys())
		})
	}
}

// TestLineAlgorithms_Errors checks the shared precondition errors.
func TestLineAlgorithms_Errors(t *testing.T) {
	for _, name := range []string{"attach", "chain", "cluster", "merge", "regress", "segment", "split", "stretch"} {
		fn, err := drift.Line(name)
		require.NoError(t, err)

		_, err = fn(context.Background(), nil, threeLines)
		assert.ErrorIs(t, err, drift.ErrEmptySequence, name)

		_, err = fn(context.Background(), passage(0), nil)
		assert.ErrorIs(t, err, drift.ErrEmptyLines, name)

		_, err = fn(context.Background(), passage(0), []float64{300, 100})
		assert.ErrorIs(t, err, drift.ErrUnsortedLines, name)
	}
}

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"attach", "chain", "cluster", "merge", "regress", "segment", "split", "stretch", "warp"}, drift.Names())

	_, err := drift.Line("warp")
	assert.ErrorIs(t, err, drift.ErrNotLineBased)

	_, err = drift.Lookup("nope")
	assert.ErrorIs(t, err, drift.ErrUnknownAlgorithm)

	warp, err := drift.Lookup("warp")
	require.NoError(t, err)
	out, err := warp(context.Background(), passage(20), drift.Reference{Words: passageWords()})
	require.NoError(t, err)
	assert.Equal(t, expectedPassage(), out.Ys())

	attach, err := drift.Lookup("attach")
	require.NoError(t, err)
	out, err = attach(context.Background(), passage(20), drift.Reference{Lines: threeLines})
	require.NoError(t, err)
	assert.Equal(t, expectedPassage(), out.Ys())
}

func TestCompare(t *testing.T) {
	want := passage(0).WithYs(expectedPassage())
	got := want.Clone()
	got[3].Y = 200
	got[7].Y = 200.5

	r, err := drift.Compare(got, want, 1)
	require.NoError(t, err)
	assert.Equal(t, 12, r.N)
	assert.Equal(t, 11, r.Matching)
	assert.Equal(t, []int{3}, r.Mismatched)
	assert.InDelta(t, 11.0/12.0, r.Accuracy, 1e-12)

	_, err = drift.Compare(got[:2], want, 1)
	assert.ErrorIs(t, err, drift.ErrLengthMismatch)

	_, err = drift.Compare(nil, fixation.Sequence{}, 1)
	assert.ErrorIs(t, err, drift.ErrEmptySequence)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { drift.WithXThreshold(0) })
	assert.Panics(t, func() { drift.WithSlopeBounds(1, -1) })
	assert.Panics(t, func() { drift.WithSpreadBounds(0, 5) })
	assert.Panics(t, func() { drift.WithClusterRestarts(0) })
	assert.Panics(t, func() { drift.WithPhases() })
	assert.Panics(t, func() { drift.WithPhases(drift.Phase{MinI: 0, MinJ: 1}) })
}

func TestDefaultPhases_Fresh(t *testing.T) {
	p := drift.DefaultPhases()
	p[0].MinI = 99
	assert.Equal(t, 3, drift.DefaultPhases()[0].MinI)
	assert.Len(t, p, 4)
	assert.True(t, p[3].NoConstraints)
}

func TestBounds(t *testing.T) {
	b := drift.Bounds{Lo: -1, Hi: 3}
	assert.Equal(t, 4.0, b.Width())
	assert.Equal(t, -1.0, b.Clamp(-5))
	assert.Equal(t, 2.0, b.Clamp(2))
	assert.Equal(t, 3.0, b.Clamp(9))
}
