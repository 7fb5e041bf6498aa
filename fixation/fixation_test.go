package fixation_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sample() fixation.Sequence {
	return fixation.Sequence{
		{X: 100, Y: 10, Duration: 200},
		{X: 200, Y: 12, Duration: 180},
		{X: 300, Y: 400, Duration: 250},
	}
}

// TestClone_Independent verifies that mutating a clone never touches the source.
func TestClone_Independent(t *testing.T) {
	s := sample()
	c := s.Clone()
	c[0].Y = -1

	assert.Equal(t, 10.0, s[0].Y, "source must be untouched")
	assert.Nil(t, fixation.Sequence(nil).Clone(), "nil clones to nil")
}

// TestChannels checks the channel accessors.
func TestChannels(t *testing.T) {
	s := sample()
	assert.Equal(t, []float64{100, 200, 300}, s.Xs())
	assert.Equal(t, []float64{10, 12, 400}, s.Ys())
	assert.Equal(t, [][]float64{{100, 10}, {200, 12}, {300, 400}}, s.Points())
}

// TestWithYs keeps X and Duration while replacing Y.
func TestWithYs(t *testing.T) {
	s := sample()
	out := s.WithYs([]float64{1, 2, 3})

	assert.Equal(t, []float64{1, 2, 3}, out.Ys())
	assert.Equal(t, s.Xs(), out.Xs())
	assert.Equal(t, 250.0, out[2].Duration)
	assert.Equal(t, 10.0, s[0].Y, "source must be untouched")
	assert.Panics(t, func() { s.WithYs([]float64{1}) })
}

func TestDiffs(t *testing.T) {
	assert.Equal(t, []float64{1, -3}, fixation.Diffs([]float64{0, 1, -2}))
	assert.Empty(t, fixation.Diffs([]float64{5}))
}

func TestValidate(t *testing.T) {
	require.NoError(t, fixation.Validate(sample()))
	assert.ErrorIs(t, fixation.Validate(nil), fixation.ErrEmptySequence)
	assert.ErrorIs(t, fixation.Validate(fixation.Sequence{{X: math.NaN()}}), fixation.ErrNonFinite)
}

func TestValidateLines(t *testing.T) {
	require.NoError(t, fixation.ValidateLines([]float64{10, 40, 70}))
	assert.ErrorIs(t, fixation.ValidateLines(nil), fixation.ErrEmptyLines)
	assert.ErrorIs(t, fixation.ValidateLines([]float64{10, 10}), fixation.ErrUnsortedLines)
	assert.ErrorIs(t, fixation.ValidateLines([]float64{math.Inf(1)}), fixation.ErrNonFinite)
}
