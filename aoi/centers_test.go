package aoi_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvdrift/aoi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoLines() aoi.Table {
	return aoi.Table{
		{Kind: "word", Name: "The", X: 0, Y: 0, Width: 40, Height: 20},
		{Kind: "word", Name: "cat", X: 50, Y: 0, Width: 40, Height: 20},
		{Kind: "word", Name: "sat", X: 0, Y: 40, Width: 40, Height: 20},
	}
}

func TestLineCenters_Dedup(t *testing.T) {
	ys, err := aoi.LineCenters(twoLines())
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 50}, ys)
}

func TestLineCenters_SortsRows(t *testing.T) {
	tab := aoi.Table{
		{X: 0, Y: 40, Width: 10, Height: 20},
		{X: 0, Y: 0, Width: 10, Height: 20},
	}
	ys, err := aoi.LineCenters(tab)
	require.NoError(t, err)
	assert.Equal(t, []float64{10, 50}, ys)
}

func TestWordCenters(t *testing.T) {
	pts, err := aoi.WordCenters(twoLines())
	require.NoError(t, err)
	assert.Equal(t, []aoi.Point{{X: 20, Y: 10}, {X: 70, Y: 10}, {X: 20, Y: 50}}, pts)
	assert.Equal(t, [][]float64{{20, 10}, {70, 10}, {20, 50}}, aoi.Vectors(pts))
}

func TestErrors(t *testing.T) {
	_, err := aoi.LineCenters(nil)
	assert.ErrorIs(t, err, aoi.ErrEmptyTable)

	_, err = aoi.WordCenters(aoi.Table{{Width: 0, Height: 10}})
	assert.ErrorIs(t, err, aoi.ErrBadBox)

	_, err = aoi.LineCenters(aoi.Table{{Y: math.NaN(), Width: 1, Height: 1}})
	assert.ErrorIs(t, err, aoi.ErrBadBox)
}
