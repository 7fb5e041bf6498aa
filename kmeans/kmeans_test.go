package kmeans_test

import (
	"context"
	"math"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/katalvlaran/lvdrift/kmeans"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedDet = int64(7)

func TestFit1D_Errors(t *testing.T) {
	_, err := kmeans.Fit1D(nil, 1)
	assert.ErrorIs(t, err, kmeans.ErrEmptyInput)

	_, err = kmeans.Fit1D([]float64{1, 2}, 3)
	assert.ErrorIs(t, err, kmeans.ErrBadK)

	_, err = kmeans.Fit1D([]float64{1, 2}, 0)
	assert.ErrorIs(t, err, kmeans.ErrBadK)

	_, err = kmeans.Fit1D([]float64{1, math.NaN()}, 1)
	assert.ErrorIs(t, err, kmeans.ErrNonFinite)
}

// TestFit1D_ThreeGroups separates three well-separated line bands.
func TestFit1D_ThreeGroups(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvdrift.kmeans")
	defer teardown()

	values := []float64{98, 101, 103, 99, 202, 198, 200, 305, 297, 301, 300}
	res, err := kmeans.Fit1D(values, 3, kmeans.WithSeed(seedDet))
	require.NoError(t, err)
	assert.True(t, res.Converged)

	centers := append([]float64(nil), res.Centers...)
	sort.Float64s(centers)
	assert.Empty(t, cmp.Diff([]float64{100.25, 200, 300.75}, centers, cmpopts.EquateApprox(0, 1e-9)))

	// members of the same band share a label
	assert.Equal(t, res.Labels[0], res.Labels[3])
	assert.Equal(t, res.Labels[4], res.Labels[6])
	assert.Equal(t, res.Labels[7], res.Labels[10])
	assert.NotEqual(t, res.Labels[0], res.Labels[4])
	assert.Equal(t, []int{4, 3, 4}, sortedSizes(res))
}

// TestFit1D_SeedDeterminism checks that the same seed reproduces the same result.
func TestFit1D_SeedDeterminism(t *testing.T) {
	values := []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}
	a, err := kmeans.Fit1D(values, 4, kmeans.WithSeed(seedDet), kmeans.WithRestarts(3))
	require.NoError(t, err)
	b, err := kmeans.Fit1D(values, 4, kmeans.WithSeed(seedDet), kmeans.WithRestarts(3))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestFit1D_Duplicates keeps every cluster populated on degenerate data.
func TestFit1D_Duplicates(t *testing.T) {
	res, err := kmeans.Fit1D([]float64{5, 5, 5, 5}, 3, kmeans.WithSeed(0))
	require.NoError(t, err)
	for c, n := range res.Sizes() {
		assert.Positivef(t, n, "cluster %d must be non-empty", c)
	}
	assert.Equal(t, 0.0, res.Inertia)
}

// TestFit1D_KEqualsN puts every sample in its own cluster.
func TestFit1D_KEqualsN(t *testing.T) {
	res, err := kmeans.Fit1D([]float64{-10, 0, 10}, 3, kmeans.WithSeed(seedDet))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1}, res.Sizes())
	assert.Equal(t, 0.0, res.Inertia)
}

// TestFit1D_IterationCap reports non-convergence without failing.
func TestFit1D_IterationCap(t *testing.T) {
	values := []float64{1, 2, 3, 10, 11, 12, 30, 31, 50, 51, 52}
	res, err := kmeans.Fit1D(values, 3, kmeans.WithSeed(seedDet), kmeans.WithMaxIter(1),
		kmeans.WithTolerance(0), kmeans.WithRestarts(1))
	require.NoError(t, err)
	assert.Equal(t, 1, res.Iterations)
	assert.Len(t, res.Labels, len(values))
}

func TestFitContext_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := kmeans.FitContext(ctx, []float64{1, 2, 3}, 2)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { kmeans.WithRestarts(0) })
	assert.Panics(t, func() { kmeans.WithMaxIter(0) })
	assert.Panics(t, func() { kmeans.WithTolerance(-1) })
}

func sortedSizes(r kmeans.Result) []int {
	type pair struct {
		c float64
		n int
	}
	sz := r.Sizes()
	ps := make([]pair, len(sz))
	for i := range sz {
		ps[i] = pair{r.Centers[i], sz[i]}
	}
	sort.Slice(ps, func(i, j int) bool { return ps[i].c < ps[j].c })
	out := make([]int, len(ps))
	for i := range ps {
		out[i] = ps[i].n
	}
	return out
}
