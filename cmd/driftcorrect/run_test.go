package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/lvdrift/trial"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const aoiJSON = `[
  {"kind": "word", "name": "The", "x": 0,   "y": 80,  "width": 80, "height": 40},
  {"kind": "word", "name": "cat", "x": 100, "y": 80,  "width": 80, "height": 40},
  {"kind": "word", "name": "sat", "x": 0,   "y": 180, "width": 80, "height": 40},
  {"kind": "word", "name": "on",  "x": 100, "y": 180, "width": 80, "height": 40}
]`

const fixationsJSON = `{"1": [40, 112, 200], "2": [140, 115, 180], "3": [40, 214, 220], "4": [140, 210, 190]}`

func writeTrial(t *testing.T) (dir, fix, table string) {
	t.Helper()
	dir = t.TempDir()
	fix, table = filepath.Join(dir, "fixations.json"), filepath.Join(dir, "aoi.json")
	require.NoError(t, os.WriteFile(fix, []byte(fixationsJSON), 0o600))
	require.NoError(t, os.WriteFile(table, []byte(aoiJSON), 0o600))
	return dir, fix, table
}

func TestRun_EveryAlgorithm(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lvdrift.cli")
	defer teardown()

	_, fix, table := writeTrial(t)
	seed := int64(3)
	for _, name := range Names() {
		res, err := Run(Job{Fixations: fix, AOI: table, Algorithm: name, Seed: &seed})
		require.NoError(t, err, name)
		assert.Equal(t, []float64{100, 100, 200, 200}, res.After.Ys(), name)
		assert.NotEmpty(t, res.RunID)
	}
}

func TestRun_WritesOutputAndCompares(t *testing.T) {
	dir, fix, table := writeTrial(t)
	out := filepath.Join(dir, "corrected.json")
	gold := filepath.Join(dir, "gold.json")
	require.NoError(t, os.WriteFile(gold, []byte(`{"1": [40, 100, 200], "2": [140, 100, 180], "3": [40, 200, 220], "4": [140, 100, 190]}`), 0o600))

	cfg := filepath.Join(dir, "tuning.json")
	require.NoError(t, os.WriteFile(cfg, []byte(`{"y_threshold": 20}`), 0o600))

	res, err := Run(Job{Fixations: fix, AOI: table, Algorithm: "chain", Config: cfg, Out: out, Gold: gold})
	require.NoError(t, err)
	require.NotNil(t, res.Gold)
	assert.Equal(t, 3, res.Gold.Matching)
	assert.Equal(t, []int{3}, res.Gold.Mismatched)

	written, err := trial.LoadFixations(out)
	require.NoError(t, err)
	assert.Equal(t, res.After, written)
}

func TestRun_Usage(t *testing.T) {
	_, fix, table := writeTrial(t)

	_, err := Run(Job{AOI: table, Algorithm: "attach"})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = Run(Job{Fixations: fix, AOI: table, Algorithm: "nope"})
	assert.ErrorIs(t, err, ErrUsage)

	_, err = Run(Job{Fixations: fix, AOI: table, Algorithm: "attach", Config: filepath.Join(t.TempDir(), "none.json")})
	assert.Error(t, err)
}

func TestNames(t *testing.T) {
	names := Names()
	assert.Contains(t, names, "attach")
	assert.Contains(t, names, "warp")
	assert.Contains(t, names, "adaptive")
	assert.Contains(t, names, "warp_regress_regs")
	assert.IsNonDecreasing(t, names)
}
