package config_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/lvdrift/config"
	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/fixation"
	"github.com/katalvlaran/lvdrift/regression"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Partial(t *testing.T) {
	path := write(t, "tuning.json", `{"y_threshold": 10, "seed": 7, "direction": "rtl"}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	require.NotNil(t, cfg.YThreshold)
	assert.Equal(t, 10.0, *cfg.YThreshold)
	assert.Nil(t, cfg.XThreshold)
	assert.Len(t, cfg.Options(), 2)
	assert.Len(t, cfg.RegressionOptions(), 1)
}

func TestLoad_OptionsTakeEffect(t *testing.T) {
	path := write(t, "tuning.json", `{"y_threshold": 10}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	// with the default threshold these two form one chain snapped to 200
	seq := fixation.Sequence{{X: 0, Y: 140}, {X: 50, Y: 170}}
	out, err := drift.Chain(seq, []float64{100, 200}, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200}, out.Ys())
}

func TestLoad_XThresholdReachesChain(t *testing.T) {
	cfg, err := config.Load(write(t, "tuning.json", `{"x_threshold": 50}`))
	require.NoError(t, err)

	seq := fixation.Sequence{{X: 0, Y: 140}, {X: 100, Y: 170}}
	out, err := drift.Chain(seq, []float64{100, 200}, cfg.Options()...)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 200}, out.Ys())
}

func TestLoad_DirectionReachesSlice(t *testing.T) {
	path := write(t, "tuning.json", `{"direction": "rtl", "line_height": 100}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)

	seq := fixation.Sequence{{X: 900, Y: 100}, {X: 800, Y: 100}, {X: 700, Y: 100}}
	s, err := regression.Slice(seq, nil, cfg.RegressionOptions()...)
	require.NoError(t, err)
	assert.Empty(t, s.Regressions)

	_, err = drift.Cluster(context.Background(), seq, []float64{100}, cfg.Options()...)
	require.NoError(t, err)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := config.Load(write(t, "tuning.yaml", `{}`))
	assert.ErrorContains(t, err, ".json extension")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorContains(t, err, "failed to stat")

	_, err = config.Load(write(t, "big.json", `{"seed": 1`+strings.Repeat(" ", config.MaxFileSize)+`}`))
	assert.ErrorContains(t, err, "too large")

	_, err = config.Load(write(t, "bad.json", `{"seed": "x"}`))
	assert.ErrorContains(t, err, "failed to parse")
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"negative threshold": `{"x_threshold": -1}`,
		"inverted bounds":    `{"slope_bounds": [0.1, -0.1]}`,
		"zero spread":        `{"spread_bounds": [0, 20]}`,
		"zero restarts":      `{"cluster_restarts": 0}`,
		"direction":          `{"direction": "up"}`,
		"zero line height":   `{"line_height": 0}`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := config.Load(write(t, "tuning.json", content))
			assert.ErrorIs(t, err, config.ErrInvalid)
		})
	}

	var empty config.Tuning
	assert.NoError(t, empty.Validate())
	assert.Empty(t, empty.Options())
	assert.Empty(t, empty.RegressionOptions())
}
