// Package config loads the optional JSON tuning file of the driftcorrect
// command and turns it into algorithm options.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/regression"
)

// MaxFileSize is the largest tuning file Load accepts.
const MaxFileSize = 1 * 1024 * 1024 // 1MB

// ErrInvalid indicates a tuning value outside its legal range.
var ErrInvalid = errors.New("config: invalid tuning value")

// Tuning holds algorithm parameters. Every field is optional: a nil field
// keeps the library default, so partial files are safe.
type Tuning struct {
	// Chain
	XThreshold *float64 `json:"x_threshold,omitempty"`

	// Chain and Merge
	YThreshold *float64 `json:"y_threshold,omitempty"`

	// Merge
	GradientThreshold *float64 `json:"gradient_threshold,omitempty"`
	ErrorThreshold    *float64 `json:"error_threshold,omitempty"`

	// Regress
	SlopeBounds  *[2]float64 `json:"slope_bounds,omitempty"`
	OffsetBounds *[2]float64 `json:"offset_bounds,omitempty"`
	SpreadBounds *[2]float64 `json:"spread_bounds,omitempty"`

	// Stretch
	ScaleBounds         *[2]float64 `json:"scale_bounds,omitempty"`
	StretchOffsetBounds *[2]float64 `json:"stretch_offset_bounds,omitempty"`

	// Regress and Stretch
	OptimizerIterations *int `json:"optimizer_iterations,omitempty"`

	// Cluster and Split
	ClusterRestarts *int   `json:"cluster_restarts,omitempty"`
	SplitRestarts   *int   `json:"split_restarts,omitempty"`
	MaxIter         *int   `json:"max_iter,omitempty"`
	Seed            *int64 `json:"seed,omitempty"`

	// Regression slicing for the hybrid correctors
	LineHeight *float64 `json:"line_height,omitempty"`
	Direction  *string  `json:"direction,omitempty"` // "ltr" or "rtl"
}

// Load reads a Tuning from a JSON file. The path must have a .json extension
// and the file must not exceed MaxFileSize.
func Load(path string) (*Tuning, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > MaxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), MaxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := &Tuning{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks every set field. The library constructors panic on the
// same values, so a validated Tuning always yields usable options.
func (c *Tuning) Validate() error {
	for name, v := range map[string]*float64{
		"x_threshold":        c.XThreshold,
		"y_threshold":        c.YThreshold,
		"gradient_threshold": c.GradientThreshold,
		"error_threshold":    c.ErrorThreshold,
		"line_height":        c.LineHeight,
	} {
		if v != nil && !positive(*v) {
			return fmt.Errorf("%w: %s must be finite and positive, got %v", ErrInvalid, name, *v)
		}
	}

	for name, b := range map[string]*[2]float64{
		"slope_bounds":          c.SlopeBounds,
		"offset_bounds":         c.OffsetBounds,
		"spread_bounds":         c.SpreadBounds,
		"scale_bounds":          c.ScaleBounds,
		"stretch_offset_bounds": c.StretchOffsetBounds,
	} {
		if b != nil && !(finite(b[0]) && finite(b[1]) && b[0] < b[1]) {
			return fmt.Errorf("%w: %s must be finite with lo < hi, got %v", ErrInvalid, name, *b)
		}
	}
	if c.SpreadBounds != nil && c.SpreadBounds[0] <= 0 {
		return fmt.Errorf("%w: spread_bounds must be positive, got %v", ErrInvalid, *c.SpreadBounds)
	}

	for name, n := range map[string]*int{
		"optimizer_iterations": c.OptimizerIterations,
		"cluster_restarts":     c.ClusterRestarts,
		"split_restarts":       c.SplitRestarts,
		"max_iter":             c.MaxIter,
	} {
		if n != nil && *n < 1 {
			return fmt.Errorf("%w: %s must be >= 1, got %d", ErrInvalid, name, *n)
		}
	}

	if c.Direction != nil {
		if _, err := parseDirection(*c.Direction); err != nil {
			return err
		}
	}

	return nil
}

// Options converts the set fields into drift options. Call Validate first.
func (c *Tuning) Options() []drift.Option {
	var opts []drift.Option
	if c.XThreshold != nil {
		opts = append(opts, drift.WithXThreshold(*c.XThreshold))
	}
	if c.YThreshold != nil {
		opts = append(opts, drift.WithYThreshold(*c.YThreshold))
	}
	if c.GradientThreshold != nil {
		opts = append(opts, drift.WithGradientThreshold(*c.GradientThreshold))
	}
	if c.ErrorThreshold != nil {
		opts = append(opts, drift.WithErrorThreshold(*c.ErrorThreshold))
	}
	if b := c.SlopeBounds; b != nil {
		opts = append(opts, drift.WithSlopeBounds(b[0], b[1]))
	}
	if b := c.OffsetBounds; b != nil {
		opts = append(opts, drift.WithOffsetBounds(b[0], b[1]))
	}
	if b := c.SpreadBounds; b != nil {
		opts = append(opts, drift.WithSpreadBounds(b[0], b[1]))
	}
	if b := c.ScaleBounds; b != nil {
		opts = append(opts, drift.WithScaleBounds(b[0], b[1]))
	}
	if b := c.StretchOffsetBounds; b != nil {
		opts = append(opts, drift.WithStretchOffsetBounds(b[0], b[1]))
	}
	if c.OptimizerIterations != nil {
		opts = append(opts, drift.WithMaxOptimizerIterations(*c.OptimizerIterations))
	}
	if c.ClusterRestarts != nil {
		opts = append(opts, drift.WithClusterRestarts(*c.ClusterRestarts))
	}
	if c.SplitRestarts != nil {
		opts = append(opts, drift.WithSplitRestarts(*c.SplitRestarts))
	}
	if c.MaxIter != nil {
		opts = append(opts, drift.WithMaxIter(*c.MaxIter))
	}
	if c.Seed != nil {
		opts = append(opts, drift.WithSeed(*c.Seed))
	}

	return opts
}

// RegressionOptions converts the slicing fields into regression options.
// Call Validate first.
func (c *Tuning) RegressionOptions() []regression.Option {
	var opts []regression.Option
	if c.LineHeight != nil {
		opts = append(opts, regression.WithLineHeight(*c.LineHeight))
	}
	if c.Direction != nil {
		d, _ := parseDirection(*c.Direction)
		opts = append(opts, regression.WithDirection(d))
	}

	return opts
}

func parseDirection(s string) (regression.Direction, error) {
	switch s {
	case regression.LeftToRight.String():
		return regression.LeftToRight, nil
	case regression.RightToLeft.String():
		return regression.RightToLeft, nil
	}
	return regression.LeftToRight, fmt.Errorf("%w: direction must be %q or %q, got %q",
		ErrInvalid, regression.LeftToRight, regression.RightToLeft, s)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

func positive(v float64) bool { return finite(v) && v > 0 }
