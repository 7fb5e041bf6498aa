// SPDX-License-Identifier: MIT

package drift

import "math"

// Defaults (single source of truth). They reproduce the parameters of the
// published algorithm suite.
const (
	// DefaultXThreshold is the horizontal jump (px) that ends a chain.
	DefaultXThreshold = 192.0

	// DefaultYThreshold is the vertical jump (px) that ends a chain or merge run.
	DefaultYThreshold = 32.0

	// DefaultGradientThreshold bounds |slope| of a legal constrained merge.
	DefaultGradientThreshold = 0.1

	// DefaultErrorThreshold bounds the RMS residual of a legal constrained merge.
	DefaultErrorThreshold = 20.0

	// DefaultClusterRestarts is the k-means restart count for Cluster.
	DefaultClusterRestarts = 100

	// DefaultSplitRestarts is the k-means restart count for Split.
	DefaultSplitRestarts = 10

	// DefaultMaxIter caps Lloyd iterations per k-means restart.
	DefaultMaxIter = 300
)

// Bounds is a closed interval [Lo, Hi].
type Bounds struct {
	Lo float64
	Hi float64
}

// Width returns Hi − Lo.
func (b Bounds) Width() float64 { return b.Hi - b.Lo }

// Clamp projects v onto the interval.
func (b Bounds) Clamp(v float64) float64 {
	return math.Max(b.Lo, math.Min(b.Hi, v))
}

// Default parameter ranges of Regress and Stretch.
var (
	DefaultSlopeBounds         = Bounds{Lo: -0.1, Hi: 0.1}
	DefaultOffsetBounds        = Bounds{Lo: -50, Hi: 50}
	DefaultSpreadBounds        = Bounds{Lo: 1, Hi: 20}
	DefaultScaleBounds         = Bounds{Lo: 0.9, Hi: 1.1}
	DefaultStretchOffsetBounds = Bounds{Lo: -50, Hi: 50}
)

// Phase is one stage of Merge: runs shorter than MinI (first of the pair) or
// MinJ (second of the pair) are not considered, and NoConstraints lifts the
// slope and error limits.
type Phase struct {
	MinI          int
	MinJ          int
	NoConstraints bool
}

// DefaultPhases returns the four merge phases in their fixed order.
// The slice is fresh on every call.
func DefaultPhases() []Phase {
	return []Phase{
		{MinI: 3, MinJ: 3, NoConstraints: false},
		{MinI: 1, MinJ: 3, NoConstraints: false},
		{MinI: 1, MinJ: 1, NoConstraints: false},
		{MinI: 1, MinJ: 1, NoConstraints: true},
	}
}

const (
	panicThresholdInvalid = "drift: threshold must be finite and positive"
	panicBoundsInvalid    = "drift: bounds must be finite with Lo < Hi"
	panicCountInvalid     = "drift: count must be >= 1"
	panicPhasesInvalid    = "drift: phases must be non-empty with MinI, MinJ >= 1"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration of one correction call.
type Options struct {
	xThreshold        float64
	yThreshold        float64
	gradientThreshold float64
	errorThreshold    float64
	phases            []Phase

	slopeBounds  Bounds
	offsetBounds Bounds
	spreadBounds Bounds

	scaleBounds         Bounds
	stretchOffsetBounds Bounds

	clusterRestarts int
	splitRestarts   int
	maxIter         int
	seed            int64
	seeded          bool

	optimizerIters int // 0 ⇒ per-algorithm default
}

// WithXThreshold sets the horizontal chain-break distance (Chain).
func WithXThreshold(px float64) Option {
	mustPositive(px)
	return func(o *Options) { o.xThreshold = px }
}

// WithYThreshold sets the vertical run-break distance (Chain, Merge).
func WithYThreshold(px float64) Option {
	mustPositive(px)
	return func(o *Options) { o.yThreshold = px }
}

// WithGradientThreshold sets the slope limit of constrained merges.
func WithGradientThreshold(g float64) Option {
	mustPositive(g)
	return func(o *Options) { o.gradientThreshold = g }
}

// WithErrorThreshold sets the RMS limit of constrained merges.
func WithErrorThreshold(e float64) Option {
	mustPositive(e)
	return func(o *Options) { o.errorThreshold = e }
}

// WithPhases replaces the merge phase schedule.
func WithPhases(phases ...Phase) Option {
	if len(phases) == 0 {
		panic(panicPhasesInvalid)
	}
	for _, p := range phases {
		if p.MinI < 1 || p.MinJ < 1 {
			panic(panicPhasesInvalid)
		}
	}
	cp := append([]Phase(nil), phases...)
	return func(o *Options) { o.phases = cp }
}

// WithSlopeBounds sets the range of the Regress slope parameter.
func WithSlopeBounds(lo, hi float64) Option {
	b := mustBounds(lo, hi)
	return func(o *Options) { o.slopeBounds = b }
}

// WithOffsetBounds sets the range of the Regress offset parameter.
func WithOffsetBounds(lo, hi float64) Option {
	b := mustBounds(lo, hi)
	return func(o *Options) { o.offsetBounds = b }
}

// WithSpreadBounds sets the range of the Regress standard deviation.
func WithSpreadBounds(lo, hi float64) Option {
	if lo <= 0 {
		panic(panicBoundsInvalid)
	}
	b := mustBounds(lo, hi)
	return func(o *Options) { o.spreadBounds = b }
}

// WithScaleBounds sets the range of the Stretch scale factor.
func WithScaleBounds(lo, hi float64) Option {
	b := mustBounds(lo, hi)
	return func(o *Options) { o.scaleBounds = b }
}

// WithStretchOffsetBounds sets the range of the Stretch offset.
func WithStretchOffsetBounds(lo, hi float64) Option {
	b := mustBounds(lo, hi)
	return func(o *Options) { o.stretchOffsetBounds = b }
}

// WithClusterRestarts sets the k-means restart count of Cluster.
func WithClusterRestarts(n int) Option {
	mustCount(n)
	return func(o *Options) { o.clusterRestarts = n }
}

// WithSplitRestarts sets the k-means restart count of Split.
func WithSplitRestarts(n int) Option {
	mustCount(n)
	return func(o *Options) { o.splitRestarts = n }
}

// WithMaxIter caps Lloyd iterations for Cluster and Split.
func WithMaxIter(n int) Option {
	mustCount(n)
	return func(o *Options) { o.maxIter = n }
}

// WithSeed fixes the k-means random stream of Cluster and Split.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithMaxOptimizerIterations caps the major iterations of the Regress and
// Stretch optimisers.
func WithMaxOptimizerIterations(n int) Option {
	mustCount(n)
	return func(o *Options) { o.optimizerIters = n }
}

func gatherOptions(opts []Option) Options {
	o := Options{
		xThreshold:          DefaultXThreshold,
		yThreshold:          DefaultYThreshold,
		gradientThreshold:   DefaultGradientThreshold,
		errorThreshold:      DefaultErrorThreshold,
		phases:              DefaultPhases(),
		slopeBounds:         DefaultSlopeBounds,
		offsetBounds:        DefaultOffsetBounds,
		spreadBounds:        DefaultSpreadBounds,
		scaleBounds:         DefaultScaleBounds,
		stretchOffsetBounds: DefaultStretchOffsetBounds,
		clusterRestarts:     DefaultClusterRestarts,
		splitRestarts:       DefaultSplitRestarts,
		maxIter:             DefaultMaxIter,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

func mustPositive(v float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v <= 0 {
		panic(panicThresholdInvalid)
	}
}

func mustBounds(lo, hi float64) Bounds {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		panic(panicBoundsInvalid)
	}
	return Bounds{Lo: lo, Hi: hi}
}

func mustCount(n int) {
	if n < 1 {
		panic(panicCountInvalid)
	}
}
