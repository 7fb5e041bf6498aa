// SPDX-License-Identifier: MIT

package kmeans

import "math"

// Defaults mirror the settings of the clustering library the reference
// drift-correction study used.
const (
	// DefaultNInit is the number of independent restarts.
	DefaultNInit = 10

	// DefaultMaxIter caps Lloyd iterations per restart.
	DefaultMaxIter = 300

	// DefaultTol is the relative convergence tolerance (scaled by variance).
	DefaultTol = 1e-4
)

const (
	panicNInitInvalid   = "kmeans: WithRestarts: n must be >= 1"
	panicMaxIterInvalid = "kmeans: WithMaxIter: n must be >= 1"
	panicTolInvalid     = "kmeans: WithTolerance: tol must be finite, non-negative"
)

// Option mutates Options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options is the effective configuration after applying Option setters.
type Options struct {
	nInit   int
	maxIter int
	tol     float64
	seed    int64
	seeded  bool
}

// WithRestarts sets the number of independent k-means++ restarts.
func WithRestarts(n int) Option {
	if n < 1 {
		panic(panicNInitInvalid)
	}
	return func(o *Options) { o.nInit = n }
}

// WithMaxIter caps the Lloyd iterations of each restart.
func WithMaxIter(n int) Option {
	if n < 1 {
		panic(panicMaxIterInvalid)
	}
	return func(o *Options) { o.maxIter = n }
}

// WithTolerance sets the relative convergence tolerance.
func WithTolerance(tol float64) Option {
	if tol < 0 || math.IsNaN(tol) || math.IsInf(tol, 0) {
		panic(panicTolInvalid)
	}
	return func(o *Options) { o.tol = tol }
}

// WithSeed fixes the random stream. Seed 0 selects defaultRNGSeed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

func gatherOptions(opts []Option) Options {
	o := Options{
		nInit:   DefaultNInit,
		maxIter: DefaultMaxIter,
		tol:     DefaultTol,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
