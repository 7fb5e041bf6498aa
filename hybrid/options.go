package hybrid

import (
	"github.com/katalvlaran/lvdrift/drift"
	"github.com/katalvlaran/lvdrift/regression"
)

// Option configures the compositors.
type Option func(*options)

type options struct {
	slice []regression.Option
	drift []drift.Option
}

// WithSliceOptions passes options to regression.Slice (line height,
// reading direction).
func WithSliceOptions(opts ...regression.Option) Option {
	cp := append([]regression.Option(nil), opts...)
	return func(o *options) { o.slice = append(o.slice, cp...) }
}

// WithDriftOptions passes options to the Regress detector of Adaptive and
// to secondaries resolved by Lookup.
func WithDriftOptions(opts ...drift.Option) Option {
	cp := append([]drift.Option(nil), opts...)
	return func(o *options) { o.drift = append(o.drift, cp...) }
}

func gatherOptions(opts []Option) options {
	var o options
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
