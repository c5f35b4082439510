package rank

import "math/rand/v2"

const (
	DefaultDamping       = 0.85
	DefaultSamples       = 10000
	DefaultThreshold     = 0.001
	DefaultMaxIterations = 10000
)

// Option configures Sample and Iterate.
type Option func(*options)

type options struct {
	threshold     float64
	maxIterations int
	source        rand.Source
}

func newOptions(opts []Option) options {
	o := options{
		threshold:     DefaultThreshold,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.source == nil {
		o.source = NewSource(0)
	}
	return o
}

// WithThreshold sets the largest per-page change accepted as converged.
func WithThreshold(threshold float64) Option {
	return func(o *options) { o.threshold = threshold }
}

// WithMaxIterations caps the number of passes of Iterate.
func WithMaxIterations(n int) Option {
	return func(o *options) { o.maxIterations = n }
}

// WithSeed makes Sample reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) { o.source = NewSource(seed) }
}

// WithSource sets the random source used by Sample.
func WithSource(src rand.Source) Option {
	return func(o *options) { o.source = src }
}
