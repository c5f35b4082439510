package rank

import (
	"context"

	"github.com/lioia/pagerank/pkg/graph"
	"golang.org/x/sync/errgroup"
)

// Params holds the settings of one estimation run.
type Params struct {
	Damping       float64
	Samples       int
	Threshold     float64
	MaxIterations int
	Seed          uint64 // 0: seeded from the clock
}

// Estimates holds the output of both estimators.
type Estimates struct {
	Sampling   Distribution
	Iteration  Distribution
	Iterations int
}

func DefaultParams() Params {
	return Params{
		Damping:       DefaultDamping,
		Samples:       DefaultSamples,
		Threshold:     DefaultThreshold,
		MaxIterations: DefaultMaxIterations,
	}
}

// Validate rejects settings no estimator can run with.
func (p Params) Validate() error {
	if err := validateDamping(p.Damping); err != nil {
		return err
	}
	if p.Samples <= 0 {
		return ErrInvalidSamples
	}
	if !(p.Threshold > 0) {
		return ErrInvalidThreshold
	}
	if p.MaxIterations <= 0 {
		return ErrInvalidIterations
	}
	return nil
}

// Estimate runs Sample and Iterate on c side by side. The corpus is only
// read, so the two estimators share it without locking.
func Estimate(ctx context.Context, c *graph.Corpus, p Params) (Estimates, error) {
	if c == nil {
		return Estimates{}, ErrNilCorpus
	}
	if err := p.Validate(); err != nil {
		return Estimates{}, err
	}
	if err := ctx.Err(); err != nil {
		return Estimates{}, err
	}
	var out Estimates
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		out.Sampling, err = Sample(c, p.Damping, p.Samples, WithSeed(p.Seed))
		return
	})
	g.Go(func() error {
		result, err := IterateStats(c, p.Damping,
			WithThreshold(p.Threshold), WithMaxIterations(p.MaxIterations))
		out.Iteration, out.Iterations = result.Ranks, result.Iterations
		return err
	})
	if err := g.Wait(); err != nil {
		return Estimates{}, err
	}
	return out, nil
}
