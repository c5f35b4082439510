package rank

import (
	"fmt"
	"math"

	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/utils"
	"gonum.org/v1/gonum/floats"
)

// Result is the outcome of Iterate along with the passes it took.
type Result struct {
	Ranks      Distribution
	Iterations int
}

// Iterate computes the PageRank of every page by repeatedly applying
// R_(i+1)(u) = (1 - d) / N + d * sum_(v in B_u) R_i(v) / N_v
// until no page changes by more than the threshold.
func Iterate(c *graph.Corpus, damping float64, opts ...Option) (Distribution, error) {
	result, err := IterateStats(c, damping, opts...)
	if err != nil {
		return nil, err
	}
	return result.Ranks, nil
}

// IterateStats is Iterate reporting the number of passes as well.
func IterateStats(c *graph.Corpus, damping float64, opts ...Option) (Result, error) {
	if c == nil {
		return Result{}, ErrNilCorpus
	}
	if err := validateDamping(damping); err != nil {
		return Result{}, err
	}
	o := newOptions(opts)
	if !(o.threshold > 0) {
		return Result{}, ErrInvalidThreshold
	}
	if o.maxIterations <= 0 {
		return Result{}, ErrInvalidIterations
	}

	n := c.Len()
	previous := make([]float64, n)
	for i := range previous {
		previous[i] = 1 / float64(n)
	}
	for pass := 1; pass <= o.maxIterations; pass++ {
		current := iteratePass(c, previous, damping)
		// Largest per-page change of this pass
		delta := floats.Distance(previous, current, math.Inf(1))
		previous = current
		if delta <= o.threshold {
			utils.ComputeLog("iterate", "Convergence check success (%d iterations)", pass)
			// Normalize values
			total := floats.Sum(current)
			ranks := make(Distribution, n)
			for i, v := range current {
				ranks[c.Page(i)] = v / total
			}
			return Result{Ranks: ranks, Iterations: pass}, nil
		}
		utils.ComputeLog("iterate", "Convergence check failed (%f)", delta)
	}
	return Result{}, fmt.Errorf("%d iterations: %w", o.maxIterations, ErrNotConverged)
}

// iteratePass computes the next rank vector from previous, which is only read.
func iteratePass(c *graph.Corpus, previous []float64, damping float64) []float64 {
	n := float64(c.Len())
	// Map phase: sum_(v in B_u) (R_i(v) / N_v)
	sum := make([]float64, len(previous))
	for v, rank := range previous {
		targets := linkTargets(c, v)
		share := rank / float64(len(targets))
		for _, u := range targets {
			sum[u] += share
		}
	}
	// Reduce phase: R_(i+1)(u) = (1 - d) / N + d * sum
	current := make([]float64, len(previous))
	for u := range current {
		current[u] = (1-damping)/n + damping*sum[u]
	}
	return current
}
