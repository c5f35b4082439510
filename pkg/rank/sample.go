package rank

import (
	"math/rand/v2"

	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/utils"
)

// Sample estimates the PageRank of every page by simulating samples steps of
// the random surfer, starting from a page chosen uniformly at random, and
// returning how often each page was visited.
func Sample(c *graph.Corpus, damping float64, samples int, opts ...Option) (Distribution, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}
	if err := validateDamping(damping); err != nil {
		return nil, err
	}
	if samples <= 0 {
		return nil, ErrInvalidSamples
	}
	o := newOptions(opts)

	// Rows are immutable, so every page gets its sampler once
	samplers := make([]Sampler, c.Len())
	visits := make([]int, c.Len())
	current := rand.New(o.source).IntN(c.Len())
	for i := 0; i < samples; i++ {
		visits[current]++
		if samplers[current] == nil {
			samplers[current] = NewCategorical(transitionRow(c, current, damping), o.source)
		}
		current = samplers[current].Draw()
	}
	utils.ComputeLog("sample", "Sampled %d steps over %d pages", samples, c.Len())

	ranks := make(Distribution, c.Len())
	for i, count := range visits {
		ranks[c.Page(i)] = float64(count) / float64(samples)
	}
	return ranks, nil
}
