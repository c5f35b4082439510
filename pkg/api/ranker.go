package api

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/rank"
	"github.com/lioia/pagerank/pkg/utils"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/errgroup"
)

// Ranker serves rank requests for every transport. Iteration results are
// deterministic, so they are cached per corpus and parameters; sampling is
// always run again.
type Ranker struct {
	Defaults rank.Params
	Registry *prometheus.Registry

	cache      *lru.Cache[string, rank.Result]
	requests   *prometheus.CounterVec
	iterations prometheus.Histogram
}

func NewRanker(defaults rank.Params, cacheSize int) (*Ranker, error) {
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("invalid default parameters: %w", err)
	}
	cache, err := lru.New[string, rank.Result](cacheSize)
	if err != nil {
		return nil, err
	}
	reg := prometheus.NewRegistry()
	return &Ranker{
		Defaults: defaults,
		Registry: reg,
		cache:    cache,
		requests: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "pagerank_requests_total",
			Help: "Rank requests by transport and outcome.",
		}, []string{"transport", "outcome"}),
		iterations: promauto.With(reg).NewHistogram(prometheus.HistogramOpts{
			Name:    "pagerank_iterations",
			Help:    "Passes needed by the iterative estimator to converge.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
	}, nil
}

// Rank computes both estimates for req. transport only labels the metrics.
func (r *Ranker) Rank(ctx context.Context, transport string, req RankRequest) (RankResponse, error) {
	res, err := r.rank(ctx, req)
	outcome := "ok"
	switch {
	case err == nil:
	case IsInvalidInput(err):
		outcome = "invalid"
	default:
		outcome = "error"
	}
	r.requests.WithLabelValues(transport, outcome).Inc()
	return res, err
}

func (r *Ranker) rank(ctx context.Context, req RankRequest) (RankResponse, error) {
	c, err := graph.NewCorpus(req.Corpus)
	if err != nil {
		return RankResponse{}, err
	}
	p := r.Params(req)
	if err := p.Validate(); err != nil {
		return RankResponse{}, err
	}

	if err := ctx.Err(); err != nil {
		return RankResponse{}, err
	}
	var res RankResponse
	var g errgroup.Group
	g.Go(func() (err error) {
		res.Sampling, err = rank.Sample(c, p.Damping, p.Samples, rank.WithSeed(p.Seed))
		return
	})
	g.Go(func() error {
		result, err := r.iterate(c, p)
		res.Iteration, res.Iterations = result.Ranks, result.Iterations
		return err
	})
	if err := g.Wait(); err != nil {
		return RankResponse{}, err
	}
	return res, nil
}

// Params merges the request parameters over the defaults.
func (r *Ranker) Params(req RankRequest) rank.Params {
	p := r.Defaults
	if req.Damping != 0 {
		p.Damping = req.Damping
	}
	if req.Samples != 0 {
		p.Samples = req.Samples
	}
	if req.Seed != 0 {
		p.Seed = req.Seed
	}
	return p
}

func (r *Ranker) iterate(c *graph.Corpus, p rank.Params) (rank.Result, error) {
	links, err := json.Marshal(c.Links())
	if err != nil {
		return rank.Result{}, err
	}
	key := fmt.Sprintf("%g|%g|%d|%s", p.Damping, p.Threshold, p.MaxIterations, links)
	if result, ok := r.cache.Get(key); ok {
		utils.ServerLog("Iteration cache hit for %d pages", c.Len())
		result.Ranks = maps.Clone(result.Ranks)
		return result, nil
	}
	result, err := rank.IterateStats(c, p.Damping,
		rank.WithThreshold(p.Threshold), rank.WithMaxIterations(p.MaxIterations))
	if err != nil {
		return rank.Result{}, err
	}
	r.iterations.Observe(float64(result.Iterations))
	r.cache.Add(key, rank.Result{Ranks: maps.Clone(result.Ranks), Iterations: result.Iterations})
	return result, nil
}
