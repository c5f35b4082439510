package api_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/lioia/pagerank/pkg/api"
	"github.com/lioia/pagerank/pkg/graph"
	"github.com/lioia/pagerank/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRanker_Params(t *testing.T) {
	r := newRanker(t)
	p := r.Params(api.RankRequest{Damping: 0.5, Samples: 10})
	assert.Equal(t, 0.5, p.Damping)
	assert.Equal(t, 10, p.Samples)
	assert.Equal(t, uint64(1), p.Seed)
	assert.Equal(t, rank.DefaultThreshold, p.Threshold)
}

func TestRanker_InvalidDefaults(t *testing.T) {
	_, err := api.NewRanker(rank.Params{Damping: 0.85}, 8)
	assert.ErrorIs(t, err, rank.ErrInvalidSamples)
}

func TestRanker_CachedRanksAreCopies(t *testing.T) {
	r := newRanker(t)
	req := api.RankRequest{Corpus: map[string][]string{"a": {"b"}, "b": {"a"}}}
	first, err := r.Rank(context.Background(), "test", req)
	require.NoError(t, err)
	first.Iteration["a"] = 42

	second, err := r.Rank(context.Background(), "test", req)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, second.Iteration["a"], 1e-9)
}

func TestIsInvalidInput(t *testing.T) {
	assert.True(t, api.IsInvalidInput(fmt.Errorf("wrapped: %w", graph.ErrSelfLink)))
	assert.True(t, api.IsInvalidInput(rank.ErrInvalidDamping))
	assert.False(t, api.IsInvalidInput(rank.ErrNotConverged))
	assert.False(t, api.IsInvalidInput(context.Canceled))
}
