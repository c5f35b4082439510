package rank_test

import (
	"testing"

	"github.com/lioia/pagerank/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterate_ThreePages(t *testing.T) {
	ranks, err := rank.Iterate(threePages(t), 0.85)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, ranks.Sum(), rank.Epsilon)

	// Stationary distribution: 0.2568, 0.4865, 0.2568
	assert.Greater(t, ranks["2.html"], ranks["1.html"])
	assert.Greater(t, ranks["2.html"], ranks["3.html"])
	assert.InDelta(t, ranks["1.html"], ranks["3.html"], 1e-12)
	assert.InDelta(t, 0.4865, ranks["2.html"], 0.005)
	assert.InDelta(t, 1.89, ranks["2.html"]/ranks["1.html"], 0.05)
}

func TestIterate_SinglePage(t *testing.T) {
	result, err := rank.IterateStats(newCorpus(t, map[string][]string{"a.html": {}}), 0.85)
	require.NoError(t, err)
	assert.Equal(t, rank.Distribution{"a.html": 1.0}, result.Ranks)
	assert.Equal(t, 1, result.Iterations)
}

func TestIterate_SinkKeepsMass(t *testing.T) {
	ranks, err := rank.Iterate(sinkPair(t), 0.85, rank.WithThreshold(1e-12))
	require.NoError(t, err)
	// B = (1 - d) / 2 + d * A / 2 and A + B = 1 give B = 0.5 / 1.425
	assert.InDelta(t, 1-0.5/1.425, ranks["A"], 1e-9)
	assert.InDelta(t, 0.5/1.425, ranks["B"], 1e-9)
	assert.InDelta(t, 1.0, ranks.Sum(), rank.Epsilon)
}

func TestIterate_Deterministic(t *testing.T) {
	c := ringCorpus(t, 60)
	a, err := rank.Iterate(c, 0.85)
	require.NoError(t, err)
	b, err := rank.Iterate(c, 0.85)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestIterate_NormalizeIsIdempotent(t *testing.T) {
	ranks, err := rank.Iterate(ringCorpus(t, 25), 0.85)
	require.NoError(t, err)
	assert.LessOrEqual(t, ranks.MaxAbsDiff(ranks.Normalize()), rank.Epsilon)
	assert.LessOrEqual(t, ranks.Normalize().MaxAbsDiff(ranks.Normalize().Normalize()), rank.Epsilon)
}

func TestIterate_ThresholdSensitivity(t *testing.T) {
	c := ringCorpus(t, 100)
	coarse, err := rank.Iterate(c, 0.85, rank.WithThreshold(0.001))
	require.NoError(t, err)
	fine, err := rank.IterateStats(c, 0.85, rank.WithThreshold(0.0001))
	require.NoError(t, err)
	assert.Less(t, fine.Iterations, rank.DefaultMaxIterations)
	// The coarse result is within d / (1 - d) times its threshold of the fixed point
	assert.Less(t, coarse.MaxAbsDiff(fine.Ranks), 0.01)
}

func TestIterate_NotConverged(t *testing.T) {
	_, err := rank.Iterate(ringCorpus(t, 50), 0.85, rank.WithThreshold(1e-15), rank.WithMaxIterations(3))
	assert.ErrorIs(t, err, rank.ErrNotConverged)
}

func TestIterate_InvalidInput(t *testing.T) {
	c := threePages(t)
	_, err := rank.Iterate(c, 0)
	assert.ErrorIs(t, err, rank.ErrInvalidDamping)
	_, err = rank.Iterate(c, 0.85, rank.WithThreshold(0))
	assert.ErrorIs(t, err, rank.ErrInvalidThreshold)
	_, err = rank.Iterate(c, 0.85, rank.WithMaxIterations(0))
	assert.ErrorIs(t, err, rank.ErrInvalidIterations)
	_, err = rank.Iterate(nil, 0.85)
	assert.ErrorIs(t, err, rank.ErrNilCorpus)
}
