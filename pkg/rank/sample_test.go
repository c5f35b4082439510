package rank_test

import (
	"testing"

	"github.com/lioia/pagerank/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSample_SumsToOne(t *testing.T) {
	for _, samples := range []int{1, 7, 1000, 10000} {
		ranks, err := rank.Sample(ringCorpus(t, 40), 0.85, samples, rank.WithSeed(1))
		require.NoError(t, err)
		assert.Len(t, ranks, 40)
		assert.InDelta(t, 1.0, ranks.Sum(), rank.Epsilon)
		for page, v := range ranks {
			assert.GreaterOrEqual(t, v, 0.0, page)
		}
	}
}

func TestSample_SinglePage(t *testing.T) {
	c := newCorpus(t, map[string][]string{"a.html": {}})
	ranks, err := rank.Sample(c, 0.85, 100)
	require.NoError(t, err)
	assert.Equal(t, rank.Distribution{"a.html": 1.0}, ranks)
}

func TestSample_Seeded(t *testing.T) {
	c := threePages(t)
	a, err := rank.Sample(c, 0.85, 5000, rank.WithSeed(42))
	require.NoError(t, err)
	b, err := rank.Sample(c, 0.85, 5000, rank.WithSeed(42))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestSample_AgreesWithIterate(t *testing.T) {
	c := threePages(t)
	expected, err := rank.Iterate(c, 0.85, rank.WithThreshold(1e-9))
	require.NoError(t, err)
	sampled, err := rank.Sample(c, 0.85, 100000, rank.WithSeed(7))
	require.NoError(t, err)
	// Standard deviation is well below 0.01 at this sample count
	assert.Less(t, expected.MaxAbsDiff(sampled), 0.02)
}

func TestSample_SinkKeepsMass(t *testing.T) {
	ranks, err := rank.Sample(sinkPair(t), 0.85, 50000, rank.WithSeed(3))
	require.NoError(t, err)
	// Stationary distribution: A = 0.6491, B = 0.3509
	assert.InDelta(t, 0.6491, ranks["A"], 0.02)
	assert.InDelta(t, 0.3509, ranks["B"], 0.02)
}

func TestSample_InvalidInput(t *testing.T) {
	c := threePages(t)
	_, err := rank.Sample(c, 0.85, 0)
	assert.ErrorIs(t, err, rank.ErrInvalidSamples)
	_, err = rank.Sample(c, 0.85, -3)
	assert.ErrorIs(t, err, rank.ErrInvalidSamples)
	_, err = rank.Sample(c, 1, 100)
	assert.ErrorIs(t, err, rank.ErrInvalidDamping)
	_, err = rank.Sample(nil, 0.85, 100)
	assert.ErrorIs(t, err, rank.ErrNilCorpus)
}

func TestCategorical_Draw(t *testing.T) {
	sampler := rank.NewCategorical([]float64{0, 3, 1}, rank.NewSource(11))
	counts := make([]int, 3)
	for i := 0; i < 40000; i++ {
		counts[sampler.Draw()]++
	}
	assert.Zero(t, counts[0])
	assert.InDelta(t, 0.75, float64(counts[1])/40000, 0.02)
	assert.InDelta(t, 0.25, float64(counts[2])/40000, 0.02)
}
