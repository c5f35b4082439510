package rank_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/lioia/pagerank/pkg/rank"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEstimate(t *testing.T) {
	p := rank.DefaultParams()
	p.Seed = 5
	estimates, err := rank.Estimate(context.Background(), threePages(t), p)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, estimates.Sampling.Sum(), rank.Epsilon)
	assert.InDelta(t, 1.0, estimates.Iteration.Sum(), rank.Epsilon)
	assert.Positive(t, estimates.Iterations)
	assert.Less(t, estimates.Sampling.MaxAbsDiff(estimates.Iteration), 0.05)
}

func TestEstimate_RejectsParams(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*rank.Params)
		err    error
	}{
		{"damping", func(p *rank.Params) { p.Damping = 1.2 }, rank.ErrInvalidDamping},
		{"samples", func(p *rank.Params) { p.Samples = 0 }, rank.ErrInvalidSamples},
		{"threshold", func(p *rank.Params) { p.Threshold = -1 }, rank.ErrInvalidThreshold},
		{"iterations", func(p *rank.Params) { p.MaxIterations = 0 }, rank.ErrInvalidIterations},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := rank.DefaultParams()
			tt.modify(&p)
			_, err := rank.Estimate(context.Background(), threePages(t), p)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestEstimate_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := rank.Estimate(ctx, threePages(t), rank.DefaultParams())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDistribution_Format(t *testing.T) {
	var buf bytes.Buffer
	d := rank.Distribution{"b.html": 0.25, "a.html": 0.75}
	require.NoError(t, d.Format(&buf))
	assert.Equal(t, "  a.html: 0.7500\n  b.html: 0.2500\n", buf.String())
}

func TestDistribution_Normalize(t *testing.T) {
	d := rank.Distribution{"a": 2, "b": 6}
	n := d.Normalize()
	assert.Equal(t, rank.Distribution{"a": 0.25, "b": 0.75}, n)
	assert.Equal(t, 2.0, d["a"], "Normalize must not modify its receiver")
	assert.Equal(t, rank.Distribution{"a": 0}, rank.Distribution{"a": 0}.Normalize())
}
