package rank

import (
	"math/rand/v2"
	"time"

	"gonum.org/v1/gonum/stat/distuv"
)

// Sampler draws category indexes according to fixed weights.
type Sampler interface {
	Draw() int
}

// Categorical is a Sampler backed by a gonum categorical distribution.
// Weights do not need to be normalized.
type Categorical struct {
	dist distuv.Categorical
}

// NewCategorical returns a sampler drawing index i with probability
// weights[i] / sum(weights) from src.
func NewCategorical(weights []float64, src rand.Source) *Categorical {
	return &Categorical{dist: distuv.NewCategorical(weights, src)}
}

func (c *Categorical) Draw() int {
	return int(c.dist.Rand())
}

// NewSource returns a PCG source for seed. A zero seed picks one from the clock.
func NewSource(seed uint64) rand.Source {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)
}
