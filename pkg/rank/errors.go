package rank

import (
	"errors"

	"github.com/lioia/pagerank/pkg/graph"
)

// Sentinel errors returned by the estimators.
var (
	// ErrInvalidDamping indicates a damping factor outside of (0, 1).
	ErrInvalidDamping = errors.New("rank: damping factor must be in (0, 1)")

	// ErrInvalidSamples indicates a non-positive sample count.
	ErrInvalidSamples = errors.New("rank: sample count must be positive")

	// ErrInvalidThreshold indicates a non-positive convergence threshold.
	ErrInvalidThreshold = errors.New("rank: convergence threshold must be positive")

	// ErrInvalidIterations indicates a non-positive iteration cap.
	ErrInvalidIterations = errors.New("rank: iteration cap must be positive")

	// ErrNotConverged is returned when the iterative estimator hits its
	// iteration cap. It signals an internal error, never a usable result.
	ErrNotConverged = errors.New("rank: iteration did not converge")

	// ErrNilCorpus indicates that no corpus was given.
	ErrNilCorpus = errors.New("rank: corpus is nil")

	// ErrUnknownPage is graph.ErrUnknownPage, re-exported for callers of Transition.
	ErrUnknownPage = graph.ErrUnknownPage
)

func validateDamping(damping float64) error {
	// NaN fails both comparisons
	if !(damping > 0 && damping < 1) {
		return ErrInvalidDamping
	}
	return nil
}
