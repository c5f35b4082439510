package rank

import (
	"fmt"

	"github.com/lioia/pagerank/pkg/graph"
)

// Transition returns the probability distribution of the page visited after
// page: with probability damping a link of page is followed, otherwise the
// surfer jumps to any page of the corpus. A sink page is treated as linking
// to every page.
func Transition(c *graph.Corpus, page string, damping float64) (Distribution, error) {
	if c == nil {
		return nil, ErrNilCorpus
	}
	if err := validateDamping(damping); err != nil {
		return nil, err
	}
	i, ok := c.Index(page)
	if !ok {
		return nil, fmt.Errorf("transition from %q: %w", page, ErrUnknownPage)
	}
	row := transitionRow(c, i, damping)
	result := make(Distribution, len(row))
	for j, p := range row {
		result[c.Page(j)] = p
	}
	return result, nil
}

// transitionRow is Transition over page positions.
func transitionRow(c *graph.Corpus, i int, damping float64) []float64 {
	n := float64(c.Len())
	row := make([]float64, c.Len())
	for j := range row {
		row[j] = (1 - damping) / n
	}
	targets := linkTargets(c, i)
	share := damping / float64(len(targets))
	for _, j := range targets {
		row[j] += share
	}
	return row
}

// linkTargets returns the pages the surfer may follow from the page at
// position i. A sink links to every page of the corpus, so its rank is
// spread uniformly instead of being lost; both estimators rely on it.
func linkTargets(c *graph.Corpus, i int) []int {
	if !c.IsSink(i) {
		return c.OutIndexes(i)
	}
	all := make([]int, c.Len())
	for j := range all {
		all[j] = j
	}
	return all
}
