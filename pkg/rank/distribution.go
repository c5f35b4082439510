// Package rank estimates the stationary distribution of a damped random
// surfer over a graph.Corpus, either by simulating the walk (Sample) or by
// iterating the PageRank equation to a fixed point (Iterate).
package rank

import (
	"fmt"
	"io"
	"math"
	"sort"
)

// Epsilon is the tolerance used when checking that a distribution sums to one.
const Epsilon = 1e-9

// Distribution maps every page of a corpus to a non-negative weight.
type Distribution map[string]float64

// Sum returns the total weight of d.
func (d Distribution) Sum() float64 {
	sum := 0.0
	for _, page := range d.Pages() {
		sum += d[page]
	}
	return sum
}

// Normalize returns a copy of d scaled to sum to one.
// A distribution with no weight is returned unchanged.
func (d Distribution) Normalize() Distribution {
	sum := d.Sum()
	normalized := make(Distribution, len(d))
	for page, v := range d {
		if sum > 0 {
			v /= sum
		}
		normalized[page] = v
	}
	return normalized
}

// Pages returns the pages of d in ascending order.
func (d Distribution) Pages() []string {
	pages := make([]string, 0, len(d))
	for page := range d {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// MaxAbsDiff returns the largest absolute weight difference between d and
// other; pages missing from one side count as zero.
func (d Distribution) MaxAbsDiff(other Distribution) float64 {
	diff := 0.0
	for page, v := range d {
		diff = math.Max(diff, math.Abs(v-other[page]))
	}
	for page, v := range other {
		if _, ok := d[page]; !ok {
			diff = math.Max(diff, math.Abs(v))
		}
	}
	return diff
}

// Format writes one "  page: rank" line per page, sorted by page, with four
// decimal places.
func (d Distribution) Format(w io.Writer) error {
	for _, page := range d.Pages() {
		if _, err := fmt.Fprintf(w, "  %s: %.4f\n", page, d[page]); err != nil {
			return err
		}
	}
	return nil
}
