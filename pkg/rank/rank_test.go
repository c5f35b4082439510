package rank_test

import (
	"fmt"
	"testing"

	"github.com/lioia/pagerank/pkg/graph"
	"github.com/stretchr/testify/require"
)

func newCorpus(t *testing.T, links map[string][]string) *graph.Corpus {
	t.Helper()
	c, err := graph.NewCorpus(links)
	require.NoError(t, err)
	return c
}

// Three pages where 2.html is linked to by both others.
func threePages(t *testing.T) *graph.Corpus {
	return newCorpus(t, map[string][]string{
		"1.html": {"2.html"},
		"2.html": {"1.html", "3.html"},
		"3.html": {"2.html"},
	})
}

// A is a sink, B links to A.
func sinkPair(t *testing.T) *graph.Corpus {
	return newCorpus(t, map[string][]string{
		"A": {},
		"B": {"A"},
	})
}

// ring of n pages where every page also links to page 0, plus a few sinks.
func ringCorpus(t *testing.T, n int) *graph.Corpus {
	links := make(map[string][]string, n)
	for i := 0; i < n; i++ {
		page := fmt.Sprintf("p%03d", i)
		switch {
		case i%10 == 9:
			links[page] = nil
		case i == 0:
			links[page] = []string{"p001"}
		default:
			links[page] = []string{fmt.Sprintf("p%03d", (i+1)%n), "p000"}
		}
	}
	return newCorpus(t, links)
}
