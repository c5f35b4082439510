package graph

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrEmptyCorpus is returned when a corpus would contain no pages.
	ErrEmptyCorpus = errors.New("graph: corpus is empty")

	// ErrUnknownPage is returned when a link or a lookup names a page
	// that is not part of the corpus.
	ErrUnknownPage = errors.New("graph: page is not in the corpus")

	// ErrSelfLink is returned when a page links to itself.
	ErrSelfLink = errors.New("graph: page links to itself")
)

// Corpus is the read-only link graph of one run: every page with the set of
// pages it links to. It is never modified after NewCorpus returns, so it can
// be shared between goroutines without locking.
type Corpus struct {
	pages []string            // sorted page identifiers
	index map[string]int      // page -> position in pages
	out   [][]int             // out-set of every page (sorted, no duplicates)
	names map[string][]string // out-sets by name
}

// NewCorpus validates links and builds a Corpus from it.
// Duplicate links collapse into one; a link to a page that is not a key of
// links, or a page linking to itself, is rejected.
func NewCorpus(links map[string][]string) (*Corpus, error) {
	if len(links) == 0 {
		return nil, ErrEmptyCorpus
	}
	c := &Corpus{
		pages: make([]string, 0, len(links)),
		index: make(map[string]int, len(links)),
		names: make(map[string][]string, len(links)),
	}
	for page := range links {
		if page == "" {
			return nil, fmt.Errorf("empty page identifier: %w", ErrUnknownPage)
		}
		c.pages = append(c.pages, page)
	}
	sort.Strings(c.pages)
	for i, page := range c.pages {
		c.index[page] = i
	}

	c.out = make([][]int, len(c.pages))
	for i, page := range c.pages {
		seen := make(map[int]bool)
		for _, target := range links[page] {
			j, ok := c.index[target]
			if !ok {
				return nil, fmt.Errorf("%s links to %q: %w", page, target, ErrUnknownPage)
			}
			if j == i {
				return nil, fmt.Errorf("%s: %w", page, ErrSelfLink)
			}
			if seen[j] {
				continue
			}
			seen[j] = true
			c.out[i] = append(c.out[i], j)
		}
		sort.Ints(c.out[i])
	}
	for i, page := range c.pages {
		targets := make([]string, len(c.out[i]))
		for k, j := range c.out[i] {
			targets[k] = c.pages[j]
		}
		c.names[page] = targets
	}
	return c, nil
}

// Len returns the number of pages in the corpus.
func (c *Corpus) Len() int { return len(c.pages) }

// Pages returns the page identifiers in ascending order.
func (c *Corpus) Pages() []string {
	pages := make([]string, len(c.pages))
	copy(pages, c.pages)
	return pages
}

// Page returns the identifier at position i of Pages.
func (c *Corpus) Page(i int) string { return c.pages[i] }

// Index returns the position of page in Pages.
func (c *Corpus) Index(page string) (int, bool) {
	i, ok := c.index[page]
	return i, ok
}

// OutLinks returns the sorted out-set of page (nil for an unknown page or a sink).
func (c *Corpus) OutLinks(page string) []string {
	targets := c.names[page]
	if len(targets) == 0 {
		return nil
	}
	out := make([]string, len(targets))
	copy(out, targets)
	return out
}

// IsSink reports whether the page at position i has no outbound links
// within the corpus.
func (c *Corpus) IsSink(i int) bool { return len(c.out[i]) == 0 }

// OutIndexes returns the out-set of the page at position i as positions.
// The returned slice must not be modified.
func (c *Corpus) OutIndexes(i int) []int { return c.out[i] }

// Links returns a copy of the corpus as a page -> out-set mapping.
func (c *Corpus) Links() map[string][]string {
	links := make(map[string][]string, len(c.pages))
	for _, page := range c.pages {
		links[page] = c.OutLinks(page)
		if links[page] == nil {
			links[page] = []string{}
		}
	}
	return links
}
