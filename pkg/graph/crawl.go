package graph

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Crawl parses the HTML pages of dir and returns the corpus they form.
// Links pointing to the page itself or outside of dir are ignored.
func Crawl(dir string) (*Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("could not read corpus directory %s: %w", dir, err)
	}
	pages := make(map[string][]string)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		contents, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("could not read page %s: %w", entry.Name(), err)
		}
		links, err := ExtractLinks(entry.Name(), contents)
		if err != nil {
			return nil, fmt.Errorf("could not parse page %s: %w", entry.Name(), err)
		}
		pages[entry.Name()] = links
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("no .html pages in %s: %w", dir, ErrEmptyCorpus)
	}

	// Only keep links to other pages in the corpus
	for page, links := range pages {
		kept := links[:0]
		for _, link := range links {
			if _, ok := pages[link]; ok {
				kept = append(kept, link)
			}
		}
		pages[page] = kept
	}
	return NewCorpus(pages)
}

// ExtractLinks returns the distinct href targets of the anchors in contents,
// in document order and without the self link to page.
func ExtractLinks(page string, contents []byte) ([]string, error) {
	root, err := html.Parse(bytes.NewReader(contents))
	if err != nil {
		return nil, err
	}
	var links []string
	seen := map[string]bool{page: true}
	for _, anchor := range elementsByTag(root, atom.A) {
		link, ok := attr(anchor, "href")
		if !ok || seen[link] {
			continue
		}
		seen[link] = true
		links = append(links, link)
	}
	return links, nil
}

func elementsByTag(root *html.Node, tag atom.Atom) []*html.Node {
	var elements []*html.Node
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.DataAtom == tag {
			elements = append(elements, n)
		}
		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(root)
	return elements
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}
