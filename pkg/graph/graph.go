package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lioia/pagerank/pkg/utils"
)

// Write stores ranks in output, one "page: rank" line per page sorted by page.
func Write(output string, ranks map[string]float64) error {
	file, err := os.Create(output)
	if err != nil {
		return err
	}
	defer file.Close()
	pages := make([]string, 0, len(ranks))
	for page := range ranks {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	var contents strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&contents, "%s: %.4f\n", page, ranks[page])
	}
	_, err = file.WriteString(contents.String())
	return err
}

// LoadResource loads a corpus from resource:
//   - http(s) URL: JSON links document or edge list, depending on the extension
//   - local directory: crawled for HTML pages
//   - local .json file: links document
//   - any other local file: edge list
func LoadResource(resource string) (*Corpus, error) {
	var bytes []byte
	ext := filepath.Ext(resource)
	// Check if it's a network resource or a local one
	if strings.HasPrefix(resource, "http://") || strings.HasPrefix(resource, "https://") {
		u, err := url.Parse(resource)
		if err != nil {
			return nil, fmt.Errorf("invalid resource %s: %w", resource, err)
		}
		ext = path.Ext(u.Path)
		resp, err := http.Get(resource)
		if err != nil {
			utils.WarnLog("graph", "Could not load network file at %s: %v", resource, err)
			return nil, err
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("could not load %s: %s", resource, resp.Status)
		}
		bytes, err = io.ReadAll(resp.Body)
		if err != nil {
			utils.WarnLog("graph", "Could not load body from request: %v", err)
			return nil, err
		}
	} else {
		info, err := os.Stat(resource)
		if err != nil {
			return nil, fmt.Errorf("could not open %s: %w", resource, err)
		}
		if info.IsDir() {
			return Crawl(resource)
		}
		bytes, err = os.ReadFile(resource)
		if err != nil {
			utils.WarnLog("graph", "Could not read graph at %s: %v", resource, err)
			return nil, err
		}
	}
	if strings.EqualFold(ext, ".json") {
		return LoadJSON(bytes)
	}
	return LoadEdgeList(bytes)
}

// LoadJSON decodes a {"page": ["link", ...]} document into a corpus.
func LoadJSON(contents []byte) (*Corpus, error) {
	var links map[string][]string
	if err := json.Unmarshal(contents, &links); err != nil {
		return nil, fmt.Errorf("could not parse links document: %w", err)
	}
	return NewCorpus(links)
}

// LoadEdgeList parses one "from to" (or "from,to") link per line.
// A line holding a single page declares it without links. Empty lines and
// lines starting with # or // are skipped; self links are dropped.
func LoadEdgeList(contents []byte) (*Corpus, error) {
	links := make(map[string][]string)
	// Split file contents in lines (based on newline delimiter)
	lines := strings.Split(strings.ReplaceAll(string(contents), "\r\n", "\n"), "\n")
	for n, line := range lines {
		from, to, skip, err := convertLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n+1, err)
		}
		// Comment line -> no new page to add
		if skip {
			continue
		}
		if _, ok := links[from]; !ok {
			links[from] = nil
		}
		if to == "" {
			continue
		}
		if _, ok := links[to]; !ok {
			links[to] = nil
		}
		if from != to {
			links[from] = append(links[from], to)
		}
	}
	return NewCorpus(links)
}

func convertLine(line string) (string, string, bool, error) {
	line = strings.TrimSpace(line)
	// Skip comment lines
	if strings.HasPrefix(line, "#") || strings.HasPrefix(line, "//") || line == "" {
		return "", "", true, nil
	}
	// Convert line to csv format
	tokens := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	switch len(tokens) {
	case 1:
		return tokens[0], "", false, nil
	case 2:
		return tokens[0], tokens[1], false, nil
	}
	return "", "", false, fmt.Errorf("could not convert %q to a link", line)
}
