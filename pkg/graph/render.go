package graph

import (
	"fmt"
	"io"
	"math"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// Render draws the corpus in the given graphviz format ("dot", "svg", "png"
// or "jpg"). When ranks is not nil every node is labelled with its rank and
// sized proportionally to it.
func Render(c *Corpus, ranks map[string]float64, format string, w io.Writer) error {
	f, err := renderFormat(format)
	if err != nil {
		return err
	}
	g := graphviz.New()
	defer g.Close()
	graph, err := g.Graph()
	if err != nil {
		return fmt.Errorf("could not create graph: %w", err)
	}
	defer graph.Close()

	maxRank := 0.0
	for _, v := range ranks {
		maxRank = math.Max(maxRank, v)
	}
	nodes := make([]*cgraph.Node, c.Len())
	for i, page := range c.pages {
		node, err := graph.CreateNode(page)
		if err != nil {
			return fmt.Errorf("could not create node %s: %w", page, err)
		}
		node.SetShape(cgraph.EllipseShape)
		if rank, ok := ranks[page]; ok {
			node.SetLabel(fmt.Sprintf("%s\n%.4f", page, rank))
			if maxRank > 0 {
				// Scale between 0.75in (default size) and 2in
				size := 0.75 + 1.25*rank/maxRank
				node.SetWidth(size).SetHeight(size / 2)
			}
		}
		if c.IsSink(i) {
			node.SetStyle(cgraph.DashedNodeStyle)
		}
		nodes[i] = node
	}
	for i := range c.pages {
		for _, j := range c.out[i] {
			name := fmt.Sprintf("%s->%s", c.pages[i], c.pages[j])
			if _, err := graph.CreateEdge(name, nodes[i], nodes[j]); err != nil {
				return fmt.Errorf("could not create edge %s: %w", name, err)
			}
		}
	}
	return g.Render(graph, f, w)
}

func renderFormat(format string) (graphviz.Format, error) {
	switch format {
	case "dot", "":
		return graphviz.XDOT, nil
	case "svg":
		return graphviz.SVG, nil
	case "png":
		return graphviz.PNG, nil
	case "jpg":
		return graphviz.JPG, nil
	}
	return "", fmt.Errorf("unsupported render format %q", format)
}
