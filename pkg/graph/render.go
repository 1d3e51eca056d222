package graph

import (
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/goccy/go-graphviz/cgraph"
)

// RenderFile draws the graph to an image file, one node per page and one
// edge per link. When a rank distribution is given, node labels carry the
// page's rank.
func RenderFile(g Graph, ranks map[string]float64, output string) error {
	gv := graphviz.New()
	defer gv.Close()
	viz, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("could not create graph: %v", err)
	}
	defer viz.Close()

	nodes := make(map[string]*cgraph.Node, len(g))
	for _, page := range g.Pages() {
		node, err := viz.CreateNode(page)
		if err != nil {
			return fmt.Errorf("could not create node %s: %v", page, err)
		}
		if rank, ok := ranks[page]; ok {
			node.SetLabel(fmt.Sprintf("%s\n%.4f", page, rank))
		}
		nodes[page] = node
	}
	for _, page := range g.Pages() {
		for target := range g[page] {
			if _, err := viz.CreateEdge("", nodes[page], nodes[target]); err != nil {
				return fmt.Errorf("could not create edge %s -> %s: %v", page, target, err)
			}
		}
	}
	return gv.RenderFilename(viz, graphviz.PNG, output)
}
