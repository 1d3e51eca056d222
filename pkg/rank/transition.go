package rank

import (
	"golang.org/x/xerrors"

	"github.com/fareschokri/pagerank/pkg/graph"
)

// Transition returns the probability distribution over which page the random
// surfer visits next, given the page it is currently on.
//
// With probability damping the surfer follows one of the current page's
// links; with probability 1-damping it jumps to a random page. A dangling
// page has no links to follow, so its entire mass is spread uniformly over
// the whole graph. Every page ends up with strictly positive probability,
// which keeps the walk ergodic.
func Transition(g graph.Graph, current string, damping float64) (Distribution, error) {
	n := len(g)
	if n == 0 {
		return nil, xerrors.Errorf("transition on empty graph: %w", ErrInvalidArgument)
	}
	links, ok := g[current]
	if !ok {
		return nil, xerrors.Errorf("page %q is not in the graph: %w", current, ErrInvalidArgument)
	}

	dist := make(Distribution, n)
	if len(links) == 0 {
		// Dangling page: uniform over the whole graph, damping does not
		// apply.
		for page := range g {
			dist[page] = 1.0 / float64(n)
		}
		return dist, nil
	}

	base := (1 - damping) / float64(n)
	follow := damping / float64(len(links))
	for page := range g {
		dist[page] = base
		if _, linked := links[page]; linked {
			dist[page] += follow
		}
	}
	return dist, nil
}
