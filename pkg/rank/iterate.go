package rank

import (
	"math"

	"golang.org/x/xerrors"

	"github.com/fareschokri/pagerank/pkg/graph"
)

// IterateRank computes every page's rank by repeatedly applying the PageRank
// recurrence until every page has converged:
//
//	rank(p) = (1-d)/N + d * (sum over q linking to p of rank(q)/L(q)
//	                         + sum over dangling q of rank(q)/N)
//
// All pages start at 1/N. On each pass over the still-active pages a page
// whose rank moved less than epsilon is frozen (see freezeOnConverge) and
// dropped from later passes. Updates within a pass are in place, so later
// pages in the same pass see the refreshed ranks of earlier ones. After the
// last page freezes the distribution is renormalized.
//
// Passes and contribution sums run in sorted page order, so identical inputs
// produce bit-identical output.
func IterateRank(g graph.Graph, damping, epsilon float64) (Distribution, error) {
	if len(g) == 0 {
		return nil, xerrors.Errorf("iteration on empty graph: %w", ErrInvalidArgument)
	}
	if damping < 0 || damping >= 1 {
		return nil, xerrors.Errorf("damping factor %f must be in [0, 1): %w", damping, ErrInvalidArgument)
	}
	if epsilon <= 0 {
		return nil, xerrors.Errorf("epsilon %f must be positive: %w", epsilon, ErrInvalidArgument)
	}

	n := float64(len(g))
	pages := g.Pages()
	ranks := make(Distribution, len(pages))
	for _, page := range pages {
		ranks[page] = 1.0 / n
	}

	active := pages
	for len(active) > 0 {
		var remaining []string
		for _, page := range active {
			sum := 0.0
			for _, q := range pages {
				if g.Dangling(q) {
					// A dangling page spreads its rank over the whole
					// graph, this page included.
					sum += ranks[q] / n
				} else if _, linked := g[q][page]; linked {
					sum += ranks[q] / float64(len(g[q]))
				}
			}
			newRank := (1-damping)/n + damping*sum
			if !freezeOnConverge(ranks[page], newRank, epsilon) {
				remaining = append(remaining, page)
			}
			ranks[page] = newRank
		}
		active = remaining
	}

	ranks.normalize()
	return ranks, nil
}

// freezeOnConverge reports whether a page's rank settles this pass. A frozen
// page keeps its latest rank and is excluded from every later pass, even
// though its neighbors may still be moving. The result can differ slightly
// from the exact fixed point; this is the behavior to match, not a bug to
// fix.
func freezeOnConverge(oldRank, newRank, epsilon float64) bool {
	return math.Abs(newRank-oldRank) < epsilon
}
