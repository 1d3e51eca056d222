package graph

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Links is the set of pages a page links to.
type Links map[string]struct{}

// Graph maps every page in the corpus to its outgoing links.
// A page with an empty link set is a dangling page.
type Graph map[string]Links

func New() Graph {
	return make(Graph)
}

// AddPage registers a page with no outgoing links.
// It does nothing if the page is already present.
func (g Graph) AddPage(page string) {
	if g[page] == nil {
		g[page] = make(Links)
	}
}

// AddLink registers both pages and adds a link from one to the other.
func (g Graph) AddLink(from, to string) {
	g.AddPage(from)
	g.AddPage(to)
	g[from][to] = struct{}{}
}

// Pages returns every page in the graph in sorted order.
func (g Graph) Pages() []string {
	pages := make([]string, 0, len(g))
	for page := range g {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	return pages
}

// Dangling reports whether a page has no outgoing links.
func (g Graph) Dangling(page string) bool {
	return len(g[page]) == 0
}

// Normalize removes self-links and links to pages outside the corpus.
// It is applied at the construction boundary so the estimators can rely
// on the graph invariants.
func (g Graph) Normalize() {
	for page, links := range g {
		for target := range links {
			if target == page {
				delete(links, target)
				continue
			}
			if _, ok := g[target]; !ok {
				delete(links, target)
			}
		}
	}
}

// Validate checks the graph invariants: every link target is a page of the
// graph and no page links to itself.
func (g Graph) Validate() error {
	for page, links := range g {
		for target := range links {
			if target == page {
				return fmt.Errorf("page %q links to itself", page)
			}
			if _, ok := g[target]; !ok {
				return fmt.Errorf("page %q links to unknown page %q", page, target)
			}
		}
	}
	return nil
}

// MarshalJSON encodes the graph as {"page": ["target", ...]} with sorted
// target lists.
func (g Graph) MarshalJSON() ([]byte, error) {
	out := make(map[string][]string, len(g))
	for page, links := range g {
		targets := make([]string, 0, len(links))
		for target := range links {
			targets = append(targets, target)
		}
		sort.Strings(targets)
		out[page] = targets
	}
	return json.Marshal(out)
}

func (g *Graph) UnmarshalJSON(data []byte) error {
	var in map[string][]string
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	*g = make(Graph, len(in))
	for page, targets := range in {
		(*g)[page] = make(Links, len(targets))
		for _, target := range targets {
			(*g)[page][target] = struct{}{}
		}
	}
	return nil
}
