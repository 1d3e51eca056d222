package rank

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fareschokri/pagerank/pkg/graph"
)

func TestIterateRankSumsToOne(t *testing.T) {
	g := corpusGraph(t)
	dist, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	require.Len(t, dist, len(g))
	assert.InDelta(t, 1.0, dist.Sum(), 1e-6)
}

func TestIterateRankThreeCycleIsUniform(t *testing.T) {
	g := graph.New()
	g.AddLink("a.html", "b.html")
	g.AddLink("b.html", "c.html")
	g.AddLink("c.html", "a.html")

	// The cycle is fully symmetric, so every page must carry exactly 1/3.
	dist, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	for page, p := range dist {
		assert.InDelta(t, 1.0/3.0, p, 1e-9, "page %s", page)
	}
}

func TestIterateRankDanglingRedistribution(t *testing.T) {
	// One page linking to a dangling page. Solving the recurrence by hand:
	//   rank(a) = 0.075 + 0.85*rank(d)/2
	//   rank(d) = 0.075 + 0.85*(rank(a) + rank(d)/2)
	// gives rank(a) = 20/57 and rank(d) = 37/57.
	g := graph.New()
	g.AddLink("a.html", "d.html")
	g.AddPage("d.html")

	dist, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 20.0/57.0, dist["a.html"], 0.01)
	assert.InDelta(t, 37.0/57.0, dist["d.html"], 0.01)
	assert.InDelta(t, 1.0, dist.Sum(), 1e-9)
}

func TestIterateRankAllDangling(t *testing.T) {
	g := graph.New()
	g.AddPage("a.html")
	g.AddPage("b.html")

	// Both pages only receive the uniformly redistributed dangling mass.
	dist, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, dist["a.html"], 1e-9)
	assert.InDelta(t, 0.5, dist["b.html"], 1e-9)
}

func TestIterateRankSinglePage(t *testing.T) {
	g := graph.New()
	g.AddPage("only.html")
	dist, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, dist["only.html"], 1e-12)
}

func TestIterateRankIsIdempotent(t *testing.T) {
	g := corpusGraph(t)
	first, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	second, err := IterateRank(g, 0.85, 0.001)
	require.NoError(t, err)
	// Bit-identical, not just close: there is no hidden mutable state and
	// the pass order is fixed.
	assert.Equal(t, first, second)
}

func TestIterateRankErrors(t *testing.T) {
	g := corpusGraph(t)

	_, err := IterateRank(g, 1.0, 0.001)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = IterateRank(g, -0.1, 0.001)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = IterateRank(graph.New(), 0.85, 0.001)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
