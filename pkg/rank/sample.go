package rank

import (
	"math/rand"
	"time"

	"golang.org/x/xerrors"

	"github.com/fareschokri/pagerank/pkg/graph"
)

// SampleRank estimates every page's rank by simulating a random walk of
// samples steps. At each step the transition distribution of the currently
// tracked page is accumulated in full, and the next tracked page is drawn
// from the accumulator (see compoundSampleWeights). The result is divided
// by the sample count and renormalized.
//
// The walk is driven entirely by rng, so a fixed seed reproduces the exact
// same estimate. A nil rng gets a time-seeded source.
func SampleRank(g graph.Graph, damping float64, samples int, rng *rand.Rand) (Distribution, error) {
	if len(g) == 0 {
		return nil, xerrors.Errorf("sampling on empty graph: %w", ErrInvalidArgument)
	}
	if samples <= 0 {
		return nil, xerrors.Errorf("sample count %d must be positive: %w", samples, ErrInvalidArgument)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	pages := g.Pages()
	acc := make(Distribution, len(pages))
	for _, page := range pages {
		acc[page] = 0
	}

	var current string
	for i := 0; i < samples; i++ {
		if i == 0 {
			current = pages[rng.Intn(len(pages))]
		} else {
			current = compoundSampleWeights(rng, pages, acc)
		}
		dist, err := Transition(g, current, damping)
		if err != nil {
			return nil, err
		}
		for page, p := range dist {
			acc[page] += p
		}
	}

	for _, page := range pages {
		acc[page] /= float64(samples)
	}
	acc.normalize()
	return acc, nil
}

// compoundSampleWeights draws the next tracked page weighted by the running
// accumulator, not by the latest transition distribution alone. Every step
// therefore compounds all previous steps into the choice. This is the
// behavior to match; a textbook sampler would draw from the fresh per-step
// distribution instead.
func compoundSampleWeights(rng *rand.Rand, pages []string, acc Distribution) string {
	total := 0.0
	for _, page := range pages {
		total += acc[page]
	}
	target := rng.Float64() * total
	cumulative := 0.0
	for _, page := range pages {
		cumulative += acc[page]
		if target < cumulative {
			return page
		}
	}
	// Floating drift can leave target just above the final cumulative sum.
	return pages[len(pages)-1]
}
