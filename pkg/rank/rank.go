package rank

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Distribution maps every page to a non-negative probability.
// Over the full page set it sums to 1.
type Distribution map[string]float64

// Sum returns the total probability mass of the distribution.
func (d Distribution) Sum() float64 {
	total := 0.0
	for _, p := range d {
		total += p
	}
	return total
}

// normalize rescales the distribution so it sums to exactly 1, correcting
// residual floating drift. Summing runs in sorted page order: float addition
// is not associative, and repeat runs must stay bit-identical.
func (d Distribution) normalize() {
	pages := make([]string, 0, len(d))
	for page := range d {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	total := 0.0
	for _, page := range pages {
		total += d[page]
	}
	for _, page := range pages {
		d[page] /= total
	}
}

// Distance returns the L1 distance between two distributions over the same
// page set.
func Distance(a, b Distribution) float64 {
	distance := 0.0
	for page := range a {
		distance += math.Abs(a[page] - b[page])
	}
	return distance
}

// Format renders the distribution as sorted "page: rank" lines with four
// decimal places.
func Format(d Distribution) string {
	pages := make([]string, 0, len(d))
	for page := range d {
		pages = append(pages, page)
	}
	sort.Strings(pages)
	var b strings.Builder
	for _, page := range pages {
		fmt.Fprintf(&b, "  %s: %.4f\n", page, d[page])
	}
	return b.String()
}
