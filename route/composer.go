package route

import (
	"github.com/kartolab/marshrutka/core"
)

// DefaultMaxPoints bounds route length when the caller does not set one.
const DefaultMaxPoints = 4

// Compose selects up to maxPoints candidates from the ranked list and orders
// them for efficient travel. The input must already be sorted by descending
// relevance, as returned by search.
//
// Selection takes the top-scoring prefix, then diversifies it: each category
// is capped at maxPoints/2 slots, and once a category hits its cap further
// candidates of that category are admitted only while the route still has
// room. Diversification is skipped for working sets of two or fewer.
//
// An empty candidate list yields an empty Route. maxPoints <= 0 falls back
// to DefaultMaxPoints.
func Compose(ranked []*core.POI, maxPoints int) core.Route {
	if maxPoints <= 0 {
		maxPoints = DefaultMaxPoints
	}
	if len(ranked) == 0 {
		return core.Route{}
	}

	// 1. Bounded selection: top-scoring prefix
	working := ranked
	if len(working) > maxPoints {
		working = working[:maxPoints]
	}

	// 2. Diversification across categories
	if len(working) > 2 {
		working = diversify(working, maxPoints)
	}

	selected := make(core.Route, 0, len(working))
	for _, poi := range working {
		selected = append(selected, *poi)
	}

	// 3. Greedy nearest-neighbor ordering
	if len(selected) > 1 {
		return orderGreedy(selected)
	}
	return selected
}

// diversify walks the working set in ranked order, capping each category at
// maxPoints/2 accepted candidates. A candidate over its category cap is
// still accepted while fewer than maxPoints candidates are selected, so
// remaining slots fill up when other categories are exhausted.
func diversify(working []*core.POI, maxPoints int) []*core.POI {
	perCategory := maxPoints / 2
	counts := make(map[string]int, len(working))
	selected := make([]*core.POI, 0, maxPoints)

	for _, poi := range working {
		if counts[poi.Category] < perCategory {
			selected = append(selected, poi)
			counts[poi.Category]++
		} else if len(selected) < maxPoints {
			selected = append(selected, poi)
		}
	}

	if len(selected) > maxPoints {
		selected = selected[:maxPoints]
	}
	return selected
}
