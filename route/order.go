package route

import (
	"slices"

	"github.com/kartolab/marshrutka/core"
)

// orderGreedy orders a route with a greedy nearest-neighbor walk: start at
// the highest-rated point, then repeatedly append the nearest unvisited
// point. Ties keep the earlier candidate, so the result is deterministic
// for a fixed input order. Routes of two or fewer points are returned
// unchanged.
func orderGreedy(points core.Route) core.Route {
	if len(points) <= 2 {
		return points
	}

	remaining := slices.Clone(points)

	start := 0
	for i := 1; i < len(remaining); i++ {
		if remaining[i].Rating > remaining[start].Rating {
			start = i
		}
	}

	ordered := make(core.Route, 0, len(remaining))
	ordered = append(ordered, remaining[start])
	remaining = slices.Delete(remaining, start, start+1)

	for len(remaining) > 0 {
		last := ordered[len(ordered)-1]

		nearest := 0
		best := last.Location.DistanceKm(remaining[0].Location)
		for i := 1; i < len(remaining); i++ {
			if d := last.Location.DistanceKm(remaining[i].Location); d < best {
				best = d
				nearest = i
			}
		}

		ordered = append(ordered, remaining[nearest])
		remaining = slices.Delete(remaining, nearest, nearest+1)
	}

	return ordered
}
