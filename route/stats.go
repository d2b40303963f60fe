package route

import (
	"math"

	"github.com/kartolab/marshrutka/core"
)

// TravelSpeedKmh is the assumed constant travel speed between route points.
const TravelSpeedKmh = 40

// ComputeStats computes the distance and time aggregates of an ordered
// route. Distance is summed over consecutive pairs; travel time assumes
// TravelSpeedKmh; visit time sums each point's expected visit duration.
// Kilometers and hours are rounded to one decimal. Returns nil for an
// empty route.
func ComputeStats(r core.Route) *core.RouteStats {
	if len(r) == 0 {
		return nil
	}

	visitMinutes := 0
	for _, p := range r {
		visitMinutes += p.VisitMinutes
	}

	distanceKm := 0.0
	for i := 0; i < len(r)-1; i++ {
		distanceKm += r[i].Location.DistanceKm(r[i+1].Location)
	}
	travelMinutes := distanceKm / TravelSpeedKmh * 60

	totalMinutes := travelMinutes + float64(visitMinutes)

	return &core.RouteStats{
		Points:      len(r),
		DistanceKm:  round1(distanceKm),
		TotalHours:  round1(totalMinutes / 60),
		VisitHours:  round1(float64(visitMinutes) / 60),
		TravelHours: round1(travelMinutes / 60),
		Categories:  r.Categories(),
	}
}

// round1 rounds to one decimal place.
func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
