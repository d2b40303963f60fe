package core

import (
	"encoding/binary"
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Coordinates is a geographic position in decimal degrees.
type Coordinates struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the planar approximation of the distance to other,
// treating one degree of latitude or longitude as 111 km uniformly.
//
// The formula deliberately omits the cosine-of-latitude correction a true
// geodesic distance would apply. It is accurate enough for the
// sub-continental scales the catalog spans; callers must not assume
// geodesic precision.
func (c Coordinates) DistanceKm(other Coordinates) float64 {
	dlat := c.Lat - other.Lat
	dlon := c.Lon - other.Lon
	return math.Sqrt(dlat*dlat+dlon*dlon) * 111
}

// POI represents a point of interest in the catalog.
type POI struct {
	Id           ID
	Name         string
	Location     Coordinates
	Category     string   // e.g. "church", "monastery", "museum"
	Tags         []string // Free-text descriptive tags used for matching
	Rating       float64  // Quality rating in [0, 5]
	VisitMinutes int      // Expected visit duration
}

// ContentKey returns a string representation of the POI as "Name@Lat,Lon".
// This is used for generating deterministic IDs.
func (p *POI) ContentKey() string {
	return fmt.Sprintf("%s@%g,%g", p.Name, p.Location.Lat, p.Location.Lon)
}

// SearchText returns the lowercase text the ranker matches query tokens
// against: the display name followed by all tags.
func (p *POI) SearchText() string {
	return strings.ToLower(p.Name + " " + strings.Join(p.Tags, " "))
}

// DefaultRadiusKm is the search radius applied when a query does not set one.
const DefaultRadiusKm = 100

// Query is a free-text search request against the catalog.
type Query struct {
	Text     string
	Center   Coordinates
	RadiusKm float64
}

// Tokens returns the lowercase whitespace-split tokens of the query text.
func (q *Query) Tokens() []string {
	return strings.Fields(strings.ToLower(q.Text))
}

// SynonymGroup is a set of interchangeable tokens. Key is the canonical
// token naming the group; Tokens holds every member, including the key.
type SynonymGroup struct {
	Key    string
	Tokens []string
}

// Route is an ordered sequence of distinct POIs to visit.
type Route []POI

// Categories returns the distinct categories present in the route,
// sorted alphabetically.
func (r Route) Categories() []string {
	seen := make(map[string]bool, len(r))
	var cats []string
	for _, p := range r {
		if !seen[p.Category] {
			seen[p.Category] = true
			cats = append(cats, p.Category)
		}
	}
	slices.Sort(cats)
	return cats
}

// RouteStats summarizes an ordered route: how many points it visits, how
// far it travels, and how the time splits between visiting and traveling.
// Hours and kilometers are rounded to one decimal.
type RouteStats struct {
	Points      int
	DistanceKm  float64
	TotalHours  float64
	VisitHours  float64
	TravelHours float64
	Categories  []string
}

// Candidate represents a ranked search result: a POI with its relevance
// score and planar distance from the query center.
type Candidate struct {
	POI        *POI
	Score      float64
	DistanceKm float64
}
