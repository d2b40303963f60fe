package search

import (
	"math"
	"strings"
)

// Scoring weights. The composite score of a candidate is
//
//	tokenScore + categoryBonus + distanceScore + ratingScore
//
// where distanceScore decays linearly from DistanceWeight at the query
// center to 0 at the radius edge, and ratingScore scales the [0, RatingScale]
// rating into [0, RatingWeight]. Only the token and bonus points decide
// whether a POI qualifies at all; distance and rating merely order the
// qualified candidates.
const (
	// LiteralTokenPoints is awarded per matched token present in the
	// original query.
	LiteralTokenPoints = 2
	// SynonymTokenPoints is awarded per matched token added by synonym
	// expansion, weighted below a literal match.
	SynonymTokenPoints = 1
	// CategoryBonusPoints is awarded when the query mentions the
	// candidate's category.
	CategoryBonusPoints = 1
	// DistanceWeight scales the linear distance decay.
	DistanceWeight = 2.0
	// RatingWeight scales the normalized rating.
	RatingWeight = 2.0
	// RatingScale is the upper bound of the POI rating range.
	RatingScale = 5.0
)

// categoryHints maps a POI category to the literal lowercase substrings
// of the raw query that trigger the category bonus. The vocabulary is
// fixed; new categories without an entry simply earn no bonus.
var categoryHints = map[string][]string{
	"church":    {"церковь", "храм", "собор"},
	"monastery": {"монастырь"},
}

// tokenScore sums match points over the expanded token set. Each token
// scores at most once: LiteralTokenPoints if it appeared in the original
// query, SynonymTokenPoints otherwise.
func tokenScore(searchText string, expanded []string, original map[string]bool) int {
	score := 0
	for _, token := range expanded {
		if !strings.Contains(searchText, token) {
			continue
		}
		if original[token] {
			score += LiteralTokenPoints
		} else {
			score += SynonymTokenPoints
		}
	}
	return score
}

// categoryBonus returns CategoryBonusPoints when the lowercase query text
// contains one of the hint words for the candidate's category.
func categoryBonus(category, queryText string) int {
	for _, hint := range categoryHints[category] {
		if strings.Contains(queryText, hint) {
			return CategoryBonusPoints
		}
	}
	return 0
}

// distanceScore decays linearly from DistanceWeight at the center to 0 at
// the radius edge. Points on the edge score 0 but are still kept.
func distanceScore(dist, radius float64) float64 {
	return math.Max(0, 1-dist/radius) * DistanceWeight
}

// ratingScore maps a [0, RatingScale] rating into [0, RatingWeight].
func ratingScore(rating float64) float64 {
	return rating / RatingScale * RatingWeight
}
