package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"

	"github.com/kartolab/marshrutka/core"
)

// Searcher ranks catalog POIs against free-text queries using synonym
// expansion, a hard geofilter, and a composite relevance score.
//
// The catalog and dictionary are read-only for the lifetime of the
// Searcher; all operations are pure and safe for concurrent use.
type Searcher struct {
	catalog    []*core.POI
	dictionary *Dictionary
	logger     *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher over the given catalog.
// The catalog order is significant: equal-score candidates keep it.
// An empty catalog is valid and yields empty results.
func NewSearcher(
	catalog []*core.POI,
	dictionary *Dictionary,
	opts ...Option,
) (*Searcher, error) {
	if dictionary == nil {
		return nil, ErrDictionaryRequired
	}

	s := &Searcher{
		catalog:    catalog,
		dictionary: dictionary,
		logger:     slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search ranks the catalog against the query.
// Returns candidates with a positive token score, ordered by descending
// composite score; ties keep catalog order.
func (s *Searcher) Search(ctx context.Context, query core.Query) ([]*core.Candidate, error) {
	return s.SearchWithMonitor(ctx, query, nil)
}

// SearchWithMonitor ranks the catalog against the query with monitoring.
// The monitor receives callbacks at each stage of the search process.
func (s *Searcher) SearchWithMonitor(ctx context.Context, query core.Query, monitor SearchMonitor) ([]*core.Candidate, error) {
	// Use noop monitor if none provided
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	if err := core.ValidateQuery(&query); err != nil {
		s.logger.Error("rejecting malformed query", "query", query.Text, "err", err)
		return nil, err
	}

	monitor.Start(query.Text)

	// 1. Expand query tokens through the synonym dictionary
	tokens := query.Tokens()
	original := make(map[string]bool, len(tokens))
	for _, token := range tokens {
		original[token] = true
	}
	expanded := s.dictionary.Expand(tokens)
	monitor.AfterExpansion(tokens, expanded)

	// 2. Geofilter and score each POI
	queryText := strings.ToLower(query.Text)
	results := make([]*core.Candidate, 0, len(s.catalog))

	for _, poi := range s.catalog {
		dist := query.Center.DistanceKm(poi.Location)
		if dist > query.RadiusKm {
			monitor.OutsideRadius(poi, dist)
			continue
		}

		points := tokenScore(poi.SearchText(), expanded, original)
		points += categoryBonus(poi.Category, queryText)
		if points <= 0 {
			// Distance and rating alone never qualify a candidate
			monitor.CandidateRejected(poi, dist)
			continue
		}

		candidate := &core.Candidate{
			POI:        poi,
			Score:      float64(points) + distanceScore(dist, query.RadiusKm) + ratingScore(poi.Rating),
			DistanceKm: dist,
		}
		monitor.CandidateScored(candidate)
		results = append(results, candidate)
	}

	// 3. Sort by score descending; stable so ties keep catalog order
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	monitor.Finish(results)

	return results, nil
}
