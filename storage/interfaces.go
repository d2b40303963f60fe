package storage

import (
	"context"

	"github.com/kartolab/marshrutka/core"
)

// Repository provides common storage operations shared across all repositories.
// Implementations must be thread-safe and support concurrent access.
type Repository interface {
	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// The context passed to fn may contain transaction state.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the storage backend and releases resources.
	Close() error
}

// POIRepository provides operations for managing the POI catalog.
type POIRepository interface {
	Repository
	// AddPOIs adds one or more POIs to storage.
	// For POIs with ID=0, generates content-based IDs (IDFromContent of ContentKey).
	// Returns the POIs with IDs populated, in input order.
	AddPOIs(ctx context.Context, pois ...*core.POI) ([]*core.POI, error)

	// DeletePOIs removes POIs by their IDs.
	// Also removes associated indices.
	// Returns ErrNotFound if any POI doesn't exist.
	DeletePOIs(ctx context.Context, ids ...core.ID) error

	// GetPOI retrieves a single POI by ID.
	// Returns ErrNotFound if the POI doesn't exist.
	GetPOI(ctx context.Context, id core.ID) (*core.POI, error)

	// GetPOIs retrieves multiple POIs by their IDs.
	// Returns only the POIs that exist (no error for missing POIs).
	GetPOIs(ctx context.Context, ids ...core.ID) ([]*core.POI, error)

	// ListPOIs retrieves every POI in catalog (insertion) order.
	// The ranker depends on this order for deterministic tie-breaking.
	ListPOIs(ctx context.Context) ([]*core.POI, error)

	// ListPOIsByCategory retrieves every POI of the given category in
	// catalog order.
	ListPOIsByCategory(ctx context.Context, category string) ([]*core.POI, error)

	// CountPOIs returns the number of POIs in the catalog.
	CountPOIs(ctx context.Context) (int, error)
}

// SynonymRepository provides operations for managing synonym groups.
type SynonymRepository interface {
	Repository
	// PutGroups stores synonym groups keyed by their canonical key.
	// An existing group with the same key is replaced.
	PutGroups(ctx context.Context, groups ...*core.SynonymGroup) error

	// GetGroup retrieves a synonym group by its canonical key.
	// Returns ErrNotFound if the group doesn't exist.
	GetGroup(ctx context.Context, key string) (*core.SynonymGroup, error)

	// ListGroups retrieves all synonym groups ordered by key.
	ListGroups(ctx context.Context) ([]*core.SynonymGroup, error)

	// DeleteGroups removes synonym groups by their keys.
	// Returns ErrNotFound if any group doesn't exist.
	DeleteGroups(ctx context.Context, keys ...string) error
}
