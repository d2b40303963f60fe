package ingest

import "errors"

var (
	// ErrPOIRepositoryRequired is returned when a POI repository is not provided.
	ErrPOIRepositoryRequired = errors.New("poi repository required")

	// ErrSynonymRepositoryRequired is returned when a synonym repository is not provided.
	ErrSynonymRepositoryRequired = errors.New("synonym repository required")
)
