// Copyright 2026 Kartolab
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package marshrutka

import (
	"context"
	"log/slog"

	"github.com/kartolab/marshrutka/core"
	"github.com/kartolab/marshrutka/ingest"
	"github.com/kartolab/marshrutka/route"
	"github.com/kartolab/marshrutka/search"
	"github.com/kartolab/marshrutka/storage"
	"github.com/kartolab/marshrutka/storage/badger"
)

// Planner is the top-level entry point: it owns the catalog storage and
// builds searchers and routes over it.
type Planner struct {
	backend     *badger.Backend
	poiRepo     storage.POIRepository
	synonymRepo storage.SynonymRepository
	logger      *slog.Logger
}

// PlannerOption configures a Planner.
type PlannerOption func(*plannerOptions)

type plannerOptions struct {
	inMemory bool
}

// WithInMemory opens the planner on a transient in-memory database.
// The file path is ignored.
func WithInMemory() PlannerOption {
	return func(o *plannerOptions) {
		o.inMemory = true
	}
}

func NewPlanner(filePath string, opts ...PlannerOption) (*Planner, error) {
	// Apply options
	options := &plannerOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Open backend
	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	// Create POI repository
	poiRepo, err := badger.NewPOIRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	// Create synonym repository
	synonymRepo, err := badger.NewSynonymRepository(backend)
	if err != nil {
		poiRepo.Close()
		backend.Close()
		return nil, err
	}

	return &Planner{
		backend:     backend,
		poiRepo:     poiRepo,
		synonymRepo: synonymRepo,
		logger:      slog.Default(),
	}, nil
}

func (p *Planner) Close() error {
	// Close repositories
	if err := p.synonymRepo.Close(); err != nil {
		p.logger.Error("error closing synonym repository", "err", err)
		return err
	}
	if err := p.poiRepo.Close(); err != nil {
		p.logger.Error("error closing poi repository", "err", err)
		return err
	}

	// Close backend
	if err := p.backend.Close(); err != nil {
		p.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (p *Planner) POIRepository() storage.POIRepository {
	return p.poiRepo
}

func (p *Planner) SynonymRepository() storage.SynonymRepository {
	return p.synonymRepo
}

func (p *Planner) NewIngestPipeline(opts ...ingest.Option) (*ingest.Pipeline, error) {
	return ingest.NewPipeline(p.poiRepo, p.synonymRepo, opts...)
}

// NewSearcher loads the catalog and the synonym dictionary and returns a
// searcher over that snapshot. Catalog changes made afterwards require a
// new searcher.
func (p *Planner) NewSearcher(ctx context.Context, opts ...search.Option) (*search.Searcher, error) {
	pois, err := p.poiRepo.ListPOIs(ctx)
	if err != nil {
		return nil, err
	}

	groups, err := p.synonymRepo.ListGroups(ctx)
	if err != nil {
		return nil, err
	}

	return search.NewSearcher(pois, search.NewDictionary(groups), opts...)
}

// BuildRoute searches the catalog and composes a route from the ranked
// results. A zero radius falls back to core.DefaultRadiusKm; maxPoints <= 0
// falls back to route.DefaultMaxPoints. Stats are nil when nothing matched.
func (p *Planner) BuildRoute(ctx context.Context, query core.Query, maxPoints int) (core.Route, *core.RouteStats, error) {
	if query.RadiusKm == 0 {
		query.RadiusKm = core.DefaultRadiusKm
	}

	searcher, err := p.NewSearcher(ctx)
	if err != nil {
		return nil, nil, err
	}

	candidates, err := searcher.Search(ctx, query)
	if err != nil {
		return nil, nil, err
	}

	ranked := make([]*core.POI, len(candidates))
	for i, candidate := range candidates {
		ranked[i] = candidate.POI
	}

	r := route.Compose(ranked, maxPoints)
	return r, route.ComputeStats(r), nil
}
