package ingest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"sync"

	"github.com/kartolab/marshrutka/catalog"
	"github.com/kartolab/marshrutka/core"
	"github.com/kartolab/marshrutka/storage"
	"github.com/panjf2000/ants/v2"
)

const (
	// DefaultVisitMinutes is assigned to imported POIs that do not specify
	// a visit duration.
	DefaultVisitMinutes = 60

	// DefaultBatchSize is the number of POIs written per storage batch.
	DefaultBatchSize = 100
)

// Pipeline imports POI catalogs and synonym groups into storage.
// POI batches are written concurrently on a worker pool; an import call
// blocks until every batch has been written.
type Pipeline struct {
	poiRepository     storage.POIRepository
	synonymRepository storage.SynonymRepository
	pool              *ants.Pool
	batchSize         int
	logger            *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		// Release old pool
		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}

		p.pool = pool
		return nil
	}
}

// WithBatchSize sets the number of POIs written per storage batch.
// Default is DefaultBatchSize.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new import pipeline.
func NewPipeline(
	poiRepository storage.POIRepository,
	synonymRepository storage.SynonymRepository,
	opts ...Option,
) (*Pipeline, error) {
	if poiRepository == nil {
		return nil, ErrPOIRepositoryRequired
	}
	if synonymRepository == nil {
		return nil, ErrSynonymRepositoryRequired
	}

	// Default pool size
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		poiRepository:     poiRepository,
		synonymRepository: synonymRepository,
		pool:              pool,
		batchSize:         DefaultBatchSize,
		logger:            slog.Default(),
	}

	// Apply options (may override defaults)
	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// ImportPOIs validates and stores the given POIs. POIs without a visit
// duration get DefaultVisitMinutes; POIs without an ID get a content-based
// one. A validation failure aborts the import before anything is written.
//
// Input order is kept within a batch; when an import spans several batches,
// the batches may land in storage in any order.
//
// Returns the number of POIs imported.
func (p *Pipeline) ImportPOIs(ctx context.Context, pois []*core.POI) (int, error) {
	for i, poi := range pois {
		if err := core.ValidatePOI(poi); err != nil {
			return 0, fmt.Errorf("validation failed for poi %d: %w", i, err)
		}
	}

	if len(pois) == 0 {
		return 0, nil
	}

	for _, poi := range pois {
		if poi.VisitMinutes == 0 {
			poi.VisitMinutes = DefaultVisitMinutes
		}
		if poi.Id == 0 {
			poi.Id = core.IDFromContent(poi.ContentKey())
		}
	}

	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)

	for start := 0; start < len(pois); start += p.batchSize {
		select {
		case <-ctx.Done():
			wg.Wait()
			return 0, ctx.Err()
		default:
		}

		end := start + p.batchSize
		if end > len(pois) {
			end = len(pois)
		}
		batch := pois[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()
			if _, err := p.poiRepository.AddPOIs(ctx, batch...); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			errs = append(errs, submitErr)
			mu.Unlock()
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return 0, fmt.Errorf("failed to import pois: %w", err)
	}

	p.logger.Info("imported pois", "count", len(pois))
	return len(pois), nil
}

// ImportGroups validates and stores the given synonym groups, replacing any
// existing group with the same key. Returns the number of groups imported.
func (p *Pipeline) ImportGroups(ctx context.Context, groups []*core.SynonymGroup) (int, error) {
	for i, group := range groups {
		if err := core.ValidateSynonymGroup(group); err != nil {
			return 0, fmt.Errorf("validation failed for group %d: %w", i, err)
		}
	}

	if len(groups) == 0 {
		return 0, nil
	}

	if err := p.synonymRepository.PutGroups(ctx, groups...); err != nil {
		return 0, fmt.Errorf("failed to import synonym groups: %w", err)
	}

	p.logger.Info("imported synonym groups", "count", len(groups))
	return len(groups), nil
}

// SeedSample imports the built-in sample catalog and its synonym groups.
func (p *Pipeline) SeedSample(ctx context.Context) error {
	if _, err := p.ImportPOIs(ctx, catalog.Sample()); err != nil {
		return err
	}
	if _, err := p.ImportGroups(ctx, catalog.SampleSynonyms()); err != nil {
		return err
	}
	return nil
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
