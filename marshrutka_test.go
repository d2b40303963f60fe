package marshrutka

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/kartolab/marshrutka/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanner(t *testing.T) {
	t.Run("create new planner", func(t *testing.T) {
		tmpDir := filepath.Join(t.TempDir(), "test_db")
		planner, err := NewPlanner(tmpDir)
		require.NoError(t, err)
		require.NotNil(t, planner)
		defer planner.Close()

		// Verify components are initialized
		assert.NotNil(t, planner.POIRepository())
		assert.NotNil(t, planner.SynonymRepository())
		assert.NotNil(t, planner.backend)
		assert.NotNil(t, planner.logger)
	})

	t.Run("in-memory planner", func(t *testing.T) {
		planner, err := NewPlanner("", WithInMemory())
		require.NoError(t, err)
		require.NotNil(t, planner)
		defer planner.Close()
	})

	t.Run("error with invalid path", func(t *testing.T) {
		// Try to create a planner at a file path instead of directory
		tmpFile := filepath.Join(t.TempDir(), "not_a_dir")
		err := os.WriteFile(tmpFile, []byte("test"), 0644)
		require.NoError(t, err)

		planner, err := NewPlanner(tmpFile)
		assert.Error(t, err)
		assert.Nil(t, planner)
	})
}

func TestPlanner_Close(t *testing.T) {
	tmpDir := t.TempDir()
	planner, err := NewPlanner(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, planner)

	// Close the planner
	err = planner.Close()
	assert.NoError(t, err)
}

func TestPlanner_FactoryMethods(t *testing.T) {
	tmpDir := t.TempDir()
	planner, err := NewPlanner(tmpDir)
	require.NoError(t, err)
	require.NotNil(t, planner)
	defer planner.Close()

	t.Run("can create ingest pipeline", func(t *testing.T) {
		pipeline, err := planner.NewIngestPipeline()
		require.NoError(t, err)
		require.NotNil(t, pipeline)
		pipeline.Release()
	})

	t.Run("can create searcher over empty catalog", func(t *testing.T) {
		searcher, err := planner.NewSearcher(context.Background())
		require.NoError(t, err)
		require.NotNil(t, searcher)
	})
}

func seededPlanner(t *testing.T) *Planner {
	t.Helper()

	planner, err := NewPlanner("", WithInMemory())
	require.NoError(t, err)
	t.Cleanup(func() { planner.Close() })

	pipeline, err := planner.NewIngestPipeline()
	require.NoError(t, err)
	defer pipeline.Release()

	require.NoError(t, pipeline.SeedSample(context.Background()))
	return planner
}

func TestPlanner_SearchSeededCatalog(t *testing.T) {
	planner := seededPlanner(t)
	ctx := context.Background()

	searcher, err := planner.NewSearcher(ctx)
	require.NoError(t, err)

	results, err := searcher.Search(ctx, core.Query{
		Text:     "монастыри в Москве",
		Center:   core.Coordinates{Lat: 55.7522, Lon: 37.6156},
		RadiusKm: 50,
	})
	require.NoError(t, err)

	ids := make([]core.ID, 0, len(results))
	for _, candidate := range results {
		ids = append(ids, candidate.POI.Id)
	}
	assert.Equal(t, []core.ID{3, 1, 6, 2, 7, 4}, ids)
}

func TestPlanner_BuildRoute(t *testing.T) {
	planner := seededPlanner(t)
	ctx := context.Background()

	t.Run("full chain", func(t *testing.T) {
		r, stats, err := planner.BuildRoute(ctx, core.Query{
			Text:     "монастыри в Москве",
			Center:   core.Coordinates{Lat: 55.7522, Lon: 37.6156},
			RadiusKm: 50,
		}, 4)
		require.NoError(t, err)
		require.Len(t, r, 4)

		ids := make([]core.ID, len(r))
		for i, poi := range r {
			ids[i] = poi.Id
		}
		assert.Equal(t, []core.ID{3, 1, 6, 2}, ids)

		require.NotNil(t, stats)
		assert.Equal(t, 4, stats.Points)
		assert.Equal(t, 8.7, stats.DistanceKm)
		assert.Equal(t, 6.0, stats.TotalHours)
		assert.Equal(t, 5.8, stats.VisitHours)
		assert.Equal(t, 0.2, stats.TravelHours)
		assert.Equal(t, []string{"church", "monastery"}, stats.Categories)
	})

	t.Run("zero radius falls back to default", func(t *testing.T) {
		r, stats, err := planner.BuildRoute(ctx, core.Query{
			Text:   "храмы",
			Center: core.Coordinates{Lat: 55.7522, Lon: 37.6156},
		}, 0)
		require.NoError(t, err)

		ids := make([]core.ID, len(r))
		for i, poi := range r {
			ids[i] = poi.Id
		}
		assert.Equal(t, []core.ID{3, 1, 6, 4}, ids)

		require.NotNil(t, stats)
		assert.Equal(t, 4, stats.Points)
		assert.Equal(t, []string{"church"}, stats.Categories)
	})

	t.Run("no matches yields empty route and nil stats", func(t *testing.T) {
		r, stats, err := planner.BuildRoute(ctx, core.Query{
			Text:     "планетарий",
			Center:   core.Coordinates{Lat: 55.7522, Lon: 37.6156},
			RadiusKm: 50,
		}, 4)
		require.NoError(t, err)
		assert.Empty(t, r)
		assert.Nil(t, stats)
	})

	t.Run("max points bounds the route", func(t *testing.T) {
		r, stats, err := planner.BuildRoute(ctx, core.Query{
			Text:     "монастыри в Москве",
			Center:   core.Coordinates{Lat: 55.7522, Lon: 37.6156},
			RadiusKm: 50,
		}, 2)
		require.NoError(t, err)
		require.Len(t, r, 2)
		assert.Equal(t, 2, stats.Points)
	})

	t.Run("validation error propagates", func(t *testing.T) {
		_, _, err := planner.BuildRoute(ctx, core.Query{
			Text:     "храм",
			Center:   core.Coordinates{Lat: 55.7522, Lon: 37.6156},
			RadiusKm: -1,
		}, 4)
		assert.ErrorIs(t, err, core.ErrInvalidRadius)
	})
}
