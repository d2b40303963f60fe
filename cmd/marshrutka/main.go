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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/kartolab/marshrutka"
	"github.com/kartolab/marshrutka/catalog"
	"github.com/kartolab/marshrutka/core"
	"github.com/kartolab/marshrutka/route"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "marshrutka",
		Usage: "POI search and route planning over a travel catalog",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Import the built-in sample catalog or a JSON catalog file",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "src",
						Usage: "JSON catalog file (defaults to the built-in sample)",
					},
				},
			},
			{
				Name:   "search",
				Usage:  "Rank catalog POIs against a free-text query",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Free-text query",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lat",
						Usage:    "Latitude of the search center",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lon",
						Usage:    "Longitude of the search center",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "radius",
						Usage: "Search radius in kilometers",
						Value: core.DefaultRadiusKm,
					},
				},
			},
			{
				Name:   "route",
				Usage:  "Compose an ordered route from the ranked results",
				Action: routeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Usage:    "Free-text query",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lat",
						Usage:    "Latitude of the search center",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lon",
						Usage:    "Longitude of the search center",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "radius",
						Usage: "Search radius in kilometers",
						Value: core.DefaultRadiusKm,
					},
					&cli.IntFlag{
						Name:  "max-points",
						Usage: "Maximum number of route points",
						Value: route.DefaultMaxPoints,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	planner, err := marshrutka.NewPlanner(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer planner.Close()

	pipeline, err := planner.NewIngestPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingest pipeline: %w", err)
	}
	defer pipeline.Release()

	src := c.String("src")
	if src == "" {
		if err := pipeline.SeedSample(ctx); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "Seeded %d sample POIs and %d synonym groups\n",
			len(catalog.Sample()), len(catalog.SampleSynonyms()))
		return nil
	}

	pois, err := catalog.ReadFile(src)
	if err != nil {
		return err
	}

	count, err := pipeline.ImportPOIs(ctx, pois)
	if err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "Imported %d POIs from %s\n", count, src)
	return nil
}

func searchCommand(c *cli.Context) error {
	ctx := context.Background()

	planner, err := marshrutka.NewPlanner(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer planner.Close()

	searcher, err := planner.NewSearcher(ctx)
	if err != nil {
		return fmt.Errorf("failed to create searcher: %w", err)
	}

	results, err := searcher.Search(ctx, core.Query{
		Text:     c.String("query"),
		Center:   core.Coordinates{Lat: c.Float64("lat"), Lon: c.Float64("lon")},
		RadiusKm: c.Float64("radius"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Found %d matches\n", len(results))
	for i, hit := range results {
		fmt.Printf("%d: %s (%s) rating %.1f, %.1f km away [%.2f]\n",
			i+1, hit.POI.Name, hit.POI.Category, hit.POI.Rating, hit.DistanceKm, hit.Score)
	}
	return nil
}

func routeCommand(c *cli.Context) error {
	ctx := context.Background()

	planner, err := marshrutka.NewPlanner(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer planner.Close()

	r, stats, err := planner.BuildRoute(ctx, core.Query{
		Text:     c.String("query"),
		Center:   core.Coordinates{Lat: c.Float64("lat"), Lon: c.Float64("lon")},
		RadiusKm: c.Float64("radius"),
	}, c.Int("max-points"))
	if err != nil {
		return err
	}

	if len(r) == 0 {
		fmt.Println("Nothing found for this query")
		return nil
	}

	fmt.Printf("Route with %d stops:\n", len(r))
	for i, poi := range r {
		fmt.Printf("  %d. %s (%s), visit %d min\n", i+1, poi.Name, poi.Category, poi.VisitMinutes)
	}

	fmt.Printf("Distance: %.1f km\n", stats.DistanceKm)
	fmt.Printf("Total: %.1f h (visit %.1f h, travel %.1f h)\n",
		stats.TotalHours, stats.VisitHours, stats.TravelHours)
	fmt.Printf("Categories: %s\n", strings.Join(stats.Categories, ", "))
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
