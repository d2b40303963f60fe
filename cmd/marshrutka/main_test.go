package main

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/kartolab/marshrutka"
	"github.com/kartolab/marshrutka/core"
	"github.com/kartolab/marshrutka/route"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func seedApp() *cli.App {
	return &cli.App{
		Name: "marshrutka",
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name: "src",
					},
				},
			},
		},
	}
}

func TestSeedCommand(t *testing.T) {
	t.Run("missing db flag fails", func(t *testing.T) {
		err := seedApp().Run([]string{"marshrutka", "seed"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("seeds the sample catalog", func(t *testing.T) {
		dbPath := t.TempDir()
		err := seedApp().Run([]string{"marshrutka", "seed", "--db", dbPath})
		require.NoError(t, err)

		// Reopen the database and verify the catalog landed
		planner, err := marshrutka.NewPlanner(dbPath)
		require.NoError(t, err)
		defer planner.Close()

		count, err := planner.POIRepository().CountPOIs(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, count)

		groups, err := planner.SynonymRepository().ListGroups(context.Background())
		require.NoError(t, err)
		assert.Len(t, groups, 4)
	})

	t.Run("missing source file fails", func(t *testing.T) {
		dbPath := t.TempDir()
		err := seedApp().Run([]string{"marshrutka", "seed", "--db", dbPath, "--src", "/does/not/exist.json"})
		require.Error(t, err)
	})
}

func searchApp() *cli.App {
	return &cli.App{
		Name: "marshrutka",
		Commands: []*cli.Command{
			{
				Name:   "search",
				Action: searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lat",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lon",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "radius",
						Value: core.DefaultRadiusKm,
					},
				},
			},
		},
	}
}

func TestSearchCommandFlags(t *testing.T) {
	t.Run("missing query flag fails", func(t *testing.T) {
		err := searchApp().Run([]string{"marshrutka", "search", "--db", t.TempDir(), "--lat", "55.75", "--lon", "37.61"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("missing lat flag fails", func(t *testing.T) {
		err := searchApp().Run([]string{"marshrutka", "search", "--db", t.TempDir(), "--query", "храмы", "--lon", "37.61"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lat")
	})

	t.Run("radius has default value", func(t *testing.T) {
		cmd := searchApp().Commands[0]
		var radiusFlag *cli.Float64Flag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.Float64Flag); ok && f.Name == "radius" {
				radiusFlag = f
				break
			}
		}
		require.NotNil(t, radiusFlag)
		assert.Equal(t, float64(core.DefaultRadiusKm), radiusFlag.Value)
	})
}

func TestRouteCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "marshrutka",
		Commands: []*cli.Command{
			{
				Name:   "route",
				Action: routeCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "query",
						Aliases:  []string{"q"},
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lat",
						Required: true,
					},
					&cli.Float64Flag{
						Name:     "lon",
						Required: true,
					},
					&cli.Float64Flag{
						Name:  "radius",
						Value: core.DefaultRadiusKm,
					},
					&cli.IntFlag{
						Name:  "max-points",
						Value: route.DefaultMaxPoints,
					},
				},
			},
		},
	}

	t.Run("missing query flag fails", func(t *testing.T) {
		err := app.Run([]string{"marshrutka", "route", "--db", t.TempDir(), "--lat", "55.75", "--lon", "37.61"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "query")
	})

	t.Run("max-points has default value", func(t *testing.T) {
		cmd := app.Commands[0]
		var pointsFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "max-points" {
				pointsFlag = f
				break
			}
		}
		require.NotNil(t, pointsFlag)
		assert.Equal(t, route.DefaultMaxPoints, pointsFlag.Value)
	})
}

func TestSetupLogger(t *testing.T) {
	newApp := func() *cli.App {
		return &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "log-level",
					Aliases: []string{"l"},
					Value:   "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}
	}

	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		for _, level := range []string{"DEBUG", "Info", "WaRn", "ERROR"} {
			t.Run(level, func(t *testing.T) {
				err := newApp().Run([]string{"test", "--log-level", level})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		err := newApp().Run([]string{"test", "--log-level", "loud"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})

	t.Run("log-level flag has alias -l", func(t *testing.T) {
		err := newApp().Run([]string{"test", "-l", "debug"})
		require.NoError(t, err)
	})
}

func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}
