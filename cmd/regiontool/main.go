package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/udisondev/bitregion/internal/config"
	"github.com/udisondev/bitregion/internal/db"
	"github.com/udisondev/bitregion/internal/pipeline"
)

const ConfigPath = "config/regiontool.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfgPath := ConfigPath
	if p := os.Getenv("BITREGION_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadRegionTool(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Info("regiontool starting", "config", cfgPath, "jobs", len(cfg.Jobs), "workers", cfg.Workers)

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	results, err := runJobs(ctx, cfg)
	if err != nil {
		return err
	}

	if cfg.Print {
		on, off, _ := cfg.Runes()
		if err := printResults(os.Stdout, results, on, off); err != nil {
			return fmt.Errorf("printing results: %w", err)
		}
	}

	if cfg.Store {
		if err := storeResults(ctx, cfg.Database, results); err != nil {
			return err
		}
	}
	return nil
}

// runJobs runs every job with at most cfg.Workers in flight.
// Results keep the order of cfg.Jobs.
func runJobs(ctx context.Context, cfg config.RegionTool) ([]pipeline.Result, error) {
	results := make([]pipeline.Result, len(cfg.Jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, job := range cfg.Jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			rng := rand.New(rand.NewPCG(cfg.Seed, uint64(i)))
			res, err := pipeline.Run(job, rng)
			if err != nil {
				return err
			}
			slog.Info("job finished", "job", job.Name, "cells", res.Region.Count(), "counts", res.Counts)
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("running jobs: %w", err)
	}
	return results, nil
}

func printResults(w io.Writer, results []pipeline.Result, on, off rune) error {
	for _, res := range results {
		if _, err := fmt.Fprintf(w, "# %s %dx%d cells=%d\n%s\n\n",
			res.Name, res.Region.Width(), res.Region.Height(), res.Region.Count(),
			strings.Join(res.Region.Lines(on, off), "\n")); err != nil {
			return err
		}
	}
	return nil
}

func storeResults(ctx context.Context, dbCfg config.DatabaseConfig, results []pipeline.Result) error {
	version, err := db.RunMigrations(ctx, dbCfg.DSN())
	if err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	slog.Info("database migrations applied", "version", version)

	database, err := db.New(ctx, dbCfg.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	repo := database.Regions()
	for _, res := range results {
		if err := repo.Save(ctx, res.Name, res.Region); err != nil {
			return err
		}
	}
	slog.Info("results stored", "regions", len(results))
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
