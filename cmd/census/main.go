package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"runtime"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"torus-life/internal/config"
	"torus-life/internal/sims/life"
	"torus-life/internal/telemetry"
)

type seedResult struct {
	seed    int64
	records []telemetry.Record
	settled int // generation from which the population stopped changing, 0 if never
}

func main() {
	configPath := flag.String("config", "", "path to YAML config (empty = built-in defaults)")
	seeds := flag.Int("seeds", 32, "number of independent boards")
	firstSeed := flag.Int64("first-seed", 1, "seed of the first board")
	generations := flag.Int("generations", 1000, "generations to simulate per board")
	workers := flag.Int("workers", runtime.NumCPU(), "boards simulated concurrently")
	outputDir := flag.String("output-dir", "", "directory for census.csv (empty = config)")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	if *outputDir != "" {
		cfg.Telemetry.OutputDir = *outputDir
	}

	slog.Info("sweeping", "seeds", *seeds, "generations", *generations, "workers", *workers)
	start := time.Now()
	results, err := sweep(context.Background(), cfg, *firstSeed, *seeds, *generations, *workers)
	if err != nil {
		log.Fatal(err)
	}

	rec, err := telemetry.NewRecorder(cfg.Telemetry.OutputDir)
	if err != nil {
		log.Fatalf("opening census output: %v", err)
	}
	for _, res := range results {
		if err := rec.Write(res.records...); err != nil {
			rec.Close()
			log.Fatal(err)
		}
	}
	if err := rec.Close(); err != nil {
		log.Fatal(err)
	}

	final, extinct, settled := summarize(results)
	slog.Info("census complete",
		"elapsed", time.Since(start).Round(time.Millisecond),
		"final_density", telemetry.Summarize(final),
		"extinct", extinct,
		"settled", settled,
	)
}

// sweep runs one board per seed. Each board is stepped on a single goroutine;
// only independent boards run in parallel.
func sweep(ctx context.Context, cfg *config.Config, firstSeed int64, seeds, generations, workers int) ([]seedResult, error) {
	results := make([]seedResult, seeds)
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < seeds; i++ {
		seed := firstSeed + int64(i)
		g.Go(func() error {
			res, err := runSeed(ctx, cfg.Life(seed), generations)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func runSeed(ctx context.Context, cfg life.Config, generations int) (seedResult, error) {
	state := life.New(cfg)
	cells := state.Size().Cells()
	res := seedResult{seed: cfg.Seed, records: make([]telemetry.Record, 0, generations)}
	for gen := 0; gen < generations; gen++ {
		if gen%64 == 0 {
			if err := ctx.Err(); err != nil {
				return seedResult{}, err
			}
		}
		state.Step()
		s := state.LastStep()
		res.records = append(res.records, telemetry.NewRecord(cfg.Seed, cells, s))
		if s.Births == 0 && s.Deaths == 0 {
			if res.settled == 0 {
				res.settled = s.Generation
			}
		} else {
			res.settled = 0
		}
	}
	return res, nil
}

func summarize(results []seedResult) (final []float64, extinct, settled int) {
	for _, res := range results {
		if len(res.records) == 0 {
			continue
		}
		last := res.records[len(res.records)-1]
		final = append(final, last.Density)
		if last.Population == 0 {
			extinct++
		}
		if res.settled > 0 {
			settled++
		}
	}
	slices.Sort(final)
	return final, extinct, settled
}
