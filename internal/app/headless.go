package app

import (
	"context"
	"log/slog"
	"time"

	"torus-life/internal/sims/life"
	"torus-life/internal/telemetry"
)

// RunHeadless drives the scheduler from a wall-clock ticker at refreshRate
// until ctx is done or maxGenerations steps have completed.
func RunHeadless(ctx context.Context, sc *life.Scheduler, refreshRate float64, maxGenerations int) error {
	if refreshRate <= 0 {
		refreshRate = 60
	}
	ticker := time.NewTicker(time.Duration(float64(time.Second) / refreshRate))
	defer ticker.Stop()

	for {
		if maxGenerations > 0 && sc.State().Generation() >= maxGenerations {
			slog.Info("max generations reached", "generation", sc.State().Generation())
			return nil
		}
		select {
		case <-ctx.Done():
			slog.Info("stopping", "generation", sc.State().Generation(), "reason", context.Cause(ctx))
			return nil
		case <-ticker.C:
			sc.Tick()
		}
	}
}

// Observer attaches telemetry to a scheduler once it exists.
type Observer func(sc *life.Scheduler, seed func() int64)

// NewObserver returns an Observer backed by Observe.
func NewObserver(rec *telemetry.Recorder, logEvery int) Observer {
	return func(sc *life.Scheduler, seed func() int64) {
		Observe(sc, rec, seed, logEvery)
	}
}

// Observe records every completed step and logs progress every logEvery
// generations. rec may be nil.
func Observe(sc *life.Scheduler, rec *telemetry.Recorder, seed func() int64, logEvery int) {
	cells := sc.State().Size().Cells()
	sc.OnStep(func(s life.StepStats) {
		if err := rec.Write(telemetry.NewRecord(seed(), cells, s)); err != nil {
			slog.Warn("census write failed", "error", err)
		}
		if logEvery > 0 && s.Generation%logEvery == 0 {
			slog.Info("generation",
				"generation", s.Generation,
				"population", s.Population,
				"births", s.Births,
				"deaths", s.Deaths,
			)
		}
	})
}
