package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"os/signal"

	"torus-life/internal/app"
	"torus-life/internal/config"
	"torus-life/internal/render"
	"torus-life/internal/sims/life"
	"torus-life/internal/telemetry"
)

func main() {
	flags := app.NewConfig()
	flags.Bind(flag.CommandLine)
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg, err := config.Load(flags.ConfigPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}
	flags.Apply(cfg)
	seed := app.ResolveSeed(cfg)

	rec, err := telemetry.NewRecorder(cfg.Telemetry.OutputDir)
	if err != nil {
		log.Fatalf("opening census output: %v", err)
	}
	defer rec.Close()
	observe := app.NewObserver(rec, cfg.Telemetry.LogEvery)

	if !flags.Headless {
		slog.Info("starting", "seed", seed, "ticks_per_step", cfg.Derived.TicksPerStep)
		if err := app.RunGUI(cfg, observe, seed); err != nil {
			rec.Close()
			log.Fatal(err)
		}
		return
	}

	canvas := render.NewCanvas(cfg.World.Width, cfg.World.Height, cfg.Display.Live.RGBA(), cfg.Display.Background.RGBA())
	state := life.New(cfg.Life(seed))
	sched := life.NewScheduler(state, canvas.Render)
	sched.Redraw()
	observe(sched, func() int64 { return seed })

	slog.Info("starting headless simulation",
		"seed", seed,
		"params", state.Parameters(),
		"max_generations", flags.MaxGenerations,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.RunHeadless(ctx, sched, cfg.Timing.RefreshRate, flags.MaxGenerations); err != nil {
		slog.Error("headless run failed", "error", err)
	}
	if flags.Snapshot != "" {
		if err := canvas.WritePNG(flags.Snapshot, cfg.Display.Scale); err != nil {
			slog.Error("writing snapshot", "error", err)
			return
		}
		slog.Info("snapshot written", "path", flags.Snapshot, "generation", state.Generation())
	}
}
