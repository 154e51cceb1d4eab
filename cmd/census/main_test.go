package main

import (
	"context"
	"testing"

	"torus-life/internal/config"
)

func smallConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.World.Width = 24
	cfg.World.Height = 16
	return cfg
}

func TestSweepIsDeterministic(t *testing.T) {
	cfg := smallConfig(t)
	a, err := sweep(context.Background(), cfg, 10, 4, 30, 2)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	b, err := sweep(context.Background(), cfg, 10, 4, 30, 4)
	if err != nil {
		t.Fatalf("sweep: %v", err)
	}
	for i := range a {
		if a[i].seed != int64(10+i) {
			t.Fatalf("result %d has seed %d", i, a[i].seed)
		}
		if len(a[i].records) != 30 {
			t.Fatalf("seed %d recorded %d generations", a[i].seed, len(a[i].records))
		}
		for g := range a[i].records {
			if a[i].records[g] != b[i].records[g] {
				t.Fatalf("seed %d generation %d differs between worker counts", a[i].seed, g+1)
			}
		}
	}
}

func TestSweepCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sweep(ctx, smallConfig(t), 1, 3, 10, 1); err == nil {
		t.Fatal("expected cancelled sweep to fail")
	}
}

func TestSummarizeCountsExtinctBoards(t *testing.T) {
	cfg := smallConfig(t)
	cfg.World.Density = 0
	results, err := sweep(context.Background(), cfg, 1, 2, 5, 1)
	if err != nil {
		t.Fatal(err)
	}
	final, extinct, settled := summarize(results)
	if len(final) != 2 || extinct != 2 || settled != 2 {
		t.Fatalf("expected 2 extinct settled boards, got final=%v extinct=%d settled=%d", final, extinct, settled)
	}
}
