//go:build ebiten

package app

import (
	"errors"
	"log/slog"
	"time"

	"torus-life/internal/config"
	"torus-life/internal/render"
	"torus-life/internal/sims/life"
	"torus-life/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game adapts the Life scheduler to the ebiten.Game interface. ebiten calls
// Update once per refresh tick, which makes it the scheduler loop.
type Game struct {
	sched   *life.Scheduler
	painter *render.GridPainter
	hud     *ui.HUD

	scale int
	seed  int64
}

// New constructs a Game for the provided configuration.
func New(cfg *config.Config, seed int64) *Game {
	state := life.New(cfg.Life(seed))
	size := state.Size()
	g := &Game{
		painter: render.NewGridPainter(size.W, size.H, cfg.Display.Live.RGBA(), cfg.Display.Background.RGBA()),
		hud:     ui.NewHUD(state, size.W*cfg.Display.Scale),
		scale:   cfg.Display.Scale,
		seed:    seed,
	}
	g.sched = life.NewScheduler(state, g.painter.Render)
	g.sched.Redraw()
	return g
}

// Scheduler exposes the underlying scheduler.
func (g *Game) Scheduler() *life.Scheduler { return g.sched }

// Seed returns the seed of the current run.
func (g *Game) Seed() int64 { return g.seed }

// Reset reinitializes the simulation state with the provided seed.
func (g *Game) Reset(seed int64) {
	g.seed = seed
	g.sched.Reset(seed)
	slog.Info("reset", "seed", seed)
}

// Update handles input and advances the simulation by one refresh tick.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		if ebiten.IsKeyPressed(ebiten.KeyShift) {
			g.Reset(time.Now().UnixNano())
		} else {
			g.toggle()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.toggle()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.Reset(time.Now().UnixNano())
	}

	g.sched.Tick()
	g.hud.Update()
	return nil
}

func (g *Game) toggle() {
	g.sched.Toggle()
	state := g.sched.State()
	slog.Info("toggle", "running", state.Running(), "generation", state.Generation())
}

// Draw renders the last completed generation and the status strip.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Draw(screen, g.scale)
	g.hud.Draw(screen, g.sched.State().Size().H*g.scale)
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.sched.State().Size()
	return s.W * g.scale, s.H*g.scale + ui.Height
}

// RunGUI opens the window and blocks until it is closed.
func RunGUI(cfg *config.Config, observe Observer, seed int64) error {
	game := New(cfg, seed)
	if observe != nil {
		observe(game.sched, game.Seed)
	}

	size := game.sched.State().Size()
	ebiten.SetWindowTitle("torus-life")
	ebiten.SetTPS(int(cfg.Timing.RefreshRate))
	ebiten.SetWindowSize(size.W*cfg.Display.Scale, size.H*cfg.Display.Scale+ui.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
