package life

import (
	"fmt"
	"strconv"

	"torus-life/internal/core"
)

var _ core.Sim = (*State)(nil)

// StepStats summarises the most recently completed generation.
type StepStats struct {
	Generation int
	Population int
	Births     int
	Deaths     int
}

// State implements Conway's Game of Life on a torus with two alternating
// buffers. bufs[current] holds the latest completed generation.
type State struct {
	cfg  Config
	bufs [2]*core.ByteGrid

	current    int
	throttle   core.Throttle
	generation int
	running    bool
	last       StepStats
}

// New returns a Life simulation seeded from cfg.Seed.
func New(cfg Config) *State {
	s := &State{
		cfg:      cfg,
		bufs:     [2]*core.ByteGrid{core.NewByteGrid(cfg.Width, cfg.Height), core.NewByteGrid(cfg.Width, cfg.Height)},
		throttle: core.NewThrottle(core.ThresholdFor(cfg.RefreshRate, cfg.TargetRate)),
	}
	s.Reset(cfg.Seed)
	return s
}

// Name returns the simulation identifier.
func (s *State) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *State) Size() core.Size { return core.Size{W: s.bufs[0].W, H: s.bufs[0].H} }

// Cells exposes the latest completed generation. Callers must not write to it.
func (s *State) Cells() []uint8 { return s.bufs[s.current].Cells() }

// Generation returns the number of steps completed since the last reset.
func (s *State) Generation() int { return s.generation }

// Running reports whether ticks currently advance the simulation.
func (s *State) Running() bool { return s.running }

// Phase returns the ticks elapsed since the last step.
func (s *State) Phase() int { return s.throttle.Phase() }

// Threshold returns the ticks per step.
func (s *State) Threshold() int { return s.throttle.Threshold() }

// LastStep returns the census of the most recent step.
func (s *State) LastStep() StepStats { return s.last }

// Config returns the configuration the state was built with.
func (s *State) Config() Config { return s.cfg }

// Toggle flips between running and paused.
func (s *State) Toggle() { s.running = !s.running }

// Reset randomizes the board using the provided seed and restarts the run.
func (s *State) Reset(seed int64) {
	rng := core.NewRNG(seed).Source()
	core.FillDensity(rng, s.bufs[0].Cells(), s.cfg.Density)
	s.bufs[1].Clear()
	s.current = 0
	s.throttle.Reset()
	s.generation = 0
	s.running = true
	s.last = StepStats{Population: s.bufs[0].Population()}
}

// Clear kills every cell in the current generation.
func (s *State) Clear() {
	s.bufs[s.current].Clear()
	s.last.Population = 0
}

// SetCell writes a cell of the current generation.
func (s *State) SetCell(x, y int, v uint8) {
	if v != Dead && v != Alive {
		panic(fmt.Sprintf("life: cell value %d outside {0,1}", v))
	}
	g := s.bufs[s.current]
	if x < 0 || x >= g.W || y < 0 || y >= g.H {
		panic(fmt.Sprintf("life: cell (%d,%d) outside %dx%d grid", x, y, g.W, g.H))
	}
	g.Cells()[g.Index(x, y)] = v
}

// Cell reads a cell of the current generation.
func (s *State) Cell(x, y int) uint8 {
	g := s.bufs[s.current]
	return g.Cells()[g.Index(x, y)]
}

// Step advances the simulation by one generation.
func (s *State) Step() {
	src := s.bufs[s.current]
	out := s.bufs[1-s.current]
	w, h := src.W, src.H
	cur, nxt := src.Cells(), out.Cells()

	stats := StepStats{}
	for i := range cur {
		x, y := i%w, i/w
		c := NextState(cur[i], CountNeighbors(cur, w, h, x, y))
		nxt[i] = c
		switch {
		case c == Alive && cur[i] == Dead:
			stats.Births++
		case c == Dead && cur[i] == Alive:
			stats.Deaths++
		}
		stats.Population += int(c)
	}

	s.current = 1 - s.current
	s.generation++
	stats.Generation = s.generation
	s.last = stats
}

// Parameters describes the active configuration.
func (s *State) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "world",
			Params: []core.Parameter{
				intParam("w", "Width", s.cfg.Width),
				intParam("h", "Height", s.cfg.Height),
				floatParam("density", "Initial density", s.cfg.Density),
			},
		},
		{
			Name: "timing",
			Params: []core.Parameter{
				floatParam("refresh_rate", "Refresh rate", s.cfg.RefreshRate),
				floatParam("target_rate", "Target rate", s.cfg.TargetRate),
				intParam("threshold", "Ticks per step", s.throttle.Threshold()),
			},
		},
	}}
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(value)}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeFloat, Value: strconv.FormatFloat(value, 'f', -1, 64)}
}
