package life

// RenderFunc receives a completed generation. The slice is only valid until
// the next step.
type RenderFunc func(cells []uint8, w, h int)

// Scheduler is the per-refresh entry point. It throttles steps to the state's
// target rate and hands each completed generation to the render sink.
type Scheduler struct {
	state  *State
	render RenderFunc
	onStep []func(StepStats)
}

// NewScheduler wires a state to a render sink. A nil sink is allowed.
func NewScheduler(state *State, render RenderFunc) *Scheduler {
	return &Scheduler{state: state, render: render}
}

// State returns the simulation owned by the scheduler.
func (sc *Scheduler) State() *State { return sc.state }

// OnStep registers an observer called after every completed step.
func (sc *Scheduler) OnStep(fn func(StepStats)) {
	if fn != nil {
		sc.onStep = append(sc.onStep, fn)
	}
}

// Tick handles one display refresh. It reports whether a step fired.
func (sc *Scheduler) Tick() bool {
	s := sc.state
	if !s.running {
		return false
	}
	if !s.throttle.Advance() {
		return false
	}
	s.Step()
	sc.draw()
	for _, fn := range sc.onStep {
		fn(s.last)
	}
	return true
}

// Toggle pauses or resumes the simulation.
func (sc *Scheduler) Toggle() { sc.state.Toggle() }

// Reset reseeds the simulation, forces it running and renders generation 0.
func (sc *Scheduler) Reset(seed int64) {
	sc.state.Reset(seed)
	sc.draw()
}

// Redraw pushes the current generation to the render sink without stepping.
func (sc *Scheduler) Redraw() { sc.draw() }

func (sc *Scheduler) draw() {
	if sc.render == nil {
		return
	}
	size := sc.state.Size()
	sc.render(sc.state.Cells(), size.W, size.H)
}
