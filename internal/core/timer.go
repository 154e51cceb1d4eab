package core

import "math"

// Throttle converts a stream of display refresh ticks into a slower stream of
// simulation steps.
type Throttle struct {
	threshold int
	phase     int
}

// ThresholdFor returns how many refresh ticks make up one simulation step.
func ThresholdFor(refreshRate, targetRate float64) int {
	if refreshRate <= 0 || targetRate <= 0 {
		return 1
	}
	n := int(math.Round(refreshRate / targetRate))
	if n < 1 {
		n = 1
	}
	return n
}

// NewThrottle constructs a Throttle firing once every threshold ticks.
func NewThrottle(threshold int) Throttle {
	if threshold < 1 {
		threshold = 1
	}
	return Throttle{threshold: threshold}
}

// Advance records one tick and reports whether a step is due. The phase is
// back at zero after a firing tick.
func (t *Throttle) Advance() bool {
	t.phase++
	if t.phase >= t.threshold {
		t.phase = 0
		return true
	}
	return false
}

// Reset rewinds the phase counter.
func (t *Throttle) Reset() { t.phase = 0 }

// Phase returns the ticks elapsed since the last step.
func (t *Throttle) Phase() int { return t.phase }

// Threshold returns the number of ticks per step.
func (t *Throttle) Threshold() int { return t.threshold }
