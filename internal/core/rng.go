package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillDensity sets each cell alive with probability p and dead otherwise.
func FillDensity(r *rand.Rand, buf []uint8, p float64) {
	threshold := 1 - p
	for i := range buf {
		if r.Float64() >= threshold {
			buf[i] = 1
			continue
		}
		buf[i] = 0
	}
}
