package life

// Config controls the Life simulation dimensions and pacing.
type Config struct {
	Width  int
	Height int

	// Density is the probability that a cell starts alive after a reset.
	Density float64
	Seed    int64

	// RefreshRate is the expected display ticks per second and TargetRate the
	// desired generations per second.
	RefreshRate float64
	TargetRate  float64
}

// DefaultConfig returns the standard 160x90 board stepping at 15 generations
// per second on a 60 Hz display.
func DefaultConfig() Config {
	return Config{
		Width:       160,
		Height:      90,
		Density:     0.2,
		Seed:        42,
		RefreshRate: 60,
		TargetRate:  15,
	}
}
