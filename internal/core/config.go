package core

// RuntimeConfig contains configuration passed to profiles at initialization.
// Profiles use this to size the world and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // World width in cells
	ScreenH  int   // World height in cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Bounds returns the world rectangle for this config.
func (c RuntimeConfig) Bounds() Rect {
	return NewRect(0, 0, float64(c.ScreenW), float64(c.ScreenH))
}

// TickSeconds returns the fixed logical tick duration in seconds.
func (c RuntimeConfig) TickSeconds() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}
