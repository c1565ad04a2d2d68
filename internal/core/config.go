package core

// RuntimeConfig contains configuration passed to the engine at initialization.
// The platform fills it from the terminal size and CLI flags.
type RuntimeConfig struct {
	ScreenW   int   // Screen width in characters
	ScreenH   int   // Screen height in characters
	TickRate  int   // Simulation ticks per second (default 120)
	RenderFPS int   // Renderer frames per second (default 60)
	Seed      int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  120,
		RenderFPS: 60,
		Seed:      0, // 0 seeds every run from the clock
	}
}
