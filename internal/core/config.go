package core

// RuntimeConfig contains platform settings passed to the animation at start.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in terminal columns
	ScreenH  int   // Screen height in terminal rows
	TickRate int   // Frame callbacks per second (default 60)
	Seed     int64 // RNG seed for reproducible colour sequences
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
