package core

// RuntimeConfig is what a frontend hands a game on Reset: the playable
// screen area plus the timing and seed of the session.
type RuntimeConfig struct {
	ScreenW, ScreenH int

	TickRate  int // simulation ticks per second
	FrameRate int // frames drawn per second
	MaxSteps  int // ticks allowed per frame; <= 0 means unbounded

	// Seed feeds the game RNG. Frontends replace 0 with a time-based seed.
	Seed int64
}

const (
	DefaultTickRate  = 120
	DefaultFrameRate = 60
)

func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		TickRate:  DefaultTickRate,
		FrameRate: DefaultFrameRate,
		MaxSteps:  DefaultMaxSteps,
	}
}

// WithDefaults fills non-positive rates from DefaultConfig.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.FrameRate <= 0 {
		c.FrameRate = DefaultFrameRate
	}
	return c
}

// GameState is the part of a game the platform reads each frame.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}
