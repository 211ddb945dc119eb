package core

import "time"

// DefaultTickRate is the frame rate used when none is configured.
const DefaultTickRate = 60

// RuntimeConfig is what the platform tells a game on Reset: the screen it
// draws on, the frame rate it is stepped at and the seed of its run.
type RuntimeConfig struct {
	ScreenW  int
	ScreenH  int
	TickRate int   // frames per second
	Seed     int64 // 0 is replaced with a clock seed by WithDefaults

	// Difficulty names a preset chosen for this session ("easy", "normal",
	// "hard"). Empty keeps the game's configured default.
	Difficulty string
}

// DefaultConfig returns an 80x24 screen at the default tick rate.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// WithDefaults fills a missing tick rate and seed. The returned seed is the
// one to record: replaying it with the same inputs reproduces the run.
func (c RuntimeConfig) WithDefaults() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = DefaultTickRate
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c
}

// GameState is what a game reports to the platform after each frame.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
}

// StepResult wraps the state after one Step.
type StepResult struct {
	State GameState
}
