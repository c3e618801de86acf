package core

// World dimensions in pixels. All game logic runs in this space; hosts scale it
// to whatever surface they own.
const (
	WorldWidth  = 1300
	WorldHeight = 720
)

// RuntimeConfig contains host settings passed to a game session.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (terminal cells or window pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Host frames per second (default 60)
	Seed     int64 // RNG seed for spawn jitter, 0 = time based
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

// GameState is the externally visible status of a run.
type GameState struct {
	Score    int  // Enemies dodged so far
	GameOver bool // Whether the run has ended
}
