// Package runner implements the endless runner: input, entities, collision,
// spawning and the frame loop. It draws through the Surface interface and has
// no knowledge of the host that shows it.
package runner

import "github.com/vovakirdan/dusk-runner/internal/core"

// State is everything that changes during a run.
type State struct {
	Background *Background
	Player     *Player
	Spawner    *Spawner

	Score    int
	GameOver bool
	LastTime float64 // timestamp of the previous frame, ms
	Elapsed  float64 // ms of play since the last restart
}

// Snapshot returns the externally visible status.
func (s *State) Snapshot() core.GameState {
	return core.GameState{Score: s.Score, GameOver: s.GameOver}
}
