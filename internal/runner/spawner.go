package runner

import (
	"math/rand"

	"github.com/vovakirdan/dusk-runner/internal/config"
)

// Spawner owns the live enemy collection and the randomized spawn timer.
type Spawner struct {
	enemies []*Enemy
	timer   float64
	jitter  float64

	rng        *rand.Rand
	spawn      config.SpawnConfig
	enemy      config.EnemyConfig
	difficulty *config.DifficultyManager
	gameW      float64
	gameH      float64
}

// NewSpawner creates an empty spawner and rolls the initial jitter from rng.
func NewSpawner(spawn config.SpawnConfig, enemy config.EnemyConfig, difficulty *config.DifficultyManager, rng *rand.Rand, gameW, gameH float64) *Spawner {
	s := &Spawner{
		enemies:    make([]*Enemy, 0, 4),
		rng:        rng,
		spawn:      spawn,
		enemy:      enemy,
		difficulty: difficulty,
		gameW:      gameW,
		gameH:      gameH,
	}
	s.rollJitter()
	return s
}

func (s *Spawner) rollJitter() {
	s.jitter = s.rng.Float64()*s.spawn.JitterRangeMs + s.spawn.JitterMinMs
}

// Jitter returns the random addition to the spawn interval currently in effect.
func (s *Spawner) Jitter() float64 {
	return s.jitter
}

// Timer returns the milliseconds accumulated since the last spawn.
func (s *Spawner) Timer() float64 {
	return s.timer
}

// Threshold is the timer value that must be exceeded before the next spawn.
func (s *Spawner) Threshold(score int, elapsedMs float64) float64 {
	return s.difficulty.SpawnInterval(s.spawn.IntervalMs, score, elapsedMs) + s.jitter
}

// Update runs spawn logic, moves every enemy and culls the ones that left the
// field. It returns how many were culled, one point each.
func (s *Spawner) Update(dt float64, score int, elapsedMs float64) int {
	if s.timer > s.Threshold(score, elapsedMs) {
		s.Spawn(score, elapsedMs)
		s.timer = 0
		if s.spawn.RerollJitter {
			s.rollJitter()
		}
	} else {
		s.timer += dt
	}

	for _, e := range s.enemies {
		e.Update(dt)
	}
	return s.Cull()
}

// Spawn appends a new enemy at the right edge.
func (s *Spawner) Spawn(score int, elapsedMs float64) *Enemy {
	speed := s.difficulty.Speed(s.enemy.Speed, score, elapsedMs)
	e := NewEnemy(s.enemy, speed, s.gameW, s.gameH)
	s.enemies = append(s.enemies, e)
	return e
}

// Cull removes enemies flagged CanDelete, keeping the rest in order.
func (s *Spawner) Cull() int {
	kept := s.enemies[:0]
	for _, e := range s.enemies {
		if !e.CanDelete {
			kept = append(kept, e)
		}
	}
	culled := len(s.enemies) - len(kept)
	for i := len(kept); i < len(s.enemies); i++ {
		s.enemies[i] = nil
	}
	s.enemies = kept
	return culled
}

// Enemies returns the live enemies in spawn order. The slice is owned by the spawner.
func (s *Spawner) Enemies() []*Enemy {
	return s.enemies
}

// Clear drops every enemy. The spawn timer keeps running.
func (s *Spawner) Clear() {
	for i := range s.enemies {
		s.enemies[i] = nil
	}
	s.enemies = s.enemies[:0]
}

// Tune applies new spawn and enemy settings to future spawns. Changed jitter
// bounds roll a fresh jitter; otherwise the current one is kept.
func (s *Spawner) Tune(spawn config.SpawnConfig, enemy config.EnemyConfig, difficulty *config.DifficultyManager) {
	rebound := spawn.JitterMinMs != s.spawn.JitterMinMs || spawn.JitterRangeMs != s.spawn.JitterRangeMs
	s.spawn = spawn
	if rebound {
		s.rollJitter()
	}
	s.enemy = enemy
	s.difficulty = difficulty
}
