package runner

import (
	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

// Enemy is a single obstacle running leftward along the floor.
type Enemy struct {
	X, Y      float64
	VelX      float64
	Width     float64
	Height    float64
	CanDelete bool

	anim   animator
	hitbox config.HitboxConfig
}

// NewEnemy creates an enemy at the right edge of the field moving at speed px/ms.
func NewEnemy(cfg config.EnemyConfig, speed, gameW, gameH float64) *Enemy {
	return &Enemy{
		X:      gameW,
		Y:      gameH - cfg.Height,
		VelX:   speed,
		Width:  cfg.Width,
		Height: cfg.Height,
		anim:   newAnimator(cfg.FPS, cfg.MaxFrame),
		hitbox: cfg.Hitbox,
	}
}

// FrameX returns the current animation column.
func (e *Enemy) FrameX() int { return e.anim.frame }

// Update animates and moves the enemy, flagging it once fully past the left edge.
func (e *Enemy) Update(dt float64) {
	e.anim.tick(dt)
	e.X -= e.VelX * dt
	if e.X < -e.Width {
		e.CanDelete = true
	}
}

// Hitbox returns the enemy's collision circle.
func (e *Enemy) Hitbox() Hitbox {
	return hitboxFor(e.X, e.Y, e.Width, e.Height, e.hitbox)
}

// Draw blits the current animation cell.
func (e *Enemy) Draw(s Surface) {
	src := core.NewRectF(float64(e.anim.frame)*e.Width, 0, e.Width, e.Height)
	s.DrawSprite(SpriteEnemy, src, core.NewRectF(e.X, e.Y, e.Width, e.Height))
}
