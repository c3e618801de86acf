package runner

import (
	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

// Background is a horizontally scrolling tile drawn twice side by side.
type Background struct {
	X, Y   float64
	Width  float64
	Height float64
	VelX   float64
}

// NewBackground creates a background at the origin.
func NewBackground(cfg config.BackgroundConfig) *Background {
	return &Background{
		Width:  cfg.Width,
		Height: cfg.Height,
		VelX:   cfg.Speed,
	}
}

// Update scrolls left and wraps to 0 once a full tile width has passed.
func (b *Background) Update(dt float64) {
	b.X -= b.VelX * dt
	if b.X <= -b.Width {
		b.X = 0
	}
}

// Draw blits the tile and its continuation.
func (b *Background) Draw(s Surface) {
	src := core.NewRectF(0, 0, b.Width, b.Height)
	s.DrawSprite(SpriteBackground, src, core.NewRectF(b.X, b.Y, b.Width, b.Height))
	s.DrawSprite(SpriteBackground, src, core.NewRectF(b.X+b.Width-b.VelX, b.Y, b.Width, b.Height))
}

// Restart rewinds the scroll.
func (b *Background) Restart() {
	b.X = 0
}
