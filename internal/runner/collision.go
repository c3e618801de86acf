package runner

import (
	"math"

	"github.com/vovakirdan/dusk-runner/internal/config"
)

// Hitbox is a collision circle in world pixels.
type Hitbox struct {
	X, Y   float64 // center
	Radius float64
}

// hitboxFor derives the biased circle of a sprite-sized box.
func hitboxFor(x, y, w, h float64, cfg config.HitboxConfig) Hitbox {
	return Hitbox{
		X:      x + w/2 + cfg.OffsetX,
		Y:      y + h/2 + cfg.OffsetY,
		Radius: w / cfg.RadiusDivisor,
	}
}

// Collides reports whether two hitboxes overlap. Touching circles, whose center
// distance equals the radius sum, do not collide.
func Collides(a, b Hitbox) bool {
	return math.Hypot(b.X-a.X, b.Y-a.Y) < a.Radius+b.Radius
}
