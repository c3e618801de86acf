package runner

import (
	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

// Animation rows of the player sprite sheet.
const (
	rowGround = 0
	rowAir    = 1
)

// Player is the runner. It is Grounded while Y sits on the floor and Airborne above it.
type Player struct {
	X, Y       float64
	VelX, VelY float64
	Width      float64
	Height     float64
	FrameY     int

	anim  animator
	cfg   config.PlayerConfig
	gameW float64
	gameH float64
}

// NewPlayer places a player on the floor of a gameW x gameH field.
func NewPlayer(cfg config.PlayerConfig, gameW, gameH float64) *Player {
	p := &Player{
		Width:  cfg.Width,
		Height: cfg.Height,
		VelX:   cfg.InitialVelX,
		cfg:    cfg,
		gameW:  gameW,
		gameH:  gameH,
		anim:   newAnimator(cfg.FPS, cfg.GroundMaxFrame),
	}
	p.X = cfg.StartX
	p.Y = p.Floor()
	return p
}

// Floor is the Y of a grounded player.
func (p *Player) Floor() float64 {
	return p.gameH - p.Height
}

// OnGround reports whether the player is Grounded.
func (p *Player) OnGround() bool {
	return p.Y >= p.Floor()
}

// FrameX returns the current animation column.
func (p *Player) FrameX() int { return p.anim.frame }

// MaxFrame returns the last animation column of the current pose.
func (p *Player) MaxFrame() int { return p.anim.maxFrame }

// Update advances animation, applies controls and gravity, then moves and clamps.
// held reports whether any input entry exists at all; with none the player stops.
func (p *Player) Update(dt float64, actions core.ActionSet, held bool) {
	p.anim.tick(dt)

	if actions.Has(core.ActionUp) && p.OnGround() {
		p.VelY -= p.cfg.JumpImpulse
	}
	if actions.Has(core.ActionRight) {
		p.VelX = p.cfg.RunSpeed
	}
	if actions.Has(core.ActionLeft) {
		p.VelX = -p.cfg.RunSpeed
	}
	if !held {
		p.VelX = 0
	}

	if !p.OnGround() {
		p.VelY += p.cfg.Weight
		p.FrameY = rowAir
		p.anim.setMax(p.cfg.AirMaxFrame)
	} else {
		p.FrameY = rowGround
		p.anim.setMax(p.cfg.GroundMaxFrame)
	}

	p.X += p.VelX * dt
	p.Y += p.VelY * dt

	p.X = core.ClampF(p.X, 0, p.gameW-p.Width)
	p.Y = core.ClampF(p.Y, 0, p.Floor())
}

// Hitbox returns the player's collision circle.
func (p *Player) Hitbox() Hitbox {
	return hitboxFor(p.X, p.Y, p.Width, p.Height, p.cfg.Hitbox)
}

// Draw blits the current animation cell.
func (p *Player) Draw(s Surface) {
	src := core.NewRectF(float64(p.anim.frame)*p.Width, float64(p.FrameY)*p.Height, p.Width, p.Height)
	s.DrawSprite(SpritePlayer, src, core.NewRectF(p.X, p.Y, p.Width, p.Height))
}

// Restart puts the player back at the start in the grounded pose.
// Velocity carries over.
func (p *Player) Restart() {
	p.X = p.cfg.StartX
	p.Y = p.Floor()
	p.FrameY = rowGround
	p.anim.setMax(p.cfg.GroundMaxFrame)
}

// Tune applies motion and animation settings that do not change the sprite geometry.
func (p *Player) Tune(cfg config.PlayerConfig) {
	cfg.Width, cfg.Height, cfg.StartX = p.Width, p.Height, p.cfg.StartX
	p.cfg = cfg
	p.anim.interval = 1000 / cfg.FPS
}
