package runner

import "github.com/vovakirdan/dusk-runner/internal/core"

// SpriteID names one of the three images the host preloads.
type SpriteID int

const (
	SpriteBackground SpriteID = iota
	SpritePlayer
	SpriteEnemy
)

// String returns the sprite's asset name.
func (id SpriteID) String() string {
	switch id {
	case SpriteBackground:
		return "background"
	case SpritePlayer:
		return "player"
	case SpriteEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Align is the horizontal anchor of a text fill.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
)

// TextStyle describes a text fill. Y positions passed with it are baselines.
type TextStyle struct {
	Color core.Color
	Size  float64 // px
	Align Align
}

// Surface is the 2D drawing target a host provides for one frame.
// All coordinates are world pixels (core.WorldWidth x core.WorldHeight).
type Surface interface {
	// Clear erases the previous frame.
	Clear()
	// DrawSprite blits src from the sprite sheet into dst.
	DrawSprite(id SpriteID, src, dst core.RectF)
	// FillText draws a single line of text.
	FillText(text string, x, y float64, style TextStyle)
}
