// Package core provides fundamental types and utilities shared by the runner
// and its hosts. It contains no external dependencies (especially no Bubble Tea
// or Ebiten) to keep game logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used by the terminal Screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// RectF is a rectangle in world pixels. The world uses a top-left origin with
// y growing downward.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a new world rectangle.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r RectF) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r RectF) Bottom() float64 {
	return r.Y + r.H
}

// Scale maps the rectangle by independent x and y factors.
func (r RectF) Scale(sx, sy float64) RectF {
	return RectF{X: r.X * sx, Y: r.Y * sy, W: r.W * sx, H: r.H * sy}
}

// ClampF restricts val to [lo, hi]. hi wins when the range is inverted,
// e.g. a sprite wider than the world.
func ClampF(val, lo, hi float64) float64 {
	if val < lo {
		val = lo
	}
	if val > hi {
		val = hi
	}
	return val
}
