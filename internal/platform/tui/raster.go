package tui

import (
	"math"
	"unicode/utf8"

	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/runner"
)

// Sprite glyphs for the terminal.
const (
	glyphHill   = '░'
	glyphGround = '▀'
	glyphPlayer = '█'
	glyphEnemy  = '▓'
)

// Raster draws the runner's world onto a cell Screen, scaling world pixels to
// the screen's cell grid. It implements runner.Surface.
type Raster struct {
	screen *core.Screen
}

// NewRaster creates a raster surface over screen.
func NewRaster(screen *core.Screen) *Raster {
	return &Raster{screen: screen}
}

// Screen returns the underlying cell buffer.
func (r *Raster) Screen() *core.Screen {
	return r.screen
}

func (r *Raster) col(x float64) int {
	return int(math.Floor(x * float64(r.screen.Width()) / core.WorldWidth))
}

func (r *Raster) row(y float64) int {
	return int(math.Floor(y * float64(r.screen.Height()) / core.WorldHeight))
}

// cells maps a world rectangle to the cells it covers, at least one cell each way.
func (r *Raster) cells(dst core.RectF) core.Rect {
	x0, y0 := r.col(dst.X), r.row(dst.Y)
	x1, y1 := r.col(dst.Right()), r.row(dst.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear erases the screen.
func (r *Raster) Clear() {
	r.screen.Clear()
}

// DrawSprite renders a sprite as a block of glyphs. The sheet cell selects
// pose and animation frame.
func (r *Raster) DrawSprite(id runner.SpriteID, src, dst core.RectF) {
	cell := r.cells(dst)
	frame := 0
	if src.W > 0 {
		frame = int(src.X / src.W)
	}

	switch id {
	case runner.SpriteBackground:
		r.drawBackground(cell)
	case runner.SpritePlayer:
		color := core.ColorGreen
		if src.Y > 0 {
			color = core.ColorYellow // airborne row
		}
		r.screen.FillRect(cell, glyphPlayer, color)
		r.drawFeet(cell, frame, "/\\", color)
	case runner.SpriteEnemy:
		r.screen.FillRect(cell, glyphEnemy, core.ColorRed)
		r.drawFeet(cell, frame, "^v", core.ColorRed)
	}
}

// drawBackground paints rolling hills that repeat seamlessly across one tile.
func (r *Raster) drawBackground(tile core.Rect) {
	bottom := tile.Bottom()
	for x := max(tile.X, 0); x < min(tile.Right(), r.screen.Width()); x++ {
		u := float64(x-tile.X) / float64(tile.W)
		h := 0.18 + 0.08*math.Sin(u*2*math.Pi*4) + 0.04*math.Sin(u*2*math.Pi*11)
		top := bottom - int(h*float64(tile.H))
		for y := top; y < bottom-1; y++ {
			r.screen.SetColored(x, y, glyphHill, core.ColorGray)
		}
		r.screen.SetColored(x, bottom-1, glyphGround, core.ColorBrown)
	}
}

// drawFeet alternates the bottom row between two glyphs per animation frame.
func (r *Raster) drawFeet(cell core.Rect, frame int, glyphs string, color core.Color) {
	if cell.H < 2 {
		return
	}
	feet := []rune(glyphs)
	y := cell.Bottom() - 1
	for x := max(cell.X, 0); x < min(cell.Right(), r.screen.Width()); x++ {
		r.screen.SetColored(x, y, feet[(x+frame)%len(feet)], color)
	}
}

// FillText writes a line of text. y is the baseline; the line is placed on the
// row holding the middle of the glyphs.
func (r *Raster) FillText(text string, x, y float64, style runner.TextStyle) {
	row := r.row(y - style.Size/2)
	col := r.col(x)
	if style.Align == runner.AlignCenter {
		col -= utf8.RuneCountInString(text) / 2
	}
	r.screen.DrawText(col, row, text, style.Color)
}
