package gui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/runner"
)

// palette maps core colors to RGBA.
var palette = map[core.Color]color.Color{
	core.ColorBlack:  colornames.Black,
	core.ColorWhite:  colornames.White,
	core.ColorRed:    colornames.Red,
	core.ColorGreen:  colornames.Limegreen,
	core.ColorYellow: colornames.Gold,
	core.ColorBlue:   colornames.Royalblue,
	core.ColorCyan:   colornames.Cyan,
	core.ColorOrange: colornames.Orange,
	core.ColorGray:   colornames.Gray,
	core.ColorBrown:  colornames.Saddlebrown,
}

func rgba(c core.Color) color.Color {
	if v, ok := palette[c]; ok {
		return v
	}
	return colornames.White
}

// Canvas implements runner.Surface on an ebiten screen image.
type Canvas struct {
	screen *ebiten.Image
	sheets Sheets
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// NewCanvas prepares a canvas drawing from sheets with the Go regular font.
func NewCanvas(sheets Sheets) (*Canvas, error) {
	s, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("gui: load font: %w", err)
	}
	return &Canvas{
		sheets: sheets,
		source: s,
		faces:  make(map[float64]*text.GoTextFace),
	}, nil
}

// Bind sets the image the next frame is drawn to.
func (c *Canvas) Bind(screen *ebiten.Image) {
	c.screen = screen
}

// Clear erases the bound image.
func (c *Canvas) Clear() {
	c.screen.Clear()
}

// DrawSprite draws the src cell of a sheet scaled into dst.
func (c *Canvas) DrawSprite(id runner.SpriteID, src, dst core.RectF) {
	sheet, ok := c.sheets[id]
	if !ok || src.W <= 0 || src.H <= 0 {
		return
	}
	r := image.Rect(
		int(math.Round(src.X)), int(math.Round(src.Y)),
		int(math.Round(src.X+src.W)), int(math.Round(src.Y+src.H)),
	).Intersect(sheet.Bounds())
	if r.Empty() {
		return
	}
	sub := sheet.SubImage(r).(*ebiten.Image)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(dst.W/src.W, dst.H/src.H)
	op.GeoM.Translate(dst.X, dst.Y)
	op.Filter = ebiten.FilterLinear
	c.screen.DrawImage(sub, op)
}

// FillText draws text with its baseline at y.
func (c *Canvas) FillText(s string, x, y float64, style runner.TextStyle) {
	face := c.face(style.Size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(rgba(style.Color))
	if style.Align == runner.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
	}
	text.Draw(c.screen, s, face, op)
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{Source: c.source, Size: size}
	c.faces[size] = f
	return f
}
