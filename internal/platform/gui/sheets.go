package gui

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"math"
	"os"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/runner"
)

// Sheets holds one sprite sheet image per sprite.
type Sheets map[runner.SpriteID]*ebiten.Image

var sheetIDs = []runner.SpriteID{runner.SpriteBackground, runner.SpritePlayer, runner.SpriteEnemy}

// LoadSheets reads background.png, player.png and enemy.png from dir.
func LoadSheets(dir string) (Sheets, error) {
	sheets := make(Sheets, len(sheetIDs))
	for _, id := range sheetIDs {
		path := filepath.Join(dir, id.String()+".png")
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("gui: read %s: %w", path, err)
		}
		img, _, err := image.Decode(bytes.NewReader(b))
		if err != nil {
			return nil, fmt.Errorf("gui: decode %s: %w", path, err)
		}
		sheets[id] = ebiten.NewImageFromImage(img)
	}
	return sheets, nil
}

// GenerateSheets paints placeholder sheets laid out like the real assets:
// one tile of background, two rows of player frames and one row of enemy frames.
func GenerateSheets(cfg config.RunnerConfig) Sheets {
	return Sheets{
		runner.SpriteBackground: ebiten.NewImageFromImage(paintBackground(cfg.Background)),
		runner.SpritePlayer:     ebiten.NewImageFromImage(paintPlayer(cfg.Player)),
		runner.SpriteEnemy:      ebiten.NewImageFromImage(paintEnemy(cfg.Enemy)),
	}
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
}

func paintBackground(cfg config.BackgroundConfig) *image.RGBA {
	w, h := int(cfg.Width), int(cfg.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))

	// Dusk sky in bands
	bands := []color.RGBA{colornames.Midnightblue, colornames.Darkslateblue, colornames.Slateblue, colornames.Mediumpurple, colornames.Lightsalmon}
	bandH := h / (len(bands) + 1)
	for i, c := range bands {
		fill(img, image.Rect(0, i*bandH, w, (i+1)*bandH), c)
	}

	// Hills, periodic over the tile so the seam between copies is invisible
	ground := h - h/10
	for x := 0; x < w; x++ {
		phase := 2 * math.Pi * float64(x) / float64(w)
		top := ground - int(float64(h)/8*(1.5+math.Sin(3*phase)+0.5*math.Sin(7*phase)))
		fill(img, image.Rect(x, top, x+1, ground), colornames.Darkolivegreen)
	}
	fill(img, image.Rect(0, ground, w, h), colornames.Saddlebrown)
	return img
}

func paintPlayer(cfg config.PlayerConfig) *image.RGBA {
	w, h := int(cfg.Width), int(cfg.Height)
	cols := max(cfg.GroundMaxFrame, cfg.AirMaxFrame) + 1
	img := image.NewRGBA(image.Rect(0, 0, cols*w, 2*h))

	for row, body := range []color.RGBA{colornames.Limegreen, colornames.Gold} {
		for col := 0; col < cols; col++ {
			x, y := col*w, row*h
			fill(img, image.Rect(x+w/4, y+h/8, x+3*w/4, y+3*h/4), body)
			fill(img, image.Rect(x+w/2, y+h/4, x+2*w/3, y+h/3), colornames.Black)
			// Legs swing with the frame
			stride := (col % 2) * w / 8
			fill(img, image.Rect(x+w/4+stride, y+3*h/4, x+w/2-w/16+stride, y+h), body)
			fill(img, image.Rect(x+w/2+w/16-stride, y+3*h/4, x+3*w/4-stride, y+h), body)
		}
	}
	return img
}

func paintEnemy(cfg config.EnemyConfig) *image.RGBA {
	w, h := int(cfg.Width), int(cfg.Height)
	cols := cfg.MaxFrame + 1
	img := image.NewRGBA(image.Rect(0, 0, cols*w, h))

	for col := 0; col < cols; col++ {
		x := col * w
		fill(img, image.Rect(x+w/8, h/4, x+7*w/8, 7*h/8), colornames.Crimson)
		fill(img, image.Rect(x+w/4, h/3, x+w/3, h/2), colornames.White)
		lift := (col % 2) * h / 16
		fill(img, image.Rect(x+w/8, 7*h/8-lift, x+w/3, h-lift), colornames.Darkred)
		fill(img, image.Rect(x+2*w/3, 7*h/8+lift-h/16, x+7*w/8, h+lift-h/16), colornames.Darkred)
	}
	return img
}
