package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/dusk-runner/internal/core"
	"github.com/vovakirdan/dusk-runner/internal/runner"
)

func TestRasterSpriteScaling(t *testing.T) {
	// 130x72 cells is exactly a tenth of the world.
	r := NewRaster(core.NewScreen(130, 72))
	r.DrawSprite(runner.SpritePlayer, core.NewRectF(0, 0, 200, 200), core.NewRectF(100, 520, 200, 200))

	tests := []struct {
		x, y     int
		expected core.Color
	}{
		{10, 52, core.ColorGreen},
		{29, 70, core.ColorGreen},
		{9, 52, core.ColorDefault},
		{30, 52, core.ColorDefault},
		{10, 51, core.ColorDefault},
	}
	for _, tc := range tests {
		if got := r.Screen().GetCell(tc.x, tc.y).Color; got != tc.expected {
			t.Errorf("cell (%d, %d) color = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRasterAirbornePose(t *testing.T) {
	r := NewRaster(core.NewScreen(130, 72))
	r.DrawSprite(runner.SpritePlayer, core.NewRectF(0, 200, 200, 200), core.NewRectF(100, 300, 200, 200))
	if got := r.Screen().GetCell(15, 35).Color; got != core.ColorYellow {
		t.Errorf("airborne color = %v, expected %v", got, core.ColorYellow)
	}
}

func TestRasterClipsOffscreenSprites(t *testing.T) {
	r := NewRaster(core.NewScreen(130, 72))
	r.DrawSprite(runner.SpriteEnemy, core.NewRectF(0, 0, 160, 119), core.NewRectF(-500, 601, 160, 119))
	r.DrawSprite(runner.SpriteEnemy, core.NewRectF(0, 0, 160, 119), core.NewRectF(1300, 601, 160, 119))
	if strings.ContainsRune(r.Screen().String(), glyphEnemy) {
		t.Error("off-field enemies should not be drawn")
	}
}

func TestRasterClipsPartialSprites(t *testing.T) {
	// Columns -8..7, rows 60..71: only the right half is on screen.
	r := NewRaster(core.NewScreen(130, 72))
	r.DrawSprite(runner.SpriteEnemy, core.NewRectF(0, 0, 160, 119), core.NewRectF(-80, 601, 160, 119))

	tests := []struct {
		x, y     int
		expected core.Color
	}{
		{0, 60, core.ColorRed},
		{7, 65, core.ColorRed},
		{0, 71, core.ColorRed},
		{7, 71, core.ColorRed},
		{8, 65, core.ColorDefault},
		{0, 59, core.ColorDefault},
	}
	for _, tc := range tests {
		if got := r.Screen().GetCell(tc.x, tc.y).Color; got != tc.expected {
			t.Errorf("cell (%d, %d) color = %v, expected %v", tc.x, tc.y, got, tc.expected)
		}
	}
	if got := r.Screen().Get(0, 71); got != '^' {
		t.Errorf("feet at column 0 = %q, expected '^'", got)
	}

	// Past the right edge the feet row is clipped too.
	r.Clear()
	r.DrawSprite(runner.SpriteEnemy, core.NewRectF(160, 0, 160, 119), core.NewRectF(1220, 601, 160, 119))
	if got := r.Screen().GetCell(129, 71).Color; got != core.ColorRed {
		t.Errorf("cell (129, 71) color = %v, expected %v", got, core.ColorRed)
	}
}

func TestRasterText(t *testing.T) {
	r := NewRaster(core.NewScreen(130, 72))
	r.FillText("Score: 3", 20, 50, runner.TextStyle{Color: core.ColorWhite, Size: 40})
	if got := r.Screen().Row(3)[2:10]; got != "Score: 3" {
		t.Errorf("row 3 = %q, expected score at column 2", got)
	}
	if got := r.Screen().GetCell(2, 3).Color; got != core.ColorWhite {
		t.Errorf("text color = %v, expected white", got)
	}

	r.Clear()
	r.FillText("abcd", 650, 150, runner.TextStyle{Color: core.ColorWhite, Size: 40, Align: runner.AlignCenter})
	if got := r.Screen().Row(13)[63:67]; got != "abcd" {
		t.Errorf("centered row = %q, expected abcd at column 63", r.Screen().Row(13))
	}
}

func TestRasterBackgroundTiles(t *testing.T) {
	r := NewRaster(core.NewScreen(130, 72))
	r.DrawSprite(runner.SpriteBackground, core.NewRectF(0, 0, 2400, 720), core.NewRectF(0, 0, 2400, 720))

	for x := 0; x < 130; x++ {
		if got := r.Screen().Get(x, 71); got != glyphGround {
			t.Fatalf("ground at column %d = %q, expected %q", x, got, glyphGround)
		}
	}
	if got := r.Screen().Get(0, 0); got != ' ' {
		t.Errorf("sky cell = %q, expected blank", got)
	}
}
