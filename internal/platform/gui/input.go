package gui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/dusk-runner/internal/runner"
)

// keyMap translates ebiten keys to runner keys.
var keyMap = map[ebiten.Key]runner.Key{
	ebiten.KeyArrowUp:     runner.KeyArrowUp,
	ebiten.KeyArrowDown:   runner.KeyArrowDown,
	ebiten.KeyArrowLeft:   runner.KeyArrowLeft,
	ebiten.KeyArrowRight:  runner.KeyArrowRight,
	ebiten.KeyEnter:       runner.KeyEnter,
	ebiten.KeyNumpadEnter: runner.KeyEnter,
}

// pointer follows one touch, or the mouse while its left button is down.
type pointer struct {
	active bool
	mouse  bool
	id     ebiten.TouchID

	keys []ebiten.Key
	ids  []ebiten.TouchID
}

// poll feeds this tick's key and pointer events into in.
func (p *pointer) poll(in *runner.InputHandler) {
	p.keys = inpututil.AppendJustPressedKeys(p.keys[:0])
	for _, k := range p.keys {
		if rk, ok := keyMap[k]; ok {
			in.KeyDown(rk)
		}
	}
	p.keys = inpututil.AppendJustReleasedKeys(p.keys[:0])
	for _, k := range p.keys {
		if rk, ok := keyMap[k]; ok {
			in.KeyUp(rk)
		}
	}

	p.pollTouch(in)
	p.pollMouse(in)
}

func (p *pointer) pollTouch(in *runner.InputHandler) {
	if p.active && !p.mouse {
		if inpututil.IsTouchJustReleased(p.id) {
			p.active = false
			in.TouchEnd()
		} else {
			_, y := ebiten.TouchPosition(p.id)
			in.TouchMove(float64(y))
		}
	}

	p.ids = inpututil.AppendJustPressedTouchIDs(p.ids[:0])
	if len(p.ids) == 0 || p.active {
		return
	}
	p.active, p.mouse, p.id = true, false, p.ids[0]
	_, y := ebiten.TouchPosition(p.id)
	in.TouchStart(float64(y))
}

func (p *pointer) pollMouse(in *runner.InputHandler) {
	_, y := ebiten.CursorPosition()
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && !p.active:
		p.active, p.mouse = true, true
		in.TouchStart(float64(y))
	case p.active && p.mouse && inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		p.active = false
		in.TouchEnd()
	case p.active && p.mouse:
		in.TouchMove(float64(y))
	}
}
