package runner

import (
	"github.com/vovakirdan/dusk-runner/internal/config"
	"github.com/vovakirdan/dusk-runner/internal/core"
)

// Key is a raw input name as reported by the host.
type Key string

// Keys the input handler understands. Swipe keys are synthesized from touch drags.
const (
	KeyArrowUp    Key = "ArrowUp"
	KeyArrowDown  Key = "ArrowDown"
	KeyArrowLeft  Key = "ArrowLeft"
	KeyArrowRight Key = "ArrowRight"
	KeySwipeUp    Key = "SwipeUp"
	KeySwipeDown  Key = "SwipeDown"
	KeyEnter      Key = "Enter"
)

// isDirectional reports whether k is one of the four arrow keys.
func isDirectional(k Key) bool {
	switch k {
	case KeyArrowUp, KeyArrowDown, KeyArrowLeft, KeyArrowRight:
		return true
	}
	return false
}

// InputHandler tracks the currently held keys and swipes as an ordered list.
// Hosts call its methods from their event handlers; the game reads Actions
// once per frame on the same goroutine.
type InputHandler struct {
	keys      []Key
	touchY    float64
	touching  bool
	threshold float64
	legacy    bool

	gameOver func() bool
	restart  func()
}

// NewInputHandler creates an input handler. The restart hooks are bound by the Game.
func NewInputHandler(cfg config.InputConfig) *InputHandler {
	h := &InputHandler{
		keys:     make([]Key, 0, 4),
		gameOver: func() bool { return false },
		restart:  func() {},
	}
	h.Tune(cfg)
	return h
}

// Tune applies swipe threshold and key list mode.
func (h *InputHandler) Tune(cfg config.InputConfig) {
	h.threshold = cfg.SwipeThreshold
	h.legacy = cfg.LegacyKeyList
}

// bind wires the handler to the game-over flag and restart action.
func (h *InputHandler) bind(gameOver func() bool, restart func()) {
	h.gameOver = gameOver
	h.restart = restart
}

// KeyDown records a pressed key. Enter restarts a finished run.
func (h *InputHandler) KeyDown(k Key) {
	if isDirectional(k) && h.shouldAdd(k) {
		h.keys = append(h.keys, k)
	} else if k == KeyEnter && h.gameOver() {
		h.restart()
	}
}

// shouldAdd decides whether a directional key is appended.
// Legacy mode tests the index for truthiness: only a key sitting at index 0
// counts as present, so repeats of keys at later positions are appended again.
func (h *InputHandler) shouldAdd(k Key) bool {
	idx := h.indexOf(k)
	if h.legacy {
		return idx != 0
	}
	return idx == -1
}

// KeyUp releases a directional key.
func (h *InputHandler) KeyUp(k Key) {
	if isDirectional(k) {
		h.remove(k)
	}
}

// TouchStart begins a swipe at vertical position y.
func (h *InputHandler) TouchStart(y float64) {
	h.touchY = y
	h.touching = true
}

// TouchMove injects SwipeUp or SwipeDown once the drag passes the threshold.
// A downward swipe also restarts a finished run.
func (h *InputHandler) TouchMove(y float64) {
	if !h.touching {
		return
	}
	swipe := y - h.touchY
	if swipe < -h.threshold && h.indexOf(KeySwipeUp) == -1 {
		h.keys = append(h.keys, KeySwipeUp)
	} else if swipe > h.threshold && h.indexOf(KeySwipeDown) == -1 {
		h.keys = append(h.keys, KeySwipeDown)
		if h.gameOver() {
			h.restart()
		}
	}
}

// TouchEnd clears both swipe keys.
func (h *InputHandler) TouchEnd() {
	h.touching = false
	h.remove(KeySwipeUp)
	h.remove(KeySwipeDown)
}

// remove deletes the first occurrence of k. In legacy mode an absent key
// removes the last entry instead, like splice(-1, 1).
func (h *InputHandler) remove(k Key) {
	idx := h.indexOf(k)
	if idx == -1 {
		if !h.legacy || len(h.keys) == 0 {
			return
		}
		idx = len(h.keys) - 1
	}
	h.keys = append(h.keys[:idx], h.keys[idx+1:]...)
}

func (h *InputHandler) indexOf(k Key) int {
	for i, key := range h.keys {
		if key == k {
			return i
		}
	}
	return -1
}

// Keys returns a copy of the held key list in press order.
func (h *InputHandler) Keys() []Key {
	out := make([]Key, len(h.keys))
	copy(out, h.keys)
	return out
}

// Held reports whether any key or swipe entry is present.
func (h *InputHandler) Held() bool {
	return len(h.keys) > 0
}

// Actions maps the held keys to game actions.
func (h *InputHandler) Actions() core.ActionSet {
	var set core.ActionSet
	for _, k := range h.keys {
		switch k {
		case KeyArrowUp, KeySwipeUp:
			set = set.With(core.ActionUp)
		case KeyArrowDown, KeySwipeDown:
			set = set.With(core.ActionDown)
		case KeyArrowLeft:
			set = set.With(core.ActionLeft)
		case KeyArrowRight:
			set = set.With(core.ActionRight)
		}
	}
	return set
}
