package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dusk-runner/internal/runner"
)

// KeyMapper translates Bubble Tea key messages to runner keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a runner key.
// Returns the key (empty if unbound) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k runner.Key, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return "", true
	case "up", "w", " ":
		return runner.KeyArrowUp, false
	case "down", "s":
		return runner.KeyArrowDown, false
	case "left", "a":
		return runner.KeyArrowLeft, false
	case "right", "d":
		return runner.KeyArrowRight, false
	case "enter":
		return runner.KeyEnter, false
	}
	return "", false
}

// IsBack reports whether the key returns to the menu.
func (km *KeyMapper) IsBack(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "esc", "b":
		return true
	}
	return false
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}
	return MenuActionNone
}

// HoldTracker turns terminal key presses into press and release pairs.
// Terminals deliver repeats while a key is held but never a release, so a key
// counts as held until hold elapses without a repeat.
type HoldTracker struct {
	hold    time.Duration
	expires map[runner.Key]time.Time
}

// NewHoldTracker creates a tracker that releases keys hold after their last press.
func NewHoldTracker(hold time.Duration) *HoldTracker {
	return &HoldTracker{
		hold:    hold,
		expires: make(map[runner.Key]time.Time),
	}
}

// Press records a press at now. It returns true for a fresh press and false
// for a repeat of a key already held.
func (h *HoldTracker) Press(k runner.Key, now time.Time) bool {
	_, held := h.expires[k]
	h.expires[k] = now.Add(h.hold)
	return !held
}

// Expire returns the keys whose hold ran out by now and forgets them.
func (h *HoldTracker) Expire(now time.Time) []runner.Key {
	var released []runner.Key
	for k, at := range h.expires {
		if !now.Before(at) {
			released = append(released, k)
			delete(h.expires, k)
		}
	}
	return released
}

// Held returns the number of keys currently held.
func (h *HoldTracker) Held() int {
	return len(h.expires)
}

// Reset forgets every held key.
func (h *HoldTracker) Reset() {
	clear(h.expires)
}
