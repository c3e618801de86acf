package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/dusk-runner/internal/runner"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		msg      tea.KeyMsg
		expected runner.Key
		quit     bool
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, runner.KeyArrowUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, runner.KeyArrowUp, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'d'}}, runner.KeyArrowRight, false},
		{tea.KeyMsg{Type: tea.KeyLeft}, runner.KeyArrowLeft, false},
		{tea.KeyMsg{Type: tea.KeyEnter}, runner.KeyEnter, false},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "", true},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, "", true},
		{tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, "", false},
	}

	for _, tc := range tests {
		k, quit := km.MapKey(tc.msg)
		if k != tc.expected || quit != tc.quit {
			t.Errorf("MapKey(%q) = (%q, %v), expected (%q, %v)", tc.msg.String(), k, quit, tc.expected, tc.quit)
		}
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := NewHoldTracker(100 * time.Millisecond)

	if !h.Press(runner.KeyArrowRight, start) {
		t.Error("first press should be fresh")
	}
	if h.Press(runner.KeyArrowRight, start.Add(60*time.Millisecond)) {
		t.Error("repeat within hold should not be fresh")
	}

	// The repeat extended the hold to 160ms.
	if released := h.Expire(start.Add(150 * time.Millisecond)); len(released) != 0 {
		t.Errorf("Expire(150ms) = %v, expected none", released)
	}
	released := h.Expire(start.Add(160 * time.Millisecond))
	if len(released) != 1 || released[0] != runner.KeyArrowRight {
		t.Errorf("Expire(160ms) = %v, expected [ArrowRight]", released)
	}
	if h.Held() != 0 {
		t.Errorf("Held() = %d after expiry", h.Held())
	}
	if !h.Press(runner.KeyArrowRight, start.Add(200*time.Millisecond)) {
		t.Error("press after release should be fresh again")
	}

	h.Press(runner.KeyArrowUp, start.Add(200*time.Millisecond))
	h.Reset()
	if h.Held() != 0 {
		t.Errorf("Held() = %d after Reset, expected 0", h.Held())
	}
	if released := h.Expire(start.Add(time.Hour)); len(released) != 0 {
		t.Errorf("Expire() = %v after Reset, expected none", released)
	}
}
