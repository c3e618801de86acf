package gui

import "github.com/hajimehoshi/ebiten/v2"

// Fullscreener switches the host view in and out of fullscreen.
type Fullscreener interface {
	ToggleFullscreen() error
}

// WindowFullscreen toggles the ebiten window.
type WindowFullscreen struct{}

// ToggleFullscreen flips the window between fullscreen and windowed.
func (WindowFullscreen) ToggleFullscreen() error {
	ebiten.SetFullscreen(!ebiten.IsFullscreen())
	return nil
}
