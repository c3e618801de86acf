package core

// Color is a palette index shared by every host. The terminal host maps it to
// ANSI 256 colors, the window host to RGBA.
type Color uint8

// Palette used by the runner.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorWhite
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorCyan
	ColorOrange
	ColorGray
	ColorBrown
)
