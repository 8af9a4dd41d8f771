package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Colors used by the renderers.
const (
	ColorDefault Color = iota
	ColorCyan
	ColorYellow
	ColorBrightBlue
	ColorSkin
	ColorPink
	ColorGray
	ColorRed
	ColorGreen
)
