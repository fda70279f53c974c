package core

// Color is a foreground color for a screen cell.
// Values map to ANSI codes in the platform renderer.
type Color uint8

// Palette shared by games and the renderer.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightWhite
	ColorOrange
	ColorGray
)
