package core

// Color is a foreground color for a screen cell.
// The platform maps each value onto an ANSI 256-color code.
type Color uint8

// Palette for the ice field.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
	ColorNavy
)
