package core

// Color is a palette color for a screen cell, used for both foreground
// and background. Values map onto the 16 basic ANSI colors.
type Color uint8

// Palette colors. ColorDefault leaves the terminal's own color in place.
const (
	ColorDefault Color = iota
	ColorBlack
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorGray
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
)

// ANSI returns the ANSI palette index for the color, or -1 for ColorDefault.
func (c Color) ANSI() int {
	if c == ColorDefault || c > ColorBrightWhite {
		return -1
	}
	return int(c) - 1
}
