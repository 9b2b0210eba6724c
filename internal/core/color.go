package core

// Color is a foreground color for a screen cell.
type Color uint8

const (
	ColorDefault Color = iota
	ColorGray
	ColorCyan
	ColorYellow
	ColorGreen
	ColorMagenta
)
