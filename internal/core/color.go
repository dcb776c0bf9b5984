package core

// Color is a front-end neutral display color for a code symbol.
// The TUI maps it to lipgloss styles, the plain console to ANSI escapes.
type Color uint8

// Display colors for code symbols.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorOrange
)

// SymbolColor returns the display color for a code symbol.
// Unknown symbols render in the default color.
func SymbolColor(symbol rune) Color {
	switch ToLower(symbol) {
	case 'r':
		return ColorRed
	case 'g':
		return ColorGreen
	case 'y':
		return ColorYellow
	case 'b':
		return ColorBlue
	case 'p', 'm':
		return ColorMagenta
	case 'c':
		return ColorCyan
	case 'w':
		return ColorWhite
	case 'o':
		return ColorOrange
	default:
		return ColorDefault
	}
}
