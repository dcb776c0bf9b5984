package console

import (
	"strings"

	"github.com/TwiN/go-color"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// pegColors maps display colors to ANSI sequences.
var pegColors = map[core.Color]string{
	core.ColorRed:     color.Red,
	core.ColorGreen:   color.Green,
	core.ColorYellow:  color.Yellow,
	core.ColorBlue:    color.Blue,
	core.ColorMagenta: color.Purple,
	core.ColorCyan:    color.Cyan,
	core.ColorWhite:   color.White,
	core.ColorOrange:  color.Yellow,
}

// Styler colors narration with ANSI escapes.
type Styler struct{}

// Title renders s bold.
func (Styler) Title(s string) string { return color.Ize(color.Bold, s) }

// Code colors every peg symbol.
func (Styler) Code(code string) string {
	var b strings.Builder
	for _, r := range code {
		seq, ok := pegColors[core.SymbolColor(r)]
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteString(color.Ize(seq, string(r)))
	}
	return b.String()
}

// Phrase dims the hidden letters.
func (Styler) Phrase(view string) string {
	var b strings.Builder
	for _, r := range view {
		if r == '*' {
			b.WriteString(color.Ize(color.Gray, "*"))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Good renders s green.
func (Styler) Good(s string) string { return color.Ize(color.Green, s) }

// Bad renders s red.
func (Styler) Bad(s string) string { return color.Ize(color.Red, s) }
