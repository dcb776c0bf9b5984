package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/platform/narrate"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true),
	core.ColorMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")).Bold(true),
	core.ColorCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")).Bold(true),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorOrange:  lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
}

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).
			Padding(0, 1)
	hiddenStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	letterStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true)
	goodStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	problemStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Italic(true)
)

// Styler renders narration with lipgloss.
type Styler struct{}

// Title renders a session header.
func (Styler) Title(s string) string { return titleStyle.Render(s) }

// Code renders each peg in its color.
func (Styler) Code(code string) string {
	var sb strings.Builder
	for _, r := range code {
		style, ok := colorStyles[core.SymbolColor(r)]
		if !ok {
			style = colorStyles[core.ColorDefault]
		}
		sb.WriteString(style.Render(string(r)))
	}
	return sb.String()
}

// Phrase dims hidden letters and highlights revealed ones.
// Adjacent runes of the same kind are styled as one run.
func (Styler) Phrase(view string) string {
	var sb strings.Builder
	runes := []rune(view)
	for i := 0; i < len(runes); {
		hidden := runes[i] == '*'
		j := i
		for j < len(runes) && (runes[j] == '*') == hidden {
			j++
		}
		run := string(runes[i:j])
		if hidden {
			sb.WriteString(hiddenStyle.Render(run))
		} else {
			sb.WriteString(letterStyle.Render(run))
		}
		i = j
	}
	return sb.String()
}

// Good renders a success message.
func (Styler) Good(s string) string { return goodStyle.Render(s) }

// Bad renders a failure message.
func (Styler) Bad(s string) string { return badStyle.Render(s) }

var _ narrate.Styler = Styler{}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
