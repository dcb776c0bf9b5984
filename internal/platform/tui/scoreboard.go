package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/platform/narrate"
)

// Scoreboard layout constants
const (
	rankWidth    = 6
	playerWidth  = 16
	gameWidth    = 12
	scoreWidth   = 7
	outcomeWidth = 11
)

// newScoreTable creates a read-only table of ranked records.
func newScoreTable(records []core.GameRecord) table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: rankWidth},
		{Title: "Player", Width: playerWidth},
		{Title: "Game", Width: gameWidth},
		{Title: "Score", Width: scoreWidth},
		{Title: "Outcome", Width: outcomeWidth},
	}

	rows := make([]table.Row, len(records))
	for i, rec := range records {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			rec.PlayerID,
			rec.GameID,
			fmt.Sprintf("%d", rec.Score),
			rec.Outcome.String(),
		}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)+3), // Header and its border take two lines
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	// Nothing is selectable, so the first row must not look highlighted.
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t
}

// RenderLeaderboard renders a titled, bordered table of ranked records
// with the games count and average above it.
func RenderLeaderboard(title string, average, total int, records []core.GameRecord) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(narrate.Summary(total, average))
	b.WriteString("\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(records) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 2)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No games recorded.")))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(tableStyle.Render(newScoreTable(records).View()))
	b.WriteString("\n")
	return b.String()
}
