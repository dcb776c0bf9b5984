// Package tui provides the Bubble Tea front end for the guessing games.
// Each human prompt runs as its own inline Bubble Tea program, and session
// narration is printed between prompts.
package tui

import (
	"context"
	"fmt"
	"io"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/platform/narrate"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

// Display is the interactive terminal front end.
type Display struct {
	in     io.Reader // nil means the program's default (stdin)
	out    io.Writer
	styler Styler
}

// NewDisplay creates a display writing to out.
func NewDisplay(in io.Reader, out io.Writer) *Display {
	return &Display{in: in, out: out, styler: Styler{}}
}

// Notify prints the narration of a session event.
func (d *Display) Notify(evt session.Event) {
	lines := narrate.Lines(d.styler, evt)
	if _, ok := evt.(session.StartedEvent); ok {
		fmt.Fprintln(d.out)
	}
	for _, line := range lines {
		fmt.Fprintln(d.out, line)
	}
}

// Prompt asks for one guess.
func (d *Display) Prompt(ctx context.Context, p players.Prompt) (string, error) {
	return RunPrompt(ctx, d.in, d.out, p)
}

// Confirm asks a yes/no question until it gets an answer.
func (d *Display) Confirm(ctx context.Context, question string) (bool, error) {
	p := players.Prompt{Message: question + " (yes/no)"}
	for {
		answer, err := RunPrompt(ctx, d.in, d.out, p)
		if err != nil {
			return false, err
		}
		if yes, ok := narrate.ParseYesNo(answer); ok {
			return yes, nil
		}
		p.Problem = "please enter 'yes' or 'no'"
	}
}

// Leaderboard prints the ranked records.
func (d *Display) Leaderboard(title string, average, total int, records []core.GameRecord) {
	fmt.Fprintln(d.out)
	fmt.Fprint(d.out, RenderLeaderboard(title, average, total, records))
}

var (
	_ session.Observer = (*Display)(nil)
	_ players.Prompter = (*Display)(nil)
)
