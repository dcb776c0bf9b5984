// Package console is the plain line-based front end.
// It reads guesses line by line and prints narration with ANSI colors.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/platform/narrate"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

// Console prompts on a line reader and narrates to a writer.
//
// Reads run on a background goroutine so a prompt can give up when its
// context is cancelled. A line typed after that is handed to the next prompt.
type Console struct {
	in      *bufio.Reader
	out     io.Writer
	styler  narrate.Styler
	lines   chan lineResult
	pending bool // a read is in flight
}

type lineResult struct {
	line string
	err  error
}

// New creates a console. With colors false, output is plain text.
func New(in io.Reader, out io.Writer, colors bool) *Console {
	var st narrate.Styler = narrate.Plain{}
	if colors {
		st = Styler{}
	}
	return &Console{
		in:     bufio.NewReader(in),
		out:    out,
		styler: st,
		lines:  make(chan lineResult, 1),
	}
}

// Notify prints the narration of a session event.
func (c *Console) Notify(evt session.Event) {
	for _, line := range narrate.Lines(c.styler, evt) {
		fmt.Fprintln(c.out, line)
	}
	if _, ok := evt.(session.EndedEvent); ok {
		fmt.Fprintln(c.out)
	}
}

// Prompt prints the request and reads one line.
// End of input is reported as core.ErrInputClosed.
func (c *Console) Prompt(ctx context.Context, p players.Prompt) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if p.Problem != "" {
		fmt.Fprintln(c.out, c.styler.Bad("Invalid input: "+p.Problem))
	}
	if p.PlayerID != "" {
		fmt.Fprintf(c.out, "[%s] ", p.PlayerID)
	}
	fmt.Fprintf(c.out, "%s: ", p.Message)
	return c.readLine(ctx)
}

// Confirm asks a yes/no question until it gets "yes" or "no".
func (c *Console) Confirm(ctx context.Context, question string) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		fmt.Fprintf(c.out, "%s (yes/no): ", question)
		line, err := c.readLine(ctx)
		if err != nil {
			return false, err
		}
		if yes, ok := narrate.ParseYesNo(line); ok {
			return yes, nil
		}
		fmt.Fprintln(c.out, c.styler.Bad("Invalid input. Please enter 'yes' or 'no'."))
	}
}

// Leaderboard prints a ranked list of records.
func (c *Console) Leaderboard(title string, average int, total int, records []core.GameRecord) {
	fmt.Fprintln(c.out, c.styler.Title(title))
	fmt.Fprintln(c.out, narrate.Summary(total, average))
	if len(records) == 0 {
		fmt.Fprintln(c.out, "No games recorded.")
		return
	}
	for i, rec := range records {
		fmt.Fprintf(c.out, "%2d. %-14s %-12s %4d  %s\n", i+1, rec.PlayerID, rec.GameID, rec.Score, rec.Outcome)
	}
}

// readLine waits for the next line or for ctx to end.
func (c *Console) readLine(ctx context.Context) (string, error) {
	if !c.pending {
		c.pending = true
		go func() {
			line, err := c.in.ReadString('\n')
			c.lines <- lineResult{line: line, err: err}
		}()
	}

	var r lineResult
	select {
	case <-ctx.Done():
		fmt.Fprintln(c.out)
		return "", ctx.Err()
	case r = <-c.lines:
		c.pending = false
	}

	line, err := r.line, r.err
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return "", fmt.Errorf("console: %w", core.ErrInputClosed)
		}
		return "", fmt.Errorf("console: reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

var (
	_ session.Observer = (*Console)(nil)
	_ players.Prompter = (*Console)(nil)
)
