package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/platform/tui"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/registry"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

var flagName string

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game. Without a game id the TUI shows
a picker menu.

After every game you are asked whether to play another one. The average
score and the leaderboard of the run are printed at the end.

Controls:
  Enter      - Submit guess
  Esc/Ctrl+C - Quit

Examples:
  guess play mastermind
  guess play wheel --name Alice
  guess play --seed 7`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagName, "name", "User1", "Player name used in the records")
}

func runPlay(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	gameID, err := pickGame(a, args)
	if err != nil || gameID == "" {
		return err
	}

	rules, err := registry.Create(gameID, a.cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	human := players.NewHuman(flagName, a.ui, rules.PromptText(), rules.Validate)
	match := session.Match{Rules: rules, Player: human}
	again := func(ctx context.Context) (bool, error) {
		return a.ui.Confirm(ctx, "Do you want to play another game?")
	}

	_, err = a.runner().Repeat(ctx, match, again)
	switch {
	case errors.Is(err, core.ErrInputClosed), errors.Is(err, context.Canceled):
		// Leaving mid-game still prints the run so far
		a.logger.Debug("player left", "game", gameID, "reason", err)
	case err != nil:
		return err
	}

	return a.leaderboard(rules.Title())
}

// pickGame returns the game id from args, or from the menu when running
// in the TUI. An empty id means the menu was closed.
func pickGame(a *app, args []string) (string, error) {
	if len(args) == 1 {
		if !registry.Exists(args[0]) {
			return "", fmt.Errorf("unknown game %q, run 'guess list' to see available games", args[0])
		}
		return args[0], nil
	}
	if !a.tui {
		return "", errors.New("no game given, run 'guess list' to see available games")
	}

	width := 80
	if w, _, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
	}
	return tui.RunMenu(registry.List(), width)
}
