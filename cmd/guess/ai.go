package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/games/wheel"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/registry"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

var flagHuman bool

var aiCmd = &cobra.Command{
	Use:   "ai",
	Short: "Let the computer players guess every phrase",
	Long: `Plays Wheel of Fortune once for every configured phrase and every
configured computer player, then prints the average score and the
leaderboard.

Computer strategies:
  basic        - Random untried letters
  intermediate - Common English letters first, then random
  advanced     - Common letters, then likely neighbours, then random

Examples:
  guess ai
  guess ai --seed 42 --verbose
  guess ai --human --name Alice`,
	Args: cobra.NoArgs,
	RunE: runAI,
}

func init() {
	aiCmd.Flags().BoolVar(&flagHuman, "human", false, "Also play every phrase yourself")
	aiCmd.Flags().StringVar(&flagName, "name", "User1", "Player name used in the records with --human")
}

func runAI(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.close()

	rules, err := registry.Create(wheel.ID, a.cfg)
	if err != nil {
		return err
	}
	game, ok := rules.(*wheel.Game)
	if !ok {
		return fmt.Errorf("game %q is not a phrase game: %w", wheel.ID, core.ErrConfiguration)
	}

	matches, err := aiMatches(a, game)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	_, err = a.runner(progress(a, len(matches))).Run(ctx, matches)
	switch {
	case errors.Is(err, core.ErrInputClosed), errors.Is(err, context.Canceled):
		a.logger.Debug("run stopped", "reason", err)
	case err != nil:
		return err
	}

	return a.leaderboard("All Games Results")
}

// aiMatches pairs every phrase with every configured computer player, in
// phrase order. With --human a human match closes each phrase.
func aiMatches(a *app, game *wheel.Game) ([]session.Match, error) {
	computers := make([]players.Player, 0, len(a.cfg.AI.Players))
	for _, pc := range a.cfg.AI.Players {
		strategy, err := players.StrategyByName(pc.Strategy)
		if err != nil {
			return nil, fmt.Errorf("ai player %q: %w", pc.ID, err)
		}
		computers = append(computers, players.NewComputer(pc.ID, strategy, a.rng))
	}

	var human players.Player
	if flagHuman {
		human = players.NewHuman(flagName, a.ui, game.PromptText(), game.Validate)
	}

	var matches []session.Match
	for _, phrase := range game.Phrases() {
		rules := game.WithPhrase(phrase)
		for _, c := range computers {
			matches = append(matches, session.Match{Rules: rules, Player: c})
		}
		if human != nil {
			matches = append(matches, session.Match{Rules: rules, Player: human})
		}
	}
	return matches, nil
}

// progress logs each finished game of a run of total games.
func progress(a *app, total int) session.Observer {
	done := 0
	return session.ObserverFunc(func(evt session.Event) {
		ended, ok := evt.(session.EndedEvent)
		if !ok {
			return
		}
		done++
		a.logger.Info("game finished",
			"n", fmt.Sprintf("%d/%d", done, total),
			"player", ended.Record.PlayerID,
			"score", ended.Record.Score,
		)
	})
}
