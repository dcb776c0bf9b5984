package main

import (
	"context"
	"fmt"
	"maps"
	"math/rand"
	"os"
	"slices"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/guess-arcade/internal/config"
	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/platform/console"
	"github.com/vovakirdan/guess-arcade/internal/platform/tui"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/session"
	"github.com/vovakirdan/guess-arcade/internal/stats"
	"github.com/vovakirdan/guess-arcade/internal/storage"
)

// frontEnd is what a command needs from the terminal.
type frontEnd interface {
	session.Observer
	players.Prompter
	Confirm(ctx context.Context, question string) (bool, error)
	Leaderboard(title string, average, total int, records []core.GameRecord)
}

// app bundles everything a command builds from flags and config.
type app struct {
	cfg    config.Config
	logger *log.Logger
	rng    *rand.Rand
	store  stats.Store
	ui     frontEnd
	tui    bool
	close  func() error
}

func newApp(cmd *cobra.Command) (*app, error) {
	// A missing .env file is fine
	_ = godotenv.Load()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := config.ApplyEnv(&cfg, os.LookupEnv); err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = flagSeed
	}
	if flags.Changed("store") {
		cfg.Store = flagStore
	}
	if flags.Changed("top") {
		cfg.Top = flagTop
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "guess",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	} else if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, core.ErrConfiguration)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		rng:    cfg.Runtime().NewRand(),
		close:  func() error { return nil },
	}

	switch cfg.Store {
	case config.StoreSQLite:
		db, err := storage.OpenMemory()
		if err != nil {
			return nil, err
		}
		a.store = db
		a.close = db.Close
	default:
		a.store = stats.NewRecord()
	}

	stdinTTY := term.IsTerminal(int(os.Stdin.Fd()))
	stdoutTTY := term.IsTerminal(int(os.Stdout.Fd()))
	if !flagPlain && stdinTTY && stdoutTTY {
		a.ui = tui.NewDisplay(nil, os.Stdout)
		a.tui = true
	} else {
		a.ui = console.New(os.Stdin, os.Stdout, stdoutTTY && !flagPlain)
	}

	logger.Debug("app ready", "store", cfg.Store, "seed", cfg.Seed, "tui", a.tui)
	return a, nil
}

// runner builds a runner narrating to the front end and then to extra.
func (a *app) runner(extra ...session.Observer) *session.Runner {
	observers := append(session.Observers{a.ui}, extra...)
	return session.NewRunner(a.store,
		session.WithRand(a.rng),
		session.WithObserver(observers),
		session.WithLogger(a.logger),
	)
}

// leaderboard prints the run summary: average over every record and the
// best cfg.Top records.
func (a *app) leaderboard(title string) error {
	avg, err := a.store.Average()
	if err != nil {
		return err
	}
	all, err := a.store.Records()
	if err != nil {
		return err
	}
	top, err := a.store.Top(a.cfg.Top)
	if err != nil {
		return err
	}
	a.ui.Leaderboard(title, avg, len(all), top)

	if db, ok := a.store.(*storage.Store); ok {
		perGame, err := db.AllGamesStats()
		if err != nil {
			return err
		}
		for _, id := range slices.Sorted(maps.Keys(perGame)) {
			gs := perGame[id]
			a.logger.Info("game stats",
				"game", id,
				"played", gs.GamesCount,
				"wins", gs.Wins,
				"best", gs.HighScore,
				"avg", fmt.Sprintf("%.2f", gs.AvgScore),
				"total", gs.TotalScore,
				"last", gs.LastPlayed.Format(time.RFC3339),
			)
		}
	}
	return nil
}
