package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
)

// Collector receives one record per finished session.
type Collector interface {
	Add(rec core.GameRecord) error
}

// Match pairs game rules with the player who plays them.
type Match struct {
	Rules  Rules
	Player players.Player
}

// Runner plays sessions back to back and hands every result to a Collector.
// A failing session is logged and recorded as an aborted zero-score result;
// only a cancelled context or closed human input stops the run.
type Runner struct {
	collector Collector
	opts      []Option
	settings  settings
}

// NewRunner creates a runner. The options apply to every session it plays,
// so all of them draw from one random source.
func NewRunner(collector Collector, opts ...Option) *Runner {
	s := newSettings(opts)
	return &Runner{
		collector: collector,
		settings:  s,
		opts: []Option{
			WithRand(s.rng),
			WithObserver(s.observer),
			WithLogger(s.logger),
		},
	}
}

// Run plays every match once, in order.
// It returns the records collected so far when the run stops early.
func (r *Runner) Run(ctx context.Context, matches []Match) ([]core.GameRecord, error) {
	records := make([]core.GameRecord, 0, len(matches))
	for _, m := range matches {
		rec, err := r.play(ctx, m)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// Repeat plays m until again reports false.
// again is asked after every session, aborted ones included.
func (r *Runner) Repeat(ctx context.Context, m Match, again func(ctx context.Context) (bool, error)) ([]core.GameRecord, error) {
	var records []core.GameRecord
	for {
		rec, err := r.play(ctx, m)
		if err != nil {
			return records, err
		}
		records = append(records, rec)

		more, err := again(ctx)
		if err != nil {
			return records, fmt.Errorf("session: asking to play again: %w", err)
		}
		if !more {
			return records, nil
		}
	}
}

func (r *Runner) play(ctx context.Context, m Match) (core.GameRecord, error) {
	if err := ctx.Err(); err != nil {
		return core.GameRecord{}, err
	}

	s := New(m.Rules, m.Player, r.opts...)
	rec, err := s.Play(ctx)
	if err != nil {
		if stopsRun(ctx, err) {
			return core.GameRecord{}, err
		}
		rec = abortedRecord(m)
		r.settings.logger.Error("session aborted",
			"session", s.ID(),
			"game", rec.GameID,
			"player", rec.PlayerID,
			"error", err,
		)
	}

	if r.collector != nil {
		if err := r.collector.Add(rec); err != nil {
			return rec, fmt.Errorf("session: recording result: %w", err)
		}
	}
	return rec, nil
}

func stopsRun(ctx context.Context, err error) bool {
	return ctx.Err() != nil ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded) ||
		errors.Is(err, core.ErrInputClosed)
}

func abortedRecord(m Match) core.GameRecord {
	rec := core.GameRecord{Outcome: core.StateAborted}
	if m.Rules != nil {
		rec.GameID = m.Rules.ID()
	}
	if m.Player != nil {
		rec.PlayerID = m.Player.ID()
	}
	return rec
}
