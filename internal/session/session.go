package session

import (
	"context"
	"fmt"
	"math/rand"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
)

var sessionSeq atomic.Uint64

// Session is one playthrough of a game by one player.
//
// States move Created -> InProgress -> {Won, Exhausted}. Exactly one
// GameRecord is produced when a terminal state is reached.
type Session struct {
	id       string
	rules    Rules
	player   players.Player
	rng      *rand.Rand
	observer Observer
	logger   *log.Logger

	state     core.State
	board     Board
	remaining int
	turn      int
	record    core.GameRecord
}

// New creates a session in the Created state.
// A nil player is allowed, but Step fails until one is bound.
func New(rules Rules, player players.Player, opts ...Option) *Session {
	s := newSettings(opts)
	gameID := "game"
	if rules != nil {
		gameID = rules.ID()
	}
	return &Session{
		id:       fmt.Sprintf("%s-%d", gameID, sessionSeq.Add(1)),
		rules:    rules,
		player:   player,
		rng:      s.rng,
		observer: s.observer,
		logger:   s.logger,
		state:    core.StateCreated,
	}
}

// Bind sets the player before the session starts.
func (s *Session) Bind(player players.Player) error {
	if s.state != core.StateCreated {
		return fmt.Errorf("session %s: cannot bind a player while %s: %w", s.id, s.state, core.ErrIllegalState)
	}
	s.player = player
	return nil
}

// Start deals the secret, resets the player and the attempt budget.
// A secret with nothing to guess is won immediately.
func (s *Session) Start() error {
	if s.state != core.StateCreated {
		return fmt.Errorf("session %s: start while %s: %w", s.id, s.state, core.ErrIllegalState)
	}
	if s.rules == nil {
		return fmt.Errorf("session %s: no game rules: %w", s.id, core.ErrIllegalState)
	}

	board, err := s.rules.Deal(s.rng)
	if err != nil {
		return fmt.Errorf("session %s: dealing secret: %w", s.id, err)
	}

	s.board = board
	s.remaining = s.rules.Attempts()
	s.turn = 0
	if s.player != nil {
		s.player.Reset()
	}
	s.state = core.StateInProgress

	s.logger.Debug("session started", "session", s.id, "game", s.rules.ID(), "player", s.playerID(), "attempts", s.remaining)
	s.notify(StartedEvent{
		SessionID: s.id,
		GameID:    s.rules.ID(),
		Title:     s.rules.Title(),
		PlayerID:  s.playerID(),
		Attempts:  s.remaining,
		View:      board.View(),
	})

	if board.Solved() {
		s.finish(core.StateWon)
	}
	return nil
}

// Step plays one turn: it pulls a guess from the player, grades it and
// applies the cost and award. A guess the board rejects as invalid is
// returned as an error and charges nothing.
func (s *Session) Step(ctx context.Context) error {
	if s.state != core.StateInProgress {
		return fmt.Errorf("session %s: step while %s: %w", s.id, s.state, core.ErrIllegalState)
	}
	if s.player == nil {
		return fmt.Errorf("session %s: no player bound: %w", s.id, core.ErrIllegalState)
	}

	guess, err := s.player.NextGuess(ctx)
	if err != nil {
		return fmt.Errorf("session %s: %w", s.id, err)
	}

	fb, err := s.board.Apply(guess)
	if err != nil {
		return fmt.Errorf("session %s: guess %q: %w", s.id, guess, err)
	}

	s.turn++
	s.remaining -= fb.Cost
	for i := 0; i < fb.Award; i++ {
		s.player.IncrementScore()
	}

	s.logger.Debug("turn",
		"session", s.id,
		"player", s.player.ID(),
		"guess", guess,
		"exact", fb.Exact,
		"partial", fb.Partial,
		"found", fb.Found,
		"remaining", s.remaining,
	)
	s.notify(TurnEvent{
		SessionID: s.id,
		GameID:    s.rules.ID(),
		PlayerID:  s.player.ID(),
		Turn:      s.turn,
		Guess:     guess,
		Feedback:  fb,
		Remaining: s.remaining,
		Score:     s.player.Score(),
		View:      s.board.View(),
	})

	switch {
	case s.board.Solved():
		s.finish(core.StateWon)
	case s.remaining <= 0:
		s.finish(core.StateExhausted)
	}
	return nil
}

// Play starts the session if needed and steps until it ends.
func (s *Session) Play(ctx context.Context) (core.GameRecord, error) {
	if s.state == core.StateCreated {
		if err := s.Start(); err != nil {
			return core.GameRecord{}, err
		}
	}
	for !s.state.Terminal() {
		if err := s.Step(ctx); err != nil {
			return core.GameRecord{}, err
		}
	}
	return s.record, nil
}

func (s *Session) finish(state core.State) {
	if s.remaining < 0 {
		s.remaining = 0
	}
	s.state = state
	s.record = core.GameRecord{
		GameID:   s.rules.ID(),
		PlayerID: s.playerID(),
		Score:    s.rules.FinalScore(state, s.remaining, s.player),
		Outcome:  state,
	}

	s.logger.Info("session ended",
		"session", s.id,
		"game", s.record.GameID,
		"player", s.record.PlayerID,
		"outcome", state,
		"score", s.record.Score,
	)
	s.notify(EndedEvent{
		SessionID: s.id,
		Record:    s.record,
		Remaining: s.remaining,
		Secret:    s.board.Secret(),
	})
}

func (s *Session) notify(evt Event) {
	if s.observer != nil {
		s.observer.Notify(evt)
	}
}

func (s *Session) playerID() string {
	if s.player == nil {
		return ""
	}
	return s.player.ID()
}

// ID returns the session identifier.
func (s *Session) ID() string { return s.id }

// State returns the current lifecycle state.
func (s *Session) State() core.State { return s.state }

// Remaining returns the attempts left.
func (s *Session) Remaining() int { return s.remaining }

// Turn returns the number of graded guesses so far.
func (s *Session) Turn() int { return s.turn }

// View returns the masked secret, or "" before Start.
func (s *Session) View() string {
	if s.board == nil {
		return ""
	}
	return s.board.View()
}

// Record returns the result once the session has ended.
func (s *Session) Record() (core.GameRecord, bool) {
	return s.record, s.state == core.StateWon || s.state == core.StateExhausted
}
