// Package wheel implements the Wheel of Fortune phrase game.
// Players guess one letter at a time; every occurrence of a found letter is
// revealed, and each miss costs a guess.
package wheel

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/guess-arcade/internal/config"
	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/registry"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

// ID is the registry identifier of the game.
const ID = "wheel"

// DefaultAttempts is the number of misses a player may make.
const DefaultAttempts = 10

// Game holds the rules of the phrase game.
type Game struct {
	attempts int
	pool     *Pool
	fixed    string
	pinned   bool // every deal uses fixed
}

// New creates the rules for phrases drawn from phrases.
func New(attempts int, phrases []string) (*Game, error) {
	if attempts <= 0 {
		return nil, fmt.Errorf("wheel: attempts must be positive, got %d: %w", attempts, core.ErrConfiguration)
	}
	pool, err := NewPool(phrases)
	if err != nil {
		return nil, err
	}
	return &Game{attempts: attempts, pool: pool}, nil
}

// FromConfig creates the rules from the wheel config section.
func FromConfig(cfg config.WheelConfig) (*Game, error) {
	return New(cfg.Attempts, cfg.Phrases)
}

// WithPhrase returns rules that always deal phrase.
// AI runs use it to play every phrase of the pool in turn.
func (g *Game) WithPhrase(phrase string) *Game {
	return &Game{attempts: g.attempts, pool: g.pool, fixed: phrase, pinned: true}
}

// ID returns "wheel".
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Wheel of Fortune" }

// Attempts returns the number of misses allowed.
func (g *Game) Attempts() int { return g.attempts }

// Phrases returns the phrase pool in order.
func (g *Game) Phrases() []string { return g.pool.Phrases() }

// PromptText asks for a letter.
func (g *Game) PromptText() string { return "Enter your guess (a single letter)" }

// Validate accepts one letter the player has not used this session,
// records it in tried and returns it lower case.
func (g *Game) Validate(input string, tried *core.LetterSet) (string, error) {
	letter, err := parseLetter(input)
	if err != nil {
		return "", err
	}
	if tried != nil && !tried.Add(letter) {
		return "", fmt.Errorf("you've already guessed %q: %w", letter, core.ErrInvalidGuess)
	}
	return string(letter), nil
}

// Deal draws a phrase and masks it.
func (g *Game) Deal(rng *rand.Rand) (session.Board, error) {
	phrase := g.fixed
	if !g.pinned {
		if rng == nil {
			return nil, fmt.Errorf("wheel: no random source: %w", core.ErrIllegalState)
		}
		phrase = g.pool.Generate(rng)
	}
	return NewBoard(phrase), nil
}

// FinalScore is the player's accumulated reveal score, whatever the outcome.
func (g *Game) FinalScore(_ core.State, _ int, player players.Player) int {
	if player == nil {
		return 0
	}
	return player.Score()
}

// Board grades letter guesses against one phrase.
type Board struct {
	view *MaskedView
}

// NewBoard masks phrase.
func NewBoard(phrase string) *Board {
	return &Board{view: NewMaskedView(phrase)}
}

// Apply reveals a letter.
// A miss costs one attempt. A hit is free and scores a point only when it
// uncovers something, so repeating a revealed letter neither costs nor scores.
func (b *Board) Apply(guess string) (session.Feedback, error) {
	letter, err := parseLetter(guess)
	if err != nil {
		return session.Feedback{}, fmt.Errorf("wheel: %w", err)
	}

	found, newly := b.view.Reveal(letter)
	fb := session.Feedback{
		Found:    found,
		Revealed: newly,
		Win:      b.view.Solved(),
	}
	if !found {
		fb.Cost = 1
	}
	if newly > 0 {
		fb.Award = 1
	}
	return fb, nil
}

// Solved reports whether the whole phrase is visible.
func (b *Board) Solved() bool { return b.view.Solved() }

// View returns the masked phrase.
func (b *Board) View() string { return b.view.String() }

// Secret returns the phrase.
func (b *Board) Secret() string { return b.view.Phrase() }

// Masked exposes the reveal state.
func (b *Board) Masked() *MaskedView { return b.view }

func parseLetter(input string) (rune, error) {
	input = strings.TrimSpace(input)
	if utf8.RuneCountInString(input) != 1 {
		return 0, fmt.Errorf("please enter a single letter: %w", core.ErrInvalidGuess)
	}
	r, _ := utf8.DecodeRuneInString(input)
	if !core.IsLetter(r) {
		return 0, fmt.Errorf("%q is not a letter: %w", r, core.ErrInvalidGuess)
	}
	return core.ToLower(r), nil
}

var (
	_ session.Rules = (*Game)(nil)
	_ session.Board = (*Board)(nil)
)

func init() {
	registry.Register(ID, "Wheel of Fortune", func(cfg config.Config) (session.Rules, error) {
		g, err := FromConfig(cfg.Wheel)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
