// Package mastermind implements the color-code guessing game.
// A secret code of colored pegs is dealt; each guess is graded with exact
// and partial peg counts until the code is cracked or attempts run out.
package mastermind

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/config"
	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/registry"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

// ID is the registry identifier of the game.
const ID = "mastermind"

// Game holds the rules of the color-code game.
type Game struct {
	attempts  int
	generator Generator
}

// New creates the rules for codes of length pegs drawn from colors.
func New(attempts, length int, colors []Color) (*Game, error) {
	if attempts <= 0 {
		return nil, fmt.Errorf("mastermind: attempts must be positive, got %d: %w", attempts, core.ErrConfiguration)
	}
	if length <= 0 {
		return nil, fmt.Errorf("mastermind: code length must be positive, got %d: %w", length, core.ErrConfiguration)
	}
	if len(colors) == 0 {
		return nil, fmt.Errorf("mastermind: no colors: %w", core.ErrConfiguration)
	}
	return &Game{
		attempts:  attempts,
		generator: Generator{Colors: colors, Length: length},
	}, nil
}

// FromConfig creates the rules from the mastermind config section.
func FromConfig(cfg config.MastermindConfig) (*Game, error) {
	var colors []Color
	for _, r := range strings.ToUpper(cfg.Colors) {
		if r == ' ' || r == ',' {
			continue
		}
		if !inAlphabet(Color(r), colors) {
			colors = append(colors, Color(r))
		}
	}
	return New(cfg.Attempts, cfg.Length, colors)
}

// ID returns "mastermind".
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "MasterMind" }

// Attempts returns the attempt budget.
func (g *Game) Attempts() int { return g.attempts }

// Colors returns the peg alphabet.
func (g *Game) Colors() []Color { return g.generator.Colors }

// Length returns the number of pegs per code.
func (g *Game) Length() int { return g.generator.Length }

// PromptText asks for a full code.
func (g *Game) PromptText() string {
	return fmt.Sprintf("Enter your guess (%d colors from %s)", g.generator.Length, alphabetList(g.generator.Colors))
}

// Validate accepts a code of the right length over the alphabet and returns
// it upper case. Repeated codes are allowed, so tried is not consulted.
func (g *Game) Validate(input string, _ *core.LetterSet) (string, error) {
	code, err := ParseCode(input, g.generator.Colors, g.generator.Length)
	if err != nil {
		return "", err
	}
	return code.String(), nil
}

// Deal draws a new secret code.
func (g *Game) Deal(rng *rand.Rand) (session.Board, error) {
	if rng == nil {
		return nil, fmt.Errorf("mastermind: no random source: %w", core.ErrIllegalState)
	}
	return NewBoard(g.generator.Generate(rng), g.generator.Colors), nil
}

// FinalScore awards the remaining attempts on a win and nothing otherwise.
func (g *Game) FinalScore(state core.State, remaining int, _ players.Player) int {
	if state != core.StateWon || remaining < 0 {
		return 0
	}
	return remaining
}

// Board grades guesses against one secret code.
type Board struct {
	secret Code
	colors []Color
	solved bool
}

// NewBoard creates a board for a known secret.
func NewBoard(secret Code, colors []Color) *Board {
	return &Board{secret: secret, colors: colors}
}

// Apply grades a code guess.
// A winning guess costs nothing; any other scored guess costs one attempt.
func (b *Board) Apply(guess string) (session.Feedback, error) {
	code, err := ParseCode(guess, b.colors, len(b.secret))
	if err != nil {
		return session.Feedback{}, fmt.Errorf("mastermind: %w", err)
	}

	res, err := Grade(b.secret, code)
	if err != nil {
		return session.Feedback{}, err
	}

	fb := session.Feedback{Exact: res.Exact, Partial: res.Partial}
	if res.Exact == len(b.secret) {
		b.solved = true
		fb.Win = true
		return fb, nil
	}
	fb.Cost = 1
	return fb, nil
}

// Solved reports whether the code has been guessed.
func (b *Board) Solved() bool { return b.solved }

// View hides every peg until the code is solved.
func (b *Board) View() string {
	if b.solved {
		return b.Secret()
	}
	return strings.TrimSpace(strings.Repeat("? ", len(b.secret)))
}

// Secret returns the code, e.g. "RGBY".
func (b *Board) Secret() string { return b.secret.String() }

var (
	_ session.Rules = (*Game)(nil)
	_ session.Board = (*Board)(nil)
)

func init() {
	registry.Register(ID, "MasterMind", func(cfg config.Config) (session.Rules, error) {
		g, err := FromConfig(cfg.Mastermind)
		if err != nil {
			return nil, err
		}
		return g, nil
	})
}
