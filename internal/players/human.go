package players

import (
	"context"
	"errors"
	"fmt"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Prompt describes one request for human input.
type Prompt struct {
	PlayerID string // Who is being asked
	Message  string // What to enter, e.g. "Enter your guess (a single letter)"
	Problem  string // Why the previous input was rejected; empty on first ask
}

// Prompter collects raw input from a human.
// Implementations live in the platform packages (TUI, plain console).
type Prompter interface {
	// Prompt blocks until a line of input is available.
	// It returns an error wrapping core.ErrInputClosed when input ends.
	Prompt(ctx context.Context, p Prompt) (string, error)
}

// PrompterFunc adapts a function to the Prompter interface.
type PrompterFunc func(ctx context.Context, p Prompt) (string, error)

// Prompt calls f.
func (f PrompterFunc) Prompt(ctx context.Context, p Prompt) (string, error) {
	return f(ctx, p)
}

// Validator turns raw input into an accepted guess.
// It returns an error wrapping core.ErrInvalidGuess for unusable input.
// Letter games record the accepted letter in tried; code games ignore it.
type Validator func(input string, tried *core.LetterSet) (string, error)

// Human is a player whose guesses come from a Prompter.
type Human struct {
	scoreKeeper
	prompter Prompter
	validate Validator
	message  string
	tried    core.LetterSet
}

// NewHuman creates a human player.
// message is shown on every prompt; validate usually comes from the game rules.
func NewHuman(id string, prompter Prompter, message string, validate Validator) *Human {
	return &Human{
		scoreKeeper: scoreKeeper{id: id},
		prompter:    prompter,
		validate:    validate,
		message:     message,
	}
}

// NextGuess prompts until the input validates.
// Invalid input re-prompts with the rejection reason; only prompter
// failures and context cancellation end the loop.
func (h *Human) NextGuess(ctx context.Context) (string, error) {
	if h.prompter == nil || h.validate == nil {
		return "", fmt.Errorf("players: human %q has no prompter: %w", h.id, core.ErrIllegalState)
	}

	prompt := Prompt{PlayerID: h.id, Message: h.message}
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		input, err := h.prompter.Prompt(ctx, prompt)
		if err != nil {
			return "", fmt.Errorf("players: reading guess for %q: %w", h.id, err)
		}

		guess, err := h.validate(input, &h.tried)
		if errors.Is(err, core.ErrInvalidGuess) {
			prompt.Problem = err.Error()
			continue
		}
		if err != nil {
			return "", err
		}
		return guess, nil
	}
}

// Tried returns the letters this player has already used this session.
func (h *Human) Tried() core.LetterSet {
	return h.tried
}

// Reset clears the tried letters and the score.
func (h *Human) Reset() {
	h.tried.Clear()
	h.score = 0
}

var _ Player = (*Human)(nil)
