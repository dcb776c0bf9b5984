// Package session implements the guessing-session state machine shared by
// every game, and the runner that plays sessions back to back.
//
// A game contributes Rules (identity, budget, validation, score policy) and
// deals a Board per session that owns the secret and grades guesses.
// The session itself knows nothing about codes or phrases.
package session

import (
	"math/rand"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
)

// Rules describes one game type.
type Rules interface {
	// ID returns the registry identifier (e.g., "mastermind").
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Attempts returns the attempt budget each session starts with.
	Attempts() int

	// PromptText is shown to human players on every prompt.
	PromptText() string

	// Validate accepts or rejects raw human input (see players.Validator).
	Validate(input string, tried *core.LetterSet) (string, error)

	// Deal draws a fresh secret and returns the board that grades against it.
	Deal(rng *rand.Rand) (Board, error)

	// FinalScore applies the game's score policy to a finished session.
	FinalScore(state core.State, remaining int, player players.Player) int
}

// Board holds one session's secret and its externally visible view.
type Board interface {
	// Apply grades a guess. Guesses of the wrong shape fail with an error
	// wrapping core.ErrInvalidGuess and leave the board untouched.
	Apply(guess string) (Feedback, error)

	// Solved reports whether the secret has been fully guessed.
	Solved() bool

	// View returns what players may see of the secret.
	View() string

	// Secret returns the secret itself, for end-of-game display.
	Secret() string
}

// Feedback is the graded result of one guess.
type Feedback struct {
	Exact    int  // Code game: right symbol, right position
	Partial  int  // Code game: right symbol, wrong position
	Found    bool // Phrase game: letter occurs in the phrase
	Revealed int  // Phrase game: positions newly revealed by this guess
	Win      bool // Guess completed the secret
	Cost     int  // Attempts consumed
	Award    int  // Points for the guessing player
}
