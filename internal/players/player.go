// Package players implements the participants of a guessing session:
// an interactive human and computer players with pluggable letter strategies.
// Each player owns its score and its memory of tried letters; nothing is
// shared between players.
package players

import "context"

// Player is the capability a session needs from a participant.
type Player interface {
	// ID returns the stable identifier recorded in game records.
	ID() string

	// NextGuess produces the next guess. Humans block on input here;
	// computer strategies return immediately.
	NextGuess(ctx context.Context) (string, error)

	// Score returns the points accumulated in the current session.
	Score() int

	// SetScore overwrites the current score.
	SetScore(score int)

	// IncrementScore adds one point.
	IncrementScore()

	// Reset clears per-session memory and score.
	// Sessions call it once when they start.
	Reset()
}

// scoreKeeper holds the identity and score shared by every player variant.
type scoreKeeper struct {
	id    string
	score int
}

// ID returns the player identifier.
func (k *scoreKeeper) ID() string {
	return k.id
}

// Score returns the current score.
func (k *scoreKeeper) Score() int {
	return k.score
}

// SetScore overwrites the current score. Negative values clamp to zero.
func (k *scoreKeeper) SetScore(score int) {
	if score < 0 {
		score = 0
	}
	k.score = score
}

// IncrementScore adds one point.
func (k *scoreKeeper) IncrementScore() {
	k.score++
}
