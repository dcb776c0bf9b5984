package core

import "errors"

// Error taxonomy shared by the games, players and sessions.
// Callers wrap these with context and test them with errors.Is.
var (
	// ErrConfiguration reports unusable setup, such as an empty phrase pool.
	ErrConfiguration = errors.New("configuration error")

	// ErrInvalidGuess reports a guess of the wrong shape, a non-letter, or a
	// letter the player already tried. Humans are re-prompted; it is never fatal.
	ErrInvalidGuess = errors.New("invalid guess")

	// ErrStrategyExhausted reports a computer player with no untried letter left.
	ErrStrategyExhausted = errors.New("strategy exhausted")

	// ErrIllegalState reports a guess requested with no active player or secret.
	ErrIllegalState = errors.New("illegal state")

	// ErrInputClosed reports that the human input source went away (EOF, quit key).
	ErrInputClosed = errors.New("input closed")
)
