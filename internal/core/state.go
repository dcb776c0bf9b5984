package core

// State is the lifecycle position of a guessing session.
type State int

const (
	// StateCreated is a session whose secret has not been dealt yet.
	StateCreated State = iota

	// StateInProgress is a session accepting guesses.
	StateInProgress

	// StateWon is terminal: the secret was fully guessed.
	StateWon

	// StateExhausted is terminal: the attempt budget ran out first.
	StateExhausted

	// StateAborted marks a record for a session that failed with an error.
	// Sessions never transition into it themselves; runners record it.
	StateAborted
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateInProgress:
		return "In progress"
	case StateWon:
		return "Won"
	case StateExhausted:
		return "Exhausted"
	case StateAborted:
		return "Aborted"
	default:
		return "Unknown"
	}
}

// Terminal reports whether no further guesses are accepted.
func (s State) Terminal() bool {
	return s == StateWon || s == StateExhausted || s == StateAborted
}
