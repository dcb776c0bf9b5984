// Package narrate turns session events into the lines front ends print.
// Front ends supply a Styler; the wording is shared.
package narrate

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/games/mastermind"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

// Styler decorates fragments of narration.
type Styler interface {
	Title(s string) string
	Code(code string) string   // Peg symbols, e.g. "RGBY"
	Phrase(view string) string // Masked phrase
	Good(s string) string
	Bad(s string) string
}

// Plain is a Styler that leaves text untouched.
type Plain struct{}

// Title returns s as is.
func (Plain) Title(s string) string { return s }

// Code returns the pegs as is.
func (Plain) Code(s string) string { return s }

// Phrase returns the masked phrase as is.
func (Plain) Phrase(s string) string { return s }

// Good returns s as is.
func (Plain) Good(s string) string { return s }

// Bad returns s as is.
func (Plain) Bad(s string) string { return s }

// Lines narrates any session event.
func Lines(st Styler, evt session.Event) []string {
	switch e := evt.(type) {
	case session.StartedEvent:
		return Started(st, e)
	case session.TurnEvent:
		return Turn(st, e)
	case session.EndedEvent:
		return Ended(st, e)
	default:
		return nil
	}
}

// Started announces a new session.
func Started(st Styler, evt session.StartedEvent) []string {
	lines := []string{st.Title(fmt.Sprintf("%s - %s", evt.Title, evt.PlayerID))}
	if evt.GameID == mastermind.ID {
		lines = append(lines,
			fmt.Sprintf("Starting %s. Try to guess the color sequence! Attempts: %d", evt.Title, evt.Attempts))
		return lines
	}
	return append(lines,
		fmt.Sprintf("Guess the phrase, one letter at a time. Misses allowed: %d", evt.Attempts),
		"Phrase: "+st.Phrase(evt.View))
}

// Turn describes one graded guess.
func Turn(st Styler, evt session.TurnEvent) []string {
	fb := evt.Feedback
	if evt.GameID == mastermind.ID {
		if fb.Win {
			return []string{fmt.Sprintf("%s %s", st.Code(evt.Guess), st.Good("Correct!"))}
		}
		return []string{fmt.Sprintf("%s Feedback: %d exact, %d partial. Attempts left: %d",
			st.Code(strings.ToUpper(evt.Guess)), fb.Exact, fb.Partial, evt.Remaining)}
	}

	prefix := fmt.Sprintf("%s guessed %q. ", evt.PlayerID, evt.Guess)
	switch {
	case fb.Found && fb.Revealed == 0:
		return []string{prefix + "Already revealed: " + st.Phrase(evt.View)}
	case fb.Found:
		return []string{prefix + st.Good("Good guess!") + " Current phrase: " + st.Phrase(evt.View)}
	default:
		return []string{prefix + st.Bad("Sorry, that letter is not in the phrase.") +
			fmt.Sprintf(" Guesses remaining: %d", evt.Remaining)}
	}
}

// Ended reports the outcome and the secret.
func Ended(st Styler, evt session.EndedEvent) []string {
	rec := evt.Record
	secret := st.Phrase(evt.Secret)
	if rec.GameID == mastermind.ID {
		secret = st.Code(evt.Secret)
	}

	var outcome string
	switch rec.Outcome {
	case core.StateWon:
		outcome = st.Good(fmt.Sprintf("Congratulations! %s solved it: ", rec.PlayerID)) + secret
	default:
		outcome = st.Bad("Game over! ") + "The answer was: " + secret
	}
	return []string{outcome, fmt.Sprintf("%s scored %d.", rec.PlayerID, rec.Score)}
}

// Summary formats the average line printed after a run.
func Summary(count, average int) string {
	return fmt.Sprintf("Games played: %d. Average score: %d", count, average)
}

// ParseYesNo accepts yes/no answers case-insensitively, and y/n.
func ParseYesNo(s string) (yes bool, ok bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "y":
		return true, true
	case "no", "n":
		return false, true
	default:
		return false, false
	}
}
