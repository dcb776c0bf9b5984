package narrate

import (
	"strings"
	"testing"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

func TestTurnCodeGame(t *testing.T) {
	lines := Lines(Plain{}, session.TurnEvent{
		GameID:    "mastermind",
		Guess:     "GRBB",
		Feedback:  session.Feedback{Exact: 1, Partial: 2, Cost: 1},
		Remaining: 9,
	})
	want := "GRBB Feedback: 1 exact, 2 partial. Attempts left: 9"
	if len(lines) != 1 || lines[0] != want {
		t.Errorf("Lines() = %q, want %q", lines, want)
	}
}

func TestTurnPhraseGame(t *testing.T) {
	tests := []struct {
		name string
		fb   session.Feedback
		want string
	}{
		{"hit", session.Feedback{Found: true, Revealed: 1, Award: 1}, "Good guess!"},
		{"repeat", session.Feedback{Found: true}, "Already revealed"},
		{"miss", session.Feedback{Cost: 1}, "Guesses remaining: 4"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			lines := Turn(Plain{}, session.TurnEvent{
				GameID:    "wheel",
				PlayerID:  "AI Smart",
				Guess:     "e",
				Feedback:  tc.fb,
				Remaining: 4,
				View:      "*e**",
			})
			if len(lines) != 1 || !strings.Contains(lines[0], tc.want) {
				t.Errorf("Turn() = %q, want it to mention %q", lines, tc.want)
			}
			if !strings.HasPrefix(lines[0], "AI Smart guessed \"e\".") {
				t.Errorf("Turn() = %q, want player prefix", lines[0])
			}
		})
	}
}

func TestEnded(t *testing.T) {
	won := Ended(Plain{}, session.EndedEvent{
		Record: core.GameRecord{GameID: "wheel", PlayerID: "User1", Score: 3, Outcome: core.StateWon},
		Secret: "cat",
	})
	if !strings.Contains(won[0], "Congratulations! User1 solved it: cat") || won[1] != "User1 scored 3." {
		t.Errorf("Ended(won) = %q", won)
	}

	lost := Ended(Plain{}, session.EndedEvent{
		Record: core.GameRecord{GameID: "mastermind", PlayerID: "User1", Outcome: core.StateExhausted},
		Secret: "RGBY",
	})
	if lost[0] != "Game over! The answer was: RGBY" {
		t.Errorf("Ended(lost) = %q", lost)
	}
}

func TestStarted(t *testing.T) {
	lines := Started(Plain{}, session.StartedEvent{GameID: "wheel", Title: "Wheel of Fortune", PlayerID: "User1", Attempts: 10, View: "***"})
	if lines[0] != "Wheel of Fortune - User1" || lines[len(lines)-1] != "Phrase: ***" {
		t.Errorf("Started() = %q", lines)
	}
}

func TestParseYesNo(t *testing.T) {
	tests := []struct {
		in      string
		yes, ok bool
	}{
		{"yes", true, true},
		{" YES ", true, true},
		{"y", true, true},
		{"No", false, true},
		{"n", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, tc := range tests {
		yes, ok := ParseYesNo(tc.in)
		if yes != tc.yes || ok != tc.ok {
			t.Errorf("ParseYesNo(%q) = (%v, %v), want (%v, %v)", tc.in, yes, ok, tc.yes, tc.ok)
		}
	}
}
