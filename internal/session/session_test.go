package session_test

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/games/mastermind"
	"github.com/vovakirdan/guess-arcade/internal/games/wheel"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

// knownCode deals the same secret code every session.
type knownCode struct {
	*mastermind.Game
	secret string
}

func (k knownCode) Deal(*rand.Rand) (session.Board, error) {
	code, err := mastermind.ParseCode(k.secret, mastermind.DefaultColors, mastermind.DefaultLength)
	if err != nil {
		return nil, err
	}
	return mastermind.NewBoard(code, mastermind.DefaultColors), nil
}

func codeRules(t *testing.T, attempts int, secret string) session.Rules {
	t.Helper()
	g, err := mastermind.New(attempts, mastermind.DefaultLength, mastermind.DefaultColors)
	if err != nil {
		t.Fatal(err)
	}
	return knownCode{Game: g, secret: secret}
}

func phraseRules(t *testing.T, attempts int, phrase string) *wheel.Game {
	t.Helper()
	g, err := wheel.New(attempts, []string{phrase})
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// typist is a human fed from a fixed list of lines.
func typist(id string, rules session.Rules, lines ...string) *players.Human {
	return players.NewHuman(id, players.PrompterFunc(func(context.Context, players.Prompt) (string, error) {
		if len(lines) == 0 {
			return "", fmt.Errorf("typist: %w", core.ErrInputClosed)
		}
		line := lines[0]
		lines = lines[1:]
		return line, nil
	}), rules.PromptText(), rules.Validate)
}

// eventLog records every event a session emits.
type eventLog struct {
	events []session.Event
}

func (l *eventLog) Notify(evt session.Event) { l.events = append(l.events, evt) }

func (l *eventLog) ended() []session.EndedEvent {
	var out []session.EndedEvent
	for _, e := range l.events {
		if ended, ok := e.(session.EndedEvent); ok {
			out = append(out, ended)
		}
	}
	return out
}

func TestCodeGameExhaustion(t *testing.T) {
	rules := codeRules(t, 1, "RGBY")
	s := session.New(rules, typist("User1", rules, "YYYY"))

	rec, err := s.Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if s.State() != core.StateExhausted || rec.Outcome != core.StateExhausted {
		t.Errorf("state = %s, want Exhausted", s.State())
	}
	if rec.Score != 0 {
		t.Errorf("score = %d, want 0", rec.Score)
	}
}

func TestCodeGameScoresRemainingAttempts(t *testing.T) {
	tests := []struct {
		name    string
		guesses []string
		want    int
	}{
		{"first guess", []string{"rgby"}, 10},
		{"after two misses", []string{"RRRR", "GGGG", "RGBY"}, 8},
		{"invalid input is re-prompted for free", []string{"RG", "RGBX", "RGBY"}, 10},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules := codeRules(t, 10, "RGBY")
			rec, err := session.New(rules, typist("User1", rules, tc.guesses...)).Play(context.Background())
			if err != nil {
				t.Fatalf("Play() error = %v", err)
			}
			if rec.Outcome != core.StateWon || rec.Score != tc.want {
				t.Errorf("record = %+v, want Won with score %d", rec, tc.want)
			}
		})
	}
}

func TestPhraseGameAccumulatesRevealScore(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	s := session.New(rules, typist("User1", rules, "c", "x", "C", "a", "t"))

	rec, err := s.Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if rec.Outcome != core.StateWon || rec.Score != 3 {
		t.Errorf("record = %+v, want Won with score 3", rec)
	}
	if s.Remaining() != 9 {
		t.Errorf("remaining = %d, want 9 after one miss", s.Remaining())
	}
	if s.Turn() != 4 {
		t.Errorf("turns = %d, want 4 graded guesses", s.Turn())
	}
}

func TestPhraseGameExhaustedKeepsScore(t *testing.T) {
	rules := phraseRules(t, 1, "cat")
	rec, err := session.New(rules, typist("User1", rules, "c", "x")).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}
	if rec.Outcome != core.StateExhausted || rec.Score != 1 {
		t.Errorf("record = %+v, want Exhausted with score 1", rec)
	}
}

func TestLetterlessPhraseWonAtStart(t *testing.T) {
	rules := phraseRules(t, 10, "42 !")
	s := session.New(rules, typist("User1", rules))

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if s.State() != core.StateWon {
		t.Errorf("state = %s, want Won", s.State())
	}
	if _, ok := s.Record(); !ok {
		t.Error("won session has no record")
	}
}

func TestIllegalState(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	ctx := context.Background()

	s := session.New(rules, typist("User1", rules, "c", "a", "t"))
	if err := s.Step(ctx); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("Step before Start error = %v, want ErrIllegalState", err)
	}
	if _, err := s.Play(ctx); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(ctx); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("Step after end error = %v, want ErrIllegalState", err)
	}
	if err := s.Start(); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("second Start error = %v, want ErrIllegalState", err)
	}

	unbound := session.New(rules, nil)
	if _, err := unbound.Play(ctx); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("Play without player error = %v, want ErrIllegalState", err)
	}
	if err := unbound.Bind(typist("User1", rules)); !errors.Is(err, core.ErrIllegalState) {
		t.Errorf("Bind after start error = %v, want ErrIllegalState", err)
	}
}

func TestInvalidBoardGuessCostsNothing(t *testing.T) {
	rules := codeRules(t, 10, "RGBY")
	computer := players.NewComputer("AI", players.Basic{}, rand.New(rand.NewSource(1)))
	s := session.New(rules, computer)

	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if err := s.Step(context.Background()); !errors.Is(err, core.ErrInvalidGuess) {
		t.Fatalf("Step() error = %v, want ErrInvalidGuess", err)
	}
	if s.Remaining() != 10 || s.State() != core.StateInProgress || s.Turn() != 0 {
		t.Errorf("invalid guess changed the session: remaining=%d state=%s turn=%d",
			s.Remaining(), s.State(), s.Turn())
	}
}

func TestStartResetsPlayer(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	computer := players.NewComputer("AI", players.Advanced{}, rand.New(rand.NewSource(1)))
	computer.SetScore(40)
	if _, err := computer.NextGuess(context.Background()); err != nil {
		t.Fatal(err)
	}

	s := session.New(rules, computer)
	if err := s.Start(); err != nil {
		t.Fatal(err)
	}
	if computer.Score() != 0 || computer.Tried().Len() != 0 {
		t.Errorf("Start left score=%d tried=%q", computer.Score(), computer.Tried())
	}
}

func TestEventsAndSingleRecord(t *testing.T) {
	rules := phraseRules(t, 10, "OpenAI is amazing")
	log := &eventLog{}
	rng := rand.New(rand.NewSource(11))
	computer := players.NewComputer("AI Smart", players.Advanced{}, rng)

	rec, err := session.New(rules, computer, session.WithRand(rng), session.WithObserver(log)).Play(context.Background())
	if err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if _, ok := log.events[0].(session.StartedEvent); !ok {
		t.Fatalf("first event = %T, want StartedEvent", log.events[0])
	}
	ended := log.ended()
	if len(ended) != 1 {
		t.Fatalf("got %d EndedEvents, want 1", len(ended))
	}
	if ended[0].Record != rec || ended[0].Secret != "OpenAI is amazing" {
		t.Errorf("EndedEvent = %+v, record %+v", ended[0], rec)
	}

	awards, seen := 0, make(map[string]bool)
	for _, e := range log.events {
		turn, ok := e.(session.TurnEvent)
		if !ok {
			continue
		}
		if seen[turn.Guess] {
			t.Errorf("letter %q guessed twice", turn.Guess)
		}
		seen[turn.Guess] = true
		awards += turn.Feedback.Award
	}
	if rec.Score != awards {
		t.Errorf("score = %d, want %d reveal-causing guesses", rec.Score, awards)
	}
	if !rec.Outcome.Terminal() {
		t.Errorf("outcome %s is not terminal", rec.Outcome)
	}
}

func TestPlayHonoursCancelledContext(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := session.New(rules, typist("User1", rules, "c")).Play(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Play() error = %v, want context.Canceled", err)
	}
}

func TestObserversFanOutInOrder(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	first := &eventLog{}
	var order []string
	obs := session.Observers{
		first,
		nil,
		session.ObserverFunc(func(evt session.Event) {
			if len(first.events) == 0 {
				t.Error("second observer ran before the first")
			}
			order = append(order, fmt.Sprintf("%T", evt))
		}),
	}

	if _, err := session.New(rules, typist("User1", rules, "c", "a", "t"), session.WithObserver(obs)).Play(context.Background()); err != nil {
		t.Fatalf("Play() error = %v", err)
	}

	if len(order) != len(first.events) {
		t.Fatalf("func observer saw %d events, log saw %d", len(order), len(first.events))
	}
	if order[len(order)-1] != "session.EndedEvent" {
		t.Errorf("last event = %s, want session.EndedEvent", order[len(order)-1])
	}
}
