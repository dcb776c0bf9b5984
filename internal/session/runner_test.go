package session_test

import (
	"context"
	"errors"
	"math/rand"
	"testing"

	"github.com/vovakirdan/guess-arcade/internal/core"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/session"
)

type recorder struct {
	records []core.GameRecord
	fail    error
}

func (r *recorder) Add(rec core.GameRecord) error {
	if r.fail != nil {
		return r.fail
	}
	r.records = append(r.records, rec)
	return nil
}

func TestRunnerRecordsEverySession(t *testing.T) {
	wheelRules := phraseRules(t, 10, "cat")
	codeGame := codeRules(t, 10, "RGBY")
	col := &recorder{}

	matches := []session.Match{
		{Rules: wheelRules, Player: typist("User1", wheelRules, "c", "a", "t")},
		// A letter strategy cannot play the code game; the session aborts.
		{Rules: codeGame, Player: players.NewComputer("AI Dumb", players.Basic{}, rand.New(rand.NewSource(1)))},
		{Rules: codeGame, Player: typist("User2", codeGame, "RGBY")},
	}

	records, err := session.NewRunner(col).Run(context.Background(), matches)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if len(records) != 3 || len(col.records) != 3 {
		t.Fatalf("got %d records, collector %d, want 3 each", len(records), len(col.records))
	}

	want := []core.GameRecord{
		{GameID: "wheel", PlayerID: "User1", Score: 3, Outcome: core.StateWon},
		{GameID: "mastermind", PlayerID: "AI Dumb", Score: 0, Outcome: core.StateAborted},
		{GameID: "mastermind", PlayerID: "User2", Score: 10, Outcome: core.StateWon},
	}
	for i := range want {
		if col.records[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, col.records[i], want[i])
		}
	}
}

func TestRunnerStopsOnClosedInput(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	col := &recorder{}

	matches := []session.Match{
		{Rules: rules, Player: typist("User1", rules, "c", "a", "t")},
		{Rules: rules, Player: typist("User2", rules, "c")},
		{Rules: rules, Player: typist("User3", rules, "c", "a", "t")},
	}

	records, err := session.NewRunner(col).Run(context.Background(), matches)
	if !errors.Is(err, core.ErrInputClosed) {
		t.Fatalf("Run() error = %v, want ErrInputClosed", err)
	}
	if len(records) != 1 || len(col.records) != 1 {
		t.Errorf("got %d records, want only the finished one", len(records))
	}
}

func TestRunnerStopsOnCancelledContext(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	col := &recorder{}
	_, err := session.NewRunner(col).Run(ctx, []session.Match{{Rules: rules, Player: typist("User1", rules, "c")}})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if len(col.records) != 0 {
		t.Errorf("cancelled run recorded %v", col.records)
	}
}

func TestRunnerCollectorFailure(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	boom := errors.New("disk full")
	col := &recorder{fail: boom}

	_, err := session.NewRunner(col).Run(context.Background(), []session.Match{{Rules: rules, Player: typist("User1", rules, "c", "a", "t")}})
	if !errors.Is(err, boom) {
		t.Errorf("Run() error = %v, want collector error", err)
	}
}

func TestRunnerRepeat(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	col := &recorder{}
	human := typist("User1", rules, "c", "a", "t", "t", "a", "x", "c")

	answers := []bool{true, false}
	again := func(context.Context) (bool, error) {
		more := answers[0]
		answers = answers[1:]
		return more, nil
	}

	records, err := session.NewRunner(col).Repeat(context.Background(), session.Match{Rules: rules, Player: human}, again)
	if err != nil {
		t.Fatalf("Repeat() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	for i, rec := range records {
		if rec.Outcome != core.StateWon || rec.Score != 3 {
			t.Errorf("record %d = %+v, want Won with score 3", i, rec)
		}
	}
}

func TestRunnerRepeatAskError(t *testing.T) {
	rules := phraseRules(t, 10, "cat")
	again := func(context.Context) (bool, error) { return false, core.ErrInputClosed }

	records, err := session.NewRunner(&recorder{}).Repeat(context.Background(),
		session.Match{Rules: rules, Player: typist("User1", rules, "c", "a", "t")}, again)
	if !errors.Is(err, core.ErrInputClosed) {
		t.Errorf("Repeat() error = %v, want ErrInputClosed", err)
	}
	if len(records) != 1 {
		t.Errorf("got %d records, want the finished session", len(records))
	}
}

func TestRunnerSeedReproducible(t *testing.T) {
	rules := phraseRules(t, 10, "Artificial intelligence")

	run := func() []core.GameRecord {
		rng := rand.New(rand.NewSource(2024))
		matches := []session.Match{
			{Rules: rules, Player: players.NewComputer("AI Smart", players.Advanced{}, rng)},
			{Rules: rules, Player: players.NewComputer("AI Mediocre", players.Intermediate{}, rng)},
			{Rules: rules, Player: players.NewComputer("AI Dumb", players.Basic{}, rng)},
		}
		records, err := session.NewRunner(&recorder{}, session.WithRand(rng)).Run(context.Background(), matches)
		if err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		return records
	}

	first, second := run(), run()
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("record %d differs between seeded runs: %+v vs %+v", i, first[i], second[i])
		}
	}
}
