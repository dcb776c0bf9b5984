package main

import (
	"bytes"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/guess-arcade/internal/config"
	"github.com/vovakirdan/guess-arcade/internal/games/wheel"
	"github.com/vovakirdan/guess-arcade/internal/platform/console"
	"github.com/vovakirdan/guess-arcade/internal/players"
	"github.com/vovakirdan/guess-arcade/internal/stats"
)

func TestListShowsRegisteredGames(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	runList(cmd, nil)

	out := buf.String()
	for _, want := range []string{"mastermind", "MasterMind", "wheel", "Wheel of Fortune"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
}

func TestConfigPrintsLoadableDefaults(t *testing.T) {
	var buf bytes.Buffer
	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	if err := runConfig(cmd, nil); err != nil {
		t.Fatalf("runConfig() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), "guess.yaml")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() of printed config error = %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("printed config does not validate: %v", err)
	}
	if len(cfg.Wheel.Phrases) != 3 || len(cfg.AI.Players) != 3 {
		t.Errorf("printed config = %+v", cfg)
	}
}

func testApp(t *testing.T) *app {
	t.Helper()
	return &app{
		cfg:   config.DefaultConfig(),
		rng:   rand.New(rand.NewSource(1)),
		store: stats.NewRecord(),
		ui:    console.New(strings.NewReader(""), io.Discard, false),
		close: func() error { return nil },
	}
}

func TestAIMatchesEveryPhraseAndPlayer(t *testing.T) {
	a := testApp(t)
	game, err := wheel.FromConfig(a.cfg.Wheel)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	matches, err := aiMatches(a, game)
	if err != nil {
		t.Fatalf("aiMatches() error = %v", err)
	}

	phrases := len(a.cfg.Wheel.Phrases)
	computers := len(a.cfg.AI.Players)
	if len(matches) != phrases*computers {
		t.Fatalf("got %d matches, want %d", len(matches), phrases*computers)
	}

	wantIDs := []string{"AI Smart", "AI Mediocre", "AI Dumb"}
	for i, m := range matches[:computers] {
		if m.Player.ID() != wantIDs[i] {
			t.Errorf("match %d player = %q, want %q", i, m.Player.ID(), wantIDs[i])
		}
		if _, ok := m.Player.(*players.Computer); !ok {
			t.Errorf("match %d player is %T, want *players.Computer", i, m.Player)
		}
	}
}

func TestAIMatchesWithHuman(t *testing.T) {
	flagHuman = true
	defer func() { flagHuman = false }()

	a := testApp(t)
	game, err := wheel.FromConfig(a.cfg.Wheel)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	matches, err := aiMatches(a, game)
	if err != nil {
		t.Fatalf("aiMatches() error = %v", err)
	}

	perPhrase := len(a.cfg.AI.Players) + 1
	if len(matches) != len(a.cfg.Wheel.Phrases)*perPhrase {
		t.Fatalf("got %d matches, want %d", len(matches), len(a.cfg.Wheel.Phrases)*perPhrase)
	}
	if _, ok := matches[perPhrase-1].Player.(*players.Human); !ok {
		t.Errorf("last match of a phrase is %T, want *players.Human", matches[perPhrase-1].Player)
	}
}

func TestAIMatchesUnknownStrategy(t *testing.T) {
	a := testApp(t)
	a.cfg.AI.Players = []config.AIPlayerConfig{{ID: "AI Odd", Strategy: "psychic"}}
	game, err := wheel.FromConfig(a.cfg.Wheel)
	if err != nil {
		t.Fatalf("FromConfig() error = %v", err)
	}

	if _, err := aiMatches(a, game); err == nil {
		t.Error("aiMatches() with unknown strategy should fail")
	}
}
