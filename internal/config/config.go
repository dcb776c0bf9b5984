// Package config provides YAML-based configuration loading for the
// guessing games, the computer players and the statistics collector.
package config

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Config is the whole application configuration.
type Config struct {
	Seed       int64            `yaml:"seed"`      // RNG seed (0 = time based)
	LogLevel   string           `yaml:"log_level"` // debug, info, warn, error
	Store      string           `yaml:"store"`     // "memory" or "sqlite"
	Top        int              `yaml:"top"`       // Leaderboard length printed after play
	Mastermind MastermindConfig `yaml:"mastermind"`
	Wheel      WheelConfig      `yaml:"wheel"`
	AI         AIConfig         `yaml:"ai"`
}

// MastermindConfig contains configuration for the color-code game.
type MastermindConfig struct {
	Attempts int    `yaml:"attempts"`
	Length   int    `yaml:"length"` // Pegs per code
	Colors   string `yaml:"colors"` // Alphabet as one letter per color, e.g. "RGBY"
}

// WheelConfig contains configuration for the phrase game.
type WheelConfig struct {
	Attempts int      `yaml:"attempts"`
	Phrases  []string `yaml:"phrases"`
}

// AIConfig lists the computer players of an AI run.
type AIConfig struct {
	Players []AIPlayerConfig `yaml:"players"`
}

// AIPlayerConfig names one computer player and its strategy.
type AIPlayerConfig struct {
	ID       string `yaml:"id"`
	Strategy string `yaml:"strategy"` // basic, intermediate or advanced
}

// Store backends.
const (
	StoreMemory = "memory"
	StoreSQLite = "sqlite"
)

// Validate reports the first unusable setting.
// Errors wrap core.ErrConfiguration.
func (c Config) Validate() error {
	switch {
	case c.Mastermind.Attempts <= 0:
		return fmt.Errorf("config: mastermind.attempts must be positive, got %d: %w", c.Mastermind.Attempts, core.ErrConfiguration)
	case c.Mastermind.Length <= 0:
		return fmt.Errorf("config: mastermind.length must be positive, got %d: %w", c.Mastermind.Length, core.ErrConfiguration)
	case strings.TrimSpace(c.Mastermind.Colors) == "":
		return fmt.Errorf("config: mastermind.colors is empty: %w", core.ErrConfiguration)
	case c.Wheel.Attempts <= 0:
		return fmt.Errorf("config: wheel.attempts must be positive, got %d: %w", c.Wheel.Attempts, core.ErrConfiguration)
	case len(c.Wheel.Phrases) == 0:
		return fmt.Errorf("config: wheel.phrases is empty: %w", core.ErrConfiguration)
	case c.Store != StoreMemory && c.Store != StoreSQLite:
		return fmt.Errorf("config: unknown store %q: %w", c.Store, core.ErrConfiguration)
	case c.Top < 0:
		return fmt.Errorf("config: top must not be negative, got %d: %w", c.Top, core.ErrConfiguration)
	}

	for i, phrase := range c.Wheel.Phrases {
		if strings.TrimSpace(phrase) == "" {
			return fmt.Errorf("config: wheel.phrases[%d] is blank: %w", i, core.ErrConfiguration)
		}
	}

	seen := make(map[string]bool, len(c.AI.Players))
	for _, p := range c.AI.Players {
		if p.ID == "" {
			return fmt.Errorf("config: ai player without id: %w", core.ErrConfiguration)
		}
		if seen[p.ID] {
			return fmt.Errorf("config: duplicate ai player %q: %w", p.ID, core.ErrConfiguration)
		}
		seen[p.ID] = true
	}
	return nil
}

// Runtime returns the per-run settings sessions are created with.
func (c Config) Runtime() core.RuntimeConfig {
	return core.RuntimeConfig{Seed: c.Seed}
}
