package config

import (
	_ "embed"
)

//go:embed defaults/guess.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
		Store:    StoreSQLite,
		Top:      5,
		Mastermind: MastermindConfig{
			Attempts: 10,
			Length:   4,
			Colors:   "RGBY",
		},
		Wheel: WheelConfig{
			Attempts: 10,
			Phrases: []string{
				"OpenAI is amazing",
				"Java programming",
				"Artificial intelligence",
			},
		},
		AI: AIConfig{
			Players: []AIPlayerConfig{
				{ID: "AI Smart", Strategy: "advanced"},
				{ID: "AI Mediocre", Strategy: "intermediate"},
				{ID: "AI Dumb", Strategy: "basic"},
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
