package players

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Strategy picks the next letter for a computer player.
// Implementations must not mutate tried and must never return a letter in it.
type Strategy interface {
	// Name returns the strategy identifier used in config ("basic", ...).
	Name() string

	// Pick returns an untried letter, or an error wrapping
	// core.ErrStrategyExhausted when every letter has been tried.
	Pick(tried core.LetterSet, rng *rand.Rand) (rune, error)
}

// Neighbors lists letters that commonly follow Letter.
type Neighbors struct {
	Letter rune
	Next   []rune
}

var (
	// intermediatePriority holds the nine most frequent English letters.
	intermediatePriority = []rune{'e', 't', 'a', 'o', 'i', 'n', 's', 'h', 'r'}

	// advancedPriority is tried before the neighbor table.
	advancedPriority = []rune{'e', 't', 'a', 'o'}

	// advancedNeighbors is scanned in this order, entry by entry.
	advancedNeighbors = []Neighbors{
		{Letter: 'a', Next: []rune{'n', 's', 't', 'r', 'l'}},
		{Letter: 't', Next: []rune{'h', 'r', 'o', 'i', 'a'}},
		{Letter: 'e', Next: []rune{'r', 'n', 's', 'd', 'v'}},
		{Letter: 'o', Next: []rune{'u', 'n', 'f', 'r', 't'}},
		{Letter: 'i', Next: []rune{'n', 's', 't', 'e', 'o'}},
	}
)

// PickRandom returns a uniformly random untried letter by resampling.
func PickRandom(tried core.LetterSet, rng *rand.Rand) (rune, error) {
	if tried.Full() {
		return 0, fmt.Errorf("players: all %d letters tried: %w", core.AlphabetSize, core.ErrStrategyExhausted)
	}
	for {
		letter := rune('a' + rng.Intn(core.AlphabetSize))
		if !tried.Has(letter) {
			return letter, nil
		}
	}
}

// PickFirst returns the first letter of order that is not in tried.
func PickFirst(order []rune, tried core.LetterSet) (rune, bool) {
	for _, letter := range order {
		if !tried.Has(letter) {
			return letter, true
		}
	}
	return 0, false
}

// PickNeighbor scans the table entries in order and, within each entry,
// its neighbor list in order, returning the first untried letter.
func PickNeighbor(table []Neighbors, tried core.LetterSet) (rune, bool) {
	for _, entry := range table {
		if letter, ok := PickFirst(entry.Next, tried); ok {
			return letter, true
		}
	}
	return 0, false
}

// Basic guesses uniformly at random among untried letters.
type Basic struct{}

// Name returns "basic".
func (Basic) Name() string { return "basic" }

// Pick returns a random untried letter.
func (Basic) Pick(tried core.LetterSet, rng *rand.Rand) (rune, error) {
	return PickRandom(tried, rng)
}

// Intermediate walks the nine most frequent letters, then falls back to Basic.
type Intermediate struct{}

// Name returns "intermediate".
func (Intermediate) Name() string { return "intermediate" }

// Pick returns the most frequent untried letter, or a random one.
func (Intermediate) Pick(tried core.LetterSet, rng *rand.Rand) (rune, error) {
	if letter, ok := PickFirst(intermediatePriority, tried); ok {
		return letter, nil
	}
	return PickRandom(tried, rng)
}

// Advanced walks e,t,a,o, then the neighbor table, then falls back to Basic.
type Advanced struct{}

// Name returns "advanced".
func (Advanced) Name() string { return "advanced" }

// Pick returns the next letter by priority, neighbor table, then random.
func (Advanced) Pick(tried core.LetterSet, rng *rand.Rand) (rune, error) {
	if letter, ok := PickFirst(advancedPriority, tried); ok {
		return letter, nil
	}
	if letter, ok := PickNeighbor(advancedNeighbors, tried); ok {
		return letter, nil
	}
	return PickRandom(tried, rng)
}

// StrategyByName resolves a config name to a strategy.
// The player nicknames "dumb", "mediocre" and "smart" are accepted too.
func StrategyByName(name string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "basic", "dumb":
		return Basic{}, nil
	case "intermediate", "mediocre":
		return Intermediate{}, nil
	case "advanced", "smart":
		return Advanced{}, nil
	default:
		return nil, fmt.Errorf("players: unknown strategy %q: %w", name, core.ErrConfiguration)
	}
}
