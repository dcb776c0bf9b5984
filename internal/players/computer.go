package players

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Computer is a player whose letters come from a Strategy.
// It records every letter it returns, so it never repeats within a session.
type Computer struct {
	scoreKeeper
	strategy Strategy
	rng      *rand.Rand
	tried    core.LetterSet
}

// NewComputer creates a computer player.
// A nil rng gets a time-seeded source of its own.
func NewComputer(id string, strategy Strategy, rng *rand.Rand) *Computer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Computer{
		scoreKeeper: scoreKeeper{id: id},
		strategy:    strategy,
		rng:         rng,
	}
}

// NextGuess asks the strategy for a letter and marks it tried.
func (c *Computer) NextGuess(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if c.strategy == nil {
		return "", fmt.Errorf("players: computer %q has no strategy: %w", c.id, core.ErrIllegalState)
	}

	letter, err := c.strategy.Pick(c.tried, c.rng)
	if err != nil {
		return "", fmt.Errorf("players: %s strategy for %q: %w", c.strategy.Name(), c.id, err)
	}
	c.tried.Add(letter)
	return string(letter), nil
}

// Strategy returns the strategy this player uses.
func (c *Computer) Strategy() Strategy {
	return c.strategy
}

// Tried returns the letters this player has already guessed this session.
func (c *Computer) Tried() core.LetterSet {
	return c.tried
}

// Reset clears the tried letters and the score.
func (c *Computer) Reset() {
	c.tried.Clear()
	c.score = 0
}

var _ Player = (*Computer)(nil)
