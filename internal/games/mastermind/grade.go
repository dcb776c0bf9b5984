package mastermind

import (
	"fmt"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Result counts the pegs of one graded guess.
type Result struct {
	Exact   int
	Partial int
}

// Grade compares guess against secret.
//
// The first pass consumes exact matches left to right. The second pass walks
// the remaining guess pegs in order and consumes the first remaining equal
// secret peg for each, so a color never matches more often than it occurs.
func Grade(secret, guess Code) (Result, error) {
	if len(guess) != len(secret) {
		return Result{}, fmt.Errorf("mastermind: guess has %d pegs, code has %d: %w", len(guess), len(secret), core.ErrInvalidGuess)
	}

	var res Result
	consumed := make([]bool, len(secret))
	unmatched := make([]Color, 0, len(guess))

	for i := range guess {
		if guess[i] == secret[i] {
			res.Exact++
			consumed[i] = true
		} else {
			unmatched = append(unmatched, guess[i])
		}
	}

	for _, color := range unmatched {
		for j := range secret {
			if !consumed[j] && secret[j] == color {
				res.Partial++
				consumed[j] = true
				break
			}
		}
	}

	return res, nil
}
