package wheel

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/guess-arcade/internal/core"
)

// Pool is the ordered list of phrases secrets are drawn from.
type Pool struct {
	phrases []string
}

// NewPool copies phrases into a pool. An empty list or a blank phrase is a
// configuration error.
func NewPool(phrases []string) (*Pool, error) {
	if len(phrases) == 0 {
		return nil, fmt.Errorf("wheel: phrase pool is empty: %w", core.ErrConfiguration)
	}
	for i, phrase := range phrases {
		if strings.TrimSpace(phrase) == "" {
			return nil, fmt.Errorf("wheel: phrase %d is blank: %w", i, core.ErrConfiguration)
		}
	}
	return &Pool{phrases: append([]string(nil), phrases...)}, nil
}

// Generate draws one phrase uniformly.
func (p *Pool) Generate(rng *rand.Rand) string {
	return p.phrases[rng.Intn(len(p.phrases))]
}

// Phrases returns the pool in order.
func (p *Pool) Phrases() []string {
	return append([]string(nil), p.phrases...)
}
