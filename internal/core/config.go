package core

import (
	"math/rand"
	"time"
)

// RuntimeConfig contains configuration passed to sessions at creation.
type RuntimeConfig struct {
	Seed int64 // RNG seed for deterministic play (0 = time based)
}

// NewRand returns the single random source a run threads through secret
// generation and computer strategies.
func (c RuntimeConfig) NewRand() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}
