package session

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Option configures a Session or a Runner.
type Option func(*settings)

type settings struct {
	rng      *rand.Rand
	observer Observer
	logger   *log.Logger
}

func newSettings(opts []Option) settings {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.logger == nil {
		s.logger = log.New(io.Discard)
	}
	return s
}

// WithRand threads rng through secret generation.
// Share it with computer players for fully reproducible runs.
func WithRand(rng *rand.Rand) Option {
	return func(s *settings) { s.rng = rng }
}

// WithObserver sets the receiver of session events.
func WithObserver(obs Observer) Option {
	return func(s *settings) { s.observer = obs }
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *log.Logger) Option {
	return func(s *settings) { s.logger = logger }
}
