package queue

import (
	"io"

	"github.com/viant/cpusim/progress"
)

// Random is the random source used to select sleeping processes and wait
// durations.  *rand.Rand from math/rand/v2 satisfies it.
type Random interface {
	// IntN returns a value in [0, n); n > 0.
	IntN(n int) int
}

// Config represents queue manager configuration
type Config struct {
	// MaxWait is the upper bound (inclusive) of a simulated wait in ticks
	MaxWait int

	// RequeueRunning re-enqueues the previously running process at the start
	// of every tick, before dispatch.  When false a dispatched process that is
	// not picked for sleep in the same tick leaves all queues.
	RequeueRunning bool
}

// DefaultConfig returns the default queue manager configuration
func DefaultConfig() Config {
	return Config{
		MaxWait: 10,
	}
}

// Option configures a Manager
type Option func(m *Manager)

// WithConfig sets the configuration
func WithConfig(config Config) Option {
	return func(m *Manager) {
		m.config = config
	}
}

// WithRandom sets the random source
func WithRandom(random Random) Option {
	return func(m *Manager) {
		m.random = random
	}
}

// WithWriter sets the destination of displayed snapshots and emitted lines
func WithWriter(w io.Writer) Option {
	return func(m *Manager) {
		m.writer = w
	}
}

// WithProgress sets the counters tracker
func WithProgress(tracker *progress.Progress) Option {
	return func(m *Manager) {
		m.progress = tracker
	}
}
