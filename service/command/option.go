package command

import (
	"time"

	"github.com/viant/cpusim/service/task"
)

// Printer writes output lines
type Printer interface {
	Emit(lines ...string)
}

// Config represents interpreter configuration
type Config struct {
	// PromptDelay is slept between ';' separated sub-commands
	PromptDelay time.Duration
	// RepeatInterval is slept between repetitions of one command
	RepeatInterval time.Duration
}

// DefaultConfig returns the default interpreter configuration
func DefaultConfig() Config {
	return Config{
		PromptDelay:    time.Second,
		RepeatInterval: time.Second,
	}
}

// Option represents an interpreter option
type Option func(s *Service)

// WithConfig sets interpreter configuration
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithTracker sets the background task tracker
func WithTracker(tracker *task.Tracker) Option {
	return func(s *Service) {
		s.tracker = tracker
	}
}

// WithBuiltin registers or replaces a built-in
func WithBuiltin(name string, builtin Builtin) Option {
	return func(s *Service) {
		s.builtins[name] = builtin
	}
}
