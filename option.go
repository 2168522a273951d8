package cpusim

import (
	"io"

	"github.com/viant/cpusim/progress"
	"github.com/viant/cpusim/service/queue"
	"github.com/viant/cpusim/tracing"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// Option represents a simulator option
type Option func(s *Service)

// WithConfig sets the simulator configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		if config != nil {
			s.config = config
		}
	}
}

// WithWriter sets the console stream receiving snapshots and command output
func WithWriter(w io.Writer) Option {
	return func(s *Service) {
		s.writer = w
	}
}

// WithRandom sets the random source used by the queue manager; it takes
// precedence over scheduler.seed.
func WithRandom(random queue.Random) Option {
	return func(s *Service) {
		s.random = random
	}
}

// WithCommandLines supplies command lines programmatically instead of interpreter.commandFile
func WithCommandLines(lines ...string) Option {
	return func(s *Service) {
		s.lines = lines
	}
}

// WithProgress sets the counters tracker
func WithProgress(tracker *progress.Progress) Option {
	return func(s *Service) {
		s.progress = tracker
	}
}

// WithTracingExporter configures OpenTelemetry tracing using a custom SpanExporter. The first
// successful initialisation wins.
func WithTracingExporter(serviceName, serviceVersion string, exporter sdktrace.SpanExporter) Option {
	return func(s *Service) {
		if err := tracing.InitWithExporter(serviceName, serviceVersion, exporter); err != nil {
			s.initErr = err
		}
	}
}
