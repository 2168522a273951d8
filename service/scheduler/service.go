package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/cpusim/internal/clock"
)

// Ticker is advanced once per interval
type Ticker interface {
	Tick(ctx context.Context)
}

// Config represents scheduler loop configuration
type Config struct {
	// Interval is the wall-clock time between two ticks
	Interval time.Duration

	// Duration is the total time budget of the loop
	Duration time.Duration
}

// DefaultConfig returns the default scheduler configuration
func DefaultConfig() Config {
	return Config{
		Interval: 5 * time.Second,
		Duration: 60 * time.Second,
	}
}

// Validate returns an error describing the first invalid setting
func (c Config) Validate() error {
	if c.Interval <= 0 {
		return fmt.Errorf("scheduler.interval must be > 0")
	}
	if c.Duration < 0 {
		return fmt.Errorf("scheduler.duration must be >= 0")
	}
	return nil
}

// Service runs the scheduler loop
type Service struct {
	config Config
	ticker Ticker
}

// New creates a scheduler loop
func New(ticker Ticker, config Config) (*Service, error) {
	if ticker == nil {
		return nil, fmt.Errorf("ticker is required")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Service{config: config, ticker: ticker}, nil
}

// Start waits one interval, ticks, and repeats until the elapsed time meets
// the duration budget.  It returns the context error when cancelled first.
func (s *Service) Start(ctx context.Context) error {
	started := clock.Now()
	ticker := time.NewTicker(s.config.Interval)
	defer ticker.Stop()

	ticks := 0
	for clock.Since(started) < s.config.Duration {
		select {
		case <-ctx.Done():
			slog.Debug("scheduler: cancelled", "ticks", ticks)
			return ctx.Err()
		case <-ticker.C:
			s.ticker.Tick(ctx)
			ticks++
		}
	}
	slog.Debug("scheduler: duration elapsed", "ticks", ticks, "elapsed", clock.Since(started))
	return nil
}
