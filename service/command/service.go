package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/viant/cpusim/internal/clock"
	"github.com/viant/cpusim/progress"
	"github.com/viant/cpusim/service/task"
	"github.com/viant/cpusim/tracing"
)

// Service interprets command lines
type Service struct {
	config   Config
	printer  Printer
	tracker  *task.Tracker
	builtins map[string]Builtin
}

// Tracker returns the background task tracker
func (s *Service) Tracker() *task.Tracker {
	return s.tracker
}

// Run executes lines in order until all ran or ctx is done
func (s *Service) Run(ctx context.Context, lines []string) error {
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Execute(ctx, line); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			slog.Debug("command line completed with errors", "line", i+1, "text", line, "error", err)
		}
	}
	return nil
}

// Execute runs a single line: background segments are started first, then
// the foreground segment runs inline. The returned error joins every
// foreground failure; background failures are only logged.
func (s *Service) Execute(ctx context.Context, text string) error {
	line, parseErr := Parse(text)
	if line == nil {
		progress.UpdateCtx(ctx, progress.Delta{Failed: 1})
		slog.Warn("skipped malformed line", "text", text, "error", parseErr)
		return parseErr
	}
	var errs []error
	if parseErr != nil {
		failed := len(unwrapAll(parseErr))
		progress.UpdateCtx(ctx, progress.Delta{Failed: failed})
		slog.Warn("skipped malformed command", "error", parseErr)
		errs = append(errs, parseErr)
	}

	for _, segment := range line.Background() {
		s.spawn(ctx, segment)
	}
	if err := s.runSegment(ctx, line.Foreground()); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

func (s *Service) spawn(ctx context.Context, segment *Segment) {
	progress.UpdateCtx(ctx, progress.Delta{Background: 1})
	s.tracker.Go(context.WithoutCancel(ctx), segment.String(), func(ctx context.Context) error {
		return s.runSegment(ctx, segment)
	})
}

func (s *Service) runSegment(ctx context.Context, segment *Segment) error {
	if segment.IsEmpty() {
		return nil
	}
	var errs []error
	for i, cmd := range segment.Commands {
		if i > 0 {
			if err := sleep(ctx, s.config.PromptDelay); err != nil {
				return errors.Join(append(errs, err)...)
			}
		}
		if err := s.run(ctx, cmd); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return errors.Join(append(errs, ctxErr)...)
			}
			slog.Warn("skipped command", "command", cmd.Text, "error", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (s *Service) run(ctx context.Context, cmd *Command) (err error) {
	ctx, span := tracing.StartSpan(ctx, "command.execute")
	span.WithAttributes(map[string]string{"command.name": cmd.Name, "command.text": cmd.Text})
	defer func() {
		delta := progress.Delta{Commands: 1}
		if err != nil {
			delta.Failed = 1
		}
		progress.UpdateCtx(ctx, delta)
		tracing.EndSpan(span, err)
	}()

	builtin, ok := s.builtins[cmd.Name]
	if !ok {
		return fmt.Errorf("%w: %v", ErrUnknownCommand, cmd.Name)
	}
	iterations := cmd.Iterations()
	started := clock.Now()
	executed := 0
	for ; iterations < 0 || executed < iterations; executed++ {
		if executed > 0 {
			if err = sleep(ctx, s.config.RepeatInterval); err != nil {
				return err
			}
		}
		if cmd.Duration > 0 && clock.Since(started) >= cmd.Duration {
			break
		}
		output, err := builtin(ctx, cmd)
		if err != nil {
			return err
		}
		s.printer.Emit(output)
	}
	span.WithInt("command.iterations", executed)
	slog.Debug("executed command", "command", cmd.Text, "iterations", executed)
	return nil
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func unwrapAll(err error) []error {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		return joined.Unwrap()
	}
	return []error{err}
}

// New creates an interpreter writing built-in output to printer
func New(printer Printer, opts ...Option) *Service {
	ret := &Service{
		config:   DefaultConfig(),
		printer:  printer,
		builtins: Builtins(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	if ret.tracker == nil {
		ret.tracker = task.New()
	}
	return ret
}
