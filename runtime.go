package cpusim

import (
	"context"
	"errors"
	"log/slog"

	"github.com/viant/cpusim/progress"
	"github.com/viant/cpusim/tracing"

	"golang.org/x/sync/errgroup"
)

// Run prints the initial queue state, then runs the scheduler loop and the
// command interpreter concurrently until the scheduler time budget elapses
// or ctx is cancelled. The interpreter is stopped when the scheduler loop
// returns. A missing command file is logged and does not stop the simulation.
func (s *Service) Run(ctx context.Context) error {
	ctx = progress.WithTracker(ctx, s.progress)
	s.manager.Emit("Initial Queue States:")
	s.manager.Display()

	group, groupCtx := errgroup.WithContext(ctx)
	interpreterCtx, stopInterpreter := context.WithCancel(groupCtx)
	defer stopInterpreter()

	group.Go(func() error {
		defer stopInterpreter()
		return s.scheduler.Start(groupCtx)
	})
	group.Go(func() error {
		return s.interpret(interpreterCtx)
	})

	err := group.Wait()
	if ctx.Err() != nil {
		slog.Info("simulation interrupted", "reason", ctx.Err())
		err = nil
	}
	s.shutdown(context.WithoutCancel(ctx))
	return err
}

func (s *Service) interpret(ctx context.Context) error {
	lines, err := s.commandLines(ctx)
	if err != nil {
		slog.Error("failed to load command lines", "error", err)
		return nil
	}
	if len(lines) == 0 {
		return nil
	}
	slog.Debug("interpreter started", "lines", len(lines))
	if err := s.interpreter.Run(ctx, lines); err != nil && !isContextErr(err) {
		return err
	}
	return nil
}

func (s *Service) commandLines(ctx context.Context) ([]string, error) {
	if s.lines != nil {
		return s.lines, nil
	}
	if s.config.Interpreter.CommandFile == "" {
		return nil, nil
	}
	return s.source.Load(ctx, s.config.Interpreter.CommandFile)
}

func (s *Service) shutdown(ctx context.Context) {
	if pending := s.tracker.Len(); pending > 0 {
		if s.config.Interpreter.DrainOnShutdown {
			drainCtx, cancel := context.WithTimeout(ctx, s.config.Interpreter.DrainTimeout)
			if err := s.tracker.Wait(drainCtx); err != nil {
				slog.Warn("background tasks not drained", "error", err)
			}
			cancel()
		} else {
			slog.Info("abandoning background tasks", "count", pending)
		}
	}
	slog.Info("simulation finished", "counters", s.progress.Snapshot().String())
	if s.config.Tracing.Enabled {
		if err := tracing.Shutdown(ctx); err != nil {
			slog.Warn("failed to flush traces", "error", err)
		}
	}
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
