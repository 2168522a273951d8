package task

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/viant/cpusim/internal/clock"
	"github.com/viant/cpusim/internal/idgen"
)

// Func represents a background unit of work
type Func func(ctx context.Context) error

// Tracker starts and records background tasks
type Tracker struct {
	mu     sync.Mutex
	active map[string]*Task
	wg     sync.WaitGroup
	onDone func(task *Task)
}

// Option configures a tracker
type Option func(t *Tracker)

// WithOnDone registers a callback invoked after each task returns
func WithOnDone(fn func(task *Task)) Option {
	return func(t *Tracker) {
		t.onDone = fn
	}
}

// Go starts fn on its own goroutine and returns the tracked task
func (t *Tracker) Go(ctx context.Context, name string, fn Func) *Task {
	task := &Task{
		ID:        idgen.NewWithPrefix("task"),
		Name:      name,
		StartedAt: clock.Now(),
		state:     StateRunning,
		done:      make(chan struct{}),
	}
	t.mu.Lock()
	t.active[task.ID] = task
	t.mu.Unlock()
	t.wg.Add(1)

	go func() {
		defer t.wg.Done()
		err := t.run(ctx, fn)
		task.finish(err, clock.Now())
		t.mu.Lock()
		delete(t.active, task.ID)
		t.mu.Unlock()
		if err != nil {
			slog.Warn("background task failed", "id", task.ID, "name", task.Name, "error", err)
		} else {
			slog.Debug("background task completed", "id", task.ID, "name", task.Name)
		}
		if t.onDone != nil {
			t.onDone(task)
		}
	}()
	return task
}

func (t *Tracker) run(ctx context.Context, fn Func) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("background task panicked: %v", r)
		}
	}()
	return fn(ctx)
}

// Len returns the number of running tasks
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}

// Wait blocks until every started task returned or ctx is done
func (t *Tracker) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		t.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%d background task(s) still running: %w", t.Len(), ctx.Err())
	}
}

// New creates a tracker
func New(opts ...Option) *Tracker {
	ret := &Tracker{active: map[string]*Task{}}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}
