package task

import (
	"sync"
	"time"
)

// State represents a background task state
type State string

const (
	StateRunning   State = "running"
	StateCompleted State = "completed"
	StateFailed    State = "failed"
)

// Task represents a tracked background execution
type Task struct {
	ID        string
	Name      string
	StartedAt time.Time

	mu      sync.Mutex
	state   State
	err     error
	endedAt time.Time
	done    chan struct{}
}

// State returns the current task state
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Err returns the task error, nil while running or after success
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// EndedAt returns when the task returned, zero while running
func (t *Task) EndedAt() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.endedAt
}

// Done is closed once the task returns
func (t *Task) Done() <-chan struct{} {
	return t.done
}

func (t *Task) finish(err error, at time.Time) {
	t.mu.Lock()
	t.err = err
	t.endedAt = at
	t.state = StateCompleted
	if err != nil {
		t.state = StateFailed
	}
	t.mu.Unlock()
	close(t.done)
}
