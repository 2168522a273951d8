// Package progress provides a lightweight tracker that keeps aggregated
// simulation counters.  The tracker can travel in the context so that the
// command interpreter and detached background tasks update the same
// instance as the queue manager without a global registry.

package progress

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Delta represents an incremental counter change emitted by the queue
// manager or the command interpreter.
type Delta struct {
	Ticks      int
	Dispatched int
	Idle       int
	Slept      int
	Completed  int
	Promoted   int
	Commands   int
	Background int
	Failed     int
}

// Counters holds the aggregated values
type Counters struct {
	StartedAt  time.Time
	Ticks      int
	Dispatched int
	Idle       int
	Slept      int
	Completed  int
	Promoted   int
	Commands   int
	Background int
	Failed     int
}

// String returns a one-line summary
func (c Counters) String() string {
	return fmt.Sprintf("ticks=%d dispatched=%d idle=%d slept=%d completed=%d promoted=%d commands=%d background=%d failed=%d",
		c.Ticks, c.Dispatched, c.Idle, c.Slept, c.Completed, c.Promoted, c.Commands, c.Background, c.Failed)
}

// Progress keeps aggregated counters.  It is safe for concurrent use.
type Progress struct {
	mu       sync.Mutex
	counters Counters
	onChange func(Counters)
}

// Update applies the supplied delta.  The onChange callback, if any, is
// invoked with a copy of the counters outside the critical section.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}

	p.mu.Lock()
	c := &p.counters
	c.Ticks += d.Ticks
	c.Dispatched += d.Dispatched
	c.Idle += d.Idle
	c.Slept += d.Slept
	c.Completed += d.Completed
	c.Promoted += d.Promoted
	c.Commands += d.Commands
	c.Background += d.Background
	c.Failed += d.Failed
	snapshot := p.counters
	cb := p.onChange
	p.mu.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

// Snapshot returns a copy of the counters
func (p *Progress) Snapshot() Counters {
	if p == nil {
		return Counters{}
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.counters
}

// OnChange registers a callback that is invoked after every Update.  Passing
// nil disables the callback.
func (p *Progress) OnChange(cb func(Counters)) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.onChange = cb
	p.mu.Unlock()
}

// New creates a tracker
func New() *Progress {
	return &Progress{counters: Counters{StartedAt: time.Now()}}
}

// ----------------------------------------------------------------------------
// Context helpers
// ----------------------------------------------------------------------------

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithTracker embeds the tracker in a derived context
func WithTracker(ctx context.Context, tracker *Progress) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, trackerKey, tracker)
}

// FromContext extracts the tracker from ctx
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx looks up the tracker in ctx (if any) and applies the delta
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
