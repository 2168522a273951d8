package queue

import (
	"context"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/viant/cpusim/model"
	"github.com/viant/cpusim/progress"
	"github.com/viant/cpusim/tracing"
)

// Waiting represents a process blocked in the wait queue
type Waiting struct {
	Process   *model.Process
	Remaining int
}

// Manager owns the ready queue, the wait queue, the running slot and the
// promotion cursor.  It is safe for concurrent use.
type Manager struct {
	mu      sync.Mutex
	ready   []*model.Process
	waiting []*Waiting
	running *model.Process
	cursor  int

	config   Config
	random   Random
	writer   io.Writer
	progress *progress.Progress
}

// New creates a queue manager
func New(options ...Option) *Manager {
	ret := &Manager{config: DefaultConfig()}
	for _, opt := range options {
		opt(ret)
	}
	if ret.config.MaxWait <= 0 {
		ret.config.MaxWait = DefaultConfig().MaxWait
	}
	if ret.random == nil {
		seed := uint64(time.Now().UnixNano())
		ret.random = rand.New(rand.NewPCG(seed, seed>>1))
	}
	if ret.writer == nil {
		ret.writer = os.Stdout
	}
	return ret
}

// AddProcess appends the process to the ready queue tail
func (m *Manager) AddProcess(p *model.Process) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ready = append(m.ready, p)
}

// Dispatch pops the ready queue head into the running slot, or clears the
// slot when the ready queue is empty.  The previous occupant is not
// re-enqueued.
func (m *Manager) Dispatch() {
	delta := progress.Delta{}
	m.mu.Lock()
	m.dispatch(&delta)
	m.mu.Unlock()
	m.progress.Update(delta)
}

// SimulateSleep moves one uniformly selected ready process into the wait
// queue with a wait drawn from [1, MaxWait].
func (m *Manager) SimulateSleep() {
	delta := progress.Delta{}
	m.mu.Lock()
	m.simulateSleep(&delta)
	m.mu.Unlock()
	m.progress.Update(delta)
}

// Promote releases the wait queue front to the ready queue tail regardless
// of its remaining wait and advances the promotion cursor.
func (m *Manager) Promote() {
	delta := progress.Delta{}
	m.mu.Lock()
	m.promote(&delta)
	m.mu.Unlock()
	m.progress.Update(delta)
}

// DecrementWaitTimes decrements every waiting entry and moves the ones that
// reach zero to the ready queue tail.
func (m *Manager) DecrementWaitTimes() {
	delta := progress.Delta{}
	m.mu.Lock()
	m.decrementWaitTimes(&delta)
	m.mu.Unlock()
	m.progress.Update(delta)
}

// Display writes the current snapshot to the manager writer
func (m *Manager) Display() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.write(m.snapshot().String())
}

// Snapshot returns a copy of the current state
func (m *Manager) Snapshot() *Snapshot {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

// Emit writes the supplied lines to the manager writer while holding the
// queue lock, serializing them with displayed snapshots.
func (m *Manager) Emit(lines ...string) {
	if len(lines) == 0 {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.write(strings.Join(lines, "\n") + "\n")
}

// Tick runs one scheduler step: dispatch, sleep, decrement, promote and
// display, all under a single lock acquisition.
func (m *Manager) Tick(ctx context.Context) {
	_, span := tracing.StartSpan(ctx, "queue.tick")
	delta := progress.Delta{Ticks: 1}

	m.mu.Lock()
	if m.config.RequeueRunning && m.running != nil {
		m.ready = append(m.ready, m.running)
		m.running = nil
	}
	m.dispatch(&delta)
	m.simulateSleep(&delta)
	m.decrementWaitTimes(&delta)
	m.promote(&delta)
	snapshot := m.snapshot()
	m.write(snapshot.String())
	m.mu.Unlock()

	m.progress.Update(delta)
	span.WithAttributes(map[string]string{"running": snapshot.Running.String()}).
		WithInt("ready", len(snapshot.Ready)).
		WithInt("waiting", len(snapshot.Waiting))
	tracing.EndSpan(span, nil)
}

func (m *Manager) dispatch(delta *progress.Delta) {
	if len(m.ready) == 0 {
		m.running = nil
		delta.Idle++
		return
	}
	m.running = m.ready[0]
	m.ready[0] = nil
	m.ready = m.ready[1:]
	delta.Dispatched++
}

func (m *Manager) simulateSleep(delta *progress.Delta) {
	if len(m.ready) == 0 {
		return
	}
	index := m.random.IntN(len(m.ready))
	wait := m.random.IntN(m.config.MaxWait) + 1
	p := m.ready[index]
	m.ready = slices.Delete(m.ready, index, index+1)
	m.waiting = append(m.waiting, &Waiting{Process: p, Remaining: wait})
	slices.SortStableFunc(m.waiting, func(a, b *Waiting) int {
		return a.Remaining - b.Remaining
	})
	delta.Slept++
}

func (m *Manager) promote(delta *progress.Delta) {
	if len(m.waiting) > 0 {
		front := m.waiting[0]
		m.waiting = slices.Delete(m.waiting, 0, 1)
		front.Process.Promoted = true
		m.ready = append(m.ready, front.Process)
		delta.Promoted++
	}
	if len(m.ready) == 0 {
		m.cursor = 0
		return
	}
	m.cursor = (m.cursor + 1) % len(m.ready)
}

func (m *Manager) decrementWaitTimes(delta *progress.Delta) {
	kept := m.waiting[:0]
	for _, entry := range m.waiting {
		entry.Remaining--
		if entry.Remaining <= 0 {
			entry.Process.Promoted = true
			m.ready = append(m.ready, entry.Process)
			delta.Completed++
			continue
		}
		kept = append(kept, entry)
	}
	clear(m.waiting[len(kept):])
	m.waiting = kept
}

func (m *Manager) snapshot() *Snapshot {
	ret := &Snapshot{
		Running: m.running.Clone(),
		Ready:   make([]*model.Process, 0, len(m.ready)),
		Waiting: make([]Waiting, 0, len(m.waiting)),
		Cursor:  m.cursor,
	}
	for _, p := range m.ready {
		ret.Ready = append(ret.Ready, p.Clone())
	}
	for _, entry := range m.waiting {
		ret.Waiting = append(ret.Waiting, Waiting{Process: entry.Process.Clone(), Remaining: entry.Remaining})
	}
	return ret
}

func (m *Manager) write(text string) {
	if _, err := io.WriteString(m.writer, text); err != nil {
		slog.Warn("queue: failed to write output", "error", err)
	}
}
