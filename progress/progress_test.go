package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgress_Update(t *testing.T) {
	tracker := New()
	var last Counters
	tracker.OnChange(func(c Counters) { last = c })

	tracker.Update(Delta{Ticks: 1, Dispatched: 1, Slept: 1})
	tracker.Update(Delta{Ticks: 1, Idle: 1, Promoted: 2})

	snapshot := tracker.Snapshot()
	assert.Equal(t, 2, snapshot.Ticks)
	assert.Equal(t, 1, snapshot.Dispatched)
	assert.Equal(t, 1, snapshot.Idle)
	assert.Equal(t, 2, snapshot.Promoted)
	assert.Equal(t, snapshot, last)
	assert.Contains(t, snapshot.String(), "ticks=2")
}

func TestProgress_Concurrent(t *testing.T) {
	tracker := New()
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tracker.Update(Delta{Commands: 1})
		}()
	}
	wg.Wait()
	assert.Equal(t, 20, tracker.Snapshot().Commands)
}

func TestUpdateCtx(t *testing.T) {
	tracker := New()
	ctx := WithTracker(context.Background(), tracker)
	UpdateCtx(ctx, Delta{Background: 1})
	UpdateCtx(context.Background(), Delta{Background: 1})
	assert.Equal(t, 1, tracker.Snapshot().Background)

	var nilTracker *Progress
	nilTracker.Update(Delta{Ticks: 1})
	assert.Equal(t, Counters{}, nilTracker.Snapshot())
}
