package progress

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateCtx(t *testing.T) {
	var seen []Progress
	var mu sync.Mutex
	ctx, tracker := WithNewTracker(context.Background(), "run-1", func(p Progress) {
		mu.Lock()
		seen = append(seen, p)
		mu.Unlock()
	})

	UpdateCtx(ctx, Delta{Total: 3})
	var wg sync.WaitGroup
	for i := 0; i < 3; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			UpdateCtx(ctx, Delta{Running: 1})
			if i == 0 {
				UpdateCtx(ctx, Delta{Running: -1, Failed: 1})
				return
			}
			UpdateCtx(ctx, Delta{Running: -1, Completed: 1})
		}(i)
	}
	wg.Wait()

	snapshot, ok := GetSnapshot(ctx)
	assert.True(t, ok)
	assert.Equal(t, "run-1", snapshot.RunID)
	assert.Equal(t, 3, snapshot.Total)
	assert.Equal(t, 2, snapshot.Completed)
	assert.Equal(t, 1, snapshot.Failed)
	assert.Equal(t, 0, snapshot.Running)
	assert.True(t, snapshot.Done())
	assert.Len(t, seen, 7)
	assert.Equal(t, snapshot.Total, tracker.Snapshot().Total)
}

func TestNoTracker(t *testing.T) {
	UpdateCtx(context.Background(), Delta{Total: 1})
	_, ok := GetSnapshot(context.Background())
	assert.False(t, ok)
	var p *Progress
	p.Update(Delta{Total: 1})
	assert.Equal(t, 0, p.Snapshot().Total)
}
