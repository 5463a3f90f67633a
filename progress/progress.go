package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/bookscan/internal/clock"
)

// Delta represents an incremental counter change emitted by the batch processor.
type Delta struct {
	Total     int
	Completed int
	Failed    int
	Running   int
}

// Progress keeps aggregated instance counters for one batch run.  It is safe for concurrent use.
type Progress struct {
	RunID     string
	StartedAt time.Time

	Total     int
	Completed int
	Failed    int
	Running   int

	sync.Mutex
	onChange func(Progress)
}

// Done reports whether every instance finished, successfully or not.
func (p *Progress) Done() bool {
	return p.Completed+p.Failed >= p.Total && p.Running == 0
}

// Update applies the supplied delta.  The onChange callback, if any, receives
// a copy taken under the lock and runs outside of it.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.Lock()
	p.Total += d.Total
	p.Completed += d.Completed
	p.Failed += d.Failed
	p.Running += d.Running
	snapshot := p.copy()
	cb := p.onChange
	p.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

func (p *Progress) copy() Progress {
	return Progress{
		RunID:     p.RunID,
		StartedAt: p.StartedAt,
		Total:     p.Total,
		Completed: p.Completed,
		Failed:    p.Failed,
		Running:   p.Running,
	}
}

// Snapshot returns a copy of the tracker suitable for read-only inspection.
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.Lock()
	defer p.Unlock()
	return p.copy()
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.Lock()
	p.onChange = cb
	p.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker for runID and embeds it in a derived context.
func WithNewTracker(ctx context.Context, runID string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		RunID:     runID,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx; ok is false when none is present.
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// GetSnapshot combines FromContext and Snapshot.
func GetSnapshot(ctx context.Context) (Progress, bool) {
	if tr, ok := FromContext(ctx); ok {
		return tr.Snapshot(), true
	}
	return Progress{}, false
}

// UpdateCtx applies d to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
