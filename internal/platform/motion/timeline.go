package motion

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrTimelineClosed reports use of a timeline after teardown.
var ErrTimelineClosed = errors.New("timeline is closed")

// Clock supplies frame timestamps.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock reads wall-clock time.
var SystemClock Clock = ClockFunc(time.Now)

// Frame is the sampled state of every attached element for one tick.
type Frame map[string]State

// Timeline is the cooperative host loop for one render tree. Elements are
// attached when mounted, sampled once per Frame call, and released on Detach
// or Close. A Timeline is driven from a single goroutine.
type Timeline struct {
	clock    Clock
	viewport Viewport
	order    []string
	reveals  map[string]*Reveal
	closed   bool
}

// NewTimeline returns a timeline. A nil viewport makes every viewport-gated
// reveal fail open.
func NewTimeline(clock Clock, viewport Viewport) *Timeline {
	if clock == nil {
		clock = SystemClock
	}
	return &Timeline{
		clock:    clock,
		viewport: viewport,
		reveals:  make(map[string]*Reveal),
	}
}

// Attach mounts r under id at the current clock time.
func (t *Timeline) Attach(id string, r *Reveal) error {
	if t.closed {
		return ErrTimelineClosed
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return errors.New("element id is required")
	}
	if r == nil {
		return fmt.Errorf("element %q: reveal is required", id)
	}
	if _, ok := t.reveals[id]; ok {
		return fmt.Errorf("element %q is already attached", id)
	}
	var obs Observer
	if t.viewport != nil {
		obs = t.viewport.Target(id)
	}
	r.Mount(t.clock.Now(), obs)
	t.reveals[id] = r
	t.order = append(t.order, id)
	return nil
}

// Detach unmounts the element attached under id.
func (t *Timeline) Detach(id string) {
	r, ok := t.reveals[id]
	if !ok {
		return
	}
	r.Unmount()
	delete(t.reveals, id)
	for i, existing := range t.order {
		if existing == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
}

// Reveal returns the element attached under id.
func (t *Timeline) Reveal(id string) (*Reveal, bool) {
	r, ok := t.reveals[id]
	return r, ok
}

// IDs returns attached element ids in attach order.
func (t *Timeline) IDs() []string {
	return append([]string(nil), t.order...)
}

// Len returns the number of attached elements.
func (t *Timeline) Len() int {
	return len(t.order)
}

// Frame samples every attached element at the current clock time.
func (t *Timeline) Frame() Frame {
	if t.closed {
		return Frame{}
	}
	now := t.clock.Now()
	frame := make(Frame, len(t.reveals))
	for id, r := range t.reveals {
		frame[id] = r.Sample(now)
	}
	return frame
}

// Run calls onFrame every interval until ctx is done or the timeline closes.
func (t *Timeline) Run(ctx context.Context, interval time.Duration, onFrame func(Frame)) error {
	if interval <= 0 {
		return fmt.Errorf("frame interval must be positive, got %s", interval)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := ctx.Err(); err != nil {
				return err
			}
			if t.closed {
				return ErrTimelineClosed
			}
			if onFrame != nil {
				onFrame(t.Frame())
			}
		}
	}
}

// Close unmounts every element. Close is idempotent.
func (t *Timeline) Close() {
	if t.closed {
		return
	}
	for _, id := range t.order {
		t.reveals[id].Unmount()
	}
	t.reveals = make(map[string]*Reveal)
	t.order = nil
	t.closed = true
}

type timelineKey struct{}

// WithTimeline stores t in ctx for components rendered under it.
func WithTimeline(ctx context.Context, t *Timeline) context.Context {
	return context.WithValue(ctx, timelineKey{}, t)
}

// TimelineFrom returns the timeline stored in ctx, if any.
func TimelineFrom(ctx context.Context) (*Timeline, bool) {
	if ctx == nil {
		return nil, false
	}
	t, ok := ctx.Value(timelineKey{}).(*Timeline)
	return t, ok && t != nil
}
