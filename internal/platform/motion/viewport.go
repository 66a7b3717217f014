package motion

import "time"

// Viewport hands out per-element observers.
type Viewport interface {
	Target(id string) Observer
}

// Intersections is a host-driven Viewport: elements register interest and the
// host reports which ones entered the visible area.
//
// In the HTTP path nothing enters during server rendering; the browser script
// performs the real observation. Tests drive Enter and Leave directly.
type Intersections struct {
	next     uint64
	watchers map[string]map[uint64]func(time.Time)
	visible  map[string]time.Time
}

// NewIntersections returns an empty viewport.
func NewIntersections() *Intersections {
	return &Intersections{
		watchers: make(map[string]map[uint64]func(time.Time)),
		visible:  make(map[string]time.Time),
	}
}

// Target implements Viewport.
func (v *Intersections) Target(id string) Observer {
	return ObserverFunc(func(onEnter func(time.Time)) (func(), error) {
		return v.observe(id, onEnter)
	})
}

func (v *Intersections) observe(id string, onEnter func(time.Time)) (func(), error) {
	if v == nil || v.watchers == nil {
		return nil, ErrObserverUnavailable
	}
	v.next++
	key := v.next
	if v.watchers[id] == nil {
		v.watchers[id] = make(map[uint64]func(time.Time))
	}
	v.watchers[id][key] = onEnter
	release := func() {
		delete(v.watchers[id], key)
		if len(v.watchers[id]) == 0 {
			delete(v.watchers, id)
		}
	}
	// Already intersecting: deliver the entry on observe, as IntersectionObserver does.
	if at, ok := v.visible[id]; ok {
		onEnter(at)
	}
	return release, nil
}

// Enter marks id as intersecting and notifies its watchers. Repeated calls
// while the element stays visible are ignored.
func (v *Intersections) Enter(id string, at time.Time) {
	if _, ok := v.visible[id]; ok {
		return
	}
	v.visible[id] = at
	watchers := make([]func(time.Time), 0, len(v.watchers[id]))
	for _, fn := range v.watchers[id] {
		watchers = append(watchers, fn)
	}
	for _, fn := range watchers {
		fn(at)
	}
}

// Leave marks id as no longer intersecting.
func (v *Intersections) Leave(id string) {
	delete(v.visible, id)
}

// Watching reports how many observations are registered for id.
func (v *Intersections) Watching(id string) int {
	return len(v.watchers[id])
}

// Observed reports the total number of live observations.
func (v *Intersections) Observed() int {
	total := 0
	for _, set := range v.watchers {
		total += len(set)
	}
	return total
}
