package motion

import (
	"errors"
	"time"
)

// ErrObserverUnavailable reports that viewport intersection cannot be observed.
var ErrObserverUnavailable = errors.New("viewport observer unavailable")

// Observer delivers viewport-entry notifications for a single element.
//
// Observe registers onEnter and returns a release function that stops the
// observation. Implementations may call onEnter more than once.
type Observer interface {
	Observe(onEnter func(at time.Time)) (release func(), err error)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(onEnter func(at time.Time)) (func(), error)

// Observe implements Observer.
func (f ObserverFunc) Observe(onEnter func(at time.Time)) (func(), error) {
	if f == nil {
		return nil, ErrObserverUnavailable
	}
	return f(onEnter)
}

// Reveal is the runtime state of one animated element.
//
// A Reveal is driven from a single goroutine (the owning Timeline); it is not
// safe for concurrent use.
type Reveal struct {
	spec Spec

	mounted    bool
	mountedAt  time.Time
	generation uint64
	started    bool
	startedAt  time.Time
	failOpen   bool
	release    func()
}

// NewReveal validates spec and returns an unmounted Reveal.
func NewReveal(spec Spec) (*Reveal, error) {
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	spec.Initial = spec.Initial.Clone()
	spec.Target = spec.Target.Clone()
	return &Reveal{spec: spec}, nil
}

// MustReveal is NewReveal for statically declared specs.
func MustReveal(spec Spec) *Reveal {
	r, err := NewReveal(spec)
	if err != nil {
		panic(err)
	}
	return r
}

// Spec returns the reveal's animation spec.
func (r *Reveal) Spec() Spec {
	return r.spec
}

// Mount attaches the reveal at now. Mount-triggered reveals start
// immediately. Viewport-triggered reveals wait for obs; when obs is nil or
// cannot observe, the reveal fails open and shows its target state.
func (r *Reveal) Mount(now time.Time, obs Observer) {
	if r.mounted {
		return
	}
	r.mounted = true
	r.mountedAt = now
	r.generation++

	if r.spec.Trigger == OnMount {
		r.start(now)
		return
	}
	if obs == nil {
		r.failOpen = true
		return
	}
	generation := r.generation
	release, err := obs.Observe(func(at time.Time) {
		r.enter(generation, at)
	})
	if err != nil {
		if release != nil {
			release()
		}
		r.failOpen = true
		return
	}
	if r.started {
		// Entered synchronously during Observe; the observation is already released.
		if release != nil {
			release()
		}
		return
	}
	r.release = release
}

func (r *Reveal) enter(generation uint64, at time.Time) {
	if !r.mounted || generation != r.generation || r.started {
		return
	}
	// An element visible before mount starts its transition at mount.
	if at.Before(r.mountedAt) {
		at = r.mountedAt
	}
	r.start(at)
	r.releaseObservation()
}

func (r *Reveal) start(at time.Time) {
	r.started = true
	r.startedAt = at
}

// Revealed reports whether the transition has been triggered or bypassed.
func (r *Reveal) Revealed() bool {
	return r.started || r.failOpen
}

// Observing reports whether the reveal still holds a viewport observation.
func (r *Reveal) Observing() bool {
	return r.release != nil
}

// Sample returns the element's visual state at now.
func (r *Reveal) Sample(now time.Time) State {
	switch {
	case r.failOpen:
		return r.spec.Target.Clone()
	case !r.started:
		return r.spec.Initial.Clone()
	default:
		return r.spec.At(now.Sub(r.startedAt))
	}
}

// Unmount releases any observation. Notifications delivered afterwards are
// ignored; a later Mount starts from the initial state again.
func (r *Reveal) Unmount() {
	if !r.mounted {
		return
	}
	r.releaseObservation()
	r.mounted = false
	r.mountedAt = time.Time{}
	r.started = false
	r.failOpen = false
	r.startedAt = time.Time{}
}

func (r *Reveal) releaseObservation() {
	if r.release == nil {
		return
	}
	release := r.release
	r.release = nil
	release()
}
