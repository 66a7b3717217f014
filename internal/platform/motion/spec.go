package motion

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalidSpec reports an animation spec that violates its invariants.
var ErrInvalidSpec = errors.New("invalid animation spec")

// Property names one animatable visual property.
type Property string

const (
	Opacity    Property = "opacity"
	TranslateY Property = "translateY"
	Scale      Property = "scale"
)

// propertyOrder fixes the order properties are emitted in CSS and compared in tests.
var propertyOrder = []Property{Opacity, TranslateY, Scale}

// State maps visual properties to values.
type State map[Property]float64

// Clone returns an independent copy of s.
func (s State) Clone() State {
	if s == nil {
		return nil
	}
	out := make(State, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// Equal reports whether both states carry the same properties with values
// that are visually indistinguishable.
func (s State) Equal(other State) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		o, ok := other[k]
		if !ok || math.Abs(v-o) > 1e-9 {
			return false
		}
	}
	return true
}

// Properties returns the state's properties in canonical order.
func (s State) Properties() []Property {
	out := make([]Property, 0, len(s))
	for _, p := range propertyOrder {
		if _, ok := s[p]; ok {
			out = append(out, p)
		}
	}
	return out
}

// Trigger selects what starts a transition.
type Trigger uint8

const (
	// OnMount starts as soon as the element is attached.
	OnMount Trigger = iota
	// OnFirstViewportEntry starts the first time the element enters the viewport.
	OnFirstViewportEntry
)

func (t Trigger) String() string {
	switch t {
	case OnMount:
		return "mount"
	case OnFirstViewportEntry:
		return "viewport"
	default:
		return fmt.Sprintf("trigger(%d)", uint8(t))
	}
}

// Repeat selects what happens after the target state is reached.
type Repeat uint8

const (
	RepeatNone Repeat = iota
	RepeatInfinite
)

func (r Repeat) String() string {
	switch r {
	case RepeatNone:
		return "none"
	case RepeatInfinite:
		return "infinite"
	default:
		return fmt.Sprintf("repeat(%d)", uint8(r))
	}
}

// Spec declares one animation.
//
// For RepeatInfinite, Duration is the full period: the first half runs
// Initial to Target, the second half runs back to Initial.
type Spec struct {
	Initial  State
	Target   State
	Trigger  Trigger
	Repeat   Repeat
	Duration time.Duration
	Easing   Easing
}

// Validate reports ErrInvalidSpec when s cannot be animated.
func (s Spec) Validate() error {
	if s.Duration <= 0 {
		return fmt.Errorf("%w: duration must be positive, got %s", ErrInvalidSpec, s.Duration)
	}
	if len(s.Initial) == 0 {
		return fmt.Errorf("%w: initial state is required", ErrInvalidSpec)
	}
	if len(s.Initial) != len(s.Target) {
		return fmt.Errorf("%w: initial and target states must animate the same properties", ErrInvalidSpec)
	}
	for p := range s.Initial {
		if _, ok := s.Target[p]; !ok {
			return fmt.Errorf("%w: target state is missing %q", ErrInvalidSpec, p)
		}
	}
	switch s.Trigger {
	case OnMount, OnFirstViewportEntry:
	default:
		return fmt.Errorf("%w: unknown trigger %s", ErrInvalidSpec, s.Trigger)
	}
	switch s.Repeat {
	case RepeatNone:
	case RepeatInfinite:
		if s.Trigger != OnMount {
			return fmt.Errorf("%w: looping animations must start on mount, got %s", ErrInvalidSpec, s.Trigger)
		}
	default:
		return fmt.Errorf("%w: unknown repeat policy %s", ErrInvalidSpec, s.Repeat)
	}
	return nil
}

// Interpolate returns the eased state at progress in [0,1] from Initial to
// Target. Progress outside the range is clamped.
func (s Spec) Interpolate(progress float64) State {
	return lerpState(s.Initial, s.Target, s.Easing.Apply(clamp01(progress)))
}

// At returns the state elapsed time after the transition started.
func (s Spec) At(elapsed time.Duration) State {
	if elapsed <= 0 {
		return s.Initial.Clone()
	}
	if s.Repeat != RepeatInfinite {
		if elapsed >= s.Duration {
			return s.Target.Clone()
		}
		return s.Interpolate(float64(elapsed) / float64(s.Duration))
	}

	phase := elapsed % s.Duration
	if phase == 0 {
		return s.Initial.Clone()
	}
	half := s.Duration / 2
	if phase < half {
		return s.Interpolate(float64(phase) / float64(half))
	}
	back := float64(phase-half) / float64(s.Duration-half)
	return lerpState(s.Target, s.Initial, s.Easing.Apply(clamp01(back)))
}

func lerpState(from, to State, p float64) State {
	out := make(State, len(from))
	for k, a := range from {
		b, ok := to[k]
		if !ok {
			b = a
		}
		out[k] = a + (b-a)*p
	}
	return out
}
