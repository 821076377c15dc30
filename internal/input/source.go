// Package input normalizes raw platform events (keys, pointer, touch
// gestures) into one core.InputSnapshot per simulation tick.
package input

import (
	"math"
	"sync"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Direction is the dominant direction of a swipe gesture.
type Direction int

const (
	SwipeLeft Direction = iota
	SwipeRight
	SwipeUp
	SwipeDown
)

// Action returns the edge action produced by a swipe in this direction.
func (d Direction) Action() core.Action {
	switch d {
	case SwipeLeft:
		return core.ActionLeft
	case SwipeRight:
		return core.ActionRight
	case SwipeUp:
		return core.ActionUp
	default:
		return core.ActionDown
	}
}

// DefaultBindings maps keys to the edge action a key press produces.
func DefaultBindings() map[core.Key]core.Action {
	return map[core.Key]core.Action{
		core.KeySpace: core.ActionJump,
		core.KeyUp:    core.ActionJump,
		core.KeyFire:  core.ActionShoot,
		core.KeyLeft:  core.ActionLeft,
		core.KeyRight: core.ActionRight,
	}
}

// DefaultSwipeThreshold is the minimum touch displacement (world units)
// for a gesture to count as a swipe rather than a tap.
const DefaultSwipeThreshold = 3.0

// Source merges held keys, the last pointer position and discrete edge
// actions into snapshots. Events may be fed from any goroutine; Sample is
// called once per tick by the driver.
type Source struct {
	mu sync.Mutex

	bindings       map[core.Key]core.Action
	tapAction      core.Action
	swipeThreshold float64
	releaseAfter   int // samples before an un-refreshed key auto-releases; 0 = wait for KeyUp

	held     map[core.Key]uint64 // key -> press sequence
	expires  map[core.Key]uint64 // key -> sample count at which it auto-releases
	seq      uint64
	samples  uint64
	pointer  *core.Vec2
	touching bool
	origin   core.Vec2
	edges    []core.Action
}

// Option configures a Source.
type Option func(*Source)

// WithBindings replaces the key → edge action table.
func WithBindings(b map[core.Key]core.Action) Option {
	return func(s *Source) {
		s.bindings = b
	}
}

// WithTapAction sets the edge action emitted for a tap gesture.
func WithTapAction(a core.Action) Option {
	return func(s *Source) {
		s.tapAction = a
	}
}

// WithSwipeThreshold sets the tap/swipe displacement threshold.
func WithSwipeThreshold(d float64) Option {
	return func(s *Source) {
		s.swipeThreshold = d
	}
}

// WithKeyRelease makes held keys release on their own after n samples
// without a fresh KeyDown. Terminals report presses (with auto-repeat)
// but never releases, so the TUI host uses this.
func WithKeyRelease(n int) Option {
	return func(s *Source) {
		s.releaseAfter = n
	}
}

// NewSource creates an input source with default bindings.
func NewSource(opts ...Option) *Source {
	s := &Source{
		bindings:       DefaultBindings(),
		tapAction:      core.ActionJump,
		swipeThreshold: DefaultSwipeThreshold,
		held:           make(map[core.Key]uint64),
		expires:        make(map[core.Key]uint64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// KeyDown records a key press. A bound key also queues its edge action;
// every call is treated as one physical event.
func (s *Source) KeyDown(k core.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	s.held[k] = s.seq
	if s.releaseAfter > 0 {
		s.expires[k] = s.samples + uint64(s.releaseAfter)
	}
	if a, ok := s.bindings[k]; ok && a != core.ActionNone {
		s.edges = append(s.edges, a)
	}
}

// KeyUp records a key release.
func (s *Source) KeyUp(k core.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.held, k)
	delete(s.expires, k)
}

// PointerMove records the latest pointer position.
func (s *Source) PointerMove(p core.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointer = &p
}

// TouchStart begins a gesture at p.
func (s *Source) TouchStart(p core.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointer = &p
	s.touching = true
	s.origin = p
}

// TouchEnd finishes a gesture at p and queues a tap or swipe edge.
// A TouchEnd without a matching TouchStart only moves the pointer.
func (s *Source) TouchEnd(p core.Vec2) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.pointer = &p
	if !s.touching {
		return
	}
	s.touching = false

	d := p.Sub(s.origin)
	if d.Len() < s.swipeThreshold {
		s.edges = append(s.edges, s.tapAction)
		return
	}
	s.edges = append(s.edges, classify(d).Action())
}

// Swipe queues a swipe recognized by the host.
func (s *Source) Swipe(dir Direction) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges = append(s.edges, dir.Action())
}

// Tap queues a tap recognized by the host.
func (s *Source) Tap() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.edges = append(s.edges, s.tapAction)
}

// Reset forgets all held keys, gestures and pending edges. The pointer
// position is kept.
func (s *Source) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	clear(s.held)
	clear(s.expires)
	s.touching = false
	s.edges = nil
}

// Sample returns the snapshot for the current tick and drains the pending
// edge actions. It never blocks and never fails: with no new events it
// returns the unchanged continuous state and no edges.
func (s *Source) Sample() core.InputSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.samples++
	for k, at := range s.expires {
		if s.samples > at {
			delete(s.held, k)
			delete(s.expires, k)
		}
	}

	snap := core.SnapshotFromState(s.held, s.pointer, s.edges)
	s.edges = s.edges[:0]
	return snap
}

// classify returns the dominant axis direction of d.
func classify(d core.Vec2) Direction {
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X < 0 {
			return SwipeLeft
		}
		return SwipeRight
	}
	if d.Y < 0 {
		return SwipeUp
	}
	return SwipeDown
}
