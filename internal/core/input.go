package core

// Action represents a discrete game action (an edge), abstracted from the
// physical event (key press, tap, swipe) that produced it.
type Action int

const (
	ActionNone  Action = iota
	ActionJump         // Space, tap - jump, flap, launch
	ActionShoot        // Fire a projectile
	ActionLeft         // Lane shift / swipe left
	ActionRight        // Lane shift / swipe right
	ActionUp           // Swipe up
	ActionDown         // Swipe down
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionShoot:
		return "Shoot"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	default:
		return "Unknown"
	}
}

// Key is a platform-neutral key code.
type Key string

const (
	KeyLeft  Key = "left"
	KeyRight Key = "right"
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeySpace Key = "space"
	KeyFire  Key = "fire"
)

// InputSnapshot is the input state for one simulation tick.
// It is immutable once constructed; all accessors are read-only.
type InputSnapshot struct {
	held    map[Key]uint64 // key -> press sequence number
	pointer *Vec2
	edges   []Action
}

// NewInputSnapshot builds a snapshot. Held keys are treated as pressed in
// the given order. The arguments are copied.
func NewInputSnapshot(held []Key, pointer *Vec2, edges []Action) InputSnapshot {
	s := InputSnapshot{}
	if len(held) > 0 {
		s.held = make(map[Key]uint64, len(held))
		for i, k := range held {
			s.held[k] = uint64(i + 1)
		}
	}
	if pointer != nil {
		p := *pointer
		s.pointer = &p
	}
	if len(edges) > 0 {
		s.edges = append([]Action(nil), edges...)
	}
	return s
}

// SnapshotFromState builds a snapshot from a press-ordered key map.
// Used by input sources that track press order themselves.
func SnapshotFromState(held map[Key]uint64, pointer *Vec2, edges []Action) InputSnapshot {
	s := InputSnapshot{}
	if len(held) > 0 {
		s.held = make(map[Key]uint64, len(held))
		for k, seq := range held {
			s.held[k] = seq
		}
	}
	if pointer != nil {
		p := *pointer
		s.pointer = &p
	}
	if len(edges) > 0 {
		s.edges = append([]Action(nil), edges...)
	}
	return s
}

// Holding returns true if k is held this tick.
func (s InputSnapshot) Holding(k Key) bool {
	_, ok := s.held[k]
	return ok
}

// LastHeld returns whichever of the given keys was pressed most recently.
// Returns false if none of them is held.
func (s InputSnapshot) LastHeld(keys ...Key) (Key, bool) {
	var (
		best    Key
		bestSeq uint64
		found   bool
	)
	for _, k := range keys {
		if seq, ok := s.held[k]; ok && (!found || seq > bestSeq) {
			best, bestSeq, found = k, seq, true
		}
	}
	return best, found
}

// HeldCount returns the number of held keys.
func (s InputSnapshot) HeldCount() int {
	return len(s.held)
}

// Pointer returns the last known pointer position, if any.
func (s InputSnapshot) Pointer() (Vec2, bool) {
	if s.pointer == nil {
		return Vec2{}, false
	}
	return *s.pointer, true
}

// Edges returns a copy of the edge actions in event order.
func (s InputSnapshot) Edges() []Action {
	if len(s.edges) == 0 {
		return nil
	}
	return append([]Action(nil), s.edges...)
}

// HasEdge returns true if action a fired this tick.
func (s InputSnapshot) HasEdge(a Action) bool {
	for _, e := range s.edges {
		if e == a {
			return true
		}
	}
	return false
}

// LastEdge returns the last of the given actions in event order.
// Opposing edges in one tick resolve last-applied-wins through this.
func (s InputSnapshot) LastEdge(actions ...Action) (Action, bool) {
	for i := len(s.edges) - 1; i >= 0; i-- {
		for _, a := range actions {
			if s.edges[i] == a {
				return a, true
			}
		}
	}
	return ActionNone, false
}
