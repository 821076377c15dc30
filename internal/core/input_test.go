package core

import "testing"

func TestInputSnapshotHolding(t *testing.T) {
	s := NewInputSnapshot([]Key{KeyLeft, KeySpace}, nil, nil)

	if !s.Holding(KeyLeft) || !s.Holding(KeySpace) {
		t.Error("expected left and space to be held")
	}
	if s.Holding(KeyRight) {
		t.Error("right should not be held")
	}
	if s.HeldCount() != 2 {
		t.Errorf("HeldCount() = %d, expected 2", s.HeldCount())
	}
}

func TestInputSnapshotLastHeld(t *testing.T) {
	tests := []struct {
		name     string
		held     []Key
		expected Key
		found    bool
	}{
		{"none held", nil, "", false},
		{"only left", []Key{KeyLeft}, KeyLeft, true},
		{"left then right", []Key{KeyLeft, KeyRight}, KeyRight, true},
		{"right then left", []Key{KeyRight, KeyLeft}, KeyLeft, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewInputSnapshot(tc.held, nil, nil)
			got, ok := s.LastHeld(KeyLeft, KeyRight)
			if ok != tc.found || got != tc.expected {
				t.Errorf("LastHeld() = (%q, %v), expected (%q, %v)", got, ok, tc.expected, tc.found)
			}
		})
	}
}

func TestInputSnapshotEdges(t *testing.T) {
	s := NewInputSnapshot(nil, nil, []Action{ActionLeft, ActionJump, ActionRight})

	if !s.HasEdge(ActionJump) {
		t.Error("expected jump edge")
	}
	if s.HasEdge(ActionShoot) {
		t.Error("unexpected shoot edge")
	}

	last, ok := s.LastEdge(ActionLeft, ActionRight)
	if !ok || last != ActionRight {
		t.Errorf("LastEdge() = (%v, %v), expected (Right, true)", last, ok)
	}

	if _, ok := s.LastEdge(ActionShoot); ok {
		t.Error("LastEdge() should report false for missing actions")
	}
}

func TestInputSnapshotIsImmutable(t *testing.T) {
	edges := []Action{ActionJump}
	p := V(1, 2)
	s := NewInputSnapshot(nil, &p, edges)

	edges[0] = ActionShoot
	p.X = 99

	if !s.HasEdge(ActionJump) || s.HasEdge(ActionShoot) {
		t.Error("snapshot must not alias the caller's edge slice")
	}
	if got, _ := s.Pointer(); got != V(1, 2) {
		t.Errorf("snapshot must not alias the caller's pointer, got %v", got)
	}

	out := s.Edges()
	out[0] = ActionShoot
	if !s.HasEdge(ActionJump) {
		t.Error("Edges() must return a copy")
	}
}

func TestInputSnapshotEmpty(t *testing.T) {
	var s InputSnapshot

	if s.Holding(KeyLeft) {
		t.Error("zero snapshot holds nothing")
	}
	if _, ok := s.Pointer(); ok {
		t.Error("zero snapshot has no pointer")
	}
	if len(s.Edges()) != 0 {
		t.Error("zero snapshot has no edges")
	}
}
