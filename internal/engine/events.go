package engine

import "github.com/vovakirdan/arcade-engine/internal/core"

// EventKind identifies what happened during a world step.
type EventKind int

const (
	// EventPlayerHit: the player collided with something harmful.
	EventPlayerHit EventKind = iota
	// EventCollected: the player picked up a collectible.
	EventCollected
	// EventDestroyed: a target was destroyed (shot enemy, broken brick).
	EventDestroyed
	// EventBounced: an actor was reflected off a target.
	EventBounced
	// EventScored: the profile awarded points (pipe passed, distance).
	EventScored
	// EventBoundaryExit: the player or a vital entity left the world.
	EventBoundaryExit
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPlayerHit:
		return "PlayerHit"
	case EventCollected:
		return "Collected"
	case EventDestroyed:
		return "Destroyed"
	case EventBounced:
		return "Bounced"
	case EventScored:
		return "Scored"
	case EventBoundaryExit:
		return "BoundaryExit"
	default:
		return "Unknown"
	}
}

// GameEvent is one outcome of a step, in emission order.
type GameEvent struct {
	Kind   EventKind
	Entity core.EntityID // Actor (player, projectile, exiting entity)
	Other  core.EntityID // Target, zero when there is none
	Points int
}

// CostsLife reports whether the session takes a life for this event.
func (e GameEvent) CostsLife() bool {
	return e.Kind == EventPlayerHit || e.Kind == EventBoundaryExit
}
