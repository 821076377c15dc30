package core

// EntityID uniquely identifies an entity within one World.
type EntityID uint64

// EntityKind is the type tag used by collision rules.
type EntityKind int

const (
	KindPlayer EntityKind = iota
	KindObstacle
	KindCollectible
	KindProjectile
	KindEnemy
)

// String returns a human-readable name for the kind.
func (k EntityKind) String() string {
	switch k {
	case KindPlayer:
		return "Player"
	case KindObstacle:
		return "Obstacle"
	case KindCollectible:
		return "Collectible"
	case KindProjectile:
		return "Projectile"
	case KindEnemy:
		return "Enemy"
	default:
		return "Unknown"
	}
}

// Flags is a bitset of per-entity engine behaviours.
type Flags uint16

const (
	// FlagGravity applies the profile's gravity to Vel.Y.
	FlagGravity Flags = 1 << iota
	// FlagJumper applies jump gravity to the elevation (Z) axis.
	FlagJumper
	// FlagVital costs a life when the entity leaves the world through the lethal edge.
	FlagVital
	// FlagBounceWalls reflects the entity off the non-lethal world edges.
	FlagBounceWalls
	// FlagAnchored pins the entity to the player at offset Anchor.
	FlagAnchored
	// FlagPassed marks an obstacle that has already been scored.
	FlagPassed
)

// Has reports whether all bits of f2 are set.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// Entity is a single game object.
type Entity struct {
	ID     EntityID
	Kind   EntityKind
	Pos    Vec2 // Centre of Shape
	Vel    Vec2 // Units per second
	Shape  Shape
	Alive  bool
	Flags  Flags
	Z      float64 // Elevation above the ground plane (runner jumps)
	VZ     float64 // Elevation velocity
	Height float64 // How tall an obstacle is; 0 means it cannot be jumped
	HP     int     // Hits left before a bounce target breaks
	Points int     // Awarded when collected or destroyed
	Lane   int     // Lane index for lane-based profiles
	Anchor Vec2    // Offset from the player while FlagAnchored is set
}

// Bounds returns the entity's bounding box.
func (e *Entity) Bounds() Rect {
	return e.Shape.Bounds(e.Pos)
}

// Sprite is the read-only view of an entity handed to the render boundary.
type Sprite struct {
	ID    EntityID
	Kind  EntityKind
	Pos   Vec2
	Shape Shape
	Z     float64
	HP    int
}

// Sprite returns the render view of the entity.
func (e *Entity) Sprite() Sprite {
	return Sprite{ID: e.ID, Kind: e.Kind, Pos: e.Pos, Shape: e.Shape, Z: e.Z, HP: e.HP}
}
