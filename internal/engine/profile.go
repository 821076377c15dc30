package engine

import (
	"github.com/vovakirdan/arcade-engine/internal/core"
)

// Outcome is what a collision between an actor and a target produces.
type Outcome int

const (
	OutcomeIgnore Outcome = iota
	OutcomeHit
	OutcomeCollect
	OutcomeDestroyBoth
	OutcomeBounce
)

// Rule maps an (actor kind, target kind) pair to an outcome.
// Consume removes the target on OutcomeHit.
type Rule struct {
	Actor   core.EntityKind
	Target  core.EntityKind
	Outcome Outcome
	Consume bool
}

// DefaultRules is the baseline collision table. Profiles copy it and
// override entries as needed.
func DefaultRules() []Rule {
	return []Rule{
		{Actor: core.KindPlayer, Target: core.KindObstacle, Outcome: OutcomeHit},
		{Actor: core.KindPlayer, Target: core.KindEnemy, Outcome: OutcomeHit},
		{Actor: core.KindPlayer, Target: core.KindCollectible, Outcome: OutcomeCollect},
		{Actor: core.KindProjectile, Target: core.KindEnemy, Outcome: OutcomeDestroyBoth},
	}
}

// Edge is a side of the world bounds.
type Edge uint8

const (
	EdgeLeft Edge = 1 << iota
	EdgeRight
	EdgeTop
	EdgeBottom

	EdgeNone Edge = 0
)

// Profile is the data that turns the generic world into a specific game.
// Hooks are optional unless noted; a Profile instance belongs to a single
// session, so hooks may keep private state in their closures as long as
// Setup resets it.
type Profile struct {
	ID    string
	Title string

	Bounds     core.Rect
	Lives      int
	WinOnClear bool // Running ends won once no obstacles remain

	Gravity     float64 // Units/s² on Vel.Y of FlagGravity entities
	MaxFall     float64 // Terminal Vel.Y, 0 for none
	JumpGravity float64 // Units/s² on VZ of FlagJumper entities
	JumpCeiling float64 // Max Z, 0 for none

	ClampX   bool // Keep the player inside bounds horizontally
	ClampY   bool // Keep the player inside bounds vertically
	ClampTop bool // Stop the player at the top edge only

	// LethalEdges are the edges a FlagVital entity must not leave through.
	// Other edges bounce it (with FlagBounceWalls) or remove it.
	LethalEdges Edge

	Rules []Rule

	// Setup spawns the initial entities, including exactly one player.
	// Required.
	Setup func(w *World)
	// ApplyInput turns the input snapshot into player velocity or
	// position changes and input-driven spawns.
	ApplyInput func(w *World, player *core.Entity, in core.InputSnapshot)
	// Spawn is the per-tick spawn policy.
	Spawn func(w *World)
	// Score runs after collisions and may emit EventScored.
	Score func(w *World)
	// Bounce replaces the default reflection for OutcomeBounce. It reports
	// false to fall back to the default.
	Bounce func(w *World, actor, target *core.Entity) bool
	// Respawn restores the player after a lost life. Defaults to moving
	// the player back to its spawn point.
	Respawn func(w *World)
}

func (p *Profile) lives() int {
	if p.Lives < 1 {
		return 1
	}
	return p.Lives
}

func (p *Profile) rule(actor, target core.EntityKind) (Rule, bool) {
	for _, r := range p.Rules {
		if r.Actor == actor && r.Target == target {
			return r, r.Outcome != OutcomeIgnore
		}
	}
	return Rule{}, false
}
