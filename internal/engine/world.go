package engine

import (
	"fmt"
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
)

// World owns every entity of one run and advances them one fixed tick at
// a time. Entities are kept in insertion order; every scan walks them in
// that order so a given seed and input sequence always plays out the same.
//
// Pointers handed to profile hooks (*core.Entity) stay valid until the
// hook returns. Entities spawned from a hook become part of the world at
// the next phase boundary.
type World struct {
	profile  *Profile
	bounds   core.Rect
	entities []core.Entity
	pending  []core.Entity
	nextID   core.EntityID
	tick     uint64
	dt       float64
	rng      *rand.Rand
	events   []GameEvent
	spawn    core.Vec2
	score    int
	logger   *log.Logger
	contacts map[contact]bool // Pairs resolved this tick, only when sliced
}

// contact is an ordered actor/target pair.
type contact struct{ actor, target core.EntityID }

// maxSlices bounds how finely one tick's movement is split.
const maxSlices = 32

// NewWorld builds a world for the profile and runs its Setup hook.
func NewWorld(p *Profile, seed int64, logger *log.Logger) *World {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	w := &World{
		profile: p,
		bounds:  p.Bounds,
		rng:     rand.New(rand.NewSource(seed)),
		logger:  logger,
	}
	if p.Setup != nil {
		p.Setup(w)
	}
	w.flush()
	if pl := w.Player(); pl != nil {
		w.spawn = pl.Pos
	}
	return w
}

// Step advances the world by dt seconds and returns the events of this
// tick in emission order.
func (w *World) Step(dt float64, in core.InputSnapshot) []GameEvent {
	w.events = nil
	w.dt = dt
	w.checkPlayers()

	// 1. input
	if p := w.Player(); p != nil && w.profile.ApplyInput != nil {
		w.profile.ApplyInput(w, p, in)
	}
	w.flush()

	// 2. gravity
	w.applyGravity(dt)

	// 3. integrate, clamp, walls, anchors; fast pairs are checked for
	// contact after every slice so they cannot pass through each other
	n := w.slices(dt)
	w.contacts = nil
	if n > 1 {
		w.contacts = make(map[contact]bool)
	}
	for i := range n {
		w.integrate(dt / float64(n))
		if i < n-1 {
			w.collide()
		}
	}

	// 4. spawn policy
	if w.profile.Spawn != nil {
		w.profile.Spawn(w)
	}
	w.flush()

	// 5. collisions, then profile scoring
	w.collide()
	if w.profile.Score != nil {
		w.profile.Score(w)
	}

	// 6. bounds
	w.checkBounds()

	// 7. purge
	w.purge()

	w.tick++
	return w.events
}

// Spawn queues e for insertion and returns its id. The entity is alive
// from the next phase boundary on.
func (w *World) Spawn(e core.Entity) core.EntityID {
	w.nextID++
	e.ID = w.nextID
	e.Alive = true
	w.pending = append(w.pending, e)
	return e.ID
}

// Emit appends an event to the current tick.
func (w *World) Emit(ev GameEvent) {
	w.events = append(w.events, ev)
}

// Events returns the events emitted so far in the current tick.
func (w *World) Events() []GameEvent {
	return w.events
}

// Player returns the first live player, or nil.
func (w *World) Player() *core.Entity {
	for i := range w.entities {
		if w.entities[i].Alive && w.entities[i].Kind == core.KindPlayer {
			return &w.entities[i]
		}
	}
	return nil
}

// Find returns the live entity with the given id, or nil.
func (w *World) Find(id core.EntityID) *core.Entity {
	for i := range w.entities {
		if w.entities[i].ID == id && w.entities[i].Alive {
			return &w.entities[i]
		}
	}
	return nil
}

// Each calls fn for every live entity of the given kind.
func (w *World) Each(kind core.EntityKind, fn func(e *core.Entity)) {
	for i := range w.entities {
		if w.entities[i].Alive && w.entities[i].Kind == kind {
			fn(&w.entities[i])
		}
	}
}

// Count returns the number of live entities of the given kind.
func (w *World) Count(kind core.EntityKind) int {
	n := 0
	for i := range w.entities {
		if w.entities[i].Alive && w.entities[i].Kind == kind {
			n++
		}
	}
	return n
}

// Entities returns a copy of the live entities in insertion order.
func (w *World) Entities() []core.Entity {
	out := make([]core.Entity, 0, len(w.entities))
	for _, e := range w.entities {
		if e.Alive {
			out = append(out, e)
		}
	}
	return out
}

// Sprites returns the render view of the live entities.
func (w *World) Sprites() []core.Sprite {
	out := make([]core.Sprite, 0, len(w.entities))
	for i := range w.entities {
		if w.entities[i].Alive {
			out = append(out, w.entities[i].Sprite())
		}
	}
	return out
}

// Respawn restores the player after a lost life.
func (w *World) Respawn() {
	if w.profile.Respawn != nil {
		w.profile.Respawn(w)
	} else {
		w.ResetPlayer()
	}
	w.flush()
	w.purge()
}

// ResetPlayer moves the player back to where Setup placed it, at rest.
func (w *World) ResetPlayer() {
	p := w.Player()
	if p == nil {
		return
	}
	p.Pos = w.spawn
	p.Vel = core.Vec2{}
	p.Z, p.VZ = 0, 0
}

// ClampToBounds keeps e fully inside the world.
func (w *World) ClampToBounds(e *core.Entity) {
	h := e.Shape.HalfExtent()
	e.Pos.X = core.ClampF(e.Pos.X, w.bounds.X+h.X, w.bounds.Right()-h.X)
	e.Pos.Y = core.ClampF(e.Pos.Y, w.bounds.Y+h.Y, w.bounds.Bottom()-h.Y)
}

// NoteScore tells the world the session score, for difficulty scaling.
func (w *World) NoteScore(score int) { w.score = score }

// Score returns the last score noted by the session.
func (w *World) Score() int { return w.score }

func (w *World) Tick() uint64 { return w.tick }

// DT returns the length of the tick being stepped, in seconds.
func (w *World) DT() float64 { return w.dt }

func (w *World) Bounds() core.Rect { return w.bounds }

func (w *World) Rand() *rand.Rand { return w.rng }

func (w *World) SpawnPoint() core.Vec2 { return w.spawn }

func (w *World) flush() {
	if len(w.pending) == 0 {
		return
	}
	w.entities = append(w.entities, w.pending...)
	w.pending = w.pending[:0]
}

func (w *World) checkPlayers() {
	n := w.Count(core.KindPlayer)
	if n == 1 {
		return
	}
	if debugAssertions {
		panic(fmt.Sprintf("engine: %s world has %d players at tick %d", w.profile.ID, n, w.tick))
	}
	if n == 0 {
		w.logger.Error("world has no player", "game", w.profile.ID, "tick", w.tick)
		return
	}

	w.logger.Warn("purging extra players", "game", w.profile.ID, "tick", w.tick, "players", n)
	seen := false
	for i := range w.entities {
		e := &w.entities[i]
		if !e.Alive || e.Kind != core.KindPlayer {
			continue
		}
		if seen {
			e.Alive = false
		}
		seen = true
	}
	w.purge()
}

func (w *World) applyGravity(dt float64) {
	p := w.profile
	for i := range w.entities {
		e := &w.entities[i]
		if !e.Alive {
			continue
		}
		if e.Flags.Has(core.FlagGravity) {
			e.Vel.Y += p.Gravity * dt
			if p.MaxFall > 0 && e.Vel.Y > p.MaxFall {
				e.Vel.Y = p.MaxFall
			}
		}
		if e.Flags.Has(core.FlagJumper) && (e.Z > 0 || e.VZ > 0) {
			e.VZ -= p.JumpGravity * dt
			e.Z += e.VZ * dt
			if p.JumpCeiling > 0 && e.Z > p.JumpCeiling {
				e.Z = p.JumpCeiling
				e.VZ = 0
			}
			if e.Z <= 0 {
				e.Z, e.VZ = 0, 0
			}
		}
	}
}

func (w *World) integrate(dt float64) {
	for i := range w.entities {
		e := &w.entities[i]
		if !e.Alive || e.Flags.Has(core.FlagAnchored) {
			continue
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}

	player := w.Player()
	if player != nil {
		w.clampPlayer(player)
	}

	for i := range w.entities {
		e := &w.entities[i]
		if !e.Alive {
			continue
		}
		if e.Flags.Has(core.FlagAnchored) {
			if player != nil {
				e.Pos = player.Pos.Add(e.Anchor)
			}
			e.Vel = core.Vec2{}
			continue
		}
		if e.Flags.Has(core.FlagBounceWalls) {
			w.reflectWalls(e)
		}
	}
}

func (w *World) clampPlayer(p *core.Entity) {
	b := w.bounds
	h := p.Shape.HalfExtent()
	if w.profile.ClampX {
		p.Pos.X = core.ClampF(p.Pos.X, b.X+h.X, b.Right()-h.X)
	}
	if w.profile.ClampY {
		p.Pos.Y = core.ClampF(p.Pos.Y, b.Y+h.Y, b.Bottom()-h.Y)
	}
	if w.profile.ClampTop && p.Pos.Y-h.Y < b.Y {
		p.Pos.Y = b.Y + h.Y
		if p.Vel.Y < 0 {
			p.Vel.Y = 0
		}
	}
}

func (w *World) reflectWalls(e *core.Entity) {
	b := w.bounds
	h := e.Shape.HalfExtent()
	open := ^w.profile.LethalEdges

	if open&EdgeLeft != 0 && e.Pos.X-h.X < b.X {
		e.Pos.X = b.X + h.X
		e.Vel.X = math.Abs(e.Vel.X)
	}
	if open&EdgeRight != 0 && e.Pos.X+h.X > b.Right() {
		e.Pos.X = b.Right() - h.X
		e.Vel.X = -math.Abs(e.Vel.X)
	}
	if open&EdgeTop != 0 && e.Pos.Y-h.Y < b.Y {
		e.Pos.Y = b.Y + h.Y
		e.Vel.Y = math.Abs(e.Vel.Y)
	}
	if open&EdgeBottom != 0 && e.Pos.Y+h.Y > b.Bottom() {
		e.Pos.Y = b.Bottom() - h.Y
		e.Vel.Y = -math.Abs(e.Vel.Y)
	}
}

func (w *World) collide() {
	for i := range w.entities {
		a := &w.entities[i]
		if !a.Alive || a.Flags.Has(core.FlagAnchored) {
			continue
		}
		for j := range w.entities {
			if i == j {
				continue
			}
			b := &w.entities[j]
			if !b.Alive || b.Flags.Has(core.FlagAnchored) {
				continue
			}
			r, ok := w.profile.rule(a.Kind, b.Kind)
			if !ok || !core.Overlaps(a.Shape, a.Pos, b.Shape, b.Pos) {
				continue
			}
			if clearsJump(a, b) {
				continue
			}
			if w.contacts != nil {
				c := contact{a.ID, b.ID}
				if w.contacts[c] {
					continue
				}
				w.contacts[c] = true
			}
			if w.resolve(r, a, b) || !a.Alive {
				break
			}
		}
	}
}

// slices returns how many parts integrate splits dt into. Each part moves
// every pair with a collision rule by less than its overlap window, measured
// along the narrowest side of both shapes.
func (w *World) slices(dt float64) int {
	n := 1
	for i := range w.entities {
		a := &w.entities[i]
		if !a.Alive || a.Flags.Has(core.FlagAnchored) {
			continue
		}
		for j := i + 1; j < len(w.entities); j++ {
			b := &w.entities[j]
			if !b.Alive || b.Flags.Has(core.FlagAnchored) || !w.collides(a.Kind, b.Kind) {
				continue
			}
			window := 2 * (narrowHalf(a.Shape) + narrowHalf(b.Shape))
			if window <= 0 {
				continue
			}
			travel := a.Vel.Sub(b.Vel).Len() * dt
			n = max(n, int(travel/window)+1)
		}
	}
	return min(n, maxSlices)
}

func (w *World) collides(a, b core.EntityKind) bool {
	if _, ok := w.profile.rule(a, b); ok {
		return true
	}
	_, ok := w.profile.rule(b, a)
	return ok
}

func narrowHalf(s core.Shape) float64 {
	h := s.HalfExtent()
	return math.Min(h.X, h.Y)
}

// clearsJump reports whether a jumping actor is high enough to pass over b.
func clearsJump(a, b *core.Entity) bool {
	return a.Flags.Has(core.FlagJumper) && b.Height > 0 && a.Z >= b.Height
}

// resolve applies one collision outcome. It reports true when the actor
// must not collide again this tick.
func (w *World) resolve(r Rule, a, b *core.Entity) bool {
	switch r.Outcome {
	case OutcomeHit:
		w.Emit(GameEvent{Kind: EventPlayerHit, Entity: a.ID, Other: b.ID})
		if r.Consume {
			b.Alive = false
		}
	case OutcomeCollect:
		b.Alive = false
		w.Emit(GameEvent{Kind: EventCollected, Entity: a.ID, Other: b.ID, Points: b.Points})
	case OutcomeDestroyBoth:
		a.Alive = false
		b.Alive = false
		w.Emit(GameEvent{Kind: EventDestroyed, Entity: a.ID, Other: b.ID, Points: b.Points})
	case OutcomeBounce:
		if w.profile.Bounce == nil || !w.profile.Bounce(w, a, b) {
			bounceOff(a, b)
		}
		w.Emit(GameEvent{Kind: EventBounced, Entity: a.ID, Other: b.ID})
		if b.HP > 0 {
			b.HP--
			if b.HP == 0 {
				b.Alive = false
				w.Emit(GameEvent{Kind: EventDestroyed, Entity: a.ID, Other: b.ID, Points: b.Points})
			}
		}
		return true
	}
	return false
}

// bounceOff reflects a off b along the axis of least penetration and pushes
// it out of b.
func bounceOff(a, b *core.Entity) {
	ab, bb := a.Bounds(), b.Bounds()
	ox := math.Min(ab.Right(), bb.Right()) - math.Max(ab.X, bb.X)
	oy := math.Min(ab.Bottom(), bb.Bottom()) - math.Max(ab.Y, bb.Y)

	if ox < oy {
		if a.Pos.X < b.Pos.X {
			a.Vel.X = -math.Abs(a.Vel.X)
			a.Pos.X -= ox
		} else {
			a.Vel.X = math.Abs(a.Vel.X)
			a.Pos.X += ox
		}
		return
	}
	if a.Pos.Y < b.Pos.Y {
		a.Vel.Y = -math.Abs(a.Vel.Y)
		a.Pos.Y -= oy
	} else {
		a.Vel.Y = math.Abs(a.Vel.Y)
		a.Pos.Y += oy
	}
}

func (w *World) checkBounds() {
	for i := range w.entities {
		e := &w.entities[i]
		if !e.Alive {
			continue
		}
		edge := w.exitEdge(e)
		if edge == EdgeNone {
			continue
		}
		switch {
		case e.Kind == core.KindPlayer:
			w.Emit(GameEvent{Kind: EventBoundaryExit, Entity: e.ID})
		case e.Flags.Has(core.FlagVital) && w.profile.LethalEdges&edge != 0:
			e.Alive = false
			w.Emit(GameEvent{Kind: EventBoundaryExit, Entity: e.ID})
		default:
			e.Alive = false
		}
	}
}

// exitEdge returns the edge e has fully crossed, or EdgeNone.
func (w *World) exitEdge(e *core.Entity) Edge {
	bb := e.Bounds()
	switch {
	case bb.Right() < w.bounds.X:
		return EdgeLeft
	case bb.X > w.bounds.Right():
		return EdgeRight
	case bb.Bottom() < w.bounds.Y:
		return EdgeTop
	case bb.Y > w.bounds.Bottom():
		return EdgeBottom
	}
	return EdgeNone
}

func (w *World) purge() {
	alive := w.entities[:0]
	for _, e := range w.entities {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	clear(w.entities[len(alive):])
	w.entities = alive
}
