// Package space implements a vertical space shooter: the ship moves along
// the bottom row and fires upward at enemies descending from the top.
package space

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "space"
	Title = "Space Shooter"
)

const enemyWidth = 3

type state struct {
	nextShot  uint64
	lastSpawn uint64
	spawned   bool

	pointer  core.Vec2
	tracking bool // pointer has been seen at least once
}

// New builds the Space Shooter profile.
func New(rt core.RuntimeConfig, cfg config.SpaceConfig) *engine.Profile {
	bounds := rt.Bounds()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	st := &state{}
	size := core.V(float64(cfg.Player.Width), float64(cfg.Player.Height))

	p := &engine.Profile{
		ID:     ID,
		Title:  Title,
		Bounds: bounds,
		Lives:  cfg.Gameplay.Lives,
		ClampX: true,
		ClampY: true,
		Rules: []engine.Rule{
			{Actor: core.KindPlayer, Target: core.KindEnemy, Outcome: engine.OutcomeHit, Consume: true},
			{Actor: core.KindProjectile, Target: core.KindEnemy, Outcome: engine.OutcomeDestroyBoth},
		},
	}

	p.Setup = func(w *engine.World) {
		*st = state{}
		w.Spawn(core.Entity{
			Kind:  core.KindPlayer,
			Pos:   core.V(bounds.X+bounds.W/2, bounds.Bottom()-float64(cfg.Player.BottomOffset)-size.Y/2),
			Shape: core.Box(size.X, size.Y),
		})
	}

	p.ApplyInput = func(w *engine.World, pl *core.Entity, in core.InputSnapshot) {
		ptr, hasPtr := in.Pointer()
		switch k, ok := in.LastHeld(core.KeyLeft, core.KeyRight); {
		case ok && k == core.KeyLeft:
			pl.Vel.X = -cfg.Physics.ShipSpeed
		case ok:
			pl.Vel.X = cfg.Physics.ShipSpeed
		default:
			pl.Vel.X = 0
			// Follow the pointer only when it moved, so keys keep control
			// while the mouse rests.
			if hasPtr && (!st.tracking || ptr != st.pointer) {
				pl.Pos.X = ptr.X
			}
		}
		if hasPtr {
			st.pointer, st.tracking = ptr, true
		}

		if (in.HasEdge(core.ActionShoot) || in.HasEdge(core.ActionJump)) && w.Tick() >= st.nextShot {
			st.nextShot = w.Tick() + uint64(cfg.Spawns.ShotCooldownTicks)
			w.Spawn(core.Entity{
				Kind:  core.KindProjectile,
				Pos:   core.V(pl.Pos.X, pl.Bounds().Y-0.5),
				Vel:   core.V(0, -cfg.Physics.BulletSpeed),
				Shape: core.Box(1, 1),
			})
		}
	}

	p.Spawn = func(w *engine.World) {
		tick := w.Tick()
		if st.spawned && tick-st.lastSpawn < uint64(cfg.Spawns.MinGapTicks) {
			return
		}
		rng := w.Rand()
		if rng.Float64() >= diff.Chance(cfg.Spawns.EnemyChance, w.Score(), tick) {
			return
		}
		st.spawned = true
		st.lastSpawn = tick

		half := enemyWidth / 2.0
		x := bounds.X + half + rng.Float64()*max(bounds.W-enemyWidth, 0)
		w.Spawn(core.Entity{
			Kind:   core.KindEnemy,
			Pos:    core.V(x, bounds.Y-0.5),
			Vel:    core.V(0, diff.Speed(cfg.Physics.EnemySpeed, w.Score(), tick)),
			Shape:  core.Box(enemyWidth, 1),
			Points: cfg.Spawns.EnemyPoints,
		})
	}

	p.Respawn = func(w *engine.World) {
		w.ResetPlayer()
		st.nextShot = 0
	}

	return p
}

func init() {
	registry.Register(ID, Title, func(rt core.RuntimeConfig, s registry.Settings) (*engine.Profile, error) {
		cfg, err := config.LoadSpace(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		if s.Difficulty != "" {
			config.ApplyPreset(&cfg.Difficulty, s.Difficulty)
		}
		return New(rt, cfg), nil
	})
}
