// Package runner implements Lane Runner: an endless runner with a fixed
// number of lanes at the bottom of the screen. Barriers and coins scroll
// down towards the runner; low barriers can be jumped.
package runner

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "runner"
	Title = "Lane Runner"
)

// state is the per-session bookkeeping kept by the profile hooks.
type state struct {
	cooldown  int    // Ticks until a held lane key may move again
	lastSpawn uint64 // Tick of the last spawn
	spawned   bool
}

// New builds the Lane Runner profile for the given screen and tuning.
func New(rt core.RuntimeConfig, cfg config.RunnerConfig) *engine.Profile {
	lanes := max(cfg.Lanes.Count, 1)
	diff := config.NewDifficultyManager(cfg.Difficulty)
	bounds := rt.Bounds()
	laneW := bounds.W / float64(lanes)
	st := &state{}

	laneX := func(lane int) float64 {
		return bounds.X + (float64(lane)+0.5)*laneW
	}
	startLane := lanes / 2
	playerY := bounds.Bottom() - float64(cfg.Player.BottomOffset) - float64(cfg.Player.Height)/2

	p := &engine.Profile{
		ID:          ID,
		Title:       Title,
		Bounds:      bounds,
		Lives:       cfg.Gameplay.Lives,
		JumpGravity: cfg.Physics.JumpGravity,
		JumpCeiling: cfg.Physics.JumpCeiling,
		Rules: []engine.Rule{
			{Actor: core.KindPlayer, Target: core.KindObstacle, Outcome: engine.OutcomeHit, Consume: true},
			{Actor: core.KindPlayer, Target: core.KindCollectible, Outcome: engine.OutcomeCollect},
		},
	}

	p.Setup = func(w *engine.World) {
		*st = state{}
		w.Spawn(core.Entity{
			Kind:  core.KindPlayer,
			Pos:   core.V(laneX(startLane), playerY),
			Shape: core.Box(float64(cfg.Player.Width), float64(cfg.Player.Height)),
			Flags: core.FlagJumper,
			Lane:  startLane,
		})
	}

	p.ApplyInput = func(w *engine.World, pl *core.Entity, in core.InputSnapshot) {
		step := 0
		if a, ok := in.LastEdge(core.ActionLeft, core.ActionRight); ok {
			step = direction(a == core.ActionRight)
			st.cooldown = cfg.Lanes.RepeatTicks
		} else if k, ok := in.LastHeld(core.KeyLeft, core.KeyRight); ok {
			if st.cooldown == 0 {
				step = direction(k == core.KeyRight)
				st.cooldown = cfg.Lanes.RepeatTicks
			} else {
				st.cooldown--
			}
		} else {
			st.cooldown = 0
		}

		if step != 0 {
			pl.Lane = core.Clamp(pl.Lane+step, 0, lanes-1)
			pl.Pos.X = laneX(pl.Lane)
		}

		if in.HasEdge(core.ActionJump) && pl.Z == 0 {
			pl.VZ = cfg.Physics.JumpImpulse
		}
	}

	p.Spawn = func(w *engine.World) {
		tick := w.Tick()
		if st.spawned && tick-st.lastSpawn < uint64(cfg.Spawns.MinGapTicks) {
			return
		}
		rng := w.Rand()
		if rng.Float64() >= diff.Chance(cfg.Spawns.Chance, w.Score(), tick) {
			return
		}
		st.spawned = true
		st.lastSpawn = tick

		speed := diff.Speed(cfg.Physics.BaseSpeed, w.Score(), tick)
		lane := rng.Intn(lanes)
		e := core.Entity{Lane: lane, Vel: core.V(0, speed)}

		if rng.Float64() < cfg.Spawns.CoinChance {
			e.Kind = core.KindCollectible
			e.Shape = core.Circle(0.5)
			e.Points = cfg.Spawns.CoinPoints
		} else {
			e.Kind = core.KindObstacle
			e.Shape = core.Box(max(laneW-2, 1), 1)
			if rng.Float64() < cfg.Spawns.LowBarrierChance {
				e.Height = cfg.Spawns.BarrierHeight
			}
		}
		// Enter touching the top edge from above.
		e.Pos = core.V(laneX(lane), bounds.Y-e.Shape.HalfExtent().Y)
		w.Spawn(e)
	}

	p.Score = func(w *engine.World) {
		every := uint64(cfg.Gameplay.DistanceEvery)
		if every == 0 || cfg.Gameplay.DistancePoints == 0 || (w.Tick()+1)%every != 0 {
			return
		}
		if pl := w.Player(); pl != nil {
			w.Emit(engine.GameEvent{Kind: engine.EventScored, Entity: pl.ID, Points: cfg.Gameplay.DistancePoints})
		}
	}

	p.Respawn = func(w *engine.World) {
		w.ResetPlayer()
		if pl := w.Player(); pl != nil {
			pl.Lane = startLane
		}
		st.cooldown = 0
	}

	return p
}

func direction(right bool) int {
	if right {
		return 1
	}
	return -1
}

func init() {
	registry.Register(ID, Title, func(rt core.RuntimeConfig, s registry.Settings) (*engine.Profile, error) {
		cfg, err := config.LoadRunner(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		if s.Difficulty != "" {
			config.ApplyPreset(&cfg.Difficulty, s.Difficulty)
		}
		return New(rt, cfg), nil
	})
}
