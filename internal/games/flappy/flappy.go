// Package flappy implements a Flappy Bird-style game.
// The player controls a bird that must navigate through gaps in vertical pipes.
package flappy

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "flappy"
	Title = "Flappy Bird"
)

// New builds the Flappy Bird profile. The ground is a static obstacle
// along the bottom rows; the ceiling stops the bird without harm.
func New(rt core.RuntimeConfig, cfg config.FlappyConfig) *engine.Profile {
	bounds := rt.Bounds()
	groundH := float64(cfg.Gameplay.GroundHeight)
	pm := &pipes{
		cfg:     &cfg,
		diff:    config.NewDifficultyManager(cfg.Difficulty),
		bounds:  bounds,
		groundY: bounds.Bottom() - groundH,
	}

	p := &engine.Profile{
		ID:       ID,
		Title:    Title,
		Bounds:   bounds,
		Lives:    cfg.Gameplay.Lives,
		Gravity:  cfg.Physics.Gravity,
		MaxFall:  cfg.Physics.MaxFallSpeed,
		ClampTop: true,
		Rules: []engine.Rule{
			{Actor: core.KindPlayer, Target: core.KindObstacle, Outcome: engine.OutcomeHit},
		},
	}

	p.Setup = func(w *engine.World) {
		pm.reset()
		size := core.V(float64(cfg.Player.Width), float64(cfg.Player.Height))
		w.Spawn(core.Entity{
			Kind:  core.KindPlayer,
			Pos:   core.V(float64(cfg.Player.X)+size.X/2, pm.groundY/2),
			Shape: core.Box(size.X, size.Y),
			Flags: core.FlagGravity,
		})
		if groundH > 0 {
			pm.ground = w.Spawn(core.Entity{
				Kind:  core.KindObstacle,
				Pos:   core.V(bounds.X+bounds.W/2, pm.groundY+groundH/2),
				Shape: core.Box(bounds.W, groundH),
			})
		}
	}

	p.ApplyInput = func(w *engine.World, pl *core.Entity, in core.InputSnapshot) {
		if in.HasEdge(core.ActionJump) {
			pl.Vel.Y = cfg.Physics.JumpImpulse
		}
	}

	p.Spawn = pm.update
	p.Score = pm.score

	p.Respawn = func(w *engine.World) {
		pm.clear(w)
		w.ResetPlayer()
	}

	return p
}

func init() {
	registry.Register(ID, Title, func(rt core.RuntimeConfig, s registry.Settings) (*engine.Profile, error) {
		cfg, err := config.LoadFlappy(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		if s.Difficulty != "" {
			config.ApplyPreset(&cfg.Difficulty, s.Difficulty)
		}
		return New(rt, cfg), nil
	})
}
