// Package brick implements a Breakout-style brick breaker. The paddle is
// the player; the ball rides on it until launched and costs a life when it
// drops past the bottom edge. Clearing every brick wins.
package brick

import (
	"fmt"
	"math"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

const (
	ID    = "brick"
	Title = "Brick Breaker"
)

const (
	ballRadius = 0.5
	// Share of the ball speed a paddle edge hit turns sideways.
	maxEnglish = 0.8
)

type state struct {
	speed  float64 // Current ball speed
	broken int     // Bricks destroyed this run

	pointer  core.Vec2
	tracking bool
}

// New builds the Brick Breaker profile for the configured level.
func New(rt core.RuntimeConfig, cfg config.BrickConfig) (*engine.Profile, error) {
	level, ok := LevelByID(cfg.Bricks.Level)
	if !ok {
		return nil, fmt.Errorf("brick: unknown level %q", cfg.Bricks.Level)
	}
	return build(rt, cfg, level), nil
}

func build(rt core.RuntimeConfig, cfg config.BrickConfig, level *Level) *engine.Profile {
	bounds := rt.Bounds()
	diff := config.NewDifficultyManager(cfg.Difficulty)
	st := &state{}
	paddleW := float64(cfg.Paddle.Width)
	anchor := core.V(0, -(0.5 + ballRadius))

	p := &engine.Profile{
		ID:          ID,
		Title:       Title,
		Bounds:      bounds,
		Lives:       cfg.Gameplay.Lives,
		WinOnClear:  true,
		ClampX:      true,
		LethalEdges: engine.EdgeBottom,
		Rules: []engine.Rule{
			{Actor: core.KindProjectile, Target: core.KindPlayer, Outcome: engine.OutcomeBounce},
			{Actor: core.KindProjectile, Target: core.KindObstacle, Outcome: engine.OutcomeBounce},
		},
	}

	spawnBall := func(w *engine.World, paddle core.Vec2) {
		w.Spawn(core.Entity{
			Kind:   core.KindProjectile,
			Pos:    paddle.Add(anchor),
			Shape:  core.Circle(ballRadius),
			Flags:  core.FlagVital | core.FlagBounceWalls | core.FlagAnchored,
			Anchor: anchor,
		})
	}

	p.Setup = func(w *engine.World) {
		*st = state{speed: math.Min(diff.Speed(cfg.Physics.BallSpeed, 0, 0), cfg.Physics.MaxBallSpeed)}

		paddle := core.V(bounds.X+bounds.W/2, bounds.Bottom()-float64(cfg.Paddle.BottomOffset)-0.5)
		w.Spawn(core.Entity{
			Kind:  core.KindPlayer,
			Pos:   paddle,
			Shape: core.Box(paddleW, 1),
		})
		spawnBall(w, paddle)

		if level.Width == 0 {
			return
		}
		brickW := bounds.W / float64(level.Width)
		top := bounds.Y + float64(cfg.Bricks.TopOffset)
		for _, c := range level.Cells {
			points := cfg.Bricks.Points * c.Weight
			switch c.Type {
			case BrickHard:
				points = cfg.Bricks.HardPoints
			case BrickArmoured:
				points = cfg.Bricks.HardPoints * 2
			}
			w.Spawn(core.Entity{
				Kind:   core.KindObstacle,
				Pos:    core.V(bounds.X+(float64(c.Col)+0.5)*brickW, top+float64(c.Row)+0.5),
				Shape:  core.Box(brickW, 1),
				HP:     c.Type.HP(),
				Points: points,
			})
		}
	}

	p.ApplyInput = func(w *engine.World, pl *core.Entity, in core.InputSnapshot) {
		ptr, hasPtr := in.Pointer()
		switch k, ok := in.LastHeld(core.KeyLeft, core.KeyRight); {
		case ok && k == core.KeyLeft:
			pl.Vel.X = -cfg.Physics.PaddleSpeed
		case ok:
			pl.Vel.X = cfg.Physics.PaddleSpeed
		default:
			pl.Vel.X = 0
			if hasPtr && (!st.tracking || ptr != st.pointer) {
				pl.Pos.X = ptr.X
			}
		}
		if hasPtr {
			st.pointer, st.tracking = ptr, true
		}

		if !in.HasEdge(core.ActionJump) && !in.HasEdge(core.ActionShoot) {
			return
		}
		speed := math.Min(math.Max(st.speed, diff.Speed(cfg.Physics.BallSpeed, w.Score(), w.Tick())), cfg.Physics.MaxBallSpeed)
		w.Each(core.KindProjectile, func(ball *core.Entity) {
			if !ball.Flags.Has(core.FlagAnchored) {
				return
			}
			side := 1.0
			if w.Rand().Intn(2) == 0 {
				side = -1
			}
			ball.Flags &^= core.FlagAnchored
			ball.Vel = core.V(side*0.6*speed, -0.8*speed)
		})
	}

	// Paddle english: where the ball lands on the paddle sets its angle.
	p.Bounce = func(w *engine.World, ball, target *core.Entity) bool {
		if target.Kind != core.KindPlayer {
			return false
		}
		speed := ball.Vel.Len()
		if speed == 0 {
			speed = st.speed
		}
		half := target.Shape.HalfExtent().X
		offset := 0.0
		if half > 0 {
			offset = core.ClampF((ball.Pos.X-target.Pos.X)/half, -1, 1)
		}
		vx := offset * maxEnglish * speed
		ball.Vel = core.V(vx, -math.Sqrt(speed*speed-vx*vx))
		ball.Pos.Y = target.Bounds().Y - ball.Shape.HalfExtent().Y
		return true
	}

	p.Score = func(w *engine.World) {
		every := cfg.Gameplay.SpeedUpEveryN
		if every <= 0 {
			return
		}
		before := st.broken / every
		for _, ev := range w.Events() {
			if ev.Kind == engine.EventDestroyed {
				st.broken++
			}
		}
		if st.broken/every == before {
			return
		}
		st.speed = math.Min(st.speed+cfg.Gameplay.SpeedUpAmount, cfg.Physics.MaxBallSpeed)
		w.Each(core.KindProjectile, func(ball *core.Entity) {
			if l := ball.Vel.Len(); l > 0 {
				ball.Vel = ball.Vel.Scale(st.speed / l)
			}
		})
	}

	p.Respawn = func(w *engine.World) {
		w.ResetPlayer()
		spawnBall(w, w.SpawnPoint())
	}

	return p
}

func init() {
	registry.Register(ID, Title, func(rt core.RuntimeConfig, s registry.Settings) (*engine.Profile, error) {
		cfg, err := config.LoadBrick(s.ConfigPath)
		if err != nil {
			return nil, err
		}
		if s.Difficulty != "" {
			config.ApplyBrickPreset(&cfg, s.Difficulty)
		}
		return New(rt, cfg)
	})
}
