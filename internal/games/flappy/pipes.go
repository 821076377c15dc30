package flappy

import (
	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// pipes spawns and scrolls pipe pairs. Each pair is two obstacles; the top
// one (or the bottom one when the gap starts at the ceiling) carries the
// points for passing it.
type pipes struct {
	cfg     *config.FlappyConfig
	diff    *config.DifficultyManager
	bounds  core.Rect
	groundY float64

	ground core.EntityID // Never scrolled or cleared
	last   core.EntityID // Most recently spawned pipe
}

func (pm *pipes) reset() {
	pm.ground = 0
	pm.last = 0
}

// update keeps every pipe at the current scroll speed and spawns the next
// pair once the last one has moved spacing cells in from the right edge.
func (pm *pipes) update(w *engine.World) {
	score, tick := w.Score(), w.Tick()
	speed := pm.diff.Speed(pm.cfg.Physics.BaseSpeed, score, tick)

	w.Each(core.KindObstacle, func(e *core.Entity) {
		if e.ID != pm.ground {
			e.Vel.X = -speed
		}
	})

	spacing := pm.diff.Spacing(float64(pm.cfg.Obstacles.PipeSpacing), score, tick)
	if last := w.Find(pm.last); last != nil && last.Bounds().X >= pm.bounds.Right()-spacing {
		return
	}
	pm.spawn(w, speed)
}

func (pm *pipes) spawn(w *engine.World, speed float64) {
	rng := w.Rand()
	obs := pm.cfg.Obstacles

	// Gap varies between the minimum and the difficulty-scaled maximum.
	minGap := obs.MinGapSize
	currentGap := max(int(pm.diff.GapSize(float64(obs.MaxGapSize), w.Score(), w.Tick())), minGap)
	gapHeight := minGap
	if r := currentGap - minGap; r > 0 {
		gapHeight = minGap + rng.Intn(r+1)
	}

	minGapY := obs.TopMargin
	maxGapY := max(int(pm.groundY)-obs.BottomMargin-gapHeight, minGapY)
	gapY := minGapY
	if maxGapY > minGapY {
		gapY = minGapY + rng.Intn(maxGapY-minGapY+1)
	}

	width := float64(obs.PipeWidth)
	x := pm.bounds.Right() + width/2
	points := pm.cfg.Gameplay.PipePoints

	if top := float64(gapY) - pm.bounds.Y; top > 0 {
		pm.last = w.Spawn(core.Entity{
			Kind:   core.KindObstacle,
			Pos:    core.V(x, pm.bounds.Y+top/2),
			Vel:    core.V(-speed, 0),
			Shape:  core.Box(width, top),
			Points: points,
		})
		points = 0
	}

	bottomY := float64(gapY + gapHeight)
	if h := pm.groundY - bottomY; h > 0 {
		pm.last = w.Spawn(core.Entity{
			Kind:   core.KindObstacle,
			Pos:    core.V(x, bottomY+h/2),
			Vel:    core.V(-speed, 0),
			Shape:  core.Box(width, h),
			Points: points,
		})
	}
}

// score awards each pipe once, when its right edge is behind the player.
func (pm *pipes) score(w *engine.World) {
	pl := w.Player()
	if pl == nil {
		return
	}
	behind := pl.Bounds().X
	w.Each(core.KindObstacle, func(e *core.Entity) {
		if e.Points == 0 || e.Flags.Has(core.FlagPassed) || e.Bounds().Right() >= behind {
			return
		}
		e.Flags |= core.FlagPassed
		w.Emit(engine.GameEvent{Kind: engine.EventScored, Entity: pl.ID, Other: e.ID, Points: e.Points})
	})
}

// clear removes every pipe, keeping the ground.
func (pm *pipes) clear(w *engine.World) {
	w.Each(core.KindObstacle, func(e *core.Entity) {
		if e.ID != pm.ground {
			e.Alive = false
		}
	})
	pm.last = 0
}
