package brick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

const dt = 1.0 / 60.0

var rt = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 3}

var (
	none   = core.InputSnapshot{}
	launch = core.NewInputSnapshot(nil, nil, []core.Action{core.ActionJump})
)

// slab is a single brick spanning the whole width.
func slab(ch string) *Level {
	return ParseLevel("slab", "Slab", []string{ch})
}

func ball(w *engine.World) *core.Entity {
	var out *core.Entity
	w.Each(core.KindProjectile, func(e *core.Entity) {
		if out == nil {
			out = e
		}
	})
	return out
}

func TestParseLevel(t *testing.T) {
	l := ParseLevel("t", "Test", []string{
		"#.H",
		"3X",
	})

	assert.Equal(t, 3, l.Width)
	assert.Equal(t, 2, l.Height)
	require.Len(t, l.Cells, 4)
	assert.Equal(t, Cell{Col: 0, Row: 0, Type: BrickNormal, Weight: 1}, l.Cells[0])
	assert.Equal(t, Cell{Col: 2, Row: 0, Type: BrickHard, Weight: 1}, l.Cells[1])
	assert.Equal(t, Cell{Col: 0, Row: 1, Type: BrickNormal, Weight: 3}, l.Cells[2])
	assert.Equal(t, BrickArmoured, l.Cells[3].Type)
	assert.Equal(t, 3, l.Cells[3].Type.HP())
}

func TestBuiltinLevels(t *testing.T) {
	ids := LevelIDs()
	require.Len(t, ids, 10)
	for _, id := range ids {
		l, ok := LevelByID(id)
		require.True(t, ok, id)
		assert.NotEmpty(t, l.Cells, id)
		assert.Equal(t, 20, l.Width, id)
	}

	_, ok := LevelByID("nope")
	assert.False(t, ok)
}

func TestUnknownLevelIsAnError(t *testing.T) {
	cfg := config.DefaultBrickConfig()
	cfg.Bricks.Level = "nope"

	_, err := New(rt, cfg)
	assert.Error(t, err)
}

func TestSetupPlacesBricksPaddleAndBall(t *testing.T) {
	p, err := New(rt, config.DefaultBrickConfig())
	require.NoError(t, err)
	w := engine.NewWorld(p, 1, nil)

	assert.Equal(t, 100, w.Count(core.KindObstacle))
	assert.Equal(t, 1, w.Count(core.KindProjectile))
	assert.True(t, ball(w).Flags.Has(core.FlagAnchored))

	first := w.Entities()[2]
	assert.Equal(t, core.V(2, 2.5), first.Pos)
	assert.Equal(t, 1, first.HP)
	assert.Equal(t, 10, first.Points)
}

func TestBallRidesPaddleUntilLaunch(t *testing.T) {
	cfg := config.DefaultBrickConfig()
	p, err := New(rt, cfg)
	require.NoError(t, err)
	w := engine.NewWorld(p, 1, nil)

	w.Step(dt, core.NewInputSnapshot([]core.Key{core.KeyRight}, nil, nil))
	pl := w.Player()
	assert.InDelta(t, 40+cfg.Physics.PaddleSpeed*dt, pl.Pos.X, 1e-9)
	assert.Equal(t, pl.Pos.Add(core.V(0, -1)), ball(w).Pos)

	w.Step(dt, launch)
	b := ball(w)
	assert.False(t, b.Flags.Has(core.FlagAnchored))
	assert.InDelta(t, cfg.Physics.BallSpeed, b.Vel.Len(), 1e-9)
	assert.Less(t, b.Vel.Y, 0.0)
}

func TestPaddleEnglish(t *testing.T) {
	p := build(rt, config.DefaultBrickConfig(), slab("#"))
	paddle := core.Entity{Kind: core.KindPlayer, Pos: core.V(40, 21.5), Shape: core.Box(8, 1)}

	right := core.Entity{Kind: core.KindProjectile, Pos: core.V(44, 21), Vel: core.V(0, 10), Shape: core.Circle(0.5)}
	require.True(t, p.Bounce(nil, &right, &paddle))
	assert.InDelta(t, 8.0, right.Vel.X, 1e-9)
	assert.InDelta(t, -6.0, right.Vel.Y, 1e-9)
	assert.Equal(t, 20.5, right.Pos.Y)

	centre := core.Entity{Kind: core.KindProjectile, Pos: core.V(40, 21), Vel: core.V(6, 8), Shape: core.Circle(0.5)}
	require.True(t, p.Bounce(nil, &centre, &paddle))
	assert.InDelta(t, 0.0, centre.Vel.X, 1e-9)
	assert.InDelta(t, -10.0, centre.Vel.Y, 1e-9)

	brick := core.Entity{Kind: core.KindObstacle, Pos: core.V(40, 2.5), Shape: core.Box(4, 1)}
	assert.False(t, p.Bounce(nil, &centre, &brick), "bricks use the default reflection")
}

func TestHardBrickTakesTwoHits(t *testing.T) {
	cfg := config.DefaultBrickConfig()
	w := engine.NewWorld(build(rt, cfg, slab("H")), 1, nil)
	shoot := func() []engine.GameEvent {
		w.Spawn(core.Entity{
			Kind:  core.KindProjectile,
			Pos:   core.V(40, 3.6),
			Vel:   core.V(0, -18),
			Shape: core.Circle(0.5),
			Flags: core.FlagVital | core.FlagBounceWalls,
		})
		return w.Step(dt, none)
	}

	events := shoot()
	require.Len(t, events, 1)
	assert.Equal(t, engine.EventBounced, events[0].Kind)
	assert.Equal(t, 1, w.Count(core.KindObstacle))

	events = shoot()
	require.Len(t, events, 2)
	assert.Equal(t, engine.EventBounced, events[0].Kind)
	assert.Equal(t, engine.EventDestroyed, events[1].Kind)
	assert.Equal(t, cfg.Bricks.HardPoints, events[1].Points)
	assert.Equal(t, 0, w.Count(core.KindObstacle))
}

func TestSpeedUpAfterBricks(t *testing.T) {
	cfg := config.DefaultBrickConfig()
	cfg.Gameplay.SpeedUpEveryN = 1
	cfg.Gameplay.SpeedUpAmount = 2
	w := engine.NewWorld(build(rt, cfg, slab("#")), 1, nil)
	id := w.Spawn(core.Entity{
		Kind:  core.KindProjectile,
		Pos:   core.V(40, 3.6),
		Vel:   core.V(0, -18),
		Shape: core.Circle(0.5),
		Flags: core.FlagVital | core.FlagBounceWalls,
	})

	w.Step(dt, none)

	b := w.Find(id)
	require.NotNil(t, b)
	assert.InDelta(t, 20.0, b.Vel.Len(), 1e-9)
	assert.Greater(t, b.Vel.Y, 0.0)
}

func TestClearingLastBrickWins(t *testing.T) {
	scores := storage.NewMemory()
	s := engine.NewSession(build(rt, config.DefaultBrickConfig(), slab("#")), scores, engine.WithSeed(11))
	require.NoError(t, s.Start())

	res := s.Tick(dt, launch)
	for i := 0; i < 600 && res.Status.State == engine.StateRunning; i++ {
		res = s.Tick(dt, none)
	}

	require.Equal(t, engine.StateOver, res.Status.State)
	assert.True(t, res.Status.Won)
	assert.Equal(t, 10, res.Status.Score)
	assert.Equal(t, 3, res.Status.Lives)
	high, err := scores.LoadHighScore(ID)
	require.NoError(t, err)
	assert.Equal(t, 10, high)
}

func TestLostBallCostsLifeAndRearms(t *testing.T) {
	p, err := New(rt, config.DefaultBrickConfig())
	require.NoError(t, err)
	s := engine.NewSession(p, storage.NewMemory())
	require.NoError(t, s.Start())
	w := s.World()

	s.Tick(dt, core.NewInputSnapshot([]core.Key{core.KeyLeft}, nil, nil))
	b := ball(w)
	b.Flags &^= core.FlagAnchored
	b.Pos.Y = 30

	res := s.Tick(dt, none)

	require.Len(t, res.Events, 1)
	assert.Equal(t, engine.EventBoundaryExit, res.Events[0].Kind)
	assert.Equal(t, 2, s.Lives())
	assert.Equal(t, w.SpawnPoint(), w.Player().Pos)
	require.Equal(t, 1, w.Count(core.KindProjectile))
	assert.True(t, ball(w).Flags.Has(core.FlagAnchored))
}
