package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// spyScores records every save.
type spyScores struct {
	values  map[string]int
	saves   []int
	loadErr error
}

func (s *spyScores) LoadHighScore(gameID string) (int, error) {
	if s.loadErr != nil {
		return 0, s.loadErr
	}
	return s.values[gameID], nil
}

func (s *spyScores) SaveHighScore(gameID string, value int) error {
	s.saves = append(s.saves, value)
	if s.values == nil {
		s.values = make(map[string]int)
	}
	s.values[gameID] = value
	return nil
}

// hazard drops a consumable enemy onto the player every tick.
func hazard() *Profile {
	p := arena()
	p.Rules = []Rule{{Actor: core.KindPlayer, Target: core.KindEnemy, Outcome: OutcomeHit, Consume: true}}
	p.Spawn = func(w *World) {
		w.Spawn(core.Entity{Kind: core.KindEnemy, Pos: w.Player().Pos, Shape: core.Box(1, 1)})
	}
	return p
}

func TestSessionLosesLastLifeToOver(t *testing.T) {
	spy := &spyScores{}
	s := NewSession(hazard(), spy)
	require.NoError(t, s.Start())
	require.Equal(t, 3, s.Lives())

	for i, lives := range []int{2, 1, 0} {
		res := s.Tick(dt, core.InputSnapshot{})
		require.Len(t, res.Events, 1, "tick %d", i)
		assert.Equal(t, lives, res.Status.Lives, "tick %d", i)
	}

	assert.Equal(t, StateOver, s.State())
	assert.False(t, s.Won())
	assert.Equal(t, 0, s.Lives())
	assert.Equal(t, []int{0}, spy.saves, "high score is saved exactly once")

	// Over is terminal until restarted.
	res := s.Tick(dt, core.InputSnapshot{})
	assert.Empty(t, res.Events)
	assert.Equal(t, uint64(3), res.Status.Tick)
	assert.Len(t, spy.saves, 1)
}

func TestSessionCollectAddsPoints(t *testing.T) {
	p := arena()
	p.Setup = func(w *World) {
		w.Spawn(core.Entity{Kind: core.KindPlayer, Pos: core.V(10, 10), Shape: core.Circle(5)})
		w.Spawn(core.Entity{Kind: core.KindCollectible, Pos: core.V(10, 10), Shape: core.Circle(5), Points: 25})
	}
	s := NewSession(p, storage.NewMemory())
	require.NoError(t, s.Start())

	res := s.Tick(dt, core.InputSnapshot{})

	require.Equal(t, []EventKind{EventCollected}, kinds(res.Events))
	assert.Equal(t, 25, s.Score())
	assert.Equal(t, StateRunning, s.State())
	assert.Len(t, s.Sprites(), 1)
}

func TestSessionWinsOnTheClearingTick(t *testing.T) {
	p := arena(core.Entity{Kind: core.KindObstacle, Pos: core.V(10, 10), Shape: core.Box(1, 1), Points: 5})
	p.WinOnClear = true
	p.Rules = []Rule{{Actor: core.KindPlayer, Target: core.KindObstacle, Outcome: OutcomeCollect}}
	s := NewSession(p, storage.NewMemory())
	require.NoError(t, s.Start())

	res := s.Tick(dt, core.InputSnapshot{})

	assert.Equal(t, StateOver, res.Status.State)
	assert.True(t, res.Status.Won)
	assert.Equal(t, uint64(1), res.Status.Tick)
	assert.Equal(t, 5, res.Status.HighScore)
}

func TestSessionScoresEventsAfterFatalHit(t *testing.T) {
	// The obstacle is scanned before the coin, so the fatal hit comes first.
	p := arena(
		core.Entity{Kind: core.KindObstacle, Pos: core.V(10, 10), Shape: core.Box(2, 2)},
		core.Entity{Kind: core.KindCollectible, Pos: core.V(10, 10), Shape: core.Circle(1), Points: 3},
	)
	p.Lives = 1
	spy := &spyScores{}
	s := NewSession(p, spy)
	require.NoError(t, s.Start())

	res := s.Tick(dt, core.InputSnapshot{})

	assert.Equal(t, []EventKind{EventPlayerHit, EventCollected}, kinds(res.Events))
	assert.Equal(t, StateOver, s.State())
	assert.Equal(t, 3, s.Score())
	assert.Equal(t, []int{3}, spy.saves)
}

func TestSessionHighScoreIsMonotonic(t *testing.T) {
	tests := []struct {
		name     string
		stored   int
		expected int
	}{
		{"lower run keeps record", 100, 100},
		{"better run sets record", 1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := arena(
				core.Entity{Kind: core.KindCollectible, Pos: core.V(10, 10), Shape: core.Circle(1), Points: 3},
				core.Entity{Kind: core.KindObstacle, Pos: core.V(10, 10), Shape: core.Box(2, 2)},
			)
			p.Lives = 1
			spy := &spyScores{values: map[string]int{"arena": tc.stored}}
			s := NewSession(p, spy)
			require.Equal(t, tc.stored, s.HighScore())
			require.NoError(t, s.Start())

			s.Tick(dt, core.InputSnapshot{})

			assert.Equal(t, tc.expected, s.HighScore())
			assert.Equal(t, []int{tc.expected}, spy.saves)
		})
	}
}

func TestSessionLoadFailureReadsZero(t *testing.T) {
	s := NewSession(arena(), &spyScores{loadErr: errors.New("disk on fire")})
	assert.Equal(t, 0, s.HighScore())
}

func TestSessionTransitions(t *testing.T) {
	s := NewSession(hazard(), storage.NewMemory())

	assert.ErrorIs(t, s.Restart(), ErrNotOver)
	require.NoError(t, s.Start())
	assert.ErrorIs(t, s.Start(), ErrNotIdle)
	assert.ErrorIs(t, s.Restart(), ErrNotOver)

	for s.State() == StateRunning {
		s.Tick(dt, core.InputSnapshot{})
	}
	require.Equal(t, StateOver, s.State())

	require.NoError(t, s.Restart())
	assert.Equal(t, StateRunning, s.State())
	assert.Equal(t, 0, s.Score())
	assert.Equal(t, 3, s.Lives())
	assert.Equal(t, uint64(0), s.Status().Tick)
}

func TestSessionAbandonPersistsNothing(t *testing.T) {
	spy := &spyScores{}
	var overs int
	s := NewSession(arena(), spy, WithOverHook(func(Status) { overs++ }))
	require.NoError(t, s.Start())
	s.Tick(dt, core.InputSnapshot{})

	s.Abandon()

	assert.Equal(t, StateIdle, s.State())
	assert.Empty(t, spy.saves)
	assert.Zero(t, overs)
	assert.NoError(t, s.Start(), "an abandoned session can start again")
}

func TestSessionIdleTickIsNoop(t *testing.T) {
	s := NewSession(arena(), nil)

	res := s.Tick(dt, core.InputSnapshot{})

	assert.Empty(t, res.Events)
	assert.Equal(t, StateIdle, res.Status.State)
	assert.Nil(t, s.Sprites())
}

func TestSessionOverHookSeesFinalStatus(t *testing.T) {
	var got []Status
	s := NewSession(hazard(), nil, WithOverHook(func(st Status) { got = append(got, st) }))
	require.NoError(t, s.Start())

	for s.State() == StateRunning {
		s.Tick(dt, core.InputSnapshot{})
	}

	require.Len(t, got, 1)
	assert.Equal(t, StateOver, got[0].State)
	assert.Equal(t, 0, got[0].Lives)
}

func TestSessionRunsAreReproducible(t *testing.T) {
	play := func() []core.Entity {
		p := arena()
		p.Spawn = func(w *World) {
			if w.Rand().Intn(10) == 0 {
				w.Spawn(core.Entity{Kind: core.KindCollectible, Pos: core.V(w.Rand().Float64()*40, 0), Vel: core.V(0, 20), Shape: core.Circle(0.5)})
			}
		}
		s := NewSession(p, nil, WithSeed(7))
		require.NoError(t, s.Start())
		for range 120 {
			s.Tick(dt, core.InputSnapshot{})
		}
		return s.World().Entities()
	}

	assert.Equal(t, play(), play())
}
