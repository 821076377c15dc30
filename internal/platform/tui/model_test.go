package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	_ "github.com/vovakirdan/arcade-engine/internal/games/runner"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/loop"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

func calm() *engine.Profile {
	return &engine.Profile{
		ID:     "calm",
		Title:  "Calm",
		Bounds: core.NewRect(0, 0, 40, 20),
		Lives:  1,
		Rules:  engine.DefaultRules(),
		Setup: func(w *engine.World) {
			w.Spawn(core.Entity{Kind: core.KindPlayer, Pos: core.V(20, 10), Shape: core.Box(1, 1)})
		},
	}
}

func doomed() *engine.Profile {
	p := calm()
	p.ID = "doomed"
	p.Setup = func(w *engine.World) {
		w.Spawn(core.Entity{Kind: core.KindPlayer, Pos: core.V(20, 10), Shape: core.Box(1, 1)})
		w.Spawn(core.Entity{Kind: core.KindObstacle, Pos: core.V(20, 10), Shape: core.Box(1, 1)})
	}
	return p
}

func newModel(t *testing.T, p *engine.Profile) Model {
	t.Helper()
	d := loop.New(engine.NewSession(p, storage.NewMemory()), input.NewSource())
	m, err := NewModel(d, 40, 20, 30)
	require.NoError(t, err)
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(Model)
	require.True(t, ok)
	return mm, cmd
}

func TestModelStartsDriver(t *testing.T) {
	m := newModel(t, calm())

	assert.True(t, m.driver.Running())
	assert.Equal(t, engine.StateRunning, m.Frame().Status.State)
	assert.NotNil(t, m.Init())
	assert.Equal(t, 21, m.screen.Height(), "world plus HUD row")
}

func TestModelTickAdvancesAndReschedules(t *testing.T) {
	m := newModel(t, calm())

	m, cmd := update(t, m, TickMsg{At: time.Now().Add(200 * time.Millisecond), Gen: m.gen})
	assert.NotNil(t, cmd)
	assert.Positive(t, m.Frame().Ticks)
	assert.Positive(t, m.Frame().Status.Tick)
}

func TestModelDropsStaleTicks(t *testing.T) {
	m := newModel(t, calm())

	m, cmd := update(t, m, TickMsg{At: time.Now().Add(time.Second), Gen: m.gen + 7})
	assert.Nil(t, cmd, "a stale chain ends")
	assert.Zero(t, m.Frame().Status.Tick)
}

func TestModelPauseAndResume(t *testing.T) {
	m := newModel(t, calm())
	old := m.gen

	m, cmd := update(t, m, runes("p"))
	assert.Nil(t, cmd)
	assert.True(t, m.Paused())
	assert.False(t, m.driver.Running())

	_, cmd = update(t, m, TickMsg{At: time.Now().Add(time.Second), Gen: old})
	assert.Nil(t, cmd, "ticks scheduled before the pause are dropped")
	assert.Zero(t, m.driver.Session().Status().Tick)

	m, cmd = update(t, m, runes("p"))
	assert.NotNil(t, cmd)
	assert.False(t, m.Paused())
	assert.NotEqual(t, old, m.gen)
	assert.Equal(t, engine.StateRunning, m.driver.Session().State(), "pause keeps the run")
}

func TestModelGameOverAndRestart(t *testing.T) {
	m := newModel(t, doomed())

	m, cmd := update(t, m, runes("r"))
	assert.Nil(t, cmd, "restart is ignored while running")

	m, cmd = update(t, m, TickMsg{At: time.Now().Add(100 * time.Millisecond), Gen: m.gen})
	assert.Nil(t, cmd, "no frames after game over")
	assert.Equal(t, engine.StateOver, m.Frame().Status.State)
	assert.False(t, m.driver.Running())
	assert.Contains(t, m.View(), "GAME OVER")

	m, cmd = update(t, m, runes("r"))
	assert.NotNil(t, cmd)
	assert.Equal(t, engine.StateRunning, m.Frame().Status.State)
	assert.True(t, m.driver.Running())
}

func TestModelQuitReturnsToHost(t *testing.T) {
	m := newModel(t, calm())

	m, cmd := update(t, m, runes("q"))
	assert.Nil(t, cmd, "hosted models do not end the program")
	assert.True(t, m.Done())
	assert.Equal(t, engine.StateIdle, m.driver.Session().State())
	assert.Empty(t, m.View())
}

func TestNewDriverBuildsRegisteredGame(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	d, err := NewDriver(GameOptions{
		GameID:  "runner",
		Runtime: core.RuntimeConfig{ScreenW: 60, ScreenH: 23, Seed: 9},
	})
	require.NoError(t, err)
	assert.Equal(t, "runner", d.Session().GameID())
	assert.Equal(t, time.Second/60, d.TickDuration())

	_, err = NewDriver(GameOptions{GameID: "pong"})
	assert.ErrorIs(t, err, registry.ErrUnknownGame)
}
