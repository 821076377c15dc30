package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

func menuUpdate(t *testing.T, m MenuModel, msg tea.Msg) (MenuModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	mm, ok := next.(MenuModel)
	require.True(t, ok)
	return mm, cmd
}

func TestMenuListsRegisteredGames(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	require.NotEmpty(t, m.items)
	assert.Contains(t, m.View(), "Lane Runner")
	assert.Equal(t, config.DifficultyNormal, m.Difficulty())
}

func TestMenuCyclesDifficulty(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyHard, m.Difficulty())
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyFixed, m.Difficulty())
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, config.DifficultyEasy, m.Difficulty())
	m, _ = menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, config.DifficultyFixed, m.Difficulty())
}

func TestMenuSelectAndScoreboard(t *testing.T) {
	m := NewMenuModel(nil, 80, 24)

	selected, cmd := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, selected.Selected())
	assert.Equal(t, m.items[0].GameID, selected.Selected().GameID)
	assert.NotNil(t, cmd)

	scores, _ := menuUpdate(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.True(t, scores.WantsScoreboard())
	assert.Nil(t, scores.Selected())
}

func TestSessionModelMenuGameMenu(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	rt := core.RuntimeConfig{ScreenW: 60, ScreenH: 24, TickRate: 60, Seed: 5}

	var sm tea.Model = NewSessionModel(nil, rt, 30, nil)
	sm, cmd := sm.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s := sm.(SessionModel)
	require.Equal(t, screenGame, s.screen)
	assert.NotNil(t, cmd, "the game's first frame is scheduled")
	assert.Equal(t, engine.StateRunning, s.game.Frame().Status.State)
	assert.Equal(t, 24, s.game.screen.Height(), "world fills the terminal below the HUD")

	sm, _ = sm.Update(runes("q"))
	s = sm.(SessionModel)
	assert.Equal(t, screenMenu, s.screen, "leaving a game returns to the menu")
	assert.False(t, s.quitting)

	sm, cmd = sm.Update(runes("q"))
	s = sm.(SessionModel)
	assert.True(t, s.quitting)
	assert.NotNil(t, cmd)
}

func TestSessionModelScoreboardBack(t *testing.T) {
	var sm tea.Model = NewSessionModel(nil, core.RuntimeConfig{ScreenW: 90, ScreenH: 30}, 30, nil)

	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, screenScores, sm.(SessionModel).screen)
	assert.Contains(t, sm.View(), "No scores recorded yet")

	sm, _ = sm.Update(tea.KeyMsg{Type: tea.KeyEscape})
	assert.Equal(t, screenMenu, sm.(SessionModel).screen)
}
