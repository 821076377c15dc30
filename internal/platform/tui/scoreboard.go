package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

const (
	historyLimit = 100 // Runs loaded per game
	tableChrome  = 9   // Rows taken by title, tabs, stats, borders and help
)

var (
	boardTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Padding(0, 1)
	boardActiveTab  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57")).Padding(0, 1)
	boardFrameStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	boardMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up   key.Binding
	Down key.Binding
	Next key.Binding
	Prev key.Binding
	Back key.Binding
	Quit key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Back, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, {k.Prev, k.Next}, {k.Back, k.Quit}}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Next: key.NewBinding(key.WithKeys("right", "l", "tab"), key.WithHelp("→/tab", "next game")),
		Prev: key.NewBinding(key.WithKeys("left", "h", "shift+tab"), key.WithHelp("←", "prev game")),
		Back: key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc/b", "back")),
		Quit: key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ScoreboardModel shows the run history of each game as a table.
type ScoreboardModel struct {
	games  []registry.GameInfo
	active int
	store  *storage.Store
	runs   []storage.ScoreEntry
	stats  *storage.GameStats

	table  table.Model
	help   help.Model
	keys   ScoreboardKeyMap
	width  int
	height int

	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard; store may be nil.
func NewScoreboardModel(store *storage.Store, width, height int) ScoreboardModel {
	m := ScoreboardModel{
		games:  registry.List(),
		store:  store,
		keys:   DefaultScoreboardKeyMap(),
		help:   help.New(),
		width:  width,
		height: height,
	}
	m.table = newRunTable(width, height)
	m.load()
	return m
}

// newRunTable sizes the run table to the terminal.
func newRunTable(width, height int) table.Model {
	dateW := min(max(width-40, 12), 20)
	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Rank", Width: 6},
			{Title: "Score", Width: 10},
			{Title: "Result", Width: 6},
			{Title: "Date", Width: dateW},
		}),
		table.WithFocused(true),
		table.WithHeight(max(height-tableChrome, 3)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)
	return t
}

// load fetches history and stats of the active game.
func (m *ScoreboardModel) load() {
	m.runs, m.stats = nil, nil
	if m.store != nil && len(m.games) > 0 {
		id := m.games[m.active].ID
		if runs, err := m.store.TopScores(id, historyLimit); err == nil {
			m.runs = runs
		}
		if stats, err := m.store.GetGameStats(id); err == nil {
			m.stats = stats
		}
	}

	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		result := "lost"
		if r.Won {
			result = "won"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.Itoa(r.Score),
			result,
			r.CreatedAt.Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// step moves the active game by delta, wrapping around.
func (m *ScoreboardModel) step(delta int) {
	if len(m.games) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.games)) % len(m.games)
	m.load()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.step(1)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.step(-1)
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.table = newRunTable(msg.Width, msg.Height)
		m.help.Width = msg.Width
		m.load()
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	if m.quitting || m.goingBack {
		return ""
	}

	title := "HIGH SCORES"
	if len(m.games) > 0 {
		title += " - " + m.games[m.active].Title
	}

	var body string
	if len(m.runs) == 0 {
		body = boardMutedStyle.Italic(true).Padding(1, 2).
			Render("No scores recorded yet.\nPlay a game to set a high score!")
	} else {
		body = m.table.View()
	}

	parts := []string{
		boardTitleStyle.Render(title),
		"",
		m.tabs(),
		"",
		boardFrameStyle.Render(body),
	}
	if line := m.statsLine(); line != "" {
		parts = append(parts, line)
	}
	parts = append(parts, "", boardMutedStyle.Render(m.help.View(m.keys)))

	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, parts...))
}

// tabs renders the game selector, collapsing to arrows when it does not fit.
func (m ScoreboardModel) tabs() string {
	if len(m.games) == 0 {
		return ""
	}
	rendered := make([]string, len(m.games))
	for i, g := range m.games {
		style := boardTabStyle
		if i == m.active {
			style = boardActiveTab
		}
		rendered[i] = style.Render(g.Title)
	}
	line := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
	if lipgloss.Width(line) > m.width-4 {
		return fmt.Sprintf("< %s >", m.games[m.active].Title)
	}
	return line
}

// statsLine summarises the active game's run history.
func (m ScoreboardModel) statsLine() string {
	if m.stats == nil || m.stats.GamesCount == 0 {
		return ""
	}
	return strings.Join([]string{
		fmt.Sprintf("Runs %d", m.stats.GamesCount),
		fmt.Sprintf("Wins %d", m.stats.Wins),
		fmt.Sprintf("Best %d", m.stats.BestRun),
		fmt.Sprintf("Avg %.0f", m.stats.AvgScore),
		"Last " + m.stats.LastPlayed.Format("Jan 02 15:04"),
	}, "  |  ")
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// RunScoreboard runs the scoreboard screen.
// Returns true if user wants to go back to menu, false if quitting.
func RunScoreboard(store *storage.Store, width, height int) (goBack bool, err error) {
	p := tea.NewProgram(NewScoreboardModel(store, width, height), tea.WithAltScreen())

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}

	m, ok := finalModel.(ScoreboardModel)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
