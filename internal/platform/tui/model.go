package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/loop"
)

// DefaultFPS is the default frame callback rate.
const DefaultFPS = 60

// Model is the Bubble Tea model hosting one game driver.
type Model struct {
	driver   *loop.Driver
	keys     *KeyMapper
	screen   *Screen
	frame    loop.Frame
	interval time.Duration
	gen      uint64

	width, height int // Terminal size

	standalone bool // Quit ends the program rather than returning to a menu
	paused     bool
	done       bool
}

// NewModel starts the driver and returns a model that schedules its frames
// at fps. worldW and worldH are the world size in cells.
func NewModel(d *loop.Driver, worldW, worldH, fps int) (Model, error) {
	if fps <= 0 {
		fps = DefaultFPS
	}
	gen, err := d.Start(time.Now())
	if err != nil {
		return Model{}, fmt.Errorf("tui: start %s: %w", d.Session().GameID(), err)
	}
	return Model{
		driver:   d,
		keys:     NewKeyMapper(),
		screen:   NewScreen(worldW, worldH+hudRows),
		frame:    d.Snapshot(),
		interval: time.Second / time.Duration(fps),
		gen:      gen,
	}, nil
}

// Init schedules the first frame.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.interval, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if !m.paused {
			FeedMouse(m.driver.Source(), msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil

	case TickMsg:
		return m.handleTick(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	over := m.driver.Session().State() == engine.StateOver

	switch m.keys.MapControl(msg) {
	case ControlQuit:
		m.driver.Abandon()
		m.done = true
		if m.standalone {
			return m, tea.Quit
		}
		return m, nil

	case ControlPause:
		if over {
			return m, nil
		}
		if m.paused {
			return m.resume()
		}
		m.driver.Stop()
		m.paused = true
		m.frame = m.driver.Snapshot()
		return m, nil

	case ControlRestart:
		if !over {
			return m, nil
		}
		gen, err := m.driver.Restart(time.Now())
		if err != nil {
			return m, nil
		}
		m.gen, m.paused = gen, false
		m.frame = m.driver.Snapshot()
		return m, tickCmd(m.interval, gen)
	}

	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}
	if !m.paused {
		m.keys.Feed(m.driver.Source(), msg)
	}
	return m, nil
}

func (m Model) resume() (tea.Model, tea.Cmd) {
	gen, err := m.driver.Start(time.Now())
	if err != nil {
		return m, nil
	}
	m.gen, m.paused = gen, false
	return m, tickCmd(m.interval, gen)
}

// handleTick runs one frame callback. Stale callbacks are dropped without
// rescheduling, which ends their chain.
func (m Model) handleTick(msg TickMsg) (tea.Model, tea.Cmd) {
	f, ok := m.driver.Frame(msg.Gen, msg.At)
	if !ok {
		return m, nil
	}
	m.frame = f
	if f.Status.State == engine.StateOver {
		m.driver.Stop()
		return m, nil
	}
	return m, tickCmd(m.interval, msg.Gen)
}

// saveScreenshot writes the current screen as text under ~/.arcade/screenshots.
func (m Model) saveScreenshot() {
	DrawFrame(m.screen, m.driver.Session().Title(), m.frame, m.paused)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	name := fmt.Sprintf("%s_%s.txt", m.driver.Session().GameID(), time.Now().Format("20060102_150405"))
	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(filepath.Join(dir, name), []byte(m.screen.String()), 0o600)
}

// View renders the current frame, centred in the terminal.
func (m Model) View() string {
	if m.done {
		return ""
	}
	DrawFrame(m.screen, m.driver.Session().Title(), m.frame, m.paused)
	out := RenderScreen(m.screen)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}

// Done reports whether the player left the game.
func (m Model) Done() bool { return m.done }

// Frame returns the last rendered frame.
func (m Model) Frame() loop.Frame { return m.frame }

// Paused reports whether the game is paused.
func (m Model) Paused() bool { return m.paused }

// Run plays one game in the terminal until the player quits.
func Run(d *loop.Driver, worldW, worldH, fps int) error {
	model, err := NewModel(d, worldW, worldH, fps)
	if err != nil {
		return err
	}
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)
	_, err = p.Run()
	return err
}
