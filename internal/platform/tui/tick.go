// Package tui provides the Bubble Tea host for the arcade engine.
// It feeds terminal keys and mouse events into the input source, schedules
// driver frames and draws the sprites the driver hands back.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is a scheduled frame callback. Gen is the driver generation the
// callback was scheduled under; callbacks from an older generation are
// dropped.
type TickMsg struct {
	At  time.Time
	Gen uint64
}

// tickCmd returns a Bubble Tea command that sends one tick message.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
