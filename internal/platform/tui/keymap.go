package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/input"
)

// Control is a host-level command that never reaches the game.
type Control int

const (
	ControlNone Control = iota
	ControlQuit
	ControlPause
	ControlRestart
)

// KeyMapper translates Bubble Tea messages into input source events and
// host controls. This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys map[string]core.Key
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{
		keys: map[string]core.Key{
			"left":  core.KeyLeft,
			"a":     core.KeyLeft,
			"h":     core.KeyLeft,
			"right": core.KeyRight,
			"d":     core.KeyRight,
			"l":     core.KeyRight,
			"up":    core.KeyUp,
			"w":     core.KeyUp,
			"down":  core.KeyDown,
			"s":     core.KeyDown,
			" ":     core.KeySpace,
			"f":     core.KeyFire,
			"x":     core.KeyFire,
			"enter": core.KeyFire,
		},
	}
}

// MapControl returns the host control bound to a key, if any.
func (km *KeyMapper) MapControl(msg tea.KeyMsg) Control {
	switch msg.String() {
	case "ctrl+c", "q":
		return ControlQuit
	case "p", "esc":
		return ControlPause
	case "r":
		return ControlRestart
	}
	return ControlNone
}

// MapKey returns the engine key for a terminal key.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (core.Key, bool) {
	k, ok := km.keys[msg.String()]
	return k, ok
}

// Feed forwards a key press to the source. Terminals report no releases,
// so the source must be built with input.WithKeyRelease.
func (km *KeyMapper) Feed(src *input.Source, msg tea.KeyMsg) bool {
	k, ok := km.MapKey(msg)
	if ok {
		src.KeyDown(k)
	}
	return ok
}

// FeedMouse forwards a mouse event to the source in world coordinates.
// A left press and release form a touch gesture; motion moves the pointer.
func FeedMouse(src *input.Source, msg tea.MouseMsg) {
	p := core.V(float64(msg.X)+0.5, float64(msg.Y-hudRows)+0.5)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			src.TouchStart(p)
		}
	case tea.MouseActionRelease:
		src.TouchEnd(p)
	default:
		src.PointerMove(p)
	}
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionScoreboard
	MenuActionDifficulty
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return MenuActionQuit
	case "w", "up", "k":
		return MenuActionUp
	case "s", "down", "j":
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "tab":
		return MenuActionScoreboard
	case "left", "right", "d":
		return MenuActionDifficulty
	}
	return MenuActionNone
}
