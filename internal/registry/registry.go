// Package registry provides a global registry of game profile factories.
// Game packages register themselves in init() functions, allowing the
// platform to discover and build profiles without hardcoded dependencies.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
)

// ErrUnknownGame is returned by Create for an id nobody registered.
var ErrUnknownGame = errors.New("registry: unknown game")

// Settings are the per-launch choices a factory applies on top of the
// game's YAML tuning.
type Settings struct {
	ConfigPath string                  // Custom YAML file, empty for the search path
	Difficulty config.DifficultyPreset // Empty means normal
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory builds a fresh profile. Profiles hold per-session state, so
// every session needs its own.
type Factory func(rt core.RuntimeConfig, s Settings) (*engine.Profile, error)

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Panics if a game with the same ID is already registered.
func Register(id, title string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}
	factories[id] = f
	titles[id] = title
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{ID: id, Title: titles[id]})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Create builds a new profile for the game id.
func Create(id string, rt core.RuntimeConfig, s Settings) (*engine.Profile, error) {
	mu.RLock()
	f, ok := factories[id]
	mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownGame, id)
	}
	p, err := f(rt, s)
	if err != nil {
		return nil, fmt.Errorf("registry: build %s: %w", id, err)
	}
	return p, nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}

// Title returns the display name of a registered game, or the id itself.
func Title(id string) string {
	mu.RLock()
	defer mu.RUnlock()

	if t, ok := titles[id]; ok {
		return t
	}
	return id
}
