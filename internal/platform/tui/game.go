package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/input"
	"github.com/vovakirdan/arcade-engine/internal/loop"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

// GameOptions describe one game launch.
type GameOptions struct {
	GameID   string
	Runtime  core.RuntimeConfig // World size, tick rate and seed (0 = time based)
	Settings registry.Settings
	Store    *storage.Store // Optional; without it high scores live in memory
	Logger   *log.Logger
}

// NewDriver builds the profile, session, input source and driver for a
// game. Finished runs with a score are recorded in the store's history.
func NewDriver(opts GameOptions) (*loop.Driver, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	rt := opts.Runtime
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	if rt.TickRate <= 0 {
		rt.TickRate = loop.DefaultTickRate
	}

	profile, err := registry.Create(opts.GameID, rt, opts.Settings)
	if err != nil {
		return nil, err
	}

	var scores engine.HighScores = storage.NewMemory()
	sessionOpts := []engine.Option{engine.WithSeed(rt.Seed), engine.WithLogger(logger)}
	if store := opts.Store; store != nil {
		scores = store
		sessionOpts = append(sessionOpts, engine.WithOverHook(func(st engine.Status) {
			if st.Score == 0 {
				return
			}
			runID, err := store.SaveScore(profile.ID, st.Score, st.Won)
			if err != nil {
				logger.Warn("could not record run", "game", profile.ID, "err", err)
				return
			}
			logger.Debug("run recorded", "game", profile.ID, "run", runID)
		}))
	}

	session := engine.NewSession(profile, scores, sessionOpts...)
	// Terminals never report key releases; half a second covers the
	// keyboard's initial auto-repeat delay.
	source := input.NewSource(input.WithKeyRelease(max(rt.TickRate/2, 1)))

	return loop.New(session, source,
		loop.WithTickRate(rt.TickRate),
		loop.WithLogger(logger),
	), nil
}
