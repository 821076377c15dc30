package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/arcade-engine/internal/config"
	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right/A/D - Move (lane, ship or paddle)
  Space/Up       - Jump, flap or launch
  F/X/Enter      - Shoot
  Mouse          - Tap to jump, swipe to move, move to steer
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play runner
  arcade play flappy --difficulty hard
  arcade play brick --config ./my-brick.yaml
  arcade play space --seed 42`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// gameSettings validates the per-game flags. An empty difficulty keeps
// whatever the config file says.
func gameSettings() (registry.Settings, error) {
	s := registry.Settings{ConfigPath: flagConfig}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return s, err
		}
		s.Difficulty = preset
	}
	return s, nil
}

// terminalSize returns the size of stdout, defaulting to 80x24.
func terminalSize() (int, int) {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w, h
	}
	return 80, 24
}

// openStore opens the scores database. Games still run without it.
func openStore(l *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath, storage.WithLogger(l))
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}

	settings, err := gameSettings()
	if err != nil {
		return err
	}

	store := openStore(screenLogger())
	if store != nil {
		defer store.Close()
	}

	worldW, worldH := tui.WorldSize(terminalSize())
	d, err := tui.NewDriver(tui.GameOptions{
		GameID: gameID,
		Runtime: core.RuntimeConfig{
			ScreenW:  worldW,
			ScreenH:  worldH,
			TickRate: flagTPS,
			Seed:     flagSeed,
		},
		Settings: settings,
		Store:    store,
		Logger:   screenLogger(),
	})
	if err != nil {
		return err
	}

	return tui.Run(d, worldW, worldH, flagFPS)
}
