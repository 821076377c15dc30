package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game.
After a game ends, you return to the menu to play again.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change difficulty
  Enter/Space  - Select game
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --tps 30
  arcade menu --db ./scores.db`,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore(screenLogger())
	if store != nil {
		defer store.Close()
	}

	for {
		width, height := terminalSize()
		result, err := tui.RunMenu(store, width, height)
		if err != nil {
			return err
		}

		switch {
		case result.Quit:
			return nil

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, width, height)
			if err != nil {
				return err
			}
			if !goBack {
				return nil
			}
			continue
		}

		worldW, worldH := tui.WorldSize(width, height)
		d, err := tui.NewDriver(tui.GameOptions{
			GameID: result.GameID,
			Runtime: core.RuntimeConfig{
				ScreenW:  worldW,
				ScreenH:  worldH,
				TickRate: flagTPS,
				Seed:     flagSeed,
			},
			Settings: registry.Settings{ConfigPath: flagConfig, Difficulty: result.Difficulty},
			Store:    store,
			Logger:   screenLogger(),
		})
		if err != nil {
			logger.Error("cannot start game", "game", result.GameID, "err", err)
			continue
		}
		if err := tui.Run(d, worldW, worldH, flagFPS); err != nil {
			return err
		}
	}
}
