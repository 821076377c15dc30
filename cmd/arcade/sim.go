package main

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/arcade-engine/internal/core"
	"github.com/vovakirdan/arcade-engine/internal/engine"
	"github.com/vovakirdan/arcade-engine/internal/platform/tui"
	"github.com/vovakirdan/arcade-engine/internal/registry"
	"github.com/vovakirdan/arcade-engine/internal/sim"
	"github.com/vovakirdan/arcade-engine/internal/storage"
)

var (
	flagSimTicks    int
	flagSimDuration time.Duration
	flagSimWidth    int
	flagSimHeight   int
	flagSimEvery    int
	flagSimRecord   bool
)

var simCmd = &cobra.Command{
	Use:   "sim <game>",
	Short: "Run a game headless with a random autopilot",
	Long: `Run a game without a terminal. A seeded autopilot presses random keys
and the final status is printed when the game ends or the limit is reached.

By default ticks run as fast as possible. With --duration the game runs
against the wall clock through the same frame loop the terminal uses.

Examples:
  arcade sim runner --ticks 3600 --seed 7
  arcade sim brick --duration 30s --difficulty hard
  arcade sim flappy --record`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Tick limit, 0 = until game over")
	simCmd.Flags().DurationVar(&flagSimDuration, "duration", 0, "Run in real time for this long instead of ticking headless")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "World width")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 23, "World height")
	simCmd.Flags().IntVar(&flagSimEvery, "every", 10, "Ticks between autopilot decisions")
	simCmd.Flags().BoolVar(&flagSimRecord, "record", false, "Record the run in the scores database")
	simCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	simCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runSim(cmd *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	settings, err := gameSettings()
	if err != nil {
		return err
	}

	var store *storage.Store
	if flagSimRecord {
		if store = openStore(logger); store != nil {
			defer store.Close()
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	d, err := tui.NewDriver(tui.GameOptions{
		GameID: gameID,
		Runtime: core.RuntimeConfig{
			ScreenW:  flagSimWidth,
			ScreenH:  flagSimHeight,
			TickRate: flagTPS,
			Seed:     seed,
		},
		Settings: settings,
		Store:    store,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	cfg := sim.Config{Ticks: flagSimTicks, Every: flagSimEvery, Seed: seed}
	logger.Info("simulating", "game", gameID, "seed", seed, "ticks", cfg.Ticks, "duration", flagSimDuration)

	var rep sim.Report
	if flagSimDuration > 0 {
		ctx, cancel := context.WithTimeout(cmd.Context(), flagSimDuration)
		defer cancel()
		rep, err = sim.RunRealtime(ctx, d, flagFPS, cfg)
	} else {
		rep, err = sim.Run(cmd.Context(), d, cfg)
	}
	if err != nil {
		return err
	}

	printReport(registry.Title(gameID), seed, rep)
	return nil
}

func printReport(title string, seed int64, rep sim.Report) {
	st := rep.Status
	result := "running"
	if st.State == engine.StateOver {
		result = "lost"
		if st.Won {
			result = "won"
		}
	}

	fmt.Printf("%s (seed %d)\n", title, seed)
	fmt.Printf("  ticks   %d\n", rep.Ticks)
	fmt.Printf("  result  %s\n", result)
	fmt.Printf("  score   %d (best %d)\n", st.Score, st.HighScore)
	fmt.Printf("  lives   %d\n", st.Lives)

	kinds := make([]engine.EventKind, 0, len(rep.Events))
	for k := range rep.Events {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		fmt.Printf("  %-12s %d\n", k, rep.Events[k])
	}
}
