// arcade plays fixed-timestep arcade games in the terminal.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Run a game headless with a random autopilot
//
// Global flags:
//
//	--tps <rate>        - Simulation ticks per second (30-1000, default: 60)
//	--fps <rate>        - Frame callbacks per second (default: 60)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--db <path>         - Set database path (default: ~/.arcade/scores.db)
//	--log-level <lvl>   - debug, info, warn or error
//	--log-file <path>   - Write logs to a file
//
// A .env file in the working directory may set ARCADE_DB, ARCADE_TPS and
// ARCADE_LOG_LEVEL for flags that are not given.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/arcade-engine/internal/games/brick"
	_ "github.com/vovakirdan/arcade-engine/internal/games/flappy"
	_ "github.com/vovakirdan/arcade-engine/internal/games/runner"
	_ "github.com/vovakirdan/arcade-engine/internal/games/space"
	"github.com/vovakirdan/arcade-engine/internal/loop"
)

var (
	// Global flags
	flagTPS      int
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string
	flagLogFile  string

	logger  *log.Logger
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - fixed-timestep games in your terminal",
	Long: `Arcade runs small real-time games on a shared fixed-timestep engine:
a lane runner, a flappy bird, a space shooter and a brick breaker.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a game headless

Examples:
  arcade list
  arcade play flappy
  arcade menu
  arcade serve --ssh :2222
  arcade scores brick
  arcade sim runner --ticks 3600 --seed 7`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagTPS, "tps", 60, "Simulation ticks per second (30-1000)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame callbacks per second")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
}

// setup loads .env defaults and builds the root logger.
func setup(cmd *cobra.Command, _ []string) error {
	//nolint:errcheck // The env file is optional
	godotenv.Load()

	flags := cmd.Flags()
	if v := os.Getenv("ARCADE_DB"); v != "" && !flags.Changed("db") {
		flagDBPath = v
	}
	if v := os.Getenv("ARCADE_LOG_LEVEL"); v != "" && !flags.Changed("log-level") {
		flagLogLevel = v
	}
	if v := os.Getenv("ARCADE_TPS"); v != "" && !flags.Changed("tps") {
		tps, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("ARCADE_TPS: %w", err)
		}
		flagTPS = tps
	}
	if err := loop.ValidateTickRate(flagTPS); err != nil {
		return fmt.Errorf("--tps: %w", err)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}

	var out io.Writer = os.Stderr
	if flagLogFile != "" {
		logFile, err = os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		out = logFile
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
		Level:           level,
	})
	return nil
}

// screenLogger returns the logger for commands that own the terminal.
// Without a log file their output would corrupt the alt screen.
func screenLogger() *log.Logger {
	if logFile == nil {
		return log.New(io.Discard)
	}
	return logger
}
