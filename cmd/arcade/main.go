// arcade runs the LCD arcade games in a terminal, over SSH or headless.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//	arcade sim <game>        - Let the autopilot play without a terminal
//	arcade calc [keys...]    - Keypad calculator
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 50, the board's 20 ms loop)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/scores.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lcd-arcade/internal/core"
	"github.com/vovakirdan/lcd-arcade/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/lcd-arcade/internal/games/bounce"
	_ "github.com/vovakirdan/lcd-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/lcd-arcade/internal/games/snake"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogLevel string

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "arcade",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "LCD Arcade - the touch-panel games in your terminal",
	Long: `LCD Arcade runs the games of a small touch-screen board: Snake,
Flappy Bird and a bouncing shapes demo, plus the keypad calculator.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  sim      - Run a game headless with its autopilot
  calc     - Keypad calculator

Examples:
  arcade list
  arcade play snake --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade sim flappy --ticks 5000 --seed 7 --png flappy.png
  arcade calc 12 + 30 =`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultTickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(calcCmd)
}

// fail prints an error the way every command reports it and exits.
func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// terminalConfig sizes the runtime config to the controlling terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the score database; the games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("could not close scores database", "error", err)
	}
}
