package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/config"
	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
	"github.com/vovakirdan/lcd-arcade/internal/registry"
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
  Arrows/WASD - Steer (snake)
  Space/Up    - Flap (flappy)
  P           - Pause
  R           - Restart (after game over)
  Esc/B       - Leave (when paused or over)
  Ctrl+S      - Screenshot to ~/.arcade/screenshots
  Q/Ctrl+C    - Quit

Difficulty presets step the configured values one level:
  easy   - slower snake, wider and rarer flappy gaps
  normal - the values from the config file
  hard   - faster snake, narrower and denser flappy gaps

Examples:
  arcade play snake
  arcade play flappy --difficulty hard
  arcade play snake --config ./my-snake.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
}

// createGame validates the preset name before building the game.
func createGame(id, configPath, difficulty string) (registry.Game, string, error) {
	if !registry.Exists(id) {
		return nil, "", fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", id)
	}
	preset, err := config.ParsePreset(difficulty)
	if err != nil {
		return nil, "", err
	}
	game, err := registry.Create(id, registry.Options{
		ConfigPath: configPath,
		Difficulty: string(preset),
	})
	return game, string(preset), err
}

func runPlay(_ *cobra.Command, args []string) {
	game, preset, err := createGame(args[0], flagConfig, flagDifficulty)
	if err != nil {
		fail("%v", err)
	}

	store := openStore()
	runErr := tui.Run(game, terminalConfig(), tui.Options{
		Store:      store,
		Player:     currentUser(),
		Difficulty: preset,
	})
	closeStore(store)

	if runErr != nil {
		fail("%v", runErr)
	}
}

// currentUser names the local player for the scoreboard.
func currentUser() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return "local"
}
