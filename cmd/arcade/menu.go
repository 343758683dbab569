package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to pick a game, left/right to choose the difficulty
and Enter to play. After a game ends, you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Difficulty
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 30
  arcade menu --db ./scores.db`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	defer closeStore(store)

	cfg := terminalConfig()
	status := ""

	for {
		result, err := tui.RunMenu(store, cfg, status)
		if err != nil {
			fail("%v", err)
		}
		cfg = result.Config
		status = ""

		switch {
		case result.Quit:
			return

		case result.WantsScoreboard:
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fail("%v", sbErr)
			}
			if !goBack {
				return
			}

		case result.ItemID == tui.CalculatorID:
			goBack, calcErr := tui.RunCalculator()
			if calcErr != nil {
				fail("%v", calcErr)
			}
			if !goBack {
				return
			}

		default:
			game, preset, err := createGame(result.ItemID, "", result.Difficulty)
			if err != nil {
				status = err.Error()
				continue
			}

			// Each round gets a fresh seed unless --seed pins it.
			gameCfg := cfg
			if gameCfg.Seed == 0 {
				gameCfg.Seed = time.Now().UnixNano()
			}

			if err := tui.Run(game, gameCfg, tui.Options{
				Store:      store,
				Player:     currentUser(),
				Difficulty: preset,
			}); err != nil {
				status = err.Error()
			}
		}
	}
}
