package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/games/calculator"
	"github.com/vovakirdan/lcd-arcade/internal/platform/tui"
)

var calcCmd = &cobra.Command{
	Use:   "calc [keys...]",
	Short: "Keypad calculator",
	Long: `Press calculator keys in order and print the display, or open the
interactive keypad when no keys are given.

Numbers may be written whole; operators and the C, CE, BK and +/- keys
are separate arguments. Quote * so the shell leaves it alone.

Examples:
  arcade calc 12 + 30 =
  arcade calc 7 / 0 =
  arcade calc 2.5 x 4 +/- =
  arcade calc`,
	Run: runCalc,
}

// calcKeys splits number arguments into single digit presses.
func calcKeys(args []string) []string {
	var keys []string
	for _, arg := range args {
		if arg != "" && strings.Trim(arg, "0123456789.") == "" {
			for _, r := range arg {
				keys = append(keys, string(r))
			}
			continue
		}
		keys = append(keys, arg)
	}
	return keys
}

func runCalc(_ *cobra.Command, args []string) {
	if len(args) == 0 {
		if _, err := tui.RunCalculator(); err != nil {
			fail("%v", err)
		}
		return
	}

	display, err := calculator.Eval(calcKeys(args))
	if err != nil {
		fail("%v", err)
	}
	fmt.Println(display)
}
