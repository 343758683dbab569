package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lcd-arcade/internal/registry"
	"github.com/vovakirdan/lcd-arcade/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show high scores for a game",
	Long: `Display the top 10 high scores for the specified game.

Examples:
  arcade scores flappy
  arcade scores snake --db ./scores.db
  arcade scores snake --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete every stored score of the game")
}

func runScores(_ *cobra.Command, args []string) {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fail("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening scores database: %v", err)
	}
	defer closeStore(store)

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fail("%v", err)
		}
		logger.Info("scores cleared", "game", gameID)
		return
	}

	if err := printScores(os.Stdout, store, gameID); err != nil {
		fail("%v", err)
	}
}

// printScores writes the top ten table and a summary line.
func printScores(w io.Writer, store *storage.Store, gameID string) error {
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		return err
	}

	title := gameID
	for _, g := range registry.List() {
		if g.ID == gameID {
			title = g.Title
		}
	}

	fmt.Fprintf(w, "High Scores - %s\n\n", title)

	if len(scores) == 0 {
		fmt.Fprintln(w, "No scores recorded yet.")
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Play 'arcade play %s' to set the first high score!\n", gameID)
		return nil
	}

	fmt.Fprintf(w, "  %-4s  %-8s  %-12s  %-6s  %s\n", "Rank", "Score", "Player", "Level", "Date")
	fmt.Fprintf(w, "  %-4s  %-8s  %-12s  %-6s  %s\n", "----", "-----", "------", "-----", "----")
	for i, e := range scores {
		fmt.Fprintf(w, "  %-4d  %-8d  %-12s  %-6s  %s\n",
			i+1, e.Score, e.Player, e.Difficulty, e.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.Stats(gameID)
	if err != nil {
		return err
	}
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Best: %d  Games: %d  Average: %.1f\n", stats.HighScore, stats.Plays, stats.AvgScore)
	return nil
}
