package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-animals/internal/platform/tui"
)

var (
	flagLimit int
	flagClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Browse the run history",
	Long: `Show the best and most recent runs together with the high score.

The high score comes from the high score store. When that store cannot
be read, the best recorded run is shown instead.

Examples:
  flappy scores
  flappy scores --limit 10
  flappy scores --db ./runs.db
  flappy scores --clear          # Delete the run history (high score is kept)`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 100, "Maximum runs listed per view")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete all recorded runs and exit")
}

func runScores(_ *cobra.Command, _ []string) error {
	d, err := openDeps(false)
	if err != nil {
		return err
	}
	defer d.Close()

	if d.history == nil {
		return errors.New("run history is not available (check history.enabled and --db)")
	}

	if flagClear {
		if err := d.history.ClearRuns(); err != nil {
			return err
		}
		d.logger.Info("run history cleared")
		fmt.Println("Run history cleared.")
		return nil
	}

	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}

	return tui.RunScoreboard(d.history, d.displayHighScore(), flagLimit, width, height)
}

// displayHighScore loads the stored high score, falling back to the best
// recorded run when the store cannot be read.
func (d *deps) displayHighScore() int {
	high, err := d.highScore.Load()
	if err == nil {
		return high
	}
	d.logger.Warn("cannot load high score", "error", err)

	if d.history == nil {
		return 0
	}
	best, err := d.history.HighScore()
	if err != nil {
		d.logger.Warn("cannot read best run", "error", err)
		return 0
	}
	return best
}
