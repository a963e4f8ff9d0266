// flappy is a side-scrolling flying game played in the terminal.
//
// Usage:
//
//	flappy                   - Play locally (same as "flappy play")
//	flappy play              - Play locally
//	flappy scores            - Browse the run history
//	flappy serve             - Start SSH server for remote play
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--seed <value>      - Set RNG seed for reproducible obstacles
//	--highscore <path>  - Override the high score file
//	--db <path>         - Override the run history database
//	--log-file <path>   - Override the log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig    string
	flagSeed      int64
	flagHighScore string
	flagDBPath    string
	flagLogFile   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flappy",
	Short: "Flappy Animals - fly through the gaps in your terminal",
	Long: `Flappy Animals is a terminal side-scroller: flap through the gaps
between obstacles for as long as you can.

Available commands:
  play     - Play locally (default)
  scores   - Browse the run history
  serve    - Start SSH server for remote play

Examples:
  flappy
  flappy play --sound
  flappy play --host tcell
  flappy scores
  flappy serve --ssh :2222`,
	RunE: runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagHighScore, "highscore", "", "Path to high score file (file backend)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to log file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}
