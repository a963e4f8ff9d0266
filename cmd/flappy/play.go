package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flappy-animals/internal/audio"
	platformterm "github.com/vovakirdan/flappy-animals/internal/platform/term"
	"github.com/vovakirdan/flappy-animals/internal/platform/tui"
)

// Hosts that can drive a local game.
const (
	hostTea   = "tea"
	hostTcell = "tcell"
)

var (
	flagHost  string
	flagSound bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Flappy Animals",
	Long: `Start the game in the terminal.

Controls:
  Up/Down, Enter   - Navigate menus
  Left/Right       - Change obstacle spacing
  Esc              - Back to main menu
  Space            - Flap
  P / M / Q        - Play again / Menu / Quit (end screen)
  Ctrl+C           - Exit

Hosts:
  tea    - Bubble Tea renderer (default)
  tcell  - direct tcell screen

Examples:
  flappy play
  flappy play --sound
  flappy play --host tcell --seed 42
  flappy play --config ./my-flappy.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagHost, "host", hostTea, "Terminal host: tea or tcell")
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Enable sound effects")
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
}

func runPlay(cmd *cobra.Command, _ []string) error {
	if flagHost != hostTea && flagHost != hostTcell {
		return fmt.Errorf("unknown host %q (want %s or %s)", flagHost, hostTea, hostTcell)
	}

	d, err := openDeps(false)
	if err != nil {
		return err
	}
	defer d.Close()

	need := d.cfg.Screen
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil && (w < need.Width || h < need.Height+1) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the game needs %dx%d\n", w, h, need.Width, need.Height+1)
	}

	player := audio.New(flagSound || d.cfg.Audio.Enabled, d.logger)
	defer player.Close()

	state := d.newState(player, d.logger)
	d.logger.Info("starting game", "host", flagHost, "high_score", state.HighScore())

	switch flagHost {
	case hostTcell:
		host, err := platformterm.New(state, d.cfg.Screen, d.logger)
		if err != nil {
			return err
		}
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := host.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
	default:
		if err := tui.Run(state, d.cfg.Screen); err != nil {
			return fmt.Errorf("error running game: %w", err)
		}
	}

	d.logger.Info("game over", "high_score", state.HighScore())
	return nil
}
