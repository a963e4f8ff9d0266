package main

import (
	"net"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-animals/internal/game"
	"github.com/vovakirdan/flappy-animals/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Flappy Animals SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own game. The high score and the run
history are shared by everyone connected to the server. Sound is
never played for remote sessions.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.flappy-animals/host_key

Examples:
  flappy serve                           # Listen on :23235
  flappy serve --ssh :2222               # Listen on port 2222
  flappy serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh -t localhost -p 23235`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) error {
	d, err := openDeps(true)
	if err != nil {
		return err
	}
	defer d.Close()

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	newSession := func(user string) *game.State {
		return d.newState(nil, d.logger.With("user", user))
	}

	server, err := tui.NewSSHServer(cfg, d.cfg.Screen, newSession, d.logger)
	if err != nil {
		return err
	}

	if _, port, err := net.SplitHostPort(cfg.Address); err == nil {
		d.logger.Info("connect with", "command", "ssh -t localhost -p "+port)
	}
	return server.ListenAndServe()
}
