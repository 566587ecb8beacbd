package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tilt-breakout/internal/platform/tui"
)

func newServeCmd(opts *options) *cobra.Command {
	var (
		sshAddr     string
		hostKey     string
		idleTimeout int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the SSH server",
		Long: `Start an SSH server that lets users connect and play with the keyboard.

Each SSH connection gets its own round. Phone sensors are not used in
this mode.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.tiltbreak/host_key

Examples:
  tiltbreak serve                           # Listen on :23235 with auto-generated key
  tiltbreak serve --ssh :2222               # Listen on port 2222
  tiltbreak serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 23235`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			gameCfg, err := loadGameConfig(opts)
			if err != nil {
				return err
			}

			logger, closeLog, err := newLogger(opts, os.Stderr, "tiltbreak-ssh")
			if err != nil {
				return err
			}
			defer closeLog()

			cfg := tui.SSHServerConfig{
				Address:     sshAddr,
				HostKeyPath: hostKey,
				IdleTimeout: time.Duration(idleTimeout) * time.Minute,
				Game:        gameCfg,
				TickRate:    opts.fps,
			}

			server, err := tui.NewSSHServer(cfg, logger)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Starting tiltbreak SSH server on %s\n", cfg.Address)
			fmt.Fprintln(out, "Press Ctrl+C to stop")

			return server.ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&sshAddr, "ssh", ":23235", "SSH server address (host:port)")
	cmd.Flags().StringVar(&hostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	cmd.Flags().IntVar(&idleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")

	return cmd
}
