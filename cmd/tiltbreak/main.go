// tiltbreak is a brick-breaking game whose paddle follows a phone's tilt.
//
// The phone streams DIPPID sensor data over UDP; the keyboard works too.
//
// Usage:
//
//	tiltbreak [port]     - Play in the terminal, listening for the sensor on port (default 5700)
//	tiltbreak serve      - Start SSH server for remote keyboard play
//	tiltbreak config     - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible brick layouts
//	--config <path>       - Load a custom config YAML
//	--difficulty <name>   - Apply a preset: easy, normal, hard
//	--no-jitter           - Disable random rebound angles on paddle hits
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// exitBadArgs is the exit code for an invalid port argument or flag.
const exitBadArgs = 4

// exitError carries a process exit code through cobra.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

// exitCode returns the process exit code for an error returned by a command.
func exitCode(err error) int {
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return 1
}

// options holds the flags shared by all commands.
type options struct {
	fps        int
	seed       int64
	configPath string
	difficulty string
	noJitter   bool
	logFile    string
	debug      bool
	spectate   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tiltbreak [port]",
		Short: "Tilt Breakout - break bricks by tilting your phone",
		Long: `Tilt Breakout is a terminal brick-breaking game. The paddle follows the
tilt of a phone running a DIPPID sensor app, which sends its readings to
this machine over UDP.

Hold your phone sideways, press Button 1 to start and tilt to move the
paddle. The arrow keys and space work as a fallback.

Available commands:
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  tiltbreak
  tiltbreak 5701
  tiltbreak --difficulty hard --spectate :8080
  tiltbreak serve --ssh :2222`,
		Args:          portArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, args, opts)
		},
	}

	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&opts.fps, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&opts.configPath, "config", "", "Path to custom game config YAML")
	pf.StringVar(&opts.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.BoolVar(&opts.noJitter, "no-jitter", false, "Disable random rebound angles on paddle hits")
	pf.StringVar(&opts.logFile, "log-file", "", "Write logs to this file")
	pf.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	rootCmd.Flags().StringVar(&opts.spectate, "spectate", "", "Serve a websocket frame stream on this address (e.g. :8080)")

	// A negative port such as "-5" reaches cobra as an unknown shorthand flag.
	rootCmd.SetFlagErrorFunc(badFlag)

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}
