package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

// portArgs accepts at most one argument, which must be a valid port.
func portArgs(_ *cobra.Command, args []string) error {
	_, _, err := parsePort(args)
	return err
}

// badFlag reports a command line that cobra could not parse.
func badFlag(_ *cobra.Command, err error) error {
	return &exitError{code: exitBadArgs, err: err}
}

// parsePort returns the port given on the command line.
// The boolean is false when no port was given.
func parsePort(args []string) (int, bool, error) {
	switch len(args) {
	case 0:
		return 0, false, nil
	case 1:
	default:
		return 0, false, &exitError{
			code: exitBadArgs,
			err:  fmt.Errorf("expected at most one argument (the sensor port), got %d", len(args)),
		}
	}

	port, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, false, &exitError{
			code: exitBadArgs,
			err:  fmt.Errorf("port must be an integer, got %q", args[0]),
		}
	}
	if port < 1 || port > 65535 {
		return 0, false, &exitError{
			code: exitBadArgs,
			err:  fmt.Errorf("port %d out of range 1-65535", port),
		}
	}
	return port, true, nil
}
