package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-breakout/internal/config"
)

// loadGameConfig loads the configuration and applies the command-line overrides.
func loadGameConfig(opts *options) (config.GameConfig, error) {
	preset, err := config.ParsePreset(opts.difficulty)
	if err != nil {
		return config.GameConfig{}, err
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.GameConfig{}, err
	}

	config.ApplyPreset(&cfg, preset)
	if opts.noJitter {
		cfg.Physics.AngleJitter = false
	}

	if err := cfg.Validate(); err != nil {
		return config.GameConfig{}, err
	}
	return cfg, nil
}

// newLogger builds the application logger. Logs go to the --log-file when
// set and to fallback otherwise. The returned function closes the log file.
func newLogger(opts *options, fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	w := fallback
	closeFn := func() {}

	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w = f
		//nolint:errcheck // Best-effort close on exit
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if opts.debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn, nil
}
