package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tilt-breakout/internal/breakout"
	"github.com/vovakirdan/tilt-breakout/internal/core"
	"github.com/vovakirdan/tilt-breakout/internal/platform/tui"
	"github.com/vovakirdan/tilt-breakout/internal/sensor"
	"github.com/vovakirdan/tilt-breakout/internal/spectate"
)

// runPlay runs a round in the local terminal, fed by the UDP sensor and the keyboard.
func runPlay(cmd *cobra.Command, args []string, opts *options) error {
	port, hasPort, err := parsePort(args)
	if err != nil {
		return err
	}

	cfg, err := loadGameConfig(opts)
	if err != nil {
		return err
	}
	if hasPort {
		cfg.Sensor.Port = port
	}

	// The terminal belongs to the game, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(opts, io.Discard, "tiltbreak")
	if err != nil {
		return err
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	src := sensor.NewUDPSource(fmt.Sprintf(":%d", cfg.Sensor.Port), sensor.WithLogger(logger))
	if err := src.Start(ctx); err != nil {
		return err
	}
	defer src.Close()

	var publisher tui.FramePublisher
	if opts.spectate != "" {
		hub := spectate.NewHub(spectate.WithLogger(logger))
		go serveSpectators(ctx, hub, opts.spectate, logger)
		publisher = hub
	}

	runtime := core.DefaultConfig()
	runtime.TickRate = opts.fps
	runtime.Seed = opts.seed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}
	if runtime.Seed == 0 {
		runtime.Seed = time.Now().UnixNano()
	}

	logger.Info("starting round",
		"port", cfg.Sensor.Port,
		"seed", runtime.Seed,
		"fps", runtime.TickRate,
		"difficulty", opts.difficulty,
	)

	game := breakout.New(cfg, runtime.Seed, breakout.WithLogger(logger))
	if err := tui.Run(game, runtime, tui.Options{
		Sensor:    src,
		Publisher: publisher,
		Logger:    logger,
	}); err != nil {
		return fmt.Errorf("cannot run game: %w", err)
	}

	if received, dropped := src.Stats(); received == 0 {
		logger.Warn("no sensor data received", "port", cfg.Sensor.Port, "dropped", dropped)
	}
	return nil
}

// serveSpectators runs the websocket stream until ctx is done.
func serveSpectators(ctx context.Context, hub *spectate.Hub, addr string, logger *log.Logger) {
	if err := hub.ListenAndServe(ctx, addr); err != nil {
		logger.Error("spectator stream stopped", "error", err)
	}
}
