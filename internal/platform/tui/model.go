package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tilt-breakout/internal/breakout"
	"github.com/vovakirdan/tilt-breakout/internal/core"
	"github.com/vovakirdan/tilt-breakout/internal/sensor"
)

// FramePublisher receives every frame after it is stepped.
type FramePublisher interface {
	Publish(f breakout.Frame)
}

// Options holds the optional collaborators of a Model.
type Options struct {
	// Sensor is the external input source. Keyboard input takes priority
	// while a tilt key is held. May be nil for keyboard-only play.
	Sensor core.InputSource

	// Publisher gets every frame (e.g. the spectator hub). May be nil.
	Publisher FramePublisher

	Logger *log.Logger
}

// Model is the Bubble Tea model that runs one game.
type Model struct {
	game      *breakout.Game
	keys      *sensor.ManualSource
	sampler   *sensor.Sampler
	publisher FramePublisher
	logger    *log.Logger

	screen *core.Screen
	config core.RuntimeConfig
	keyMap KeyMap
	help   help.Model

	frame     breakout.Frame
	lastTick  time.Time
	holdTicks int // Ticks left before a tilt key counts as released
	quitting  bool
}

// NewModel creates a model for the given game.
func NewModel(game *breakout.Game, cfg core.RuntimeConfig, opts Options) Model {
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := sensor.NewManualSource()
	src := sensor.NewMultiSource(keys, opts.Sensor)

	return Model{
		game:      game,
		keys:      keys,
		sampler:   sensor.NewSampler(src, game.Config().Sensor),
		publisher: opts.Publisher,
		logger:    logger,
		screen:    core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		config:    cfg,
		keyMap:    DefaultKeyMap(),
		help:      help.New(),
		frame:     game.Snapshot(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey turns key presses into sensor input.
// Terminals report no key releases, so a tilt is held for a few ticks and
// renewed by key repeat.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	sc := m.game.Config().Sensor

	switch m.keyMap.MapKey(msg) {
	case ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case ActionLeft:
		m.keys.Tilt(core.Capability(sc.Motion), sc.Axis, -1)
		m.holdTicks = m.holdDuration()
	case ActionRight:
		m.keys.Tilt(core.Capability(sc.Motion), sc.Axis, 1)
		m.holdTicks = m.holdDuration()
	case ActionFire:
		m.keys.Press(core.Capability(sc.Button))
	}

	return m, nil
}

// holdDuration is how many ticks a single tilt key press lasts.
func (m Model) holdDuration() int {
	return max(m.config.TickRate/6, 1)
}

// handleResize adapts the screen. Field coordinates do not depend on the
// screen, so the round keeps running.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick samples input and advances the game by one tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	elapsed := tickInterval(m.config.TickRate)
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	prev := m.frame.State
	m.frame = m.game.Step(m.sampler.Sample(elapsed))
	if m.frame.State != prev {
		m.logger.Info("round state", "state", m.frame.State, "score", m.frame.Score)
	}

	if m.publisher != nil {
		m.publisher.Publish(m.frame)
	}

	if m.holdTicks > 0 {
		m.holdTicks--
		if m.holdTicks == 0 {
			m.keys.Release(core.Capability(m.game.Config().Sensor.Motion))
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// Frame returns the most recent frame.
func (m Model) Frame() breakout.Frame {
	return m.frame
}

// View renders the current frame and the key help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	breakout.Render(m.frame, m.screen)
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keyMap)
}

// Run starts the Bubble Tea program for the given game.
func Run(game *breakout.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
