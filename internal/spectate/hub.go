// Package spectate streams game frames to read-only websocket viewers.
package spectate

import (
	"context"
	"errors"
	"io"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/net/websocket"

	"github.com/vovakirdan/tilt-breakout/internal/breakout"
)

// FramesPath is the websocket endpoint served by ListenAndServe.
const FramesPath = "/frames"

// Option configures a Hub.
type Option func(*Hub)

// WithLogger sets the logger for connection events.
func WithLogger(l *log.Logger) Option {
	return func(h *Hub) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithWriteTimeout bounds how long a single frame write may take.
func WithWriteTimeout(d time.Duration) Option {
	return func(h *Hub) {
		h.writeTimeout = d
	}
}

// Hub fans frames out to connected viewers. Every viewer has a one-slot
// mailbox: a frame that has not been sent yet is replaced by the newer one,
// so a slow viewer skips frames instead of delaying the game loop.
type Hub struct {
	logger       *log.Logger
	writeTimeout time.Duration

	mu      sync.Mutex
	clients map[*client]struct{}
	latest  atomic.Pointer[breakout.Frame]
}

type client struct {
	conn    *websocket.Conn
	mailbox chan breakout.Frame
	done    chan struct{}
}

// NewHub creates a hub with no viewers.
func NewHub(opts ...Option) *Hub {
	h := &Hub{
		logger:       log.New(io.Discard),
		writeTimeout: 2 * time.Second,
		clients:      make(map[*client]struct{}),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Handler returns the websocket handler for viewers.
func (h *Hub) Handler() http.Handler {
	return websocket.Handler(h.serve)
}

// Publish hands a frame to every viewer without blocking.
func (h *Hub) Publish(f breakout.Frame) {
	h.latest.Store(&f)

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.offer(f)
	}
}

// Clients returns the number of connected viewers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every viewer.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		c.conn.Close()
	}
}

// ListenAndServe serves FramesPath on addr until ctx is done.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(FramesPath, h.Handler())

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Close()
		//nolint:errcheck // Best-effort shutdown
		srv.Shutdown(shutdownCtx)
	}()

	h.logger.Info("spectator stream listening", "address", addr, "path", FramesPath)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// serve runs one viewer connection.
func (h *Hub) serve(ws *websocket.Conn) {
	c := &client{
		conn:    ws,
		mailbox: make(chan breakout.Frame, 1),
		done:    make(chan struct{}),
	}
	if f := h.latest.Load(); f != nil {
		c.offer(*f)
	}

	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	remote := ws.Request().RemoteAddr
	h.logger.Info("spectator connected", "remote", remote)

	defer func() {
		h.mu.Lock()
		delete(h.clients, c)
		h.mu.Unlock()
		ws.Close()
		h.logger.Info("spectator disconnected", "remote", remote)
	}()

	// Viewers never send anything; a failed read means the peer went away.
	go func() {
		defer close(c.done)
		var discard []byte
		for {
			if err := websocket.Message.Receive(ws, &discard); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case f := <-c.mailbox:
			//nolint:errcheck // A failed deadline surfaces as a send error
			ws.SetWriteDeadline(time.Now().Add(h.writeTimeout))
			if err := websocket.JSON.Send(ws, &f); err != nil {
				h.logger.Debug("spectator send failed", "remote", remote, "error", err)
				return
			}
		case <-c.done:
			return
		}
	}
}

// offer places f in the mailbox, replacing any frame still waiting.
func (c *client) offer(f breakout.Frame) {
	for {
		select {
		case c.mailbox <- f:
			return
		default:
		}
		select {
		case <-c.mailbox:
		default:
		}
	}
}
