package sensor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"sync/atomic"

	"github.com/charmbracelet/log"
)

// ErrClosed is returned by Start after the source has been closed.
var ErrClosed = errors.New("sensor: source closed")

// maxDatagram is the largest datagram read from the socket.
const maxDatagram = 64 * 1024

// Option configures a UDPSource.
type Option func(*UDPSource)

// WithLogger sets the logger for transport events.
func WithLogger(l *log.Logger) Option {
	return func(s *UDPSource) {
		if l != nil {
			s.logger = l
		}
	}
}

// UDPSource listens for DIPPID datagrams and keeps the latest reading of
// every capability it has seen.
type UDPSource struct {
	cells

	address string
	logger  *log.Logger

	mu     sync.Mutex // Guards conn and closed
	conn   net.PacketConn
	closed bool

	running atomic.Bool
	stopCh  chan struct{}
	wg      sync.WaitGroup

	received atomic.Uint64
	dropped  atomic.Uint64
}

// NewUDPSource creates a source that will listen on address (host:port).
func NewUDPSource(address string, opts ...Option) *UDPSource {
	s := &UDPSource{
		address: address,
		logger:  log.New(io.Discard),
		stopCh:  make(chan struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start binds the socket and begins reading in the background.
// The source closes itself when ctx is done.
func (s *UDPSource) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return ErrClosed
	}
	if s.conn != nil {
		return nil // Already running
	}

	var lc net.ListenConfig
	conn, err := lc.ListenPacket(ctx, "udp", s.address)
	if err != nil {
		return fmt.Errorf("sensor: cannot listen on %s: %w", s.address, err)
	}
	s.conn = conn
	s.running.Store(true)

	s.logger.Info("sensor listening", "address", conn.LocalAddr().String())

	s.wg.Add(1)
	go s.readLoop(conn)

	go func() {
		select {
		case <-ctx.Done():
			s.Close()
		case <-s.stopCh:
		}
	}()

	return nil
}

// readLoop decodes datagrams until the socket is closed.
func (s *UDPSource) readLoop(conn net.PacketConn) {
	defer s.wg.Done()

	buf := make([]byte, maxDatagram)
	for {
		n, from, err := conn.ReadFrom(buf)
		if err != nil {
			select {
			case <-s.stopCh:
				return
			default:
			}
			if errors.Is(err, net.ErrClosed) {
				return
			}
			s.logger.Warn("sensor read failed", "error", err)
			continue
		}

		readings, err := ParseMessage(buf[:n])
		if err != nil {
			s.dropped.Add(1)
			s.logger.Warn("dropping sensor datagram", "from", from.String(), "error", err)
			continue
		}

		s.received.Add(1)
		for c, r := range readings {
			s.put(c, r)
		}
	}
}

// Close stops the listener. It is safe to call more than once.
func (s *UDPSource) Close() error {
	s.mu.Lock()
	s.closed = true
	conn := s.conn
	if conn == nil || !s.running.CompareAndSwap(true, false) {
		s.mu.Unlock()
		return nil
	}
	close(s.stopCh)
	s.mu.Unlock()

	err := conn.Close()
	s.wg.Wait()

	received, dropped := s.Stats()
	s.logger.Info("sensor stopped", "received", received, "dropped", dropped)
	return err
}

// Addr returns the bound address, or nil when the listener is not running.
func (s *UDPSource) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.IsRunning() || s.conn == nil {
		return nil
	}
	return s.conn.LocalAddr()
}

// IsRunning reports whether the listener is active.
func (s *UDPSource) IsRunning() bool {
	return s.running.Load()
}

// Stats returns the number of accepted and dropped datagrams.
func (s *UDPSource) Stats() (received, dropped uint64) {
	return s.received.Load(), s.dropped.Load()
}
