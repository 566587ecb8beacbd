// Package sensor delivers motion-sensor readings to the game loop.
//
// Sources are written asynchronously (a UDP reader goroutine, a keyboard
// handler) and read once per tick by a Sampler. Each capability is a single
// last-value-wins cell; nothing is queued.
package sensor

import (
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/tilt-breakout/internal/core"
)

// cell holds the latest reading for one capability.
type cell struct {
	latest  atomic.Pointer[core.Reading]
	presses atomic.Uint64
}

// cells is a set of per-capability cells shared by the concrete sources.
type cells struct {
	m sync.Map // core.Capability -> *cell
}

// put stores r as the latest reading for c. A nonzero scalar counts as a press.
func (cs *cells) put(c core.Capability, r core.Reading) {
	v, _ := cs.m.LoadOrStore(c, &cell{})
	cl := v.(*cell)

	if r.Pressed() {
		cl.presses.Add(1)
	}
	r.Presses = cl.presses.Load()
	cl.latest.Store(&r)
}

// drop makes c unavailable until the next put. The press count is kept.
func (cs *cells) drop(c core.Capability) {
	if v, ok := cs.m.Load(c); ok {
		v.(*cell).latest.Store(nil)
	}
}

// HasCapability reports whether a reading for c is available.
func (cs *cells) HasCapability(c core.Capability) bool {
	_, ok := cs.Value(c)
	return ok
}

// Value returns the latest reading for c.
func (cs *cells) Value(c core.Capability) (core.Reading, bool) {
	v, ok := cs.m.Load(c)
	if !ok {
		return core.Reading{}, false
	}
	r := v.(*cell).latest.Load()
	if r == nil {
		return core.Reading{}, false
	}
	return *r, true
}
