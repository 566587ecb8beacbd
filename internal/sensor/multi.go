package sensor

import "github.com/vovakirdan/tilt-breakout/internal/core"

// MultiSource merges several sources. Readings come from the first source
// that has the capability; press counts are summed over all of them so a
// press on any source is seen.
type MultiSource struct {
	sources []core.InputSource
}

// NewMultiSource combines sources in priority order. Nil sources are skipped.
func NewMultiSource(sources ...core.InputSource) *MultiSource {
	m := &MultiSource{}
	for _, s := range sources {
		if s != nil {
			m.sources = append(m.sources, s)
		}
	}
	return m
}

// HasCapability reports whether any source has the capability.
func (m *MultiSource) HasCapability(c core.Capability) bool {
	for _, s := range m.sources {
		if s.HasCapability(c) {
			return true
		}
	}
	return false
}

// Value returns the highest-priority reading with the total press count.
func (m *MultiSource) Value(c core.Capability) (core.Reading, bool) {
	var (
		out     core.Reading
		found   bool
		presses uint64
	)
	for _, s := range m.sources {
		r, ok := s.Value(c)
		if !ok {
			continue
		}
		presses += r.Presses
		if !found {
			out = r
			found = true
		}
	}
	out.Presses = presses
	return out, found
}
