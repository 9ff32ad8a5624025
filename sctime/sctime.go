// Package sctime provides the wall-clock collaborator that package refill
// consumes through its Clock interface, plus a deterministic fake for
// tests and the scctl simulator — a userspace analogue of a kernel's
// per-core current-time global, threaded through a small handle instead of
// a package-level variable.
package sctime

import (
	"sync"
	"time"

	"github.com/wastore/refillsched/refill"
)

// System is a Clock backed by the real monotonic wall clock, converting
// elapsed time to ticks at a fixed rate. It ignores CoreID: outside of a
// simulation there is exactly one wall clock.
type System struct {
	epoch       time.Time
	ticksPerSec uint64
}

// NewSystem returns a Clock whose tick 0 is "now" and which advances at
// ticksPerSecond.
func NewSystem(ticksPerSecond uint64) *System {
	return &System{epoch: time.Now(), ticksPerSec: ticksPerSecond}
}

// Now implements refill.Clock.
func (s *System) Now(_ refill.CoreID) refill.Ticks {
	elapsed := time.Since(s.epoch)
	return refill.Ticks(elapsed.Seconds() * float64(s.ticksPerSec))
}

// Manual is a settable Clock for deterministic tests and scsim scenarios.
// One Manual may back several simulated cores at independent offsets, the
// userspace stand-in for per-core ksCurTime.
type Manual struct {
	mu    sync.Mutex
	ticks map[refill.CoreID]refill.Ticks
}

// NewManual returns a Manual clock with every core starting at tick 0.
func NewManual() *Manual {
	return &Manual{ticks: make(map[refill.CoreID]refill.Ticks)}
}

// Now implements refill.Clock.
func (m *Manual) Now(core refill.CoreID) refill.Ticks {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.ticks[core]
}

// Set pins core's clock to t.
func (m *Manual) Set(core refill.CoreID, t refill.Ticks) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks[core] = t
}

// Advance moves core's clock forward by delta ticks, returning the new value.
func (m *Manual) Advance(core refill.CoreID, delta refill.Ticks) refill.Ticks {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ticks[core] += delta
	return m.ticks[core]
}

var _ refill.Clock = (*System)(nil)
var _ refill.Clock = (*Manual)(nil)
