// Package roundrobin implements the collaborator predicate that lets
// package refill's BudgetCheck and UnblockCheck early-return for scheduling
// contexts governed by the round-robin sibling policy instead of the
// sporadic server — that policy itself stays out of scope for this module
// (it shares the SchedulingContext type but is a distinct scheduling
// discipline).
package roundrobin

import (
	"sync"

	"golang.org/x/time/rate"

	"github.com/wastore/refillsched/refill"
)

// FixedSet flags specific scheduling contexts as round-robin by identity.
// This is the simplest possible refill.RoundRobinPolicy and is what scsim
// uses for scenario fixtures.
type FixedSet struct {
	mu  sync.RWMutex
	set map[*refill.SchedulingContext]bool
}

// NewFixedSet returns an empty FixedSet.
func NewFixedSet() *FixedSet {
	return &FixedSet{set: make(map[*refill.SchedulingContext]bool)}
}

// Mark flags sc as round-robin (or clears the flag if rr is false).
func (s *FixedSet) Mark(sc *refill.SchedulingContext, rr bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rr {
		s.set[sc] = true
	} else {
		delete(s.set, sc)
	}
}

// IsRoundRobin implements refill.RoundRobinPolicy.
func (s *FixedSet) IsRoundRobin(sc *refill.SchedulingContext) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.set[sc]
}

// RateLimited wraps a FixedSet and additionally throttles how often any one
// round-robin SC may be re-dispatched, modeling the round-robin sibling
// policy's own fairness ticker. IsRoundRobin itself is unthrottled — the
// limiter only gates AllowDispatch, a convenience for simulating the
// sibling policy's behavior that package refill never calls.
type RateLimited struct {
	*FixedSet

	mu       sync.Mutex
	limiters map[*refill.SchedulingContext]*rate.Limiter
	rps      rate.Limit
	burst    int
}

// NewRateLimited returns a RateLimited policy where each round-robin SC may
// be dispatched at most rps times per second, with the given burst.
func NewRateLimited(rps float64, burst int) *RateLimited {
	return &RateLimited{
		FixedSet: NewFixedSet(),
		limiters: make(map[*refill.SchedulingContext]*rate.Limiter),
		rps:      rate.Limit(rps),
		burst:    burst,
	}
}

// AllowDispatch reports whether sc's round-robin turn may start now,
// consuming one token if so. SCs not marked round-robin are always allowed.
func (r *RateLimited) AllowDispatch(sc *refill.SchedulingContext) bool {
	if !r.IsRoundRobin(sc) {
		return true
	}

	r.mu.Lock()
	lim, ok := r.limiters[sc]
	if !ok {
		lim = rate.NewLimiter(r.rps, r.burst)
		r.limiters[sc] = lim
	}
	r.mu.Unlock()

	return lim.Allow()
}

var (
	_ refill.RoundRobinPolicy = (*FixedSet)(nil)
	_ refill.RoundRobinPolicy = (*RateLimited)(nil)
)
