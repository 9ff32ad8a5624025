//go:build !scdebug

package refill

// In release builds the sanity-check wrapping around each mutator compiles
// out entirely: these are no-ops, so the mutating operations pay nothing
// for invariant checking outside of test/debug builds (tag scdebug).

func sanityStart(sc *SchedulingContext) Ticks { return 0 }

func sanityEnd(sc *SchedulingContext, op string, startSum Ticks) {}

func checkInvariants(sc *SchedulingContext) error { return nil }
