package refill

// MinBudget is the platform-supplied minimum chunk size (2*wcet*wcetScale)
// every refill must satisfy. It is a package variable, not a constant,
// because it is derived from the platform's wcet (see MinBudgetFor). Tests,
// scsim and cmd/scctl override it directly for deterministic scenarios.
var MinBudget Ticks = 10

// New initialises sc as a fresh scheduling context with a single refill
// covering the full budget, eligible starting now. maxRefills is the
// capacity of the backing slot array, determined by the capability system
// from the untyped-memory size class it handed the caller.
//
// This requires budget >= MinSCBudget (the stricter of two plausible
// bounds for New and Update), rather than a strict budget > MinBudget.
func New(maxRefills int, budget, period Ticks, now Ticks, core CoreID) (*SchedulingContext, error) {
	if maxRefills < 1 {
		return nil, precondition("New", "maxRefills must be >= 1")
	}
	if budget < MinSCBudget(MinBudget) {
		return nil, preconditionf("New", "budget %d below minimum SC budget %d", budget, MinSCBudget(MinBudget))
	}
	if period < budget {
		return nil, preconditionf("New", "period %d shorter than budget %d", period, budget)
	}

	sc := &SchedulingContext{
		period:     period,
		budget:     budget,
		maxRefills: maxRefills,
		slots:      make([]Refill, maxRefills),
		head:       0,
		count:      1,
		core:       core,
	}
	sc.slots[0] = Refill{Time: now, Amount: budget}
	sanityEnd(sc, "New", sc.budget)
	return sc, nil
}
