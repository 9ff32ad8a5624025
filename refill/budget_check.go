package refill

// BudgetCheck charges usage ticks, just consumed by the thread bound to sc,
// against the head refill. The caller guarantees sc is the currently
// running SC and is non-empty. An rr whose IsRoundRobin(sc) returns true
// makes this a no-op; a nil rr means sc is never treated as round-robin.
// The round-robin sibling policy is checked only at this call boundary,
// never inside the algorithm.
func (sc *SchedulingContext) BudgetCheck(usage, now, wcet Ticks, rr RoundRobinPolicy) error {
	if rr != nil && rr.IsRoundRobin(sc) {
		return nil
	}
	if !sc.Active() {
		return precondition("BudgetCheck", "SC is not active")
	}
	if sc.Empty() {
		return precondition("BudgetCheck", "SC has no refills")
	}
	if usage == 0 {
		// Charging nothing is a true no-op. Without this
		// guard a zero-amount "used" refill would still reach
		// scheduleUsed and could split budget off the tail for no
		// reason, violating "head unchanged".
		return nil
	}

	startSum := sanityStart(sc)
	defer func() { sanityEnd(sc, "BudgetCheck", startSum) }()

	head := sc.headRefill()
	lastEntry := head.Time

	var donateToUsed Ticks // remnant folded into the rescheduled "used" refill, case 4 only

	switch {
	case !sc.Ready(now, wcet) || head.Amount < usage:
		// Overrun: the thread ran past its eligibility window, or
		// consumed more than the head had to give. Conservatively
		// restore the bandwidth limit by draining the queue and
		// deferring all of budget to one period plus usage past the
		// old head's start — far enough out that the sliding-window
		// constraint cannot have been violated.
		sc.count = 0
		sc.pushTail(Refill{Time: lastEntry + sc.period + usage, Amount: sc.budget})
		return nil

	case usage == head.Amount:
		sc.popHead()

	case head.Amount-usage >= MinBudget:
		head.Amount -= usage
		head.Time += usage
		sc.setHead(head)

	default:
		remnant := head.Amount - usage
		sc.popHead()
		if sc.Empty() {
			donateToUsed = remnant
		} else {
			newHead := sc.headRefill()
			newHead.Time -= remnant
			newHead.Amount += remnant
			sc.setHead(newHead)
		}
	}

	used := Refill{Time: lastEntry + sc.period, Amount: usage}
	if donateToUsed > 0 {
		used.Time -= donateToUsed
		used.Amount += donateToUsed
	}
	sc.scheduleUsed(used, MinBudget)
	return nil
}
