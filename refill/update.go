package refill

// Update reconfigures a live SC to (newPeriod, newBudget, newMaxRefills).
// At no point during or after the call could more than newBudget be
// consumed over any window of length newPeriod — the bandwidth guarantee
// holds even transiently, while the SC's bound thread may still be
// running.
//
// This requires newBudget >= MinSCBudget.
func (sc *SchedulingContext) Update(newPeriod, newBudget Ticks, newMaxRefills int, now, wcet Ticks) error {
	if !sc.Active() {
		return precondition("Update", "SC is not active")
	}
	if newMaxRefills < 1 {
		return precondition("Update", "newMaxRefills must be >= 1")
	}
	if newBudget < MinSCBudget(MinBudget) {
		return preconditionf("Update", "newBudget %d below minimum SC budget %d", newBudget, MinSCBudget(MinBudget))
	}
	if newPeriod < newBudget {
		return preconditionf("Update", "newPeriod %d shorter than newBudget %d", newPeriod, newBudget)
	}

	startSum := sanityStart(sc)
	defer func() { sanityEnd(sc, "Update", startSum) }()

	// Step 1: collapse to the current head alone; only slot 0 survives,
	// which is safe even if newMaxRefills shrinks the backing array.
	head := sc.headRefill()
	sc.head = 0
	sc.count = 1

	// Step 2: assign the new configuration.
	if newMaxRefills != sc.maxRefills {
		slots := make([]Refill, newMaxRefills)
		slots[0] = head
		sc.slots = slots
	} else {
		sc.slots[0] = head
	}
	sc.maxRefills = newMaxRefills
	sc.period = newPeriod
	sc.budget = newBudget

	// Step 3: a refill cannot start further in the future than necessary.
	if sc.Ready(now, wcet) {
		head.Time = now
	}

	// Step 4/5: truncate if there's more than the new budget allows,
	// otherwise schedule the missing budget one period out.
	if head.Amount >= newBudget {
		head.Amount = newBudget
		sc.slots[0] = head
		return nil
	}

	sc.slots[0] = head
	unused := newBudget - head.Amount
	used := Refill{Time: head.Time + newPeriod - unused, Amount: unused}
	sc.scheduleUsed(used, MinBudget)
	return nil
}
