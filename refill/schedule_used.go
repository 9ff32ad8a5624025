package refill

// scheduleUsed appends a "just consumed" refill to the tail, preserving
// every queue invariant. The caller guarantees used is disjoint from the
// current tail: used.Time >= tail.Time+tail.Amount (or the queue is empty).
//
// Four cases, checked in this order — order matters, splitting (case 2) is
// preferred to merging (case 3) whenever both are feasible, since smaller
// refills maximise the chance the thread becomes dispatchable sooner:
//
//  1. queue empty: push as the sole refill.
//  2. used is undersized, there's a spare slot, and the tail can spare
//     enough to bring used up to minBudget: split — move remainder ticks
//     off the end of the tail onto the front of used.
//  3. used is undersized, or the queue is full: merge used into the tail.
//  4. otherwise: push used as a new tail.
func (sc *SchedulingContext) scheduleUsed(used Refill, minBudget Ticks) {
	if sc.count == 0 {
		sc.pushTail(used)
		return
	}

	tail := sc.tailRefill()

	if used.Amount < minBudget && !sc.Full() && tail.Amount+used.Amount >= 2*minBudget {
		remainder := minBudget - used.Amount
		used.Time -= remainder
		used.Amount += remainder
		tail.Amount -= remainder
		sc.setTail(tail)
		sc.pushTail(used)
		return
	}

	if used.Amount < minBudget || sc.Full() {
		tail.Time = used.Time - tail.Amount
		tail.Amount += used.Amount
		sc.setTail(tail)
		return
	}

	sc.pushTail(used)
}
