package refill

// UnblockCheck is called when the thread bound to sc transitions from
// blocked to eligible. If the head is already Ready, it slides the head
// refill forward to now+wcet and coalesces any refills that have become
// contiguous as a result, so that after the call both Ready and
// Sufficient(0) hold. If the head is not yet Ready, or the SC is
// round-robin (consistent with BudgetCheck), it changes nothing and
// returns false.
//
// The returned bool tells the caller whether the next timer interrupt
// needs reprogramming, because the head's eligibility moved.
func (sc *SchedulingContext) UnblockCheck(now, wcet Ticks, rr RoundRobinPolicy) bool {
	if rr != nil && rr.IsRoundRobin(sc) {
		return false
	}
	if !sc.Ready(now, wcet) {
		return false
	}

	startSum := sanityStart(sc)
	defer func() { sanityEnd(sc, "UnblockCheck", startSum) }()

	head := sc.headRefill()
	head.Time = now + wcet
	sc.setHead(head)

	for sc.count > 1 {
		oldHead := sc.headRefill()
		next := sc.slots[sc.idx(1)]
		if next.Time > oldHead.end() {
			break
		}
		sc.popHead()
		newHead := sc.headRefill() // == next, now promoted to head
		newHead.Amount += oldHead.Amount
		newHead.Time = now + wcet
		sc.setHead(newHead)
	}

	return true
}
