package refill

// Capacity returns the budget remaining in the head refill if usage ticks
// were charged to it. Never negative.
func (sc *SchedulingContext) Capacity(usage Ticks) Ticks {
	head := sc.headRefill()
	if usage >= head.Amount {
		return 0
	}
	return head.Amount - usage
}

// Sufficient reports whether, after charging usage ticks, the head would
// still have at least minBudget remaining — enough to enter and exit the
// kernel once more.
func (sc *SchedulingContext) Sufficient(usage, minBudget Ticks) bool {
	return sc.Capacity(usage) >= minBudget
}

// Ready reports whether the head refill is eligible to start, with one
// wcet of slack so a thread can actually enter the kernel before its
// refill begins.
func (sc *SchedulingContext) Ready(now Ticks, wcet Ticks) bool {
	return sc.headRefill().Time <= now+wcet
}

// Active reports whether the SC has been initialised by New.
func (sc *SchedulingContext) Active() bool {
	return sc.maxRefills > 0
}
