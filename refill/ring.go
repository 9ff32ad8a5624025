package refill

// idx translates an occupied-arc offset (0 = head) into a slot index,
// wrapping modulo maxRefills. Conditional subtract instead of %, since
// maxRefills is not known to be a power of two.
func (sc *SchedulingContext) idx(offset int) int {
	i := sc.head + offset
	if n := sc.maxRefills; i >= n {
		i -= n
	}
	return i
}

// nextIndex advances a raw slot index by one slot, wrapping.
func (sc *SchedulingContext) nextIndex(i int) int {
	i++
	if i >= sc.maxRefills {
		i = 0
	}
	return i
}

// tailIndex is the slot index of the last valid refill. Requires count > 0.
func (sc *SchedulingContext) tailIndex() int {
	return sc.idx(sc.count - 1)
}

// headRefill reads the front refill. Requires count > 0.
func (sc *SchedulingContext) headRefill() Refill {
	return sc.slots[sc.head]
}

// tailRefill reads the back refill. Requires count > 0.
func (sc *SchedulingContext) tailRefill() Refill {
	return sc.slots[sc.tailIndex()]
}

// setHead overwrites the front refill in place. Requires count > 0.
func (sc *SchedulingContext) setHead(r Refill) {
	sc.slots[sc.head] = r
}

// setTail overwrites the back refill in place. Requires count > 0.
func (sc *SchedulingContext) setTail(r Refill) {
	sc.slots[sc.tailIndex()] = r
}

// popHead removes and returns the front refill. Requires count > 0.
func (sc *SchedulingContext) popHead() Refill {
	r := sc.slots[sc.head]
	sc.head = sc.nextIndex(sc.head)
	sc.count--
	return r
}

// pushTail appends r as the new tail. Requires count < maxRefills.
func (sc *SchedulingContext) pushTail(r Refill) {
	var at int
	if sc.count == 0 {
		at = sc.head
	} else {
		at = sc.nextIndex(sc.tailIndex())
	}
	sc.slots[at] = r
	sc.count++
}

// Full reports whether the queue has no spare slot for another refill.
func (sc *SchedulingContext) Full() bool {
	return sc.count == sc.maxRefills
}

// Empty reports whether the queue currently holds no refill. This is only
// ever transiently true, mid-call, inside BudgetCheck.
func (sc *SchedulingContext) Empty() bool {
	return sc.count == 0
}

// Size returns the number of valid refills currently queued.
func (sc *SchedulingContext) Size() int {
	return sc.count
}
