//go:build scdebug

package refill

import "fmt"

// sanitySum computes Σ r[i].Amount over the occupied arc.
func sanitySum(sc *SchedulingContext) Ticks {
	var sum Ticks
	for i := 0; i < sc.count; i++ {
		sum += sc.slots[sc.idx(i)].Amount
	}
	return sum
}

// sanityStart is SANITY_START: snapshot the refill sum at entry.
func sanityStart(sc *SchedulingContext) Ticks {
	return sanitySum(sc)
}

// sanityEnd is SANITY_END: verify all invariants hold, and that the sum is
// unchanged from entry or (the Update case) now equals the new budget.
func sanityEnd(sc *SchedulingContext, op string, startSum Ticks) {
	if err := checkInvariants(sc); err != nil {
		panic(fmt.Sprintf("refill: %s left SC in an invalid state: %v", op, err))
	}
	if endSum := sanitySum(sc); endSum != startSum && endSum != sc.budget {
		panic(fmt.Sprintf("refill: %s changed refill sum from %d to %d (budget %d)", op, startSum, endSum, sc.budget))
	}
}

// checkInvariants verifies the queue's structural invariants against the
// current state.
// Skipped while the queue is transiently empty (count == 0), which only
// ever happens mid-BudgetCheck, never at a public-operation boundary.
func checkInvariants(sc *SchedulingContext) error {
	if sc.count == 0 {
		return nil
	}
	if sc.count > sc.maxRefills {
		return fmt.Errorf("count %d exceeds maxRefills %d", sc.count, sc.maxRefills)
	}

	var sum Ticks
	var havePrev bool
	var prevEnd Ticks
	for i := 0; i < sc.count; i++ {
		r := sc.slots[sc.idx(i)]
		if r.Amount < MinBudget {
			return fmt.Errorf("refill %d amount %d below MinBudget %d", i, r.Amount, MinBudget)
		}
		if havePrev && prevEnd > r.Time {
			return fmt.Errorf("refill %d overlaps previous (prev end %d > next start %d)", i, prevEnd, r.Time)
		}
		sum += r.Amount
		prevEnd = r.end()
		havePrev = true
	}
	if sum != sc.budget {
		return fmt.Errorf("sum %d != budget %d", sum, sc.budget)
	}

	head := sc.headRefill()
	tail := sc.tailRefill()
	if span := tail.end() - head.Time; span > sc.period {
		return fmt.Errorf("span %d exceeds period %d", span, sc.period)
	}
	return nil
}
