package refill

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// assertInvariants checks P1-P6 directly against exported state, so these
// assertions hold regardless of the scdebug build tag.
func assertInvariants(t *testing.T, sc *SchedulingContext, msgAndArgs ...interface{}) {
	t.Helper()
	a := assert.New(t)

	rs := sc.Refills()
	a.GreaterOrEqual(len(rs), 1, "P1 non-empty") // P1
	a.LessOrEqual(sc.Size(), sc.MaxRefills(), msgAndArgs...) // P6

	var sum Ticks
	for i, r := range rs {
		a.GreaterOrEqual(r.Amount, MinBudget, "P3 min-chunk at %d", i)
		sum += r.Amount
		if i > 0 {
			prev := rs[i-1]
			a.LessOrEqual(prev.Time+prev.Amount, r.Time, "P2 ordered-disjoint at %d", i)
		}
	}
	a.Equal(sc.Budget(), sum, "P4 sum equals budget")

	head, tail := rs[0], rs[len(rs)-1]
	a.LessOrEqual(tail.Time+tail.Amount-head.Time, sc.Period(), "P5 fits in one period")
}

func withMinBudget(t *testing.T, v Ticks) {
	t.Helper()
	old := MinBudget
	MinBudget = v
	t.Cleanup(func() { MinBudget = old })
}

// Scenario 1: fresh SC.
func TestNewFreshSC(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	assert.True(t, sc.Ready(0, 5))
	assert.Equal(t, Ticks(70), sc.Capacity(30))
	assert.True(t, sc.Sufficient(30, MinBudget))
	assertInvariants(t, sc)
}

// Scenario 2: exact consume, no overrun.
func TestBudgetCheckExactConsume(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	err = sc.BudgetCheck(100, 50, 5, nil)
	require.NoError(t, err)

	rs := sc.Refills()
	require.Len(t, rs, 1)
	assert.Equal(t, Refill{Time: 1000, Amount: 100}, rs[0])

	assert.False(t, sc.Ready(50, 5))
	assert.True(t, sc.Ready(995, 5))
	assertInvariants(t, sc)
}

// Scenario 3: partial consume with viable remnant.
func TestBudgetCheckPartialViableRemnant(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	err = sc.BudgetCheck(30, 20, 5, nil)
	require.NoError(t, err)

	rs := sc.Refills()
	require.Len(t, rs, 2)
	assert.Equal(t, Refill{Time: 30, Amount: 70}, rs[0])
	assert.Equal(t, Refill{Time: 1000, Amount: 30}, rs[1])
	assertInvariants(t, sc)
}

// Scenario 4: undersized used, split from tail. Handcrafted SC matching a
// corrected worked example (MinBudget raised to 30 for this scenario only).
func TestScheduleUsedSplitsFromTail(t *testing.T) {
	withMinBudget(t, 30)

	sc := &SchedulingContext{
		period:     600,
		budget:     60,
		maxRefills: 4,
		slots:      make([]Refill, 4),
	}
	sc.slots[0] = Refill{Time: 0, Amount: 30}
	sc.slots[1] = Refill{Time: 100, Amount: 30}
	sc.count = 2

	err := sc.BudgetCheck(25, 0, 5, nil)
	require.NoError(t, err)

	rs := sc.Refills()
	require.Len(t, rs, 2)
	assert.Equal(t, Refill{Time: 95, Amount: 30}, rs[0])
	assert.Equal(t, Refill{Time: 595, Amount: 30}, rs[1])
	assertInvariants(t, sc)
}

// scheduleUsed case 3: undersized used, queue full, merge into the tail.
// Tail (100,30) absorbing used (200,5) with minBudget 10 must end up as
// (170,35) so the merged chunk still ends at used.end()=205.
func TestScheduleUsedMergesIntoFullTail(t *testing.T) {
	withMinBudget(t, 10)

	sc := &SchedulingContext{
		period:     600,
		budget:     35,
		maxRefills: 1,
		slots:      make([]Refill, 1),
	}
	sc.slots[0] = Refill{Time: 100, Amount: 30}
	sc.count = 1

	sc.scheduleUsed(Refill{Time: 200, Amount: 5}, MinBudget)

	rs := sc.Refills()
	require.Len(t, rs, 1)
	assert.Equal(t, Refill{Time: 170, Amount: 35}, rs[0])
	assertInvariants(t, sc)
}

// Scenario 5: overrun.
func TestBudgetCheckOverrun(t *testing.T) {
	withMinBudget(t, 10)

	sc := &SchedulingContext{
		period:     500,
		budget:     40,
		maxRefills: 4,
		slots:      make([]Refill, 4),
	}
	sc.slots[0] = Refill{Time: 100, Amount: 40}
	sc.count = 1

	err := sc.BudgetCheck(60, 200, 5, nil)
	require.NoError(t, err)

	rs := sc.Refills()
	require.Len(t, rs, 1)
	assert.Equal(t, Refill{Time: 660, Amount: 40}, rs[0])
	assert.False(t, sc.Ready(654, 5))
	assert.True(t, sc.Ready(655, 5))
	assertInvariants(t, sc)
}

// Scenario 6: unblock coalesce.
func TestUnblockCheckCoalesce(t *testing.T) {
	withMinBudget(t, 10)

	sc := &SchedulingContext{
		period:     1000,
		budget:     100,
		maxRefills: 4,
		slots:      make([]Refill, 4),
	}
	sc.slots[0] = Refill{Time: 0, Amount: 40}
	sc.slots[1] = Refill{Time: 50, Amount: 30}
	sc.slots[2] = Refill{Time: 90, Amount: 30}
	sc.count = 3

	reprogram := sc.UnblockCheck(200, 5, nil)
	assert.True(t, reprogram)

	rs := sc.Refills()
	require.Len(t, rs, 1)
	assert.Equal(t, Refill{Time: 205, Amount: 100}, rs[0])
	assert.True(t, sc.Ready(200, 5))
	assert.True(t, sc.Sufficient(0, MinBudget))
	assertInvariants(t, sc)
}

// Stated laws: invariants and no-op behaviors that must hold regardless of
// the specific scenario.

func TestBudgetCheckZeroIsNoOp(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	before := sc.Refills()
	require.NoError(t, sc.BudgetCheck(0, 0, 5, nil))
	assert.Equal(t, before, sc.Refills())
}

func TestBudgetCheckFullHeadRestoresBudgetSum(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	head := sc.Refills()[0]
	require.NoError(t, sc.BudgetCheck(head.Amount, 0, 5, nil))

	var sum Ticks
	for _, r := range sc.Refills() {
		sum += r.Amount
	}
	assert.Equal(t, sc.Budget(), sum)
}

func TestUpdateHoldsWindowAndSum(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	require.NoError(t, sc.Update(2000, 200, 4, 0, 5))
	assert.Equal(t, Ticks(2000), sc.Period())
	assert.Equal(t, Ticks(200), sc.Budget())
	assertInvariants(t, sc)
}

// Preconditions.

func TestNewRejectsBelowMinSCBudget(t *testing.T) {
	withMinBudget(t, 10)
	_, err := New(4, 15, 1000, 0, 0)
	require.Error(t, err)
	var pe *PreconditionError
	assert.ErrorAs(t, err, &pe)
}

func TestRoundRobinSkipsBudgetAndUnblockChecks(t *testing.T) {
	withMinBudget(t, 10)
	sc, err := New(4, 100, 1000, 0, 0)
	require.NoError(t, err)

	rr := alwaysRoundRobin{}
	before := sc.Refills()

	require.NoError(t, sc.BudgetCheck(100, 50, 5, rr))
	assert.Equal(t, before, sc.Refills())

	assert.False(t, sc.UnblockCheck(0, 5, rr))
}

type alwaysRoundRobin struct{}

func (alwaysRoundRobin) IsRoundRobin(sc *SchedulingContext) bool { return true }
