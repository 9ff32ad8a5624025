package scsim

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/wastore/refillsched/internal/sclog"
	"github.com/wastore/refillsched/refill"
	"github.com/wastore/refillsched/roundrobin"
	"github.com/wastore/refillsched/sctime"
)

// Driver runs a Scenario against one SchedulingContext, using a Manual
// clock so results are deterministic and a FixedSet round-robin policy so
// scenarios can exercise the early-return paths in BudgetCheck/UnblockCheck.
type Driver struct {
	ID     uuid.UUID
	SC     *refill.SchedulingContext
	Clock  *sctime.Manual
	RR     *roundrobin.FixedSet
	Logger sclog.Logger

	wcet refill.Ticks
}

// NewDriver returns a Driver with no SC yet; the scenario's first step must
// be "new".
func NewDriver(logger sclog.Logger) *Driver {
	if logger == nil {
		logger = sclog.New(sclog.LogWarning)
	}
	return &Driver{
		ID:     uuid.New(),
		Clock:  sctime.NewManual(),
		RR:     roundrobin.NewFixedSet(),
		Logger: logger,
	}
}

// Run drives d.SC through every step of sn in order, returning one
// StepResult per step. It stops at the first step whose operation returns
// an error, but still includes that step's StepResult (with Err set).
func (d *Driver) Run(sn *Scenario) ([]StepResult, error) {
	if sn.MinBudget != 0 {
		refill.MinBudget = sn.MinBudget
	}
	d.wcet = sn.WCET

	results := make([]StepResult, 0, len(sn.Steps))
	for _, step := range sn.Steps {
		res := d.runStep(step)
		results = append(results, res)
		if res.Err != nil {
			return results, fmt.Errorf("scsim: step %q: %w", step.Kind, res.Err)
		}
	}
	return results, nil
}

func (d *Driver) runStep(step Step) StepResult {
	core := refill.CoreID(step.Core)

	var err error
	var reprogram bool

	switch step.Kind {
	case StepNew:
		d.SC, err = refill.New(step.MaxRefills, step.Budget, step.Period, d.Clock.Now(core), core)
		if err == nil {
			d.RR.Mark(d.SC, step.RoundRobin)
		}

	case StepUpdate:
		err = d.checkSC()
		if err == nil {
			err = d.SC.Update(step.NewPeriod, step.NewBudget, step.NewMaxRefills, d.Clock.Now(core), d.wcet)
		}

	case StepCharge:
		err = d.checkSC()
		if err == nil {
			err = d.SC.BudgetCheck(step.Usage, d.Clock.Now(core), d.wcet, d.RR)
		}

	case StepUnblock:
		err = d.checkSC()
		if err == nil {
			reprogram = d.SC.UnblockCheck(d.Clock.Now(core), d.wcet, d.RR)
		}

	case StepAdvance:
		d.Clock.Advance(core, step.Delta)

	default:
		err = fmt.Errorf("unknown step kind %q", step.Kind)
	}

	res := StepResult{Step: step, Reprogram: reprogram, Err: err}
	if d.SC != nil {
		res.Refills = d.SC.Refills()
	}

	level := sclog.LogInfo
	if err != nil {
		level = sclog.LogError
	}
	sclog.Logf(d.Logger, level, "%s: step=%s refills=%v err=%v", d.ID, step.Kind, res.Refills, err)

	return res
}

func (d *Driver) checkSC() error {
	if d.SC == nil {
		return fmt.Errorf("no scheduling context: scenario must start with a %q step", StepNew)
	}
	return nil
}
