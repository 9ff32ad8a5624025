// Package scsim drives package refill from declarative YAML scenarios: one
// SC configuration plus an ordered list of operations. It exists purely to
// give the otherwise kernel-internal engine a runnable, inspectable surface
// for tests and the scctl CLI — it is not part of the engine itself.
package scsim

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wastore/refillsched/refill"
)

// StepKind names one scenario step.
type StepKind string

const (
	StepNew     StepKind = "new"
	StepUpdate  StepKind = "update"
	StepCharge  StepKind = "charge"
	StepUnblock StepKind = "unblock"
	StepAdvance StepKind = "advance-clock"
)

// Step is one operation in a Scenario. Only the fields relevant to Kind are
// read; the rest are ignored, matching this codebase's tolerant YAML-struct
// style elsewhere in its config loading.
type Step struct {
	Kind StepKind `yaml:"kind"`
	Core int      `yaml:"core,omitempty"`

	MaxRefills int    `yaml:"max_refills,omitempty"`
	Budget     uint64 `yaml:"budget,omitempty"`
	Period     uint64 `yaml:"period,omitempty"`

	NewMaxRefills int    `yaml:"new_max_refills,omitempty"`
	NewBudget     uint64 `yaml:"new_budget,omitempty"`
	NewPeriod     uint64 `yaml:"new_period,omitempty"`

	Usage uint64 `yaml:"usage,omitempty"`
	Delta uint64 `yaml:"delta,omitempty"`

	RoundRobin bool `yaml:"round_robin,omitempty"`
}

// Scenario is one SC's lifecycle, as loaded from YAML.
type Scenario struct {
	Name      string `yaml:"name"`
	WCET      uint64 `yaml:"wcet"`
	MinBudget uint64 `yaml:"min_budget"`
	Steps     []Step `yaml:"steps"`
}

// Load parses a Scenario from r.
func Load(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("scsim: decoding scenario: %w", err)
	}
	return &sc, nil
}

// LoadFile reads and parses a Scenario from path.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scsim: opening scenario: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// StepResult captures the queue state (or error) after one step, for
// snapshot tests and the scctl run subcommand.
type StepResult struct {
	Step      Step
	Refills   []refill.Refill
	Reprogram bool
	Err       error
}
