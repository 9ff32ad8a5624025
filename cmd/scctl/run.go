package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wastore/refillsched/internal/sclog"
	"github.com/wastore/refillsched/refill"
	"github.com/wastore/refillsched/scsim"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario.yaml>",
	Short: "Replay a scenario, printing the refill queue after every step",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <scenario.yaml>",
	Short: "Replay a scenario, printing only its final state",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(inspectCmd)
}

func drive(path string) (*scsim.Driver, []scsim.StepResult, error) {
	refill.MinBudget = minBudget

	sn, err := scsim.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	level := sclog.LogWarning
	if verboseFlag {
		level = sclog.LogDebug
	}
	d := scsim.NewDriver(sclog.New(level))

	results, err := d.Run(sn)
	return d, results, err
}

func runRun(cmd *cobra.Command, args []string) error {
	_, results, err := drive(args[0])
	for _, r := range results {
		fmt.Printf("%-14s refills=%v reprogram=%v\n", r.Step.Kind, r.Refills, r.Reprogram)
	}
	return err
}

func runInspect(cmd *cobra.Command, args []string) error {
	_, results, err := drive(args[0])
	if len(results) > 0 {
		last := results[len(results)-1]
		fmt.Printf("final: refills=%v reprogram=%v\n", last.Refills, last.Reprogram)
	}
	return err
}
