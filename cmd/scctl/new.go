package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/wastore/refillsched/refill"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Print a freshly initialised scheduling context as YAML",
	RunE:  runNew,
}

var (
	newMaxRefills int
	newBudget     uint64
	newPeriod     uint64
)

func init() {
	newCmd.Flags().IntVar(&newMaxRefills, "max-refills", 4, "capacity of the refill slot array")
	newCmd.Flags().Uint64Var(&newBudget, "budget", 100, "total eligible execution per window, in ticks")
	newCmd.Flags().Uint64Var(&newPeriod, "period", 1000, "sliding-window length, in ticks")
	rootCmd.AddCommand(newCmd)
}

func runNew(cmd *cobra.Command, args []string) error {
	refill.MinBudget = minBudget

	sc, err := refill.New(newMaxRefills, newBudget, newPeriod, 0, 0)
	if err != nil {
		return err
	}

	out, err := yaml.Marshal(struct {
		Period     refill.Ticks   `yaml:"period"`
		Budget     refill.Ticks   `yaml:"budget"`
		MaxRefills int            `yaml:"max_refills"`
		Refills    []refill.Refill `yaml:"refills"`
	}{sc.Period(), sc.Budget(), sc.MaxRefills(), sc.Refills()})
	if err != nil {
		return err
	}

	fmt.Print(string(out))
	return nil
}
