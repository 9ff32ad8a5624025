// Package main implements scctl, a small CLI for exercising the sporadic
// server refill engine (package refill) outside of a kernel: creating a
// fresh scheduling context, replaying a scenario file step by step, or
// running several simulated cores concurrently. None of this is part of
// the engine itself — it exists to make the otherwise kernel-internal
// algorithm runnable and inspectable.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	verboseFlag bool
	minBudget   uint64
)

var rootCmd = &cobra.Command{
	Use:   "scctl",
	Short: "Inspect and drive the sporadic-server refill engine",
	Long: "scctl creates, reconfigures, and steps scheduling contexts built on\n" +
		"package refill, for manual exploration and regression fixtures.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "log every step, not just errors")
	rootCmd.PersistentFlags().Uint64Var(&minBudget, "min-budget", 10, "override refill.MinBudget for this invocation")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
