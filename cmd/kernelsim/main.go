// Command kernelsim runs coop-sched scenarios on the portable simulated
// backend, for development and demonstration on a host that is not the
// target microcontroller.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:   "kernelsim",
		Short: "Run coop-sched scenarios on the simulated backend",
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level logging")

	root.AddCommand(runCmd(&verbose))
	root.AddCommand(watchCmd(&verbose))
	return root
}
