package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/patrislav1/coop-sched/internal/demo"
)

func runCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "run <scenario.yaml>",
		Short: "Run a scenario headlessly and print a summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := demo.LoadScenario(args[0])
			if err != nil {
				return err
			}
			log, err := demo.NewLogger(*verbose)
			if err != nil {
				return fmt.Errorf("kernelsim: building logger: %w", err)
			}
			defer log.Sync()

			run := demo.NewRun(s, log)
			for {
				more, err := run.Step()
				if err != nil {
					return err
				}
				if !more {
					break
				}
			}
			result := run.Snapshot()

			names := make([]string, 0, len(result.TaskRuns))
			for name := range result.TaskRuns {
				names = append(names, name)
			}
			sort.Strings(names)

			fmt.Printf("scenario %q: %d task(s), finished=%v\n", s.Name, len(names), result.Finished)
			for _, name := range names {
				line := fmt.Sprintf("  %-16s runs=%d", name, result.TaskRuns[name])
				if s.Watermark {
					line += fmt.Sprintf(" watermark=%d", result.TaskWatermark[name])
				}
				if *verbose {
					if snap, err := run.SnapshotHex(name); err == nil {
						line += fmt.Sprintf(" snapshot=%s", snap)
					}
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}
