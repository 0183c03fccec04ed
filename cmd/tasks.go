package cmd

import (
	"github.com/huangsam/gantt/core"
	"github.com/huangsam/gantt/internal/contract"
	"github.com/spf13/cobra"
)

// tasksCmd lists the tasks in the order they are drawn.
var tasksCmd = &cobra.Command{
	Use:   "tasks [input.csv]",
	Short: "List tasks in chart order without drawing.",
	Long: `Load and validate a tasks CSV the same way render does, then print
each task with its row, dates, span in days and owner.

Spans are labeled:
  Same day  start and end fall on the same date (drawn at minimum width)
  Negative  end is before start (drawn at minimum width)
  Normal    everything else

Examples:
  # Check a file before rendering it
  gantt tasks plan.csv

  # Export the sorted tasks for another tool
  gantt tasks plan.csv --output json --output-file tasks.json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTasks(rootCtx, cfg); err != nil {
			contract.LogFatal("Cannot list tasks", err)
		}
	},
}
