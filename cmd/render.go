package cmd

import (
	"github.com/huangsam/gantt/core"
	"github.com/huangsam/gantt/internal/contract"
	"github.com/spf13/cobra"
)

// renderCmd draws the Gantt chart for a tasks file.
var renderCmd = &cobra.Command{
	Use:   "render [input.csv] [output.png]",
	Short: "Render a tasks CSV file to a PNG Gantt chart.",
	Long: `Read a CSV with Task, Start and End columns (Owner is optional) and save
a Gantt chart with one bar per task.

Tasks are ordered by start date, then end date. When any task has an owner,
rows are labeled with owners; otherwise rows are numbered from 1. The date
axis is ticked on Mondays.

Nothing is written when the file is missing columns or holds a date that
cannot be parsed.

Examples:
  # Render tasks.csv to gantt.png in the current directory
  gantt render

  # Render explicit paths
  gantt render plan.csv out/plan.png

  # Record the run in the local history database
  gantt render plan.csv --history-backend sqlite`,
	Args:    cobra.MaximumNArgs(2),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteRender(rootCtx, cfg, historyManager); err != nil {
			contract.LogFatal("Cannot render chart", err)
		}
	},
}
