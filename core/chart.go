package core

import (
	"math"
	"strconv"

	"github.com/huangsam/gantt/schema"
)

// Chart layout constants.
const (
	ChartTitle      = "Project Gantt Chart"
	DateAxisLabel   = "Date"
	OwnerAxisLabel  = "Owner"
	MinBarWidthDays = 0.3 // keeps same-day tasks visible
	ChartDPI        = 150

	chartWidthInches = 10.0
	rowHeightInches  = 0.5
	marginInches     = 2.0
	xPadFraction     = 0.05
	minXPadDays      = 0.5
)

// BuildChart places sorted tasks on rows and computes bar geometry and labels.
// Row i holds tasks[i]; callers pass tasks already ordered by SortTasks.
func BuildChart(tasks []schema.TaskRecord) schema.Chart {
	chart := schema.Chart{
		Title:        ChartTitle,
		XLabel:       DateAxisLabel,
		Rows:         make([]schema.ChartRow, len(tasks)),
		WidthInches:  chartWidthInches,
		HeightInches: rowHeightInches*float64(len(tasks)) + marginInches,
		DPI:          ChartDPI,
	}

	byOwner := anyOwner(tasks)
	if byOwner {
		chart.YLabel = OwnerAxisLabel
	}

	for i, t := range tasks {
		left := epochDays(t.Start)
		row := schema.ChartRow{
			Index: i,
			Task:  t,
			Left:  left,
			Width: math.Max(epochDays(t.End)-left, MinBarWidthDays),
		}
		if byOwner {
			row.TickLabel = t.Owner.String()
		} else {
			row.TickLabel = strconv.Itoa(i + 1)
		}
		chart.Rows[i] = row
	}

	chart.XMin, chart.XMax = xRange(chart.Rows)
	return chart
}

func anyOwner(tasks []schema.TaskRecord) bool {
	for _, t := range tasks {
		if t.HasOwner() {
			return true
		}
	}
	return false
}

// xRange spans every bar with a small margin on both sides.
// An empty chart shows the first day of the epoch.
func xRange(rows []schema.ChartRow) (float64, float64) {
	if len(rows) == 0 {
		return 0, 1
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, r := range rows {
		lo = math.Min(lo, r.Left)
		hi = math.Max(hi, r.Right())
	}
	pad := math.Max((hi-lo)*xPadFraction, minXPadDays)
	return lo - pad, hi + pad
}
