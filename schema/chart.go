package schema

// ChartRow is a TaskRecord placed at a vertical position after sorting.
// Left and Width are expressed in days since the Unix epoch.
type ChartRow struct {
	Index     int
	Task      TaskRecord
	Left      float64
	Width     float64
	TickLabel string
}

// Right returns the x coordinate of the bar's end.
func (r ChartRow) Right() float64 {
	return r.Left + r.Width
}

// Chart is the complete drawable description of one Gantt chart.
// Rows are in render order; row 0 is drawn at the top.
type Chart struct {
	Title        string
	XLabel       string
	YLabel       string // empty when rows are numbered
	Rows         []ChartRow
	XMin         float64 // days since the Unix epoch
	XMax         float64
	WidthInches  float64
	HeightInches float64
	DPI          int
}

// BarCount returns the number of bars the chart draws.
func (c Chart) BarCount() int {
	return len(c.Rows)
}

// TickLabels returns the vertical tick labels in render order.
func (c Chart) TickLabels() []string {
	labels := make([]string, len(c.Rows))
	for i, r := range c.Rows {
		labels[i] = r.TickLabel
	}
	return labels
}

// OwnerLabeled reports whether rows are labelled by owner instead of by number.
func (c Chart) OwnerLabeled() bool {
	return c.YLabel != ""
}

// PixelSize returns the raster dimensions the chart is saved at.
func (c Chart) PixelSize() (width, height int) {
	return int(c.WidthInches * float64(c.DPI)), int(c.HeightInches * float64(c.DPI))
}
