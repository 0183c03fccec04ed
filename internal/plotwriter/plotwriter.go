// Package plotwriter draws charts as PNG images.
package plotwriter

import (
	"fmt"
	"math"

	"github.com/google/renameio/v2"
	"github.com/huangsam/gantt/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// WritePNG draws the chart and saves it to path, replacing any existing file.
// The image is staged in a pending file next to path and renamed into place,
// so a failed write never leaves a partial image behind.
func WritePNG(chart schema.Chart, path string) error {
	canvas := drawChart(chart)

	pf, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return err
	}
	defer func() { _ = pf.Cleanup() }()

	if _, err := (vgimg.PngCanvas{Canvas: canvas}).WriteTo(pf); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return pf.CloseAtomicallyReplace()
}

// drawChart renders onto a fresh canvas owned by this call.
func drawChart(chart schema.Chart) *vgimg.Canvas {
	p, _ := newPlot(chart)
	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(chart.WidthInches)*vg.Inch, vg.Length(chart.HeightInches)*vg.Inch),
		vgimg.UseDPI(chart.DPI),
	)
	p.Draw(draw.New(c))
	return c
}

func newPlot(chart schema.Chart) (*plot.Plot, *ganttBars) {
	p := plot.New()
	p.Title.Text = chart.Title
	p.X.Label.Text = chart.XLabel
	p.Y.Label.Text = chart.YLabel

	bars := &ganttBars{rows: chart.Rows}
	p.Add(bars)

	p.X.Min, p.X.Max = chart.XMin, chart.XMax
	p.X.Tick.Marker = mondayTicks{}
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.X.Tick.Label.YAlign = draw.YTop

	_, _, ymin, ymax := bars.DataRange()
	p.Y.Min, p.Y.Max = ymin, ymax
	p.Y.Scale = plot.InvertedScale{Normalizer: plot.LinearScale{}}
	p.Y.Tick.Marker = rowTicks(chart.Rows)

	return p, bars
}

// rowTicks labels each row position, first row at the top.
func rowTicks(rows []schema.ChartRow) plot.ConstantTicks {
	ticks := make(plot.ConstantTicks, len(rows))
	for i, r := range rows {
		ticks[i] = plot.Tick{Value: float64(r.Index), Label: r.TickLabel}
	}
	return ticks
}
