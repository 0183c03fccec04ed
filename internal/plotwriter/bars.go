package plotwriter

import (
	"image/color"

	"github.com/huangsam/gantt/schema"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

const (
	barThickness = 0.8 // fraction of one row
	labelPad     = vg.Length(3)
)

var barColor = color.RGBA{R: 31, G: 119, B: 180, A: 255}

// ganttBars draws one horizontal bar per chart row with the task name beside its start.
type ganttBars struct {
	rows []schema.ChartRow
}

var (
	_ plot.Plotter    = (*ganttBars)(nil)
	_ plot.DataRanger = (*ganttBars)(nil)
)

// Plot implements plot.Plotter.
func (g *ganttBars) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)

	sty := plt.Y.Tick.Label
	sty.Rotation = 0
	sty.XAlign = draw.XLeft
	sty.YAlign = draw.YCenter

	half := barThickness / 2
	for _, r := range g.rows {
		y := float64(r.Index)
		x0, x1 := trX(r.Left), trX(r.Right())
		y0, y1 := trY(y-half), trY(y+half)

		bar := c.ClipPolygonXY([]vg.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
		c.FillPolygon(barColor, bar)

		pt := vg.Point{X: x0 + labelPad, Y: trY(y)}
		if c.Contains(pt) {
			c.FillText(sty, pt, r.Task.Name)
		}
	}
}

// DataRange implements plot.DataRanger.
func (g *ganttBars) DataRange() (xmin, xmax, ymin, ymax float64) {
	if len(g.rows) == 0 {
		return 0, 1, -0.5, 0.5
	}
	xmin, xmax = g.rows[0].Left, g.rows[0].Right()
	for _, r := range g.rows[1:] {
		xmin = min(xmin, r.Left)
		xmax = max(xmax, r.Right())
	}
	return xmin, xmax, -0.5, float64(len(g.rows)) - 0.5
}
