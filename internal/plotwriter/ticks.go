package plotwriter

import (
	"math"
	"time"

	"github.com/huangsam/gantt/schema"
	"gonum.org/v1/plot"
)

// maxTicks bounds the number of labeled ticks on the date axis.
const maxTicks = 1000

// mondayTicks places a labeled major tick on every Monday in range.
// Axis values are days since the Unix epoch. When the range holds more
// than maxTicks Mondays, only every k-th Monday is kept.
type mondayTicks struct{}

var _ plot.Ticker = mondayTicks{}

// Ticks implements plot.Ticker.
func (mondayTicks) Ticks(lo, hi float64) []plot.Tick {
	first := firstMonday(lo)
	if float64(first) > hi {
		return nil
	}
	mondays := int64(math.Floor((hi-float64(first))/7)) + 1
	step := int64(7)
	if mondays > maxTicks {
		step *= (mondays + maxTicks - 1) / maxTicks
	}

	var ticks []plot.Tick
	for d := first; float64(d) <= hi; d += step {
		ticks = append(ticks, plot.Tick{Value: float64(d), Label: dayLabel(d)})
	}
	return ticks
}

// firstMonday returns the first Monday on or after day x.
// 1970-01-01 was a Thursday, so Mondays are days congruent to 4 mod 7.
func firstMonday(x float64) int64 {
	d := int64(math.Ceil(x))
	offset := (4 - d%7 + 7) % 7
	return d + offset
}

func dayLabel(d int64) string {
	return time.Unix(d*schema.SecondsPerDay, 0).UTC().Format(schema.DateLayout)
}
