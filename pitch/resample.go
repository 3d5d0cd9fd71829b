package pitch

import (
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/util"
)

// Resample moves every point onto the interval grid, rounding ticks down, and
// averages the values that land on the same grid tick. The result is sorted
// by tick. Resampling a resampled curve at the same interval is a no-op.
func Resample(curve []model.CurvePoint, interval int64) []model.CurvePoint {
	if interval <= 0 {
		interval = 1
	}
	sums := make(map[int64]float64)
	counts := make(map[int64]int)
	for _, p := range curve {
		tick := util.FloorDiv(p.Tick, interval) * interval
		sums[tick] += p.Value
		counts[tick]++
	}

	res := make([]model.CurvePoint, 0, len(sums))
	for _, tick := range util.GetSortedKeys(sums) {
		res = append(res, model.CurvePoint{Tick: tick, Value: sums[tick] / float64(counts[tick])})
	}
	return res
}
