package pitch

import "github.com/jsphweid/pitchcurve/model"

// extendBoundaries makes sure the curve has a point at the note's start and
// end tick. Points are only ever added, and never at a tick already present.
func extendBoundaries(curve []model.CurvePoint, note model.Note) []model.CurvePoint {
	res := extendBoundary(curve, note.TickOn)
	return extendBoundary(res, note.TickOff)
}

func extendBoundary(curve []model.CurvePoint, tick int64) []model.CurvePoint {
	if hasTick(curve, tick) {
		return curve
	}
	return insertByTick(curve, model.CurvePoint{Tick: tick, Value: boundaryValue(curve, tick)})
}

func boundaryValue(curve []model.CurvePoint, tick int64) float64 {
	switch len(curve) {
	case 0:
		return 0
	case 1:
		return curve[0].Value
	}

	var below, above *model.CurvePoint
	for i := range curve {
		p := &curve[i]
		if p.Tick < tick && (below == nil || p.Tick >= below.Tick) {
			below = p
		}
		if p.Tick > tick && (above == nil || p.Tick < above.Tick) {
			above = p
		}
	}
	switch {
	case below == nil:
		// hold the first value backwards
		return curve[0].Value
	case above == nil:
		// back to baseline after the last point
		return 0
	}
	r := float64(tick-below.Tick) / float64(above.Tick-below.Tick)
	return below.Value + (above.Value-below.Value)*r
}

func hasTick(curve []model.CurvePoint, tick int64) bool {
	for _, p := range curve {
		if p.Tick == tick {
			return true
		}
	}
	return false
}

// insertByTick returns a new curve with p placed after every point whose tick
// is not greater than p's.
func insertByTick(curve []model.CurvePoint, p model.CurvePoint) []model.CurvePoint {
	res := make([]model.CurvePoint, 0, len(curve)+1)
	placed := false
	for _, c := range curve {
		if !placed && c.Tick > p.Tick {
			res = append(res, p)
			placed = true
		}
		res = append(res, c)
	}
	if !placed {
		res = append(res, p)
	}
	return res
}
