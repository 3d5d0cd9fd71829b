// Package vibrato superimposes a note's vibrato on its pitch curve.
package vibrato

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-vecmath"
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/timing"
)

// Overlay applies sine vibrato to the tail of a note. The vibrato covers the
// last Length% of the note, fades in over In% and out over Out% of its own
// length, and is offset by Drift% of its depth.
type Overlay struct {
	Ticks timing.Converter
}

func NewOverlay(resolution int64) Overlay {
	return Overlay{Ticks: timing.NewConverter(resolution)}
}

// Active reports whether params produce any oscillation.
func Active(params model.VibratoParams) bool {
	return params.Length > 0 && params.Period > 0 && params.Depth != 0
}

// Apply returns points with vibrato added between the vibrato start and
// note.TickOff. New samples are placed on the interval grid. Values at
// exactly note.TickOn and note.TickOff are left as they are.
func (o Overlay) Apply(points []model.CurvePoint, params model.VibratoParams, note model.Note, tempo float64, interval int64) []model.CurvePoint {
	res := append([]model.CurvePoint(nil), points...)
	if !Active(params) || len(points) == 0 || note.TickOff <= note.TickOn || interval <= 0 {
		return res
	}

	length := math.Min(params.Length, 100) / 100
	start := note.TickOff - int64(math.Round(float64(note.TickOff-note.TickOn)*length))
	ticks := sampleTicks(points, start, note.TickOff, interval)
	if len(ticks) == 0 {
		return res
	}

	vibMs := o.Ticks.MsFromTicks(note.TickOff-start, tempo)
	inMs := vibMs * clampPercent(params.In) / 100
	outMs := vibMs * clampPercent(params.Out) / 100

	base := make([]float64, len(ticks))
	osc := make([]float64, len(ticks))
	env := make([]float64, len(ticks))
	for i, tick := range ticks {
		base[i] = valueAt(points, tick)
		if tick == note.TickOn {
			continue
		}
		posMs := o.Ticks.MsFromTicks(tick-start, tempo)
		phase := posMs/params.Period + params.Shift/100
		osc[i] = math.Sin(2*math.Pi*phase) + params.Drift/100
		env[i] = envelope(posMs, vibMs, inMs, outMs)
	}
	vecmath.MulBlockInPlace(osc, env)
	vecmath.ScaleBlock(osc, osc, params.Depth/100)
	vecmath.AddBlockInPlace(base, osc)

	out := make([]model.CurvePoint, 0, len(points)+len(ticks))
	for _, p := range points {
		if p.Tick < start {
			out = append(out, p)
		}
	}
	for i, tick := range ticks {
		out = append(out, model.CurvePoint{Tick: tick, Value: base[i]})
	}
	for _, p := range points {
		if p.Tick >= note.TickOff {
			out = append(out, p)
		}
	}
	return out
}

// sampleTicks collects the distinct ticks in [start, end) that receive
// vibrato: start itself, the interval grid and every existing point.
func sampleTicks(points []model.CurvePoint, start, end, interval int64) []int64 {
	seen := map[int64]bool{}
	var ticks []int64
	add := func(tick int64) {
		if tick < start || tick >= end || seen[tick] {
			return
		}
		seen[tick] = true
		ticks = append(ticks, tick)
	}
	add(start)
	first := start - floorMod(start, interval) + interval
	for tick := first; tick < end; tick += interval {
		add(tick)
	}
	for _, p := range points {
		add(p.Tick)
	}
	sort.Slice(ticks, func(i, j int) bool {
		return ticks[i] < ticks[j]
	})
	return ticks
}

func envelope(pos, length, in, out float64) float64 {
	e := 1.0
	if in > 0 && pos < in {
		e = pos / in
	}
	if rest := length - pos; out > 0 && rest < out {
		e = math.Min(e, rest/out)
	}
	return math.Max(e, 0)
}

// valueAt linearly interpolates the ascending curve at tick, holding the end
// values outside its range.
func valueAt(points []model.CurvePoint, tick int64) float64 {
	i := sort.Search(len(points), func(i int) bool {
		return points[i].Tick >= tick
	})
	switch {
	case i == len(points):
		return points[len(points)-1].Value
	case points[i].Tick == tick || i == 0:
		return points[i].Value
	}
	a, b := points[i-1], points[i]
	r := float64(tick-a.Tick) / float64(b.Tick-a.Tick)
	return a.Value + (b.Value-a.Value)*r
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(v, 100))
}

func floorMod(a, b int64) int64 {
	m := a % b
	if m < 0 {
		m += b
	}
	return m
}
