package pitch

import (
	"github.com/jsphweid/pitchcurve/interp"
	"github.com/jsphweid/pitchcurve/model"
)

type noteCurveBuilder struct {
	cfg   Config
	tempo float64
}

// build returns the resampled curve of one note. prev is the note before it
// in the part, or nil.
func (b noteCurveBuilder) build(n model.NoteWithPitch, prev *model.Note) []model.CurvePoint {
	curve := b.rawCurve(n, prev)
	curve = extendBoundaries(curve, n.Note)

	before, inside, after := partition(curve, n.Note)
	inside = b.cfg.Vibrato.Apply(inside, n.Pitch.Vibrato, n.Note, b.tempo, b.cfg.SamplingInterval)

	joined := make([]model.CurvePoint, 0, len(before)+len(inside)+len(after))
	joined = append(joined, before...)
	joined = append(joined, inside...)
	joined = append(joined, after...)
	return Resample(joined, b.cfg.SamplingInterval)
}

// rawCurve maps the authored points into tick/semitone space and fills the
// gaps between points whose values differ.
func (b noteCurveBuilder) rawCurve(n model.NoteWithPitch, prev *model.Note) []model.CurvePoint {
	var curve []model.CurvePoint
	shape := model.ShapeEaseInOut
	for _, raw := range n.Pitch.Points {
		x := n.TickOn + b.cfg.Ticks.TicksFromMs(raw.X, b.tempo)
		p := model.CurvePoint{
			Tick:  x,
			Value: raw.Y/10 - float64(portamentoBaseKey(n.Note, prev, x)),
		}
		if len(curve) > 0 {
			last := curve[len(curve)-1]
			if last.Value != p.Value && last.Tick < p.Tick {
				segment := interp.Interpolate(last, p, shape, b.cfg.SamplingInterval)
				curve = append(curve, segment[1:]...)
				shape = raw.Shape
				continue
			}
		}
		curve = append(curve, p)
		shape = raw.Shape
	}
	return curve
}

// portamentoBaseKey is the key offset to the previous note while tick is
// still inside that note.
func portamentoBaseKey(n model.Note, prev *model.Note, tick int64) int {
	if prev != nil && tick < prev.TickOff {
		return prev.Key - n.Key
	}
	return 0
}

func partition(curve []model.CurvePoint, n model.Note) (before, inside, after []model.CurvePoint) {
	for _, p := range curve {
		switch {
		case p.Tick < n.TickOn:
			before = append(before, p)
		case p.Tick > n.TickOff:
			after = append(after, p)
		default:
			inside = append(inside, p)
		}
	}
	return before, inside, after
}
