package pitch

import (
	"github.com/jsphweid/pitchcurve/model"
	"github.com/jsphweid/pitchcurve/util"
)

// FromPart builds the relative pitch curve of one part: every note curve and
// the part-level curve, resampled and summed tick by tick. It returns nil when
// the part has neither notes nor curve points.
func FromPart(part model.Part, tempo float64, opts ...Option) *model.Pitch {
	cfg := ApplyOptions(opts...)
	b := noteCurveBuilder{cfg: cfg, tempo: tempo}

	curves := make([][]model.CurvePoint, 0, len(part.Notes)+1)
	var prev *model.Note
	for i := range part.Notes {
		curves = append(curves, b.build(part.Notes[i], prev))
		prev = &part.Notes[i].Note
	}
	curves = append(curves, Resample(partCurve(part.Curve), cfg.SamplingInterval))

	merged := sumByTick(curves...)
	if len(merged) == 0 {
		return nil
	}
	return model.PitchFromCurve(merged, true)
}

// MergeFromParts sums two part curves tick by tick. A nil argument yields the
// other one unchanged. Both must agree on Relative; the first one's flag is
// kept.
func MergeFromParts(first, second *model.Pitch) *model.Pitch {
	if first == nil {
		return second
	}
	if second == nil {
		return first
	}
	merged := sumByTick(first.Curve(), second.Curve())
	return model.PitchFromCurve(merged, first.Relative)
}

// FromProject merges the curves of all parts in the project.
func FromProject(project model.Project, opts ...Option) *model.Pitch {
	if project.Resolution > 0 {
		opts = append([]Option{WithResolution(project.Resolution)}, opts...)
	}
	var res *model.Pitch
	for _, part := range project.Parts {
		res = MergeFromParts(res, FromPart(part, project.Tempo, opts...))
	}
	return res
}

func partCurve(points []model.PartCurvePoint) []model.CurvePoint {
	res := make([]model.CurvePoint, 0, len(points))
	for _, p := range points {
		res = append(res, model.CurvePoint{Tick: p.Tick, Value: float64(p.Cent) / 100})
	}
	return res
}

func sumByTick(curves ...[]model.CurvePoint) []model.CurvePoint {
	sums := make(map[int64]float64)
	for _, curve := range curves {
		for _, p := range curve {
			sums[p.Tick] += p.Value
		}
	}
	res := make([]model.CurvePoint, 0, len(sums))
	for _, tick := range util.GetSortedKeys(sums) {
		res = append(res, model.CurvePoint{Tick: tick, Value: sums[tick]})
	}
	return res
}
