package model

type CurvePoint struct {
	Tick  int64   `json:"tick"`
	Value float64 `json:"value"`
}

// PartCurvePoint is a part-level pitch offset, independent of any note.
type PartCurvePoint struct {
	Tick int64 `json:"tick"`
	Cent int   `json:"cent"`
}

// PitchPoint carries an optional value; points without one are dropped when
// curves are merged.
type PitchPoint struct {
	Tick  int64    `json:"tick"`
	Value *float64 `json:"value"`
}

// Pitch is a sparse curve, ascending by tick, that a renderer plays back by
// linear interpolation between consecutive points.
type Pitch struct {
	Points   []PitchPoint `json:"points"`
	Relative bool         `json:"relative"`
}

func PitchFromCurve(curve []CurvePoint, relative bool) *Pitch {
	points := make([]PitchPoint, 0, len(curve))
	for _, p := range curve {
		v := p.Value
		points = append(points, PitchPoint{Tick: p.Tick, Value: &v})
	}
	return &Pitch{Points: points, Relative: relative}
}

// Curve returns the points that carry a value.
func (p *Pitch) Curve() []CurvePoint {
	if p == nil {
		return nil
	}
	res := make([]CurvePoint, 0, len(p.Points))
	for _, pt := range p.Points {
		if pt.Value != nil {
			res = append(res, CurvePoint{Tick: pt.Tick, Value: *pt.Value})
		}
	}
	return res
}

type Part struct {
	ID    string           `json:"id"`
	Notes []NoteWithPitch  `json:"notes"`
	Curve []PartCurvePoint `json:"curve"`
}

type Project struct {
	Tempo      float64 `json:"tempo"`
	Resolution int64   `json:"resolution"`
	Parts      []Part  `json:"parts"`
}

// PitchBinary is the gob form of a Pitch. gob flattens pointers and cannot
// tell a nil value from a pointer to zero, so only valued points are kept.
type PitchBinary struct {
	Points   []CurvePoint
	Relative bool
}

func (p *Pitch) Binary() PitchBinary {
	if p == nil {
		return PitchBinary{}
	}
	return PitchBinary{Points: p.Curve(), Relative: p.Relative}
}

func (b PitchBinary) Pitch() *Pitch {
	return PitchFromCurve(b.Points, b.Relative)
}
