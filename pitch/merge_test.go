package pitch

import (
	"testing"

	"github.com/jsphweid/pitchcurve/model"
	"github.com/stretchr/testify/assert"
)

func valuePtr(v float64) *float64 {
	return &v
}

func TestMergeFromPartsWithNil(t *testing.T) {
	p := model.PitchFromCurve(pts(0, 1, 4, 2), true)

	assert := assert.New(t)
	assert.Same(p, MergeFromParts(nil, p))
	assert.Same(p, MergeFromParts(p, nil))
	assert.Nil(MergeFromParts(nil, nil))
}

func TestMergeDisjointIsSortedConcatenation(t *testing.T) {
	a := model.PitchFromCurve(pts(0, 1, 8, 2), true)
	b := model.PitchFromCurve(pts(4, 3, 12, 4), true)
	got := MergeFromParts(a, b)
	assert.Equal(t, pts(0, 1, 4, 3, 8, 2, 12, 4), got.Curve())
}

func TestMergeSumsOverlappingTicks(t *testing.T) {
	a := model.PitchFromCurve(pts(0, 1, 4, 2), true)
	b := model.PitchFromCurve(pts(4, 0.5, 8, 1), true)
	got := MergeFromParts(a, b)
	assert.Equal(t, pts(0, 1, 4, 2.5, 8, 1), got.Curve())
}

func TestMergeDropsAbsentValues(t *testing.T) {
	a := &model.Pitch{Points: []model.PitchPoint{
		{Tick: 0, Value: valuePtr(1)},
		{Tick: 4, Value: nil},
	}, Relative: true}
	b := &model.Pitch{Points: []model.PitchPoint{
		{Tick: 8, Value: nil},
	}, Relative: true}
	got := MergeFromParts(a, b)

	assert := assert.New(t)
	assert.Len(got.Points, 1)
	assert.Equal(int64(0), got.Points[0].Tick)
	assert.Equal(1.0, *got.Points[0].Value)
}

func TestMergeKeepsFirstRelativeFlag(t *testing.T) {
	a := model.PitchFromCurve(pts(0, 1), false)
	b := model.PitchFromCurve(pts(0, 1), true)
	assert.False(t, MergeFromParts(a, b).Relative)
}

func TestFromPartEmptyIsNil(t *testing.T) {
	assert.Nil(t, FromPart(model.Part{}, 120))
}

func TestFromPartCurveOnly(t *testing.T) {
	part := model.Part{Curve: []model.PartCurvePoint{{Tick: 1, Cent: 50}, {Tick: 2, Cent: 150}, {Tick: 8, Cent: -100}}}
	got := FromPart(part, 120)

	assert := assert.New(t)
	assert.True(got.Relative)
	// ticks 1 and 2 share the grid tick 0 and are averaged
	assert.Equal(pts(0, 1, 8, -1), got.Curve())
}

func TestFromPartSumsNoteAndPartCurve(t *testing.T) {
	part := model.Part{
		Notes: []model.NoteWithPitch{{
			Note: model.Note{TickOn: 0, TickOff: 100, Key: 60},
			Pitch: model.NotePitch{Points: []model.RawNotePoint{
				{X: 0, Y: 20},
				{X: 50, Y: 20},
				{X: 100, Y: 20},
			}},
		}},
		Curve: []model.PartCurvePoint{{Tick: 50, Cent: 100}},
	}
	got := FromPart(part, 120, WithTickConverter(msTicks{}), WithSamplingInterval(10))
	assert.Equal(t, pts(0, 2, 50, 3, 100, 2), got.Curve())
}

func TestFromProjectMergesParts(t *testing.T) {
	project := model.Project{
		Tempo:      120,
		Resolution: 480,
		Parts: []model.Part{
			{ID: "a", Curve: []model.PartCurvePoint{{Tick: 0, Cent: 100}, {Tick: 8, Cent: 100}}},
			{ID: "b"},
			{ID: "c", Curve: []model.PartCurvePoint{{Tick: 8, Cent: 50}}},
		},
	}
	got := FromProject(project)
	assert.Equal(t, pts(0, 1, 8, 1.5), got.Curve())
}

func TestFromProjectWithoutPartsIsNil(t *testing.T) {
	assert.Nil(t, FromProject(model.Project{Tempo: 120}))
}
