package vibrato

import (
	"math"
	"testing"

	"github.com/jsphweid/pitchcurve/model"
	"github.com/stretchr/testify/assert"
)

var note = model.Note{TickOn: 0, TickOff: 960, Key: 60}

func flat(value float64) []model.CurvePoint {
	return []model.CurvePoint{{Tick: 0, Value: value}, {Tick: 960, Value: value}}
}

func TestInactiveParamsReturnInput(t *testing.T) {
	o := NewOverlay(480)
	for _, params := range []model.VibratoParams{
		{},
		{Length: 50, Period: 100},
		{Length: 50, Depth: 20},
		{Period: 100, Depth: 20},
	} {
		assert.Equal(t, flat(1), o.Apply(flat(1), params, note, 120, 4))
	}
}

func TestBoundaryValuesUnchanged(t *testing.T) {
	o := NewOverlay(480)
	params := model.VibratoParams{Length: 100, Period: 90, Depth: 80, Shift: 25}
	got := o.Apply(flat(0.5), params, note, 120, 4)

	assert := assert.New(t)
	assert.Equal(model.CurvePoint{Tick: 0, Value: 0.5}, got[0])
	assert.Equal(model.CurvePoint{Tick: 960, Value: 0.5}, got[len(got)-1])
}

func TestVibratoOnlyCoversTail(t *testing.T) {
	o := NewOverlay(480)
	params := model.VibratoParams{Length: 25, Period: 100, Depth: 50}
	got := o.Apply(flat(0), params, note, 120, 4)

	// the last quarter of a 960 tick note starts at 720
	for _, p := range got {
		if p.Tick > 0 && p.Tick < 720 {
			t.Fatalf("unexpected sample at tick %d", p.Tick)
		}
	}
	var moved bool
	for _, p := range got {
		if p.Tick > 720 && p.Tick < 960 && p.Value != 0 {
			moved = true
		}
	}
	assert.True(t, moved)
}

func TestDepthBoundsAndGrid(t *testing.T) {
	o := NewOverlay(480)
	params := model.VibratoParams{Length: 100, Period: 80, Depth: 60, In: 10, Out: 10}
	got := o.Apply(flat(2), params, note, 120, 4)

	for i, p := range got {
		if math.Abs(p.Value-2) > 0.6+1e-9 {
			t.Fatalf("value %v at tick %d exceeds depth", p.Value, p.Tick)
		}
		if p.Tick%4 != 0 {
			t.Fatalf("tick %d is off the grid", p.Tick)
		}
		if i > 0 && p.Tick <= got[i-1].Tick {
			t.Fatalf("ticks not strictly ascending at %d", i)
		}
	}
	assert.Len(t, got, 960/4+1)
}

func TestFadeInStartsFromBase(t *testing.T) {
	o := NewOverlay(480)
	params := model.VibratoParams{Length: 50, Period: 100, Depth: 100, In: 50, Shift: 25}
	got := o.Apply(flat(0), params, note, 120, 4)

	// vibrato starts at 480 where the fade-in envelope is still zero
	for _, p := range got {
		if p.Tick == 480 {
			assert.InDelta(t, 0, p.Value, 1e-12)
			return
		}
	}
	t.Fatal("no sample at vibrato start")
}

func TestDriftOffsetsCurve(t *testing.T) {
	o := NewOverlay(480)
	// a period far longer than the note keeps the sine near zero at the start
	params := model.VibratoParams{Length: 100, Period: 1e9, Depth: 100, Drift: 50}
	got := o.Apply(flat(0), params, note, 120, 4)
	for _, p := range got {
		if p.Tick == 480 {
			assert.InDelta(t, 0.5, p.Value, 1e-5)
		}
	}
}

func TestBaseFollowsInputSlope(t *testing.T) {
	o := NewOverlay(480)
	points := []model.CurvePoint{{Tick: 0, Value: 0}, {Tick: 960, Value: 9.6}}
	// a negligible depth leaves only the interpolated base
	params := model.VibratoParams{Length: 100, Period: 1e12, Depth: 1e-9}
	got := o.Apply(points, params, note, 120, 4)
	for _, p := range got {
		assert.InDelta(t, float64(p.Tick)/100, p.Value, 1e-6)
	}
}
