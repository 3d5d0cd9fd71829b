// Package interp fills the gap between two curve points according to a
// declared shape.
//
// Available shapes:
//
//   - Linear:    constant slope
//   - EaseIn:    flat at the start, 1 - cos(πr/2)
//   - EaseOut:   flat at the end, sin(πr/2)
//   - EaseInOut: flat at both ends, (1 - cos(πr)) / 2
//
// All four hit both endpoints exactly and never overshoot them.
package interp

import (
	"math"

	"github.com/jsphweid/pitchcurve/model"
)

// Linear returns the linear ratio unchanged.
func Linear(r float64) float64 {
	return r
}

func EaseIn(r float64) float64 {
	return 1 - math.Cos(r*math.Pi/2)
}

func EaseOut(r float64) float64 {
	return math.Sin(r * math.Pi / 2)
}

func EaseInOut(r float64) float64 {
	return (1 - math.Cos(r*math.Pi)) / 2
}

// Curve returns the easing function for a shape. Unknown shapes ease in and out.
func Curve(shape model.Shape) func(float64) float64 {
	switch shape {
	case model.ShapeLinear:
		return Linear
	case model.ShapeEaseIn:
		return EaseIn
	case model.ShapeEaseOut:
		return EaseOut
	default:
		return EaseInOut
	}
}

// Value evaluates the shaped segment between from and to at tick.
func Value(from, to model.CurvePoint, shape model.Shape, tick int64) float64 {
	span := to.Tick - from.Tick
	if span <= 0 {
		return from.Value
	}
	r := float64(tick-from.Tick) / float64(span)
	if r <= 0 {
		return from.Value
	}
	if r >= 1 {
		return to.Value
	}
	return from.Value + (to.Value-from.Value)*Curve(shape)(r)
}

// Interpolate samples the segment from -> to at every multiple of interval
// strictly between the two ticks. Both endpoints are included.
// from.Tick must be less than to.Tick; otherwise only the endpoints are returned.
func Interpolate(from, to model.CurvePoint, shape model.Shape, interval int64) []model.CurvePoint {
	if from.Tick >= to.Tick || interval <= 0 {
		return []model.CurvePoint{from, to}
	}
	res := []model.CurvePoint{from}
	for tick := nextMultiple(from.Tick, interval); tick < to.Tick; tick += interval {
		res = append(res, model.CurvePoint{Tick: tick, Value: Value(from, to, shape, tick)})
	}
	return append(res, to)
}

// nextMultiple returns the smallest multiple of interval strictly greater than tick.
func nextMultiple(tick, interval int64) int64 {
	q := tick / interval
	if tick%interval != 0 && tick < 0 {
		q--
	}
	return (q + 1) * interval
}
