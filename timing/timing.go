// Package timing converts between milliseconds and ticks at a fixed tempo.
package timing

import (
	"math"

	"github.com/jsphweid/pitchcurve/constants"
)

// Converter maps milliseconds to ticks for a score with the given
// resolution (ticks per quarter note).
type Converter struct {
	Resolution int64
}

func NewConverter(resolution int64) Converter {
	if resolution <= 0 {
		resolution = constants.DefaultResolution
	}
	return Converter{Resolution: resolution}
}

func (c Converter) ticksPerMs(tempo float64) float64 {
	if tempo <= 0 {
		tempo = constants.DefaultTempo
	}
	res := c.Resolution
	if res <= 0 {
		res = constants.DefaultResolution
	}
	return tempo * float64(res) / 60000
}

// TicksFromMs rounds to the nearest tick. It is monotonic in ms.
func (c Converter) TicksFromMs(ms float64, tempo float64) int64 {
	return int64(math.Round(ms * c.ticksPerMs(tempo)))
}

func (c Converter) MsFromTicks(ticks int64, tempo float64) float64 {
	return float64(ticks) / c.ticksPerMs(tempo)
}
