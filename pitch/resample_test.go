package pitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResampleAveragesBuckets(t *testing.T) {
	got := Resample(pts(0, 1, 1, 3, 3, 5, 4, 2, 9, 7), 4)
	assert.Equal(t, pts(0, 3, 4, 2, 8, 7), got)
}

func TestResampleSortsOutput(t *testing.T) {
	got := Resample(pts(20, 1, 4, 2, 12, 3), 4)
	assert.Equal(t, pts(4, 2, 12, 3, 20, 1), got)
}

func TestResampleFloorsNegativeTicks(t *testing.T) {
	got := Resample(pts(-1, 1, -4, 3, -5, 6), 4)
	assert.Equal(t, pts(-8, 6, -4, 2), got)
}

func TestResampleIsIdempotent(t *testing.T) {
	curve := pts(-7, 1, -3, 2, 0, 0.5, 5, 1.25, 6, 9, 33, -2)
	for _, interval := range []int64{1, 4, 5, 10} {
		once := Resample(curve, interval)
		assert.Equal(t, once, Resample(once, interval), "interval %d", interval)
	}
}

func TestResampleEmpty(t *testing.T) {
	assert.Empty(t, Resample(nil, 4))
}

func TestResampleNonPositiveIntervalKeepsTicks(t *testing.T) {
	got := Resample(pts(3, 1, 3, 2, 1, 5), 0)
	assert.Equal(t, pts(1, 5, 3, 1.5), got)
}
