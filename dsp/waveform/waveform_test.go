package waveform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestPeaksAllZero(t *testing.T) {
	got := Peaks(make([]float64, 100), 7)
	assert.Equal(t, make([]float64, 7), got)
}

func TestPeaksSingleImpulse(t *testing.T) {
	const n, width = 100, 10

	for _, pos := range []int{0, 37, 99} {
		samples := make([]float64, n)
		samples[pos] = -0.75

		got := Peaks(samples, width)
		require.Len(t, got, width)
		for i, v := range got {
			if i == pos/(n/width) {
				assert.Equalf(t, 0.75, v, "pos %d slice %d", pos, i)
			} else {
				assert.Zerof(t, v, "pos %d slice %d", pos, i)
			}
		}
	}
}

func TestPeaksFractionalStepOverlaps(t *testing.T) {
	// step = 5/2 = 2.5: slice 0 is [0, 3), slice 1 is [2, 5).
	got := Peaks([]float64{0, 0, -4, 1, 2}, 2)
	assert.Equal(t, []float64{4, 4}, got)
}

func TestPeaksMoreSlicesThanSamples(t *testing.T) {
	got := Peaks([]float64{1, -2}, 4)
	assert.Equal(t, []float64{1, 1, 2, 2}, got)
}

func TestPeaksDegenerate(t *testing.T) {
	assert.Empty(t, Peaks(nil, 4))
	assert.Empty(t, Peaks([]float64{1}, 0))
	assert.Empty(t, Peaks([]float64{1}, -2))
}

func TestGlobalMax(t *testing.T) {
	assert.Zero(t, GlobalMax(nil))
	assert.Equal(t, 3.0, GlobalMax([]float64{1, -3, 2}))
}

func TestEngineChannels(t *testing.T) {
	e := New(2)
	assert.Equal(t, 2, e.NumChannels())
	assert.Zero(t, e.ChannelLength(0))

	assert.True(t, e.LoadChannel(1, testutil.Ramp(50)))
	assert.False(t, e.LoadChannel(2, testutil.Ramp(5)))
	assert.False(t, e.LoadChannel(-1, testutil.Ramp(5)))
	assert.Equal(t, 50, e.ChannelLength(1))
	assert.Zero(t, e.ChannelLength(3))

	e.Resize(3)
	assert.Equal(t, 3, e.NumChannels())
	assert.Zero(t, e.ChannelLength(1))

	e.Clear()
	assert.Zero(t, e.NumChannels())
}

func TestEngineLoadCopies(t *testing.T) {
	src := []float64{0.5, 0.5}
	e := New(1)
	e.LoadChannel(0, src)
	src[0] = 9

	assert.Equal(t, []float64{0.5}, e.RangePeaks(0, 0, 2, 1))
}

func TestRangePeaksRampWidthOne(t *testing.T) {
	e := New(1)
	samples := testutil.Ramp(1000)
	e.LoadChannel(0, samples)

	got := e.RangePeaks(0, 100, 400, 1)
	assert.Equal(t, []float64{samples[399]}, got)

	// end beyond the channel is clamped
	got = e.RangePeaks(0, 900, 5000, 1)
	assert.Equal(t, []float64{samples[999]}, got)
}

func TestRangePeaksMatchesPeaks(t *testing.T) {
	e := New(1)
	samples := testutil.Ramp(997)
	e.LoadChannel(0, samples)

	assert.Equal(t, Peaks(samples[10:510], 33), e.RangePeaks(0, 10, 510, 33))
}

func TestRangePeaksDegenerate(t *testing.T) {
	e := New(1)
	e.LoadChannel(0, testutil.Ramp(10))

	assert.Equal(t, []float64{0}, e.RangePeaks(5, 0, 10, 0))
	assert.Equal(t, []float64{0, 0, 0}, e.RangePeaks(5, 0, 10, 3))
	assert.Equal(t, []float64{0}, e.RangePeaks(0, 0, 10, 0))
	assert.Equal(t, []float64{0}, e.RangePeaks(0, 0, 10, -4))
	assert.Equal(t, []float64{0, 0}, e.RangePeaks(0, 6, 6, 2))
	assert.Equal(t, []float64{0, 0}, e.RangePeaks(0, 8, 2, 2))
	assert.Equal(t, []float64{0, 0}, e.RangePeaks(0, 20, 30, 2))
}

func TestRangePeaksIntoReusesDst(t *testing.T) {
	e := New(1)
	e.LoadChannel(0, []float64{1, -2, 3, -4})

	dst := []float64{7, 7}
	e.RangePeaksInto(dst, 0, 0, 4)
	assert.Equal(t, []float64{2, 4}, dst)

	e.RangePeaksInto(dst, 3, 0, 4)
	assert.Equal(t, []float64{0, 0}, dst)

	assert.NotPanics(t, func() { e.RangePeaksInto(nil, 0, 0, 4) })
}
