package signal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

func TestSineLength(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(48000))
	s, err := g.Sine(1000, 1, 64)
	require.NoError(t, err)
	assert.Len(t, s, 64)

	_, err = g.Sine(1000, 1, 0)
	assert.Error(t, err)
}

func TestWhiteNoiseDeterministic(t *testing.T) {
	g1 := NewGeneratorWithOptions(nil, WithSeed(42))
	g2 := NewGeneratorWithOptions(nil, WithSeed(42))

	n1, err := g1.WhiteNoise(1, 16)
	require.NoError(t, err)
	n2, err := g2.WhiteNoise(1, 16)
	require.NoError(t, err)
	assert.Equal(t, n1, n2)

	_, err = g1.WhiteNoise(-1, 16)
	assert.Error(t, err)
}

func TestSetSeed(t *testing.T) {
	g := NewGenerator()
	g.SetSeed(99)
	assert.Equal(t, int64(99), g.Seed())

	a, err := g.WhiteNoise(1, 8)
	require.NoError(t, err)
	g.SetSeed(100)
	b, err := g.WhiteNoise(1, 8)
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestLinearSweepInstantaneousFrequency(t *testing.T) {
	const sr = 8000.0

	g := NewGenerator(core.WithSampleRate(sr))
	s, err := g.LinearSweep(100, 3100, 1, 8000)
	require.NoError(t, err)
	require.Len(t, s, 8000)

	// f(t) rises linearly, so over a window the crossing rate follows the
	// mean of the endpoint frequencies: 100..475 Hz first, 2725..3100 Hz last.
	freq := func(i int) float64 { return 100 + 3000*float64(i)/sr }
	crossings := func(x []float64) int {
		n := 0
		for i := 1; i < len(x); i++ {
			if (x[i-1] < 0) != (x[i] < 0) {
				n++
			}
		}
		return n
	}
	expected := func(from, to int) float64 {
		mean := (freq(from) + freq(to)) / 2
		return 2 * mean * float64(to-from) / sr
	}

	assert.InDelta(t, expected(0, 1000), float64(crossings(s[:1000])), 4)
	assert.InDelta(t, expected(7000, 8000), float64(crossings(s[7000:])), 4)
}

func TestLogSweep(t *testing.T) {
	g := NewGenerator(core.WithSampleRate(8000))

	s, err := g.LogSweep(50, 3000, 0.5, 4000)
	require.NoError(t, err)
	require.Len(t, s, 4000)
	for _, v := range s {
		require.LessOrEqual(t, math.Abs(v), 0.5+1e-12)
	}

	flat, err := g.LogSweep(440, 440, 1, 16)
	require.NoError(t, err)
	sine, err := g.Sine(440, 1, 16)
	require.NoError(t, err)
	assert.Equal(t, sine, flat)

	_, err = g.LogSweep(0, 3000, 1, 10)
	assert.Error(t, err)

	_, err = g.LogSweep(100, 5000, 1, 10)
	assert.Error(t, err)

	_, err = g.LinearSweep(100, 4001, 1, 10)
	assert.Error(t, err)
}

func TestMix(t *testing.T) {
	out := Mix([]float64{1, 2, 3}, []float64{10}, nil)
	assert.Equal(t, []float64{11, 2, 3}, out)
	assert.Empty(t, Mix())
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{-0.5, 1.0, -0.25}, 0.5)
	require.NoError(t, err)
	assert.Equal(t, []float64{-0.25, 0.5, -0.125}, out)

	out, err = Normalize([]float64{0, 0}, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0}, out)

	_, err = Normalize(nil, 1)
	assert.Error(t, err)

	_, err = Normalize([]float64{1}, -1)
	assert.Error(t, err)
}
