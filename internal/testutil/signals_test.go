package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeterministicSine(t *testing.T) {
	s := DeterministicSine(1000, 48000, 1.0, 48)
	assert.Len(t, s, 48)
	assert.InDelta(t, 0, s[0], 1e-15)
	assert.InDelta(t, 1, s[12], 1e-12)
}

func TestBinSinePeriod(t *testing.T) {
	s := BinSine(4, 64, 1, 64)
	// Four whole cycles: the sample one period later repeats.
	for i := 0; i < 48; i++ {
		assert.InDelta(t, s[i], s[i+16], 1e-12)
	}
}

func TestDeterministicNoise(t *testing.T) {
	a := DeterministicNoise(42, 0.5, 1000)
	b := DeterministicNoise(42, 0.5, 1000)
	c := DeterministicNoise(43, 0.5, 1000)

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	for _, v := range a {
		assert.LessOrEqual(t, math.Abs(v), 0.5)
	}
}

func TestRampAndDC(t *testing.T) {
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, Ramp(4))
	assert.Equal(t, []float64{2, 2, 2}, DC(2, 3))
}

func TestArgMax(t *testing.T) {
	assert.Equal(t, -1, ArgMax(nil))
	assert.Equal(t, 1, ArgMax([]float64{1, 3, 3, 2}))
	assert.Equal(t, 0, ArgMax([]float64{-1}))
}
