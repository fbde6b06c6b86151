package window

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeHann(t *testing.T) {
	a := Analyze(Generate(TypeHann, 512))

	assert.InDelta(t, 0.5, a.CoherentGain, 0.01)
	assert.InDelta(t, 1.5, a.ENBW, 0.01)
	assert.InDelta(t, 2.0, a.FirstMinimumBins, 0.05)
	assert.InDelta(t, -31.5, a.HighestSidelobedB, 0.5)
	assert.InDelta(t, -1.42, a.ScallopLossdB, 0.05)
	assert.InDelta(t, 1.44, a.Bandwidth3dB, 0.05)
}

func TestAnalyzeRectangular(t *testing.T) {
	a := Analyze(Generate(TypeRectangular, 256))

	assert.InDelta(t, 1, a.CoherentGain, 1e-12)
	assert.InDelta(t, 1, a.FirstMinimumBins, 0.05)
	assert.InDelta(t, -13.26, a.HighestSidelobedB, 0.2)
}

func TestAnalyzeDegenerate(t *testing.T) {
	assert.Equal(t, Analysis{}, Analyze(nil))
	assert.Equal(t, Analysis{}, Analyze([]float64{0, 0, 0}))

	a := Analyze(Generate(TypeGauss, 128))
	assert.False(t, math.IsNaN(a.ENBW))
}
