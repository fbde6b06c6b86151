package spectrum

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-spectro/dsp/core"
	"github.com/cwbudde/algo-spectro/dsp/fft"
	"github.com/cwbudde/algo-spectro/dsp/signal"
	"github.com/cwbudde/algo-spectro/dsp/window"
	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func TestMagnitudeAndPower(t *testing.T) {
	bins := []complex128{3 + 4i, -1 - 1i, 0}

	mag := Magnitude(bins)
	require.Len(t, mag, len(bins))
	assert.InDelta(t, 5, mag[0], 1e-12)
	assert.InDelta(t, math.Sqrt2, mag[1], 1e-12)
	assert.Zero(t, mag[2])

	pow := Power(bins)
	assert.InDelta(t, 25, pow[0], 1e-12)
	assert.InDelta(t, 2, pow[1], 1e-12)

	db := PowerDB(bins, 1)
	assert.InDelta(t, 10*math.Log10(25), db[0], 1e-12)
	assert.InDelta(t, -160, db[2], 1e-9)

	assert.Nil(t, Magnitude(nil))
	assert.Nil(t, Power(nil))
}

func TestConfigHop(t *testing.T) {
	cases := []struct {
		overlap float64
		want    int
	}{
		{0, 256},
		{-5, 256},
		{math.NaN(), 256},
		{100, 256},
		{250, 256},
		{50, 512},
		{75, 256},
		{99.99, 1},
	}
	for _, c := range cases {
		cfg := Config{FFTSize: 1024, OverlapPercent: c.overlap}
		assert.Equalf(t, c.want, cfg.Hop(), "overlap %v", c.overlap)
	}

	assert.Equal(t, 1, Config{FFTSize: 2}.Hop())
	assert.Equal(t, 513, Config{FFTSize: 1024}.Bins())
	assert.InDelta(t, 31.25, Config{SampleRate: 8000, FFTSize: 256}.Resolution(), 1e-12)
}

func TestPowerSpectrumSinePeak(t *testing.T) {
	cfg := Config{SampleRate: 8000, FFTSize: 256, Window: window.TypeHann}
	x := testutil.DeterministicSine(1000, cfg.SampleRate, 1, 4096)

	db, err := PowerSpectrum(x, cfg)
	require.NoError(t, err)
	require.Len(t, db, 129)
	testutil.RequireFinite(t, db)

	assert.Equal(t, 32, testutil.ArgMax(db))

	f := PeakFrequency(db, cfg.SampleRate, cfg.FFTSize, 0, cfg.SampleRate/2)
	assert.InDelta(t, 1000, f, 1)
}

func TestPowerSpectrumRectangularLevel(t *testing.T) {
	// A full-scale bin-centered sine puts |X[k]| = N/2 into its bin, so the
	// averaged PSD there is (N/2)^2/N = N/4.
	const n = 256

	cfg := Config{SampleRate: 8000, FFTSize: n, Window: window.TypeRectangular, OverlapPercent: 50}
	x := testutil.DeterministicSine(1000, cfg.SampleRate, 1, 2048)

	db, err := PowerSpectrum(x, cfg)
	require.NoError(t, err)
	assert.InDelta(t, 10*math.Log10(n/4.0), db[32], 1e-6)
}

func TestPowerSpectrumRemovesDC(t *testing.T) {
	cfg := Config{SampleRate: 1000, FFTSize: 64, Window: window.TypeRectangular}
	x := make([]float64, 256)
	for i := range x {
		x[i] = 0.5
	}

	db, err := PowerSpectrum(x, cfg)
	require.NoError(t, err)
	for i, v := range db {
		require.InDeltaf(t, core.PowerDB(0, PSDFloor), v, 1e-9, "bin %d", i)
	}
}

func TestPowerSpectrumShortInput(t *testing.T) {
	cfg := DefaultConfig()

	db, err := PowerSpectrum(make([]float64, cfg.FFTSize-1), cfg)
	require.NoError(t, err)
	assert.Empty(t, db)

	db, err = PowerSpectrum(nil, cfg)
	require.NoError(t, err)
	assert.Empty(t, db)
}

func TestPowerSpectrumInvalidConfig(t *testing.T) {
	x := make([]float64, 128)

	_, err := PowerSpectrum(x, Config{SampleRate: 0, FFTSize: 64})
	assert.Error(t, err)

	_, err = PowerSpectrum(x, Config{SampleRate: math.Inf(1), FFTSize: 64})
	assert.Error(t, err)

	_, err = PowerSpectrum(x, Config{SampleRate: 8000, FFTSize: 1})
	assert.Error(t, err)

	var e *Estimator
	_, err = e.PowerSpectrum(x, DefaultConfig())
	assert.Error(t, err)
}

func TestEstimatorReusesPlans(t *testing.T) {
	e := NewEstimator()
	x := testutil.DeterministicSine(440, 8000, 0.5, 2048)

	a, err := e.PowerSpectrum(x, Config{SampleRate: 8000, FFTSize: 512, Window: window.TypeHamming})
	require.NoError(t, err)
	b, err := e.PowerSpectrum(x, Config{SampleRate: 8000, FFTSize: 512, Window: window.TypeHamming})
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, 1, e.NumPlans())

	_, err = e.PowerSpectrum(x, Config{SampleRate: 8000, FFTSize: 256, Window: window.TypeBlackman})
	require.NoError(t, err)
	assert.Equal(t, 2, e.NumPlans())
}

func TestEstimatorBackendsAgree(t *testing.T) {
	gen := signal.NewGeneratorWithOptions([]core.ProcessorOption{core.WithSampleRate(8000)}, signal.WithSeed(7))
	tone, err := gen.Sine(1234, 0.5, 4096)
	require.NoError(t, err)
	noise, err := gen.WhiteNoise(0.1, 4096)
	require.NoError(t, err)
	x := signal.Mix(tone, noise)

	cfg := Config{SampleRate: 8000, FFTSize: 512, Window: window.TypeBlackman}

	a, err := NewEstimator().PowerSpectrum(x, cfg)
	require.NoError(t, err)
	b, err := NewEstimator(fft.WithBackend(fft.Gonum())).PowerSpectrum(x, cfg)
	require.NoError(t, err)

	testutil.RequireSliceNearlyEqual(t, a, b, 1e-6)
}

func TestPeakFrequency(t *testing.T) {
	const sr, n = 1000.0, 100 // 10 Hz bins

	spike := func(left, right float64) []float64 {
		db := make([]float64, 51)
		for i := range db {
			db[i] = -100
		}
		db[9], db[10], db[11] = left, 0, right
		return db
	}

	assert.InDelta(t, 100, PeakFrequency(spike(-20, -20), sr, n, 0, 500), 1e-9)

	// Parabola through (-1,-20) (0,0) (1,-10) peaks 1/6 bin to the right.
	asym := PeakFrequency(spike(-20, -10), sr, n, 0, 500)
	assert.InDelta(t, 100+10.0/6, asym, 1e-9)
	assert.Greater(t, asym, 100.0)
	assert.Less(t, asym, 110.0)

	// Peak on the range edge is not refined.
	assert.InDelta(t, 100, PeakFrequency(spike(-20, -10), sr, n, 100, 300), 1e-9)
	assert.InDelta(t, 100, PeakFrequency(spike(-20, -10), sr, n, 20, 100), 1e-9)

	// Negative low bound clamps to bin 0, high bound clamps to the last bin.
	assert.InDelta(t, asym, PeakFrequency(spike(-20, -10), sr, n, -50, 1e6), 1e-9)
}

func TestPeakFrequencyDegenerate(t *testing.T) {
	db := []float64{-10, -5, -20}

	assert.Zero(t, PeakFrequency(nil, 1000, 100, 0, 500))
	assert.Zero(t, PeakFrequency(db, 1000, 100, 10, 10))
	assert.Zero(t, PeakFrequency(db, 1000, 100, 30, 10))
	assert.Zero(t, PeakFrequency(db, 1000, 100, 900, 1000))
	assert.Zero(t, PeakFrequency(db, 0, 100, 0, 500))
	assert.Zero(t, PeakFrequency(db, 1000, 0, 0, 500))

	// A flat spectrum has no curvature to refine.
	assert.Zero(t, PeakFrequency([]float64{0, 0, 0}, 1000, 100, 0, 500))
}

func TestLevelAt(t *testing.T) {
	db := []float64{0, -10, -20}

	assert.InDelta(t, -5, LevelAt(db, 100, 4, 12.5), 1e-12)
	assert.InDelta(t, -10, LevelAt(db, 100, 4, 25), 1e-12)
	assert.Equal(t, 0.0, LevelAt(db, 100, 4, -10))
	assert.Equal(t, -20.0, LevelAt(db, 100, 4, 1000))
	assert.True(t, math.IsInf(LevelAt(nil, 100, 4, 10), -1))
	assert.True(t, math.IsInf(LevelAt(db, 0, 4, 10), -1))
}
