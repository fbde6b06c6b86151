package spectrum

import (
	"math"

	"github.com/cwbudde/algo-spectro/dsp/window"
)

// DefaultHopFraction is the hop, as a fraction of the FFT size, used when no
// valid overlap percentage is given (75% overlap).
const DefaultHopFraction = 0.25

// Config describes one power-spectrum analysis.
type Config struct {
	SampleRate float64
	FFTSize    int
	// Window is the analysis window. The zero value is rectangular.
	Window window.Type
	// Alpha is the Blackman shape parameter; values <= 0 select
	// window.DefaultBlackmanAlpha.
	Alpha float64
	// OverlapPercent in (0, 100) sets hop = FFTSize*(1-OverlapPercent/100).
	// Anything else selects DefaultHopFraction.
	OverlapPercent float64
}

// DefaultConfig returns a Hann-windowed 4096-point analysis at 44.1 kHz with
// the default 75% overlap.
func DefaultConfig() Config {
	return Config{
		SampleRate: 44100,
		FFTSize:    4096,
		Window:     window.TypeHann,
		Alpha:      window.DefaultBlackmanAlpha,
	}
}

// Hop returns the frame advance in samples, at least 1.
func (c Config) Hop() int {
	p := c.OverlapPercent
	n := float64(c.FFTSize)

	var hop int
	if !(p > 0) || p >= 100 {
		hop = int(n * DefaultHopFraction)
	} else {
		hop = int(n * (1 - p/100))
	}

	return max(hop, 1)
}

// Bins returns the number of output bins, FFTSize/2 + 1.
func (c Config) Bins() int {
	return c.FFTSize/2 + 1
}

// Resolution returns the bin spacing in Hz.
func (c Config) Resolution() float64 {
	return c.SampleRate / float64(c.FFTSize)
}

func normalizeConfig(c Config) (Config, error) {
	if err := validateSampleRate(c.SampleRate); err != nil {
		return c, err
	}
	if err := validateFFTSize(c.FFTSize); err != nil {
		return c, err
	}

	if !(c.Alpha > 0) || math.IsInf(c.Alpha, 0) {
		c.Alpha = window.DefaultBlackmanAlpha
	}

	return c, nil
}
