package spectrum

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/dsp/buffer"
	"github.com/cwbudde/algo-spectro/dsp/core"
	"github.com/cwbudde/algo-spectro/dsp/fft"
	"github.com/cwbudde/algo-spectro/dsp/window"
)

// PSDFloor is the smallest power spectral density converted to dB.
const PSDFloor = 1e-16

type windowKey struct {
	typ   window.Type
	size  int
	alpha float64
}

// Estimator computes power spectra and keeps FFT plans and window curves
// across calls, so repeated analyses with the same sizes do not re-plan.
//
// Estimators are not safe for concurrent use.
type Estimator struct {
	plans   *fft.Cache
	windows map[windowKey][]float64
	scratch *buffer.Pool
}

// NewEstimator returns an empty estimator. Options select the FFT backend.
func NewEstimator(opts ...fft.Option) *Estimator {
	return &Estimator{
		plans:   fft.NewCache(opts...),
		windows: make(map[windowKey][]float64),
		scratch: buffer.NewPool(),
	}
}

// PowerSpectrum runs a one-shot analysis with a fresh Estimator.
func PowerSpectrum(samples []float64, cfg Config) ([]float64, error) {
	return NewEstimator().PowerSpectrum(samples, cfg)
}

// PowerSpectrum returns the averaged dB power spectrum of samples, one value
// per bin in [0, FFTSize/2]. Only full frames are analyzed; input shorter
// than one frame yields an empty result. Errors are returned for invalid
// configurations only.
func (e *Estimator) PowerSpectrum(samples []float64, cfg Config) ([]float64, error) {
	if e == nil {
		return nil, errNilEstimator
	}

	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	size := cfg.FFTSize
	if len(samples) < size {
		return []float64{}, nil
	}

	exec, err := e.plans.Executor(size)
	if err != nil {
		return nil, fmt.Errorf("spectrum: %w", err)
	}

	win := e.window(cfg)
	hop := cfg.Hop()
	bins := cfg.Bins()

	power := e.scratch.Get(bins)
	defer e.scratch.Put(power)

	acc := make([]float64, bins)
	frames := 0

	for off := 0; off+size <= len(samples); off += hop {
		if err := exec.Powers(power.Samples(), samples[off:off+size], win, true); err != nil {
			return nil, fmt.Errorf("spectrum: %w", err)
		}

		floats.Add(acc, power.Samples())
		frames++
	}

	norm := 1 / (float64(frames) * float64(size))
	for i, v := range acc {
		acc[i] = core.PowerDB(v*norm, PSDFloor)
	}

	return acc, nil
}

// NumPlans returns the number of distinct FFT sizes planned so far.
func (e *Estimator) NumPlans() int {
	return e.plans.Len()
}

func (e *Estimator) window(cfg Config) []float64 {
	key := windowKey{typ: cfg.Window, size: cfg.FFTSize}
	if cfg.Window == window.TypeBlackman {
		key.alpha = cfg.Alpha
	}

	if w, ok := e.windows[key]; ok {
		return w
	}

	w := window.Generate(cfg.Window, cfg.FFTSize, window.WithAlpha(cfg.Alpha))
	e.windows[key] = w

	return w
}
