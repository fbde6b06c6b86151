package webdemo

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectro/dsp/spectrogram"
	"github.com/cwbudde/algo-spectro/dsp/spectrum"
	"github.com/cwbudde/algo-spectro/dsp/waveform"
	"github.com/cwbudde/algo-spectro/dsp/window"
)

// Session holds the engines behind one host page.
type Session struct {
	log   logrus.FieldLogger
	sgram *spectrogram.Engine
	wave  *waveform.Engine
	power *spectrum.Estimator

	in []float64
}

// NewSession creates a session with no spectrogram engine and no
// waveform channels. A nil logger discards output.
func NewSession(log logrus.FieldLogger) *Session {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = l
	}

	return &Session{
		log:   log,
		wave:  waveform.New(0),
		power: spectrum.NewEstimator(),
	}
}

// InitSpectrogram replaces the spectrogram engine. A NaN alpha keeps the
// window's default shape. Filter bank, color table and spectrum
// configuration of a previous engine are dropped.
func (s *Session) InitSpectrogram(fftSize int, windowName string, alpha float64) error {
	opts := []spectrogram.Option{
		spectrogram.WithWindowName(windowName),
		spectrogram.WithLogger(s.log),
	}
	if !math.IsNaN(alpha) {
		opts = append(opts, spectrogram.WithAlpha(alpha))
	}

	e, err := spectrogram.New(fftSize, opts...)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"function": "InitSpectrogram",
			"fft_size": fftSize,
		}).WithError(err).Error("Engine construction failed")
		return err
	}

	s.sgram = e
	return nil
}

// Spectrogram returns the current engine, nil before InitSpectrogram.
func (s *Session) Spectrogram() *spectrogram.Engine { return s.sgram }

// FreqBins returns the engine's linear bin count, 0 without an engine.
func (s *Session) FreqBins() int {
	if s.sgram == nil {
		return 0
	}
	return s.sgram.FreqBins()
}

// OutputBins returns the rows per quantized frame, 0 without an engine.
func (s *Session) OutputBins() int {
	if s.sgram == nil {
		return 0
	}
	return s.sgram.OutputBins()
}

// LoadFilterBank installs a flat row-major matrix of numFilters rows.
func (s *Session) LoadFilterBank(weights []float32, numFilters int) error {
	if s.sgram == nil {
		return errNoEngine
	}
	return s.sgram.LoadFilterBankFlat(widen(nil, weights), numFilters)
}

// ClearFilterBank returns the engine to linear bins.
func (s *Session) ClearFilterBank() {
	if s.sgram != nil {
		s.sgram.ClearFilterBank()
	}
}

// SetColorTable installs a 1024-byte RGBA table and reports acceptance.
func (s *Session) SetColorTable(b []byte) bool {
	if s.sgram == nil {
		return false
	}
	return s.sgram.SetColorTable(b)
}

// SetSpectrumConfig records the displayed frequency axis.
func (s *Session) SetSpectrumConfig(scaleName string, minHz, maxHz float64) {
	if s.sgram != nil {
		s.sgram.SetSpectrumConfigName(scaleName, minHz, maxHz)
	}
}

// Linear returns the frame-major linear magnitude spectrogram flattened to
// frames*FreqBins values.
func (s *Session) Linear(samples []float32, overlap int) []float32 {
	if s.sgram == nil {
		return []float32{}
	}

	s.in = widen(s.in, samples)
	return narrowRows(s.sgram.Linear(s.in, overlap))
}

// Quantized returns the frame-major byte spectrogram flattened to
// frames*OutputBins values and refreshes the peak snapshot.
func (s *Session) Quantized(samples []float32, overlap int, gainDB, rangeDB float64) []uint8 {
	if s.sgram == nil {
		return []uint8{}
	}

	s.in = widen(s.in, samples)
	q, _ := s.sgram.Quantized(s.in, overlap, gainDB, rangeDB)
	return flatten(q)
}

// Image renders a width*height RGBA spectrogram.
func (s *Session) Image(samples []float32, width, height, overlap int, gainDB, rangeDB float64) []byte {
	if s.sgram == nil {
		return make([]byte, 4*max(width, 0)*max(height, 0))
	}

	s.in = widen(s.in, samples)
	return s.sgram.Image(s.in, width, height, overlap, gainDB, rangeDB)
}

// PeakBins returns the per-frame peak bins of the last quantized call.
func (s *Session) PeakBins(threshold float64) []uint16 {
	if s.sgram == nil {
		return []uint16{}
	}
	return s.sgram.PeakBins(threshold)
}

// PeakMagnitudes returns the per-frame peak magnitudes of the last
// quantized call.
func (s *Session) PeakMagnitudes(threshold float64) []float32 {
	if s.sgram == nil {
		return []float32{}
	}
	return narrow(s.sgram.PeakMagnitudes(threshold))
}

// GlobalMax returns the largest magnitude of the last quantized call.
func (s *Session) GlobalMax() float64 {
	if s.sgram == nil {
		return 0
	}
	return s.sgram.GlobalMax()
}

// AutoOverlap picks an overlap for the current engine that yields about
// one frame per pixel.
func (s *Session) AutoOverlap(numSamples, width int) int {
	if s.sgram == nil {
		return 0
	}
	return spectrogram.AutoOverlap(s.sgram.FFTSize(), numSamples, width)
}

// ResizeChannels replaces waveform storage with n empty channels.
func (s *Session) ResizeChannels(n int) { s.wave.Resize(n) }

// LoadChannel copies samples into waveform channel idx.
func (s *Session) LoadChannel(idx int, samples []float32) bool {
	s.in = widen(s.in, samples)
	return s.wave.LoadChannel(idx, s.in)
}

// RangePeaks reduces a channel range to width peaks.
func (s *Session) RangePeaks(idx, start, end, width int) []float32 {
	return narrow(s.wave.RangePeaks(idx, start, end, width))
}

// ChannelLength returns the sample count of channel idx.
func (s *Session) ChannelLength(idx int) int { return s.wave.ChannelLength(idx) }

// NumChannels returns the waveform channel count.
func (s *Session) NumChannels() int { return s.wave.NumChannels() }

// ClearChannels removes all waveform channels.
func (s *Session) ClearChannels() { s.wave.Clear() }

// PowerSpectrum returns the averaged dB spectrum of samples. Unknown
// window names fall back to Hann; invalid rates or sizes yield an empty
// result.
func (s *Session) PowerSpectrum(samples []float32, sampleRate float64, fftSize int, windowName string, overlapPercent float64) []float32 {
	wt, ok := window.Parse(windowName)
	if !ok {
		s.log.WithFields(logrus.Fields{
			"function": "PowerSpectrum",
			"window":   windowName,
			"fallback": wt.String(),
		}).Warn("Unknown window name, using fallback")
	}

	s.in = widen(s.in, samples)
	db, err := s.power.PowerSpectrum(s.in, spectrum.Config{
		SampleRate:     sampleRate,
		FFTSize:        fftSize,
		Window:         wt,
		OverlapPercent: overlapPercent,
	})
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"function": "PowerSpectrum",
		}).WithError(err).Warn("Invalid analysis parameters")
		return []float32{}
	}

	return narrow(db)
}

// WavePeaks is waveform.Peaks over float32 samples.
func WavePeaks(samples []float32, n int) []float32 {
	return narrow(waveform.Peaks(widen(nil, samples), n))
}

// GlobalMax is waveform.GlobalMax over float32 samples.
func GlobalMax(samples []float32) float64 {
	return waveform.GlobalMax(widen(nil, samples))
}

// PeakFrequency is spectrum.PeakFrequency over a float32 dB spectrum.
func PeakFrequency(spectrumDB []float32, sampleRate float64, fftSize int, lowHz, highHz float64) float64 {
	return spectrum.PeakFrequency(widen(nil, spectrumDB), sampleRate, fftSize, lowHz, highHz)
}
