package spectrogram

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

// MagnitudeFloor is the smallest magnitude converted to dB, -200 dB.
const MagnitudeFloor = 1e-10

// Quantize maps a linear magnitude onto 0..255. The dB value
// 20*log10(max(mag, MagnitudeFloor)) is scaled so that -gainDB-rangeDB
// gives 0 and -gainDB gives 255; values outside clamp and the result is
// truncated. A rangeDB <= 0 turns the mapping into a threshold at -gainDB.
func Quantize(mag, gainDB, rangeDB float64) uint8 {
	db := core.AmplitudeDB(mag, MagnitudeFloor)

	if !(rangeDB > 0) {
		if db >= -gainDB {
			return 255
		}
		return 0
	}

	v := (db + gainDB + rangeDB) / rangeDB * 255
	switch {
	case !(v > 0):
		return 0
	case v >= 255:
		return 255
	default:
		return uint8(v)
	}
}

// Linear computes the magnitude spectrogram of samples, one row of
// FreqBins() values per frame. Nothing is cached.
func (e *Engine) Linear(samples []float64, overlap int) [][]float64 {
	step := e.step(overlap)
	n := NumFrames(len(samples), e.fftSize, overlap)

	out := make([][]float64, n)
	for i := range out {
		start := i * step
		row := make([]float64, e.FreqBins())
		e.transform(row, samples[start:start+e.fftSize])
		out[i] = row
	}

	return out
}

// Quantized computes the 8-bit spectrogram of samples, one row of
// OutputBins() values per frame, and captures the unfiltered magnitudes in
// a Snapshot. The snapshot is also kept as the engine's latest, replacing
// the previous one.
func (e *Engine) Quantized(samples []float64, overlap int, gainDB, rangeDB float64) ([][]uint8, *Snapshot) {
	mags := e.Linear(samples, overlap)

	out := make([][]uint8, len(mags))
	for i, m := range mags {
		out[i] = e.quantizeFrame(m, gainDB, rangeDB)
	}

	snap := newSnapshot(mags)
	e.last = snap

	return out, snap
}

// Snapshot returns the capture of the latest Quantized call, nil before
// the first one.
func (e *Engine) Snapshot() *Snapshot { return e.last }

// PeakBins queries the latest snapshot; see Snapshot.PeakBins.
func (e *Engine) PeakBins(threshold float64) []uint16 {
	return e.last.PeakBins(threshold)
}

// PeakMagnitudes queries the latest snapshot; see Snapshot.PeakMagnitudes.
func (e *Engine) PeakMagnitudes(threshold float64) []float64 {
	return e.last.PeakMagnitudes(threshold)
}

// GlobalMax returns the latest snapshot's global maximum, 0 if none.
func (e *Engine) GlobalMax() float64 {
	return e.last.GlobalMax()
}

func (e *Engine) transform(dst, frame []float64) {
	if err := e.exec.Magnitudes(dst, frame, e.win); err != nil {
		e.log.WithFields(logrus.Fields{
			"function": "transform",
			"error":    err,
		}).Error("FFT failed, emitting silent frame")
		clear(dst)
	}
}

func (e *Engine) quantizeFrame(mag []float64, gainDB, rangeDB float64) []uint8 {
	src := mag
	if e.bank != nil {
		e.bank.Apply(e.proj, mag)
		src = e.proj
	}

	row := make([]uint8, len(src))
	for j, v := range src {
		row[j] = Quantize(v, gainDB, rangeDB)
	}

	return row
}
