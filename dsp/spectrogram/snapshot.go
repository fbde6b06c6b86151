package spectrogram

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// NoPeak marks a frame whose maximum is below the peak threshold.
const NoPeak = math.MaxUint16

// Snapshot holds the linear magnitudes of one quantized computation for
// peak queries. The magnitudes are those before any filter bank, one row
// of FreqBins() values per frame.
//
// A Snapshot never changes after it is returned. A nil *Snapshot is valid
// and answers every query with an empty result.
type Snapshot struct {
	frames    [][]float64
	peaks     []int
	maxima    []float64
	globalMax float64
}

func newSnapshot(frames [][]float64) *Snapshot {
	s := &Snapshot{
		frames: frames,
		peaks:  make([]int, len(frames)),
		maxima: make([]float64, len(frames)),
	}

	for i, row := range frames {
		if len(row) == 0 {
			continue
		}
		idx := floats.MaxIdx(row)
		s.peaks[i] = idx
		s.maxima[i] = row[idx]
	}

	if len(s.maxima) > 0 {
		s.globalMax = floats.Max(s.maxima)
	}

	return s
}

// NumFrames returns the number of frames captured.
func (s *Snapshot) NumFrames() int {
	if s == nil {
		return 0
	}
	return len(s.frames)
}

// GlobalMax returns the largest magnitude over all frames, 0 if none.
func (s *Snapshot) GlobalMax() float64 {
	if s == nil {
		return 0
	}
	return s.globalMax
}

// Frame returns a copy of frame i's magnitudes, nil when out of range.
func (s *Snapshot) Frame(i int) []float64 {
	if s == nil || i < 0 || i >= len(s.frames) {
		return nil
	}

	out := make([]float64, len(s.frames[i]))
	copy(out, s.frames[i])

	return out
}

// PeakBins returns, per frame, the bin of the largest magnitude, or NoPeak
// when that magnitude is below GlobalMax()*threshold. The result is empty
// when nothing was captured or the capture is silent.
func (s *Snapshot) PeakBins(threshold float64) []uint16 {
	if !s.hasPeaks() {
		return []uint16{}
	}

	limit := s.globalMax * threshold
	out := make([]uint16, len(s.frames))

	for i, peak := range s.peaks {
		if s.maxima[i] >= limit && peak < NoPeak {
			out[i] = uint16(peak)
		} else {
			out[i] = NoPeak
		}
	}

	return out
}

// PeakMagnitudes returns, per frame, the largest magnitude, or 0 when it
// is below GlobalMax()*threshold. Emptiness follows PeakBins.
func (s *Snapshot) PeakMagnitudes(threshold float64) []float64 {
	if !s.hasPeaks() {
		return []float64{}
	}

	limit := s.globalMax * threshold
	out := make([]float64, len(s.frames))

	for i, m := range s.maxima {
		if m >= limit {
			out[i] = m
		}
	}

	return out
}

func (s *Snapshot) hasPeaks() bool {
	return s != nil && len(s.frames) > 0 && s.globalMax > 0
}
