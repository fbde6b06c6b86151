package spectrum

import (
	"math"

	"github.com/cwbudde/algo-spectro/dsp/interp"
)

// PeakFrequency returns the frequency in Hz of the loudest bin of
// spectrumDB between lowHz and highHz.
//
// The search covers bins floor(lowHz/res) through
// min(floor(highHz/res), len-1) inclusive, res = sampleRate/fftSize. When
// the peak has a neighbor on both sides inside that range it is refined by
// a parabola through the three dB values. An empty spectrum, an invalid
// rate or size, or a range of fewer than two bins yields 0.
func PeakFrequency(spectrumDB []float64, sampleRate float64, fftSize int, lowHz, highHz float64) float64 {
	if len(spectrumDB) == 0 || validateSampleRate(sampleRate) != nil || fftSize <= 0 {
		return 0
	}

	res := sampleRate / float64(fftSize)
	lo := binFloor(lowHz/res, len(spectrumDB)-1)
	hi := binFloor(highHz/res, len(spectrumDB)-1)
	if lo >= hi {
		return 0
	}

	peak := lo
	for i := lo + 1; i <= hi; i++ {
		if spectrumDB[i] > spectrumDB[peak] {
			peak = i
		}
	}

	pos := float64(peak)
	if peak > lo && peak < hi {
		if off, ok := interp.Parabolic(spectrumDB[peak-1], spectrumDB[peak], spectrumDB[peak+1]); ok {
			pos += off
		}
	}

	return pos * res
}

// LevelAt returns the dB level of spectrumDB at hz, linearly interpolated
// between neighboring bins. Frequencies outside the spectrum read the first
// or last bin. An empty spectrum or an invalid rate or size yields -Inf.
func LevelAt(spectrumDB []float64, sampleRate float64, fftSize int, hz float64) float64 {
	if len(spectrumDB) == 0 || validateSampleRate(sampleRate) != nil || fftSize <= 0 {
		return math.Inf(-1)
	}

	return interp.Sample(spectrumDB, hz*float64(fftSize)/sampleRate)
}

// binFloor truncates a fractional bin to [0, last]; NaN maps to 0.
func binFloor(pos float64, last int) int {
	if !(pos > 0) {
		return 0
	}
	if pos >= float64(last) {
		return last
	}
	return int(pos)
}
