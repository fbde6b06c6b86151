package spectrogram

import (
	"math"

	"github.com/sirupsen/logrus"
)

// Step returns the hop between frames, fftSize-overlap, clamped to at
// least 1.
func Step(fftSize, overlap int) int {
	return max(fftSize-overlap, 1)
}

// NumFrames returns how many full frames of fftSize fit in numSamples with
// the given overlap.
func NumFrames(numSamples, fftSize, overlap int) int {
	if fftSize <= 0 || numSamples < fftSize {
		return 0
	}

	return (numSamples-fftSize)/Step(fftSize, overlap) + 1
}

// AutoOverlap picks an overlap that yields roughly one frame per pixel
// column: round(fftSize - numSamples/width), but never less than 5% of the
// transform. The result lies in [0, fftSize-1].
func AutoOverlap(fftSize, numSamples, width int) int {
	if fftSize <= 1 {
		return 0
	}

	floor := int(math.Floor(0.05 * float64(fftSize)))
	overlap := floor

	if width > 0 {
		perColumn := float64(numSamples) / float64(width)
		overlap = max(floor, int(math.Round(float64(fftSize)-perColumn)))
	}

	return min(max(overlap, 0), fftSize-1)
}

func (e *Engine) step(overlap int) int {
	step := Step(e.fftSize, overlap)
	if e.fftSize-overlap < 1 {
		e.log.WithFields(logrus.Fields{
			"function": "step",
			"overlap":  overlap,
			"fft_size": e.fftSize,
			"step":     step,
		}).Warn("Overlap not below fft size, clamping step")
	}
	return step
}
