package spectrum

import (
	"errors"
	"fmt"
	"math"
)

var errNilEstimator = errors.New("spectrum estimator must not be nil")

func validateSampleRate(sampleRate float64) error {
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("spectrum sample rate must be > 0 and finite: %f", sampleRate)
	}
	return nil
}

func validateFFTSize(size int) error {
	if size < 2 {
		return fmt.Errorf("spectrum fft size must be >= 2: %d", size)
	}
	return nil
}
