package bank

import (
	"errors"
	"fmt"
)

var errNoRows = errors.New("filter bank has no rows")

func validateShape(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("filter bank shape must be positive: %dx%d", rows, cols)
	}
	return nil
}

func validateDesign(numFilters int, sampleRate float64, fftSize int) error {
	if numFilters <= 0 {
		return fmt.Errorf("filter count must be > 0: %d", numFilters)
	}
	if !(sampleRate > 0) {
		return fmt.Errorf("sample rate must be > 0: %f", sampleRate)
	}
	if fftSize < 2 {
		return fmt.Errorf("fft size must be >= 2: %d", fftSize)
	}
	return nil
}
