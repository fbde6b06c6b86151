package spectrogram

import (
	"fmt"
)

func validateFFTSize(size int) error {
	if size < 2 {
		return fmt.Errorf("spectrogram fft size must be >= 2: %d", size)
	}
	return nil
}

func validateBankShape(rows, cols, fftSize int) error {
	if want := fftSize/2 + 1; cols != want {
		return fmt.Errorf("filter bank has %d columns, fft size %d needs %d", cols, fftSize, want)
	}
	if rows <= 0 {
		return fmt.Errorf("filter bank must have at least one filter: %d", rows)
	}
	return nil
}
