package fft

import (
	"errors"
	"fmt"
)

var errNilBackend = errors.New("fft backend must not be nil")

func validateSize(size int) error {
	if size <= 0 {
		return fmt.Errorf("fft size must be > 0: %d", size)
	}
	return nil
}

func validateBins(dst []float64, limit int) error {
	if len(dst) > limit {
		return fmt.Errorf("fft output holds %d bins, at most %d available", len(dst), limit)
	}
	return nil
}
