package window

import (
	"errors"
	"fmt"
	"math"
)

var (
	errEmptyCoeffs      = errors.New("window coefficients must not be empty")
	errZeroCoherentGain = errors.New("window coherent gain is zero")
	errMismatchedLength = errors.New("samples and coefficients must have same length")
)

func validateLength(size int) error {
	if size <= 0 {
		return fmt.Errorf("window size must be > 0: %d", size)
	}
	return nil
}

func validateBlackman(size int, alpha float64) error {
	if size <= 0 {
		return validateLength(size)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return fmt.Errorf("blackman alpha must be finite: %f", alpha)
	}
	return nil
}
