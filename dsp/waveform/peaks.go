package waveform

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Peaks splits samples into n proportional slices and returns the largest
// absolute value of each. Slice i covers [floor(i*step), ceil((i+1)*step))
// with step = len(samples)/n, so neighboring slices may share a sample.
// Empty input or n <= 0 yields an empty result.
func Peaks(samples []float64, n int) []float64 {
	if n <= 0 || len(samples) == 0 {
		return []float64{}
	}

	out := make([]float64, n)
	reduce(out, samples)
	return out
}

// GlobalMax returns the largest absolute sample value, 0 for empty input.
func GlobalMax(samples []float64) float64 {
	return maxAbs(samples)
}

// reduce writes the proportional max-abs of data into each element of dst.
func reduce(dst, data []float64) {
	n := len(data)
	step := float64(n) / float64(len(dst))

	for i := range dst {
		lo := int(float64(i) * step)
		hi := min(int(math.Ceil(float64(i+1)*step)), n)
		if lo >= hi {
			dst[i] = 0
			continue
		}
		dst[i] = maxAbs(data[lo:hi])
	}
}

func maxAbs(s []float64) float64 {
	if len(s) == 0 {
		return 0
	}
	return floats.Norm(s, math.Inf(1))
}
