package spectrum

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-spectro/dsp/buffer"
	"github.com/cwbudde/algo-spectro/dsp/core"
)

var partsPool = buffer.NewPool()

// Magnitude returns |X[k]| for each complex spectrum bin.
//
// Real and imaginary parts are split into pooled scratch, so in steady
// state this allocates only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, release := splitParts(in)
	vecmath.Magnitude(out, re, im)
	release()

	return out
}

// Power returns |X[k]|^2 for each complex spectrum bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, release := splitParts(in)
	vecmath.Power(out, re, im)
	release()

	return out
}

// PowerDB returns 10*log10(|X[k]|^2 / n) per bin, floored at PSDFloor.
// n is usually the transform size; n <= 0 is treated as 1.
func PowerDB(in []complex128, n int) []float64 {
	out := Power(in)
	scale := 1 / float64(max(n, 1))

	for i, p := range out {
		out[i] = core.PowerDB(p*scale, PSDFloor)
	}

	return out
}

func splitParts(in []complex128) (re, im []float64, release func()) {
	buf := partsPool.Get(2 * len(in))
	s := buf.Samples()
	re, im = s[:len(in)], s[len(in):]

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im, func() { partsPool.Put(buf) }
}
