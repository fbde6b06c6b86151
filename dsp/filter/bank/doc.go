// Package bank builds spectral filter banks: matrices that remap a
// linear-frequency magnitude vector onto another frequency axis.
//
// A [Matrix] has one row per output filter and one column per input bin;
// applying it computes, for every row, the dot product of that row with the
// magnitude vector. Two designers produce matrices:
//
//   - [Design] spreads filters evenly along a perceptual [scale.Scale]
//     (mel, logarithmic, bark, erb, or linear) between two frequencies.
//     Each filter linearly interpolates the two bins around its center.
//
//   - [Octave] sums the bins inside octave or fractional-octave bands.
//
// Octave band centers follow IEC 61260 (base-10 system):
//
//	G = 10^(3/10)              (octave ratio)
//	f_center = 1000 * G^(k/N)  (for 1/N-octave, integer k)
//	f_upper  = f_center * G^(1/(2*N))
//	f_lower  = f_center * G^(-1/(2*N))
//
// Basic usage:
//
//	m, err := bank.Design(scale.Mel, 128, 48000, 2048, 0, 0)
//	if err != nil {
//	    return err
//	}
//	out := make([]float64, m.Rows())
//	m.Apply(out, magnitudes)
package bank
