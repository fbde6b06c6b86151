// Package spectrum estimates averaged power spectra and locates spectral
// peaks.
//
// [PowerSpectrum] is a Welch-style periodogram: frames of FFTSize samples
// advance by a hop derived from the overlap percentage, each frame is
// windowed, mean-removed and transformed, and |X[k]|^2 is averaged over all
// frames. The result is 10*log10(avg/FFTSize) per bin for k in
// [0, FFTSize/2], floored at 1e-16 before the logarithm.
//
// [PeakFrequency] and [LevelAt] read such a dB spectrum back in Hz.
package spectrum
