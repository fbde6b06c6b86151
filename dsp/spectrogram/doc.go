// Package spectrogram computes short-time Fourier spectrograms of mono
// sample buffers for display.
//
// An [Engine] is built for one transform size and owns everything that is
// reused across calls: the window curve, an FFT executor with its plan and
// scratch buffers, an optional filter bank, an optional color table, and
// the [Snapshot] of the most recent quantized computation.
//
// Frames start every fftSize-overlap samples. The number of frames for n
// samples is (n-fftSize)/step + 1 when n >= fftSize, otherwise zero. An
// overlap at or above the transform size would make the step zero or
// negative; the engine clamps the step to 1 and logs a warning.
//
// Magnitudes are one-sided amplitudes |X[k]|*2/N for k in [0, N/2). The
// 2/N factor is applied to the DC bin as well, so a constant signal reads
// twice its level there. This keeps results comparable with existing
// renderings; it is an approximation, not a calibrated one-sided spectrum.
//
// Quantization maps 20*log10(max(mag, 1e-10)) from the range
// [-gain-range, -gain] dB onto 0..255, clamping at both ends and truncating.
//
// Engines are not safe for concurrent use. Use one engine per goroutine or
// guard calls with a mutex.
package spectrogram
