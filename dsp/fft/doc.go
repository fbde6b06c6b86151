// Package fft executes forward transforms of windowed real frames.
//
// An [Executor] owns one plan and the scratch buffers for a fixed
// transform size, so repeated frames of the same size never re-plan or
// reallocate. Plans come from a [Backend]; [AlgoFFT] is the default and
// [Gonum] wraps gonum's complex FFT. A [Cache] hands out one executor per
// size for callers that analyze with varying transform sizes.
//
// Executors are not safe for concurrent use.
package fft
