// Package waveform reduces sample buffers to per-pixel peak envelopes for
// waveform overview rendering.
//
// [Peaks] and [GlobalMax] work on a caller-owned slice. [Engine] keeps a
// full-resolution copy of each channel so that zooming and scrolling only
// run the cheap [Engine.RangePeaks] reduction.
package waveform
