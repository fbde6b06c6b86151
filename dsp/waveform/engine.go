package waveform

import "github.com/cwbudde/algo-spectro/dsp/buffer"

// Engine stores one sample sequence per channel and answers ranged peak
// queries against them.
//
// Engines are not safe for concurrent use.
type Engine struct {
	channels *buffer.Set
}

// New returns an engine with numChannels empty channels.
func New(numChannels int) *Engine {
	return &Engine{channels: buffer.NewSet(numChannels)}
}

// Resize replaces the channel storage with n empty channels. Loaded data
// is discarded; backing memory is kept for reuse.
func (e *Engine) Resize(n int) {
	e.channels.Reset()
	e.channels.Resize(n)
}

// LoadChannel replaces channel idx with a copy of samples. It reports
// false and leaves the engine unchanged when idx is out of range.
func (e *Engine) LoadChannel(idx int, samples []float64) bool {
	return e.channels.Load(idx, samples)
}

// ChannelLength returns the number of samples in channel idx, 0 when idx
// is out of range.
func (e *Engine) ChannelLength(idx int) int {
	if b := e.channels.Channel(idx); b != nil {
		return b.Len()
	}
	return 0
}

// NumChannels returns the number of channel slots.
func (e *Engine) NumChannels() int {
	return e.channels.Len()
}

// Clear removes all channels.
func (e *Engine) Clear() {
	e.Resize(0)
}

// RangePeaks reduces samples [start, min(end, length)) of channel idx to
// width peak values, one per proportional sub-range.
//
// Degenerate queries never fail: an out-of-range channel or width <= 0
// yields max(width, 1) zeros, and an empty sample range yields width
// zeros.
func (e *Engine) RangePeaks(idx, start, end, width int) []float64 {
	if width <= 0 || idx < 0 || idx >= e.channels.Len() {
		return make([]float64, max(width, 1))
	}

	out := make([]float64, width)
	e.RangePeaksInto(out, idx, start, end)
	return out
}

// RangePeaksInto is RangePeaks writing len(dst) values into dst. dst is
// zeroed for degenerate queries.
func (e *Engine) RangePeaksInto(dst []float64, idx, start, end int) {
	if len(dst) == 0 {
		return
	}

	b := e.channels.Channel(idx)
	if b == nil {
		clear(dst)
		return
	}

	data := b.Range(start, end)
	if len(data) == 0 {
		clear(dst)
		return
	}

	reduce(dst, data)
}
