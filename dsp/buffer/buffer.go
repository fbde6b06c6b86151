package buffer

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Buffer owns a float64 sample slice and reuses its backing array across
// loads. DSP functions accept raw []float64; use Samples() to bridge.
type Buffer struct {
	samples []float64
}

// New returns a zero-filled Buffer of the given length.
func New(length int) *Buffer {
	if length < 0 {
		length = 0
	}
	return &Buffer{samples: make([]float64, length)}
}

// FromSlice copies s into a new Buffer.
func FromSlice(s []float64) *Buffer {
	b := &Buffer{}
	b.Load(s)
	return b
}

// Samples returns the underlying slice. It is valid until the next Load
// or Resize.
func (b *Buffer) Samples() []float64 {
	return b.samples
}

// Len returns the current number of samples.
func (b *Buffer) Len() int {
	return len(b.samples)
}

// Cap returns the current capacity of the backing slice.
func (b *Buffer) Cap() int {
	return cap(b.samples)
}

// Load replaces the contents with a copy of s, reusing capacity when it
// suffices. Later changes to s are not visible through the Buffer.
func (b *Buffer) Load(s []float64) {
	if len(s) > cap(b.samples) {
		b.samples = make([]float64, len(s))
	}
	b.samples = b.samples[:len(s)]
	copy(b.samples, s)
}

// Resize sets the length to n, reusing existing capacity when possible.
// New elements beyond the previous length are zeroed.
func (b *Buffer) Resize(n int) {
	if n < 0 {
		n = 0
	}
	oldLen := len(b.samples)
	if n <= cap(b.samples) {
		b.samples = b.samples[:n]
	} else {
		s := make([]float64, n)
		copy(s, b.samples)
		b.samples = s
	}
	// The backing array may hold stale data from an earlier, longer load.
	if n > oldLen {
		clear(b.samples[oldLen:n])
	}
}

// Reset drops the contents but keeps the backing array.
func (b *Buffer) Reset() {
	b.samples = b.samples[:0]
}

// Zero sets all samples to 0.
func (b *Buffer) Zero() {
	clear(b.samples)
}

// Range returns the view [start, end) with both bounds clamped to the
// buffer. An empty or inverted range yields an empty slice.
func (b *Buffer) Range(start, end int) []float64 {
	start = max(start, 0)
	end = min(end, len(b.samples))
	if start >= end {
		return b.samples[:0]
	}
	return b.samples[start:end]
}

// PeakAbs returns the largest absolute sample value, 0 when empty.
func (b *Buffer) PeakAbs() float64 {
	if len(b.samples) == 0 {
		return 0
	}
	return floats.Norm(b.samples, math.Inf(1))
}

// Copy returns a deep copy of the buffer.
func (b *Buffer) Copy() *Buffer {
	return FromSlice(b.samples)
}
