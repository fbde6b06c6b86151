package webdemo

import (
	"encoding/binary"
	"math"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

// widen copies src into buf, growing it as needed.
func widen(buf []float64, src []float32) []float64 {
	buf = core.EnsureLen(buf, len(src))
	for i, v := range src {
		buf[i] = float64(v)
	}
	return buf
}

func narrow(src []float64) []float32 {
	out := make([]float32, len(src))
	for i, v := range src {
		out[i] = float32(v)
	}
	return out
}

// flatten concatenates frame-major rows.
func flatten[T any](rows [][]T) []T {
	n := 0
	for _, r := range rows {
		n += len(r)
	}

	out := make([]T, 0, n)
	for _, r := range rows {
		out = append(out, r...)
	}
	return out
}

func narrowRows(rows [][]float64) []float32 {
	return narrow(flatten(rows))
}

// DecodeFloat32s reinterprets little-endian IEEE-754 bytes, as laid out in
// a JS Float32Array buffer, as float32 values. Trailing bytes that do not
// form a whole value are ignored.
func DecodeFloat32s(b []byte) []float32 {
	out := make([]float32, len(b)/4)
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return out
}

// EncodeFloat32s packs data as little-endian IEEE-754 bytes, ready to be
// copied into a JS Float32Array buffer in one call.
func EncodeFloat32s(data []float32) []byte {
	out := make([]byte, len(data)*4)
	for i, v := range data {
		binary.LittleEndian.PutUint32(out[i*4:], math.Float32bits(v))
	}
	return out
}
