package webdemo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeFloat32sLayout(t *testing.T) {
	// 1.0 is 0x3f800000, stored low byte first.
	assert.Equal(t, []byte{0x00, 0x00, 0x80, 0x3f}, EncodeFloat32s([]float32{1}))
	assert.Empty(t, EncodeFloat32s(nil))
}

func TestDecodeFloat32sRestoresValues(t *testing.T) {
	in := []float32{0, -1.5, 3.25e-7, float32(math.Inf(1)), math.MaxFloat32}

	out := DecodeFloat32s(EncodeFloat32s(in))
	require.Len(t, out, len(in))
	assert.Equal(t, in, out)
}

func TestDecodeFloat32sIgnoresPartialValue(t *testing.T) {
	out := DecodeFloat32s([]byte{0x00, 0x00, 0x80, 0x3f, 0x01, 0x02})
	assert.Equal(t, []float32{1}, out)
	assert.Empty(t, DecodeFloat32s(nil))
}
