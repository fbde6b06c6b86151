package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolGetReturnsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(8)
	require.Equal(t, 8, b.Len())
	for _, v := range b.Samples() {
		require.Zero(t, v)
	}

	p.Put(b)
}

func TestPoolReuseIsZeroed(t *testing.T) {
	p := NewPool()

	b := p.Get(4)
	b.Samples()[0] = 42
	b.Samples()[1] = 43
	p.Put(b)

	b2 := p.Get(4)
	assert.Equal(t, []float64{0, 0, 0, 0}, b2.Samples())
	p.Put(b2)
}

func TestPoolPutNilSafe(t *testing.T) {
	p := NewPool()
	assert.NotPanics(t, func() { p.Put(nil) })
}

func TestPoolCapacityClasses(t *testing.T) {
	p := NewPool()

	b := p.Get(100)
	assert.Equal(t, 100, b.Len())
	assert.Equal(t, 128, b.Cap())
	p.Put(b)

	small := p.Get(3)
	assert.Equal(t, 3, small.Len())
	assert.GreaterOrEqual(t, small.Cap(), minClass)

	// An odd-sized buffer goes to the class below its capacity.
	odd := New(200)
	p.Put(odd)
	got := p.Get(128)
	assert.GreaterOrEqual(t, got.Cap(), 128)
}

func TestClassBounds(t *testing.T) {
	assert.Equal(t, minClass, classCeil(0))
	assert.Equal(t, minClass, classCeil(64))
	assert.Equal(t, 128, classCeil(65))
	assert.Equal(t, 1024, classCeil(1024))
	assert.Equal(t, 128, classFloor(200))
	assert.Equal(t, 256, classFloor(256))
}
