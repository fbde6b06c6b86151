package buffer

import (
	"math/bits"
	"sync"
)

// minClass is the smallest capacity handed out by a Pool.
const minClass = 64

// Pool recycles scratch Buffers by power-of-two capacity class, so a
// request never receives a buffer that has to grow. It is safe for
// concurrent use.
type Pool struct {
	mu      sync.Mutex
	classes map[int]*sync.Pool
}

// NewPool returns an empty Pool.
func NewPool() *Pool {
	return &Pool{classes: make(map[int]*sync.Pool)}
}

// Get returns a zeroed Buffer of the requested length with capacity of at
// least the length rounded up to a power of two. Return it with Put.
func (p *Pool) Get(length int) *Buffer {
	if length < 0 {
		length = 0
	}

	class := classCeil(length)
	b := p.class(class).Get().(*Buffer)
	if cap(b.samples) < class {
		b.samples = make([]float64, length, class)
		return b
	}

	b.samples = b.samples[:length]
	clear(b.samples)

	return b
}

// Put hands b back for reuse. b must not be used afterwards. Buffers whose
// capacity is below the smallest class are dropped.
func (p *Pool) Put(b *Buffer) {
	if b == nil || cap(b.samples) < minClass {
		return
	}

	p.class(classFloor(cap(b.samples))).Put(b)
}

func (p *Pool) class(size int) *sync.Pool {
	p.mu.Lock()
	defer p.mu.Unlock()

	sp, ok := p.classes[size]
	if !ok {
		sp = &sync.Pool{New: func() any { return &Buffer{} }}
		p.classes[size] = sp
	}

	return sp
}

// classCeil is the smallest power of two >= n, at least minClass.
func classCeil(n int) int {
	if n <= minClass {
		return minClass
	}
	return 1 << bits.Len(uint(n-1))
}

// classFloor is the largest power of two <= n.
func classFloor(n int) int {
	return 1 << (bits.Len(uint(n)) - 1)
}
