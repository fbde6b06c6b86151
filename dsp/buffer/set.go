package buffer

// Set is an indexed collection of channel buffers. Slots are allocated
// lazily on first load and survive Resize while in range.
type Set struct {
	channels []*Buffer
}

// NewSet returns a Set with n empty slots.
func NewSet(n int) *Set {
	s := &Set{}
	s.Resize(n)
	return s
}

// Resize changes the number of slots. Existing slots below n keep their
// contents; new slots start empty.
func (s *Set) Resize(n int) {
	n = max(n, 0)
	if n <= len(s.channels) {
		clear(s.channels[n:])
		s.channels = s.channels[:n]
		return
	}
	s.channels = append(s.channels, make([]*Buffer, n-len(s.channels))...)
}

// Len returns the number of slots.
func (s *Set) Len() int {
	return len(s.channels)
}

// Load copies samples into slot i. It reports false when i is out of range.
func (s *Set) Load(i int, samples []float64) bool {
	if i < 0 || i >= len(s.channels) {
		return false
	}
	if s.channels[i] == nil {
		s.channels[i] = &Buffer{}
	}
	s.channels[i].Load(samples)
	return true
}

// Channel returns slot i, or nil when i is out of range or never loaded.
func (s *Set) Channel(i int) *Buffer {
	if i < 0 || i >= len(s.channels) {
		return nil
	}
	return s.channels[i]
}

// Reset empties every slot and keeps the slot count.
func (s *Set) Reset() {
	for _, b := range s.channels {
		if b != nil {
			b.Reset()
		}
	}
}
