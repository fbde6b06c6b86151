package core

// EnsureLen returns a slice of length n backed by buf when its capacity
// allows, otherwise a fresh allocation. Reused elements keep their old
// values; n <= 0 yields buf[:0].
func EnsureLen[T any](buf []T, n int) []T {
	switch {
	case n <= 0:
		return buf[:0]
	case cap(buf) >= n:
		return buf[:n]
	default:
		return make([]T, n)
	}
}
