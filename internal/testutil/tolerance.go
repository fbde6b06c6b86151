package testutil

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range got {
		require.InDeltaf(t, want[i], got[i], eps, "index %d", i)
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		require.Falsef(t, math.IsNaN(v) || math.IsInf(v, 0), "index %d: non-finite value %v", i, v)
	}
}

// RequireNonDecreasing fails t if data ever steps down.
func RequireNonDecreasing[T ~uint8 | ~float64](t *testing.T, data []T) {
	t.Helper()
	for i := 1; i < len(data); i++ {
		require.GreaterOrEqualf(t, data[i], data[i-1], "index %d", i)
	}
}
