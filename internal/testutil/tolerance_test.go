package testutil

import "testing"

func TestRequireHelpersPass(t *testing.T) {
	RequireSliceNearlyEqual(t, []float64{1, 2}, []float64{1.0000001, 2}, 1e-6)
	RequireFinite(t, []float64{0, -1, 1e300})
	RequireNonDecreasing(t, []uint8{0, 0, 5, 255})
	RequireNonDecreasing(t, []float64{-1, -1, 0.5})
}
