package interp

import "math"

// ParabolicEpsilon is the smallest curvature Parabolic accepts.
const ParabolicEpsilon = 1e-10

// Linear interpolates from a to b at t in [0,1].
func Linear(t, a, b float64) float64 {
	return a + t*(b-a)
}

// Bilinear interpolates inside a grid cell. q00 is at (0,0), q10 at (1,0),
// q01 at (0,1) and q11 at (1,1); tx and ty are the fractional coordinates.
func Bilinear(tx, ty, q00, q10, q01, q11 float64) float64 {
	top := Linear(tx, q00, q10)
	bottom := Linear(tx, q01, q11)

	return Linear(ty, top, bottom)
}

// Parabolic fits a parabola through (-1, ym1), (0, y0), (1, y1) and returns
// the abscissa of its vertex relative to the center sample. ok is false when
// the three points are (nearly) collinear.
func Parabolic(ym1, y0, y1 float64) (offset float64, ok bool) {
	a := (y1 - 2*y0 + ym1) / 2
	if math.Abs(a) <= ParabolicEpsilon {
		return 0, false
	}

	return (ym1 - y1) / (4 * a), true
}

// Sample reads data at a fractional index with linear interpolation.
// Positions outside the slice clamp to the first or last element; an empty
// slice yields 0.
func Sample(data []float64, pos float64) float64 {
	n := len(data)
	if n == 0 {
		return 0
	}

	if !(pos > 0) {
		return data[0]
	}

	last := float64(n - 1)
	if pos >= last {
		return data[n-1]
	}

	i := int(pos)

	return Linear(pos-float64(i), data[i], data[i+1])
}
