// Package interp provides the small interpolation primitives used by the
// spectrogram renderer and the spectrum peak refiner.
//
//   - [Linear]:    2-point linear interpolation
//   - [Bilinear]:  4-point interpolation on a unit grid cell
//   - [Parabolic]: vertex offset of a parabola through three samples
//   - [Sample]:    linear lookup at a fractional index into a slice
package interp
