// Package buffer provides owned sample storage for the analysis engines:
// a reusable float64 Buffer, an indexed Set of channel buffers and a Pool
// for per-call scratch space. All DSP functions accept raw []float64
// slices; these types only manage copying and reuse.
package buffer
