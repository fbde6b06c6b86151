// Package colormap provides 256-entry RGBA lookup tables for rendering
// normalized intensities, such as quantized spectrogram values, as colors.
//
// Tables can be decoded from the packed 1024-byte form used by image
// hosts ([FromBytes]) or generated from a named palette ([Named]). Named
// palettes are defined by keyframes; a gain other than 1 warps the inner
// keyframe positions by pos^gain, moving color detail toward the quiet or
// the loud end of the range.
package colormap
