package spectrogram

import (
	"math"

	"github.com/cwbudde/algo-spectro/dsp/interp"
)

// Image renders samples as a width x height RGBA picture, row-major with
// four bytes per pixel. Time runs left to right and frequency bottom to
// top, so row 0 shows the highest output bin.
//
// The quantized spectrogram is computed once and each pixel bilinearly
// blends the four surrounding grid values, normalized to [0,1], before
// looking up the color table. The engine's snapshot is not touched.
//
// Non-positive dimensions yield an empty slice. Without a color table, or
// when samples are shorter than one frame, the picture is all zeros.
func (e *Engine) Image(samples []float64, width, height, overlap int, gainDB, rangeDB float64) []byte {
	if width <= 0 || height <= 0 {
		return []byte{}
	}

	out := make([]byte, width*height*4)
	if e.colors == nil {
		return out
	}

	grid := e.normalizedGrid(samples, overlap, gainDB, rangeDB)
	if len(grid) == 0 {
		return out
	}

	rows := e.OutputBins()
	timeStep := float64(len(grid)) / float64(width)
	freqStep := float64(rows) / float64(height)

	cols := make([]cell, width)
	for x := range cols {
		cols[x] = neighbors(float64(x)*timeStep, len(grid))
	}

	for y := 0; y < height; y++ {
		f := neighbors(float64(height-1-y)*freqStep, rows)

		for x, t := range cols {
			v := interp.Bilinear(t.frac, f.frac,
				grid[t.lo][f.lo], grid[t.hi][f.lo],
				grid[t.lo][f.hi], grid[t.hi][f.hi])

			c := e.colors.At(v)
			p := (y*width + x) * 4
			out[p] = c.R
			out[p+1] = c.G
			out[p+2] = c.B
			out[p+3] = c.A
		}
	}

	return out
}

// cell locates a fractional grid coordinate between two clamped indices.
type cell struct {
	lo, hi int
	frac   float64
}

func neighbors(pos float64, n int) cell {
	i := int(math.Floor(pos))
	c := cell{
		lo:   min(i, n-1),
		hi:   min(i+1, n-1),
		frac: pos - float64(i),
	}

	if c.lo == c.hi {
		c.frac = 0
	}

	return c
}

func (e *Engine) normalizedGrid(samples []float64, overlap int, gainDB, rangeDB float64) [][]float64 {
	mags := e.Linear(samples, overlap)

	grid := make([][]float64, len(mags))
	for i, m := range mags {
		q := e.quantizeFrame(m, gainDB, rangeDB)
		row := make([]float64, len(q))
		for j, b := range q {
			row[j] = float64(b) / 255
		}
		grid[i] = row
	}

	return grid
}
