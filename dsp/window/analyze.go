package window

import "math"

// Analysis holds numerically computed spectral properties of a window.
type Analysis struct {
	// CoherentGain is sum(w[n]) / N, the DC response of the window.
	CoherentGain float64
	// ENBW is the equivalent noise bandwidth in bins.
	ENBW float64
	// Bandwidth3dB is the two-sided half-power main lobe width in bins.
	Bandwidth3dB float64
	// FirstMinimumBins is the distance of the first spectral null from DC in bins.
	FirstMinimumBins float64
	// HighestSidelobedB is the highest sidelobe level relative to DC in dB.
	HighestSidelobedB float64
	// ScallopLossdB is the level of a tone half a bin off-center relative to DC.
	ScallopLossdB float64
}

// Analyze evaluates the window's DTFT numerically and reports its main
// lobe and sidelobe properties. An empty or zero-sum window yields the
// zero Analysis.
func Analyze(coeffs []float64) Analysis {
	n := len(coeffs)
	if n == 0 {
		return Analysis{}
	}

	enbw, err := EquivalentNoiseBandwidth(coeffs)
	if err != nil {
		return Analysis{}
	}

	resp := response{coeffs: coeffs, ref: powerAt(coeffs, 0)}
	nf := float64(n)

	sum := 0.0
	for _, c := range coeffs {
		sum += c
	}

	firstMin := resp.firstMinimum()

	return Analysis{
		CoherentGain:      sum / nf,
		ENBW:              enbw,
		Bandwidth3dB:      2 * resp.halfPowerFreq() * nf,
		FirstMinimumBins:  firstMin * nf,
		HighestSidelobedB: resp.highestSidelobe(firstMin),
		ScallopLossdB:     toDB(resp.relative(0.5 / nf)),
	}
}

// response is the normalized power response of a window, frequencies are
// in cycles per sample.
type response struct {
	coeffs []float64
	ref    float64
}

func (r response) relative(freq float64) float64 {
	return powerAt(r.coeffs, freq) / r.ref
}

func (r response) step() float64 {
	return 1 / (8 * float64(len(r.coeffs)))
}

// halfPowerFreq bisects for the -3 dB point of the main lobe.
func (r response) halfPowerFreq() float64 {
	lo, hi := 0.0, 0.5
	for range 80 {
		mid := (lo + hi) / 2
		if r.relative(mid) > 0.5 {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

// firstMinimum scans outward for the first null and refines it with a
// golden-section search. The scan only accepts a turn-around once the
// response has dropped below -10 dB so flat-topped lobes are skipped.
func (r response) firstMinimum() float64 {
	step := r.step()
	prev := 1.0
	coarse := step

	for f := step; f < 0.5; f += step {
		v := r.relative(f)
		if prev < 0.1 && v > prev {
			coarse = f - step
			break
		}
		prev = v
	}

	a := math.Max(0, coarse-2*step)
	b := math.Min(0.5, coarse+2*step)

	const phi = 0.6180339887498949

	for range 80 {
		c := b - phi*(b-a)
		d := a + phi*(b-a)
		if r.relative(c) < r.relative(d) {
			b = d
		} else {
			a = c
		}
	}

	return (a + b) / 2
}

func (r response) highestSidelobe(from float64) float64 {
	step := r.step()
	peak := 0.0
	peakFreq := from

	for f := from; f < 0.5; f += step {
		if v := r.relative(f); v > peak {
			peak = v
			peakFreq = f
		}
	}

	fine := step / 32
	for f := math.Max(0, peakFreq-step); f <= peakFreq+step; f += fine {
		if v := r.relative(f); v > peak {
			peak = v
		}
	}

	return toDB(peak)
}

// powerAt evaluates |W(freq)|^2.
func powerAt(coeffs []float64, freq float64) float64 {
	re, im := 0.0, 0.0
	w := 2 * math.Pi * freq

	for k, c := range coeffs {
		s, co := math.Sincos(w * float64(k))
		re += c * co
		im -= c * s
	}

	return re*re + im*im
}

func toDB(power float64) float64 {
	if power <= 0 {
		return math.Inf(-1)
	}

	return 10 * math.Log10(power)
}
