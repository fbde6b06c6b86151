package bank

import (
	"math"
	"sort"

	"github.com/cwbudde/algo-spectro/dsp/scale"
)

// octaveRatio is G = 10^(3/10) per IEC 61260.
var octaveRatio = math.Pow(10, 0.3)

const (
	defaultLowerFreq = 20.0
	defaultUpperFreq = 20000.0
)

// Design builds numFilters filters spread evenly along s between minHz and
// maxHz. The matrix has fftSize/2+1 columns, one per one-sided bin.
//
// Filter e is centered at s.ToHz(s(min) + e/numFilters*(s(max)-s(min))) and
// splits its unit weight linearly between the two bins around that
// frequency. minHz <= 0 starts at DC; maxHz <= 0 or at/above Nyquist ends
// at Nyquist.
func Design(s scale.Scale, numFilters int, sampleRate float64, fftSize int, minHz, maxHz float64) (*Matrix, error) {
	if err := validateDesign(numFilters, sampleRate, fftSize); err != nil {
		return nil, err
	}

	nyquist := sampleRate / 2
	if minHz <= 0 {
		minHz = 0
	}
	if maxHz <= 0 || maxHz >= nyquist {
		maxHz = nyquist
	}

	m, err := New(numFilters, fftSize/2+1)
	if err != nil {
		return nil, err
	}

	lo := s.FromHz(minHz)
	hi := s.FromHz(maxHz)
	binHz := sampleRate / float64(fftSize)

	for e := 0; e < numFilters; e++ {
		hz := s.ToHz(lo + float64(e)/float64(numFilters)*(hi-lo))
		pos := hz / binHz
		bin := int(math.Floor(pos))
		frac := pos - float64(bin)

		if bin >= 0 && bin < m.cols {
			m.Set(e, bin, 1-frac)
		}
		if bin+1 >= 0 && bin+1 < m.cols {
			m.Set(e, bin+1, frac)
		}
	}

	return m, nil
}

// Band describes one fractional-octave band.
type Band struct {
	CenterFreq float64 // center frequency in Hz
	LowCutoff  float64 // lower band edge in Hz
	HighCutoff float64 // upper band edge in Hz
}

type octaveConfig struct {
	lowerHz float64
	upperHz float64
}

// Option configures Octave.
type Option func(*octaveConfig)

// WithFrequencyRange sets custom lower and upper frequency limits
// for the band centers. Invalid ranges are ignored.
func WithFrequencyRange(lower, upper float64) Option {
	return func(cfg *octaveConfig) {
		if lower > 0 && upper > lower {
			cfg.lowerHz = lower
			cfg.upperHz = upper
		}
	}
}

// OctaveBands lists the 1/fraction-octave bands whose centers fall in the
// configured range and whose upper edge stays below Nyquist, ordered low to
// high.
func OctaveBands(fraction int, sampleRate float64, opts ...Option) []Band {
	if fraction <= 0 {
		fraction = 1
	}

	cfg := octaveConfig{lowerHz: defaultLowerFreq, upperHz: defaultUpperFreq}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if !(sampleRate > 0) {
		return nil
	}

	n := float64(fraction)
	halfBW := math.Pow(octaveRatio, 1/(2*n))
	nyquist := sampleRate / 2

	kMin := int(math.Ceil(n * math.Log(cfg.lowerHz/1000) / math.Log(octaveRatio)))
	kMax := int(math.Floor(n * math.Log(cfg.upperHz/1000) / math.Log(octaveRatio)))

	var bands []Band
	for k := kMin; k <= kMax; k++ {
		fc := 1000 * math.Pow(octaveRatio, float64(k)/n)
		fHi := fc * halfBW
		if fHi >= nyquist {
			continue
		}
		bands = append(bands, Band{CenterFreq: fc, LowCutoff: fc / halfBW, HighCutoff: fHi})
	}

	sort.Slice(bands, func(i, j int) bool {
		return bands[i].CenterFreq < bands[j].CenterFreq
	})

	return bands
}

// Octave builds a matrix summing the bins of each fractional-octave band.
// A bin belongs to a band when its center frequency lies in
// [LowCutoff, HighCutoff). Bands narrower than a bin take the single bin
// nearest their center so that no row is empty.
func Octave(fraction int, sampleRate float64, fftSize int, opts ...Option) (*Matrix, []Band, error) {
	if err := validateDesign(1, sampleRate, fftSize); err != nil {
		return nil, nil, err
	}

	bands := OctaveBands(fraction, sampleRate, opts...)
	if len(bands) == 0 {
		return nil, nil, errNoRows
	}

	m, err := New(len(bands), fftSize/2+1)
	if err != nil {
		return nil, nil, err
	}

	binHz := sampleRate / float64(fftSize)

	for i, b := range bands {
		first := int(math.Ceil(b.LowCutoff / binHz))
		last := int(math.Ceil(b.HighCutoff/binHz)) - 1

		if last < first {
			nearest := min(int(math.Round(b.CenterFreq/binHz)), m.cols-1)
			m.Set(i, nearest, 1)
			continue
		}

		for j := first; j <= last && j < m.cols; j++ {
			m.Set(i, j, 1)
		}
	}

	return m, bands, nil
}
