package window

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-vecmath"
)

// Type identifies a window function.
type Type int

const (
	TypeRectangular Type = iota
	TypeTriangular
	TypeBartlett
	TypeBartlettHann
	TypeBlackman
	TypeCosine
	TypeGauss
	TypeHamming
	TypeHann
	TypeLanczos
)

// DefaultBlackmanAlpha is the shape parameter used by Blackman when none is given.
const DefaultBlackmanAlpha = 0.16

var typeNames = map[Type]string{
	TypeRectangular:  "rectangular",
	TypeTriangular:   "triangular",
	TypeBartlett:     "bartlett",
	TypeBartlettHann: "bartlettHann",
	TypeBlackman:     "blackman",
	TypeCosine:       "cosine",
	TypeGauss:        "gauss",
	TypeHamming:      "hamming",
	TypeHann:         "hann",
	TypeLanczos:      "lanczos",
}

// Types returns all supported window types in declaration order.
func Types() []Type {
	return []Type{
		TypeRectangular,
		TypeTriangular,
		TypeBartlett,
		TypeBartlettHann,
		TypeBlackman,
		TypeCosine,
		TypeGauss,
		TypeHamming,
		TypeHann,
		TypeLanczos,
	}
}

// String returns the canonical window name.
func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}

	return "unknown"
}

// Parse resolves a window name. Matching ignores case, surrounding spaces,
// dashes and underscores, so "bartlett-hann" and "bartlettHann" are equal.
//
// Unknown names resolve to TypeHann with ok == false; callers that must
// never fail can use the returned type directly and report the fallback.
func Parse(name string) (Type, bool) {
	key := normalizeName(name)
	for t, n := range typeNames {
		if normalizeName(n) == key {
			return t, true
		}
	}

	return TypeHann, false
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "", "_", "", " ", "").Replace(name)
}

// Option configures window generation.
type Option func(*config)

type config struct {
	alpha float64
}

func defaultConfig() config {
	return config{
		alpha: DefaultBlackmanAlpha,
	}
}

// WithAlpha sets the shape parameter of parametric windows (Blackman).
// NaN and infinite values are ignored.
func WithAlpha(v float64) Option {
	return func(c *config) {
		if !math.IsNaN(v) && !math.IsInf(v, 0) {
			c.alpha = v
		}
	}
}

// Generate returns window coefficients of the given length.
//
// A single-sample window is always 1, every family is defined for it.
func Generate(t Type, length int, opts ...Option) []float64 {
	if length <= 0 {
		return nil
	}

	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	out := make([]float64, length)
	if length == 1 {
		out[0] = 1
		return out
	}

	for i := range out {
		out[i] = evalWindow(t, i, length, cfg)
	}

	return out
}

// Apply multiplies buf in-place by the selected window.
func Apply(t Type, buf []float64, opts ...Option) {
	if len(buf) == 0 {
		return
	}

	coeffs := Generate(t, len(buf), opts...)
	if len(coeffs) != len(buf) {
		return
	}

	vecmath.MulBlockInPlace(buf, coeffs)
}

// Hann returns Hann window coefficients.
func Hann(size int) ([]float64, error) {
	return Generate(TypeHann, size), validateLength(size)
}

// Hamming returns Hamming window coefficients.
func Hamming(size int) ([]float64, error) {
	return Generate(TypeHamming, size), validateLength(size)
}

// Blackman returns Blackman window coefficients for the given alpha.
func Blackman(size int, alpha float64) ([]float64, error) {
	if size <= 0 || math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return nil, validateBlackman(size, alpha)
	}

	return Generate(TypeBlackman, size, WithAlpha(alpha)), nil
}

// EquivalentNoiseBandwidth returns the ENBW in bins for a window.
func EquivalentNoiseBandwidth(coeffs []float64) (float64, error) {
	if len(coeffs) == 0 {
		return 0, errEmptyCoeffs
	}

	sum := 0.0
	sumSquares := 0.0

	for _, c := range coeffs {
		sum += c
		sumSquares += c * c
	}

	if sum == 0 {
		return 0, errZeroCoherentGain
	}

	return float64(len(coeffs)) * sumSquares / (sum * sum), nil
}

// ApplyCoefficients multiplies samples with coefficients and returns a new slice.
func ApplyCoefficients(samples, coeffs []float64) ([]float64, error) {
	if len(samples) != len(coeffs) {
		return nil, errMismatchedLength
	}

	out := make([]float64, len(samples))
	vecmath.MulBlock(out, samples, coeffs)

	return out, nil
}

// ApplyCoefficientsInPlace multiplies samples with coefficients in place.
func ApplyCoefficientsInPlace(samples, coeffs []float64) error {
	if len(samples) != len(coeffs) {
		return errMismatchedLength
	}

	vecmath.MulBlockInPlace(samples, coeffs)

	return nil
}

// evalWindow evaluates coefficient i of an n-point symmetric window, n > 1.
func evalWindow(t Type, i, n int, cfg config) float64 {
	fi := float64(i)
	fn := float64(n)
	d := fn - 1
	half := d / 2

	switch t {
	case TypeRectangular:
		return 1
	case TypeTriangular:
		return 2 / fn * (fn/2 - math.Abs(fi-half))
	case TypeBartlett:
		return 2 / d * (half - math.Abs(fi-half))
	case TypeBartlettHann:
		x := fi / d
		return 0.62 - 0.48*math.Abs(x-0.5) - 0.38*math.Cos(2*math.Pi*x)
	case TypeBlackman:
		a := cfg.alpha
		return (1-a)/2 - 0.5*math.Cos(2*math.Pi*fi/d) + a/2*math.Cos(4*math.Pi*fi/d)
	case TypeCosine:
		return math.Cos(math.Pi*fi/d - math.Pi/2)
	case TypeGauss:
		x := (fi - half) / (0.25 * half)
		return math.Exp(-0.5 * x * x)
	case TypeHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*fi/d)
	case TypeLanczos:
		return sinc(2*fi/d - 1)
	default:
		return 0.5 * (1 - math.Cos(2*math.Pi*fi/d))
	}
}

// sinc is the normalized sinc, 1 near the singularity.
func sinc(x float64) float64 {
	px := math.Pi * x
	if math.Abs(px) < 1e-6 {
		return 1
	}

	return math.Sin(px) / px
}
