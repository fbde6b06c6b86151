// Package signal generates deterministic test signals: tones, sweeps and
// noise for exercising spectral analysis.
package signal

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return &Generator{
		cfg:  core.ApplyProcessorOptions(opts...),
		seed: 1,
	}
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := NewGenerator(coreOpts...)
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 { return g.seed }

// SetSeed changes the noise seed.
func (g *Generator) SetSeed(seed int64) { g.seed = seed }

// Sine generates a sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	if err := validateSamples("sine", samples); err != nil {
		return nil, err
	}
	out := make([]float64, samples)
	step := 2 * math.Pi * freqHz / g.cfg.SampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out, nil
}

// LinearSweep generates a sine whose frequency moves linearly from
// startHz to endHz over the signal.
func (g *Generator) LinearSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := validateSamples("linear sweep", samples); err != nil {
		return nil, err
	}
	if err := g.validateBand(startHz, endHz); err != nil {
		return nil, err
	}

	sr := g.cfg.SampleRate
	duration := float64(samples) / sr
	rate := (endHz - startHz) / duration

	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / sr
		out[i] = amplitude * math.Sin(2*math.Pi*(startHz*t+rate*t*t/2))
	}
	return out, nil
}

// LogSweep generates an exponential sine sweep from startHz to endHz.
// Both frequencies must be positive.
func (g *Generator) LogSweep(startHz, endHz, amplitude float64, samples int) ([]float64, error) {
	if err := validateSamples("log sweep", samples); err != nil {
		return nil, err
	}
	if !(startHz > 0) || !(endHz > 0) {
		return nil, fmt.Errorf("log sweep frequencies must be > 0: %f, %f", startHz, endHz)
	}
	if err := g.validateBand(startHz, endHz); err != nil {
		return nil, err
	}
	if startHz == endHz {
		return g.Sine(startHz, amplitude, samples)
	}

	sr := g.cfg.SampleRate
	duration := float64(samples) / sr
	k := math.Log(endHz / startHz)

	out := make([]float64, samples)
	for i := range out {
		t := float64(i) / sr
		phase := 2 * math.Pi * startHz * duration / k * (math.Exp(t/duration*k) - 1)
		out[i] = amplitude * math.Sin(phase)
	}
	return out, nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if err := validateSamples("noise", samples); err != nil {
		return nil, err
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

// Mix sums signals sample by sample into a new slice as long as the
// longest input.
func Mix(signals ...[]float64) []float64 {
	n := 0
	for _, s := range signals {
		n = max(n, len(s))
	}

	out := make([]float64, n)
	for _, s := range signals {
		floats.Add(out[:len(s)], s)
	}
	return out
}

// Normalize scales data to target peak amplitude and returns a new slice.
func Normalize(data []float64, targetPeak float64) ([]float64, error) {
	if targetPeak < 0 {
		return nil, fmt.Errorf("normalize target peak must be >= 0: %f", targetPeak)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("normalize input must not be empty")
	}

	out := make([]float64, len(data))
	maxAbs := floats.Norm(data, math.Inf(1))
	if maxAbs == 0 || targetPeak == 0 {
		return out, nil
	}

	floats.ScaleTo(out, targetPeak/maxAbs, data)
	return out, nil
}

func validateSamples(kind string, samples int) error {
	if samples <= 0 {
		return fmt.Errorf("%s samples must be > 0: %d", kind, samples)
	}
	return nil
}

// validateBand rejects sweep endpoints above Nyquist, where the sweep
// would alias.
func (g *Generator) validateBand(startHz, endHz float64) error {
	nyquist := g.cfg.Nyquist()
	if math.Abs(startHz) > nyquist || math.Abs(endHz) > nyquist {
		return fmt.Errorf("sweep %f..%f Hz exceeds nyquist %f Hz", startHz, endHz, nyquist)
	}
	return nil
}
