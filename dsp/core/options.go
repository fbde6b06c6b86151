package core

import "math"

// ProcessorConfig holds the settings shared by signal sources and
// analyzers that work at a fixed sample rate.
type ProcessorConfig struct {
	SampleRate float64
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns a 48 kHz configuration.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{SampleRate: 48000}
}

// WithSampleRate sets the sample rate. Non-positive and non-finite values
// are ignored.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 && !math.IsInf(sampleRate, 1) {
			cfg.SampleRate = sampleRate
		}
	}
}

// ApplyProcessorOptions applies opts in order on top of the defaults.
// Nil options are skipped.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Nyquist returns half the sample rate.
func (c ProcessorConfig) Nyquist() float64 {
	return c.SampleRate / 2
}

// BinWidth returns the spacing in Hz between bins of an n-point transform,
// 0 for n <= 0.
func (c ProcessorConfig) BinWidth(n int) float64 {
	if n <= 0 {
		return 0
	}
	return c.SampleRate / float64(n)
}
