package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000))
	assert.Equal(t, 96000.0, cfg.SampleRate)
	assert.Equal(t, 48000.0, cfg.Nyquist())
	assert.Equal(t, 93.75, cfg.BinWidth(1024))
	assert.Zero(t, cfg.BinWidth(0))
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(
		WithSampleRate(0),
		nil,
		WithSampleRate(-5),
		WithSampleRate(math.NaN()),
		WithSampleRate(math.Inf(1)),
	)
	assert.Equal(t, DefaultProcessorConfig(), cfg)
}
