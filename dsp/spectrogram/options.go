package spectrogram

import (
	"io"
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectro/dsp/fft"
	"github.com/cwbudde/algo-spectro/dsp/window"
)

// Option configures an Engine.
type Option func(*config)

type config struct {
	window     window.Type
	windowName string
	alpha      float64
	hasAlpha   bool
	backend    fft.Backend
	logger     logrus.FieldLogger
}

func defaultConfig() config {
	return config{
		window:  window.TypeHann,
		backend: fft.AlgoFFT(),
	}
}

// WithWindow selects the analysis window. The default is Hann.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
		c.windowName = ""
	}
}

// WithWindowName selects the analysis window by name. Unknown names fall
// back to Hann; New logs the fallback.
func WithWindowName(name string) Option {
	return func(c *config) {
		c.windowName = name
	}
}

// WithAlpha sets the window shape parameter (Blackman alpha). Non-finite
// values are ignored.
func WithAlpha(alpha float64) Option {
	return func(c *config) {
		if !math.IsNaN(alpha) && !math.IsInf(alpha, 0) {
			c.alpha = alpha
			c.hasAlpha = true
		}
	}
}

// WithBackend selects the FFT backend. A nil backend is ignored.
func WithBackend(b fft.Backend) Option {
	return func(c *config) {
		if b != nil {
			c.backend = b
		}
	}
}

// WithLogger routes engine warnings to l. By default nothing is logged.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
