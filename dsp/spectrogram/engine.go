package spectrogram

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectro/dsp/colormap"
	"github.com/cwbudde/algo-spectro/dsp/fft"
	"github.com/cwbudde/algo-spectro/dsp/filter/bank"
	"github.com/cwbudde/algo-spectro/dsp/scale"
	"github.com/cwbudde/algo-spectro/dsp/window"
)

// SpectrumConfig records the frequency axis a caller displays. The engine
// stores it for bookkeeping only; it never changes a computation.
type SpectrumConfig struct {
	Scale scale.Scale
	MinHz float64
	MaxHz float64
}

// Engine computes spectrograms for a fixed transform size.
type Engine struct {
	fftSize    int
	windowType window.Type
	win        []float64
	exec       *fft.Executor

	bank   *bank.Matrix
	colors *colormap.Table
	config SpectrumConfig
	last   *Snapshot

	log logrus.FieldLogger

	// filter-bank projection scratch, one value per filter
	proj []float64
}

// New creates an engine for transforms of fftSize points. fftSize should
// be a power of two for speed but any size >= 2 works.
func New(fftSize int, opts ...Option) (*Engine, error) {
	if err := validateFFTSize(fftSize); err != nil {
		return nil, err
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	log := cfg.logger
	if log == nil {
		log = discardLogger()
	}

	wt := cfg.window
	if cfg.windowName != "" {
		var ok bool
		if wt, ok = window.Parse(cfg.windowName); !ok {
			log.WithFields(logrus.Fields{
				"function": "New",
				"window":   cfg.windowName,
				"fallback": wt.String(),
			}).Warn("Unknown window name, using fallback")
		}
	}

	var winOpts []window.Option
	if cfg.hasAlpha {
		winOpts = append(winOpts, window.WithAlpha(cfg.alpha))
	}

	exec, err := fft.NewExecutor(fftSize, fft.WithBackend(cfg.backend))
	if err != nil {
		return nil, fmt.Errorf("spectrogram: %w", err)
	}

	return &Engine{
		fftSize:    fftSize,
		windowType: wt,
		win:        window.Generate(wt, fftSize, winOpts...),
		exec:       exec,
		log:        log,
	}, nil
}

// FFTSize returns the transform size.
func (e *Engine) FFTSize() int { return e.fftSize }

// FreqBins returns the number of linear magnitude bins per frame, FFTSize()/2.
func (e *Engine) FreqBins() int { return e.fftSize / 2 }

// WindowType returns the window family in use.
func (e *Engine) WindowType() window.Type { return e.windowType }

// Window returns a copy of the window curve.
func (e *Engine) Window() []float64 {
	out := make([]float64, len(e.win))
	copy(out, e.win)
	return out
}

// Backend returns the name of the FFT backend.
func (e *Engine) Backend() string { return e.exec.Backend() }

// LoadFilterBank installs m as the filter bank. m must have FFTSize()/2+1
// columns; otherwise an error is returned and the current bank is kept.
// A nil matrix clears the bank. The engine keeps its own copy.
func (e *Engine) LoadFilterBank(m *bank.Matrix) error {
	if m == nil {
		e.ClearFilterBank()
		return nil
	}

	if err := validateBankShape(m.Rows(), m.Cols(), e.fftSize); err != nil {
		e.log.WithFields(logrus.Fields{
			"function": "LoadFilterBank",
			"rows":     m.Rows(),
			"cols":     m.Cols(),
			"fft_size": e.fftSize,
		}).Warn("Filter bank rejected")
		return err
	}

	e.bank = m.Clone()
	e.proj = make([]float64, m.Rows())

	return nil
}

// LoadFilterBankFlat installs a flat row-major bank of numFilters rows.
func (e *Engine) LoadFilterBankFlat(weights []float64, numFilters int) error {
	m, err := bank.FromFlat(weights, numFilters)
	if err != nil {
		e.log.WithFields(logrus.Fields{
			"function":    "LoadFilterBankFlat",
			"weights":     len(weights),
			"num_filters": numFilters,
		}).Warn("Filter bank rejected")
		return err
	}

	return e.LoadFilterBank(m)
}

// DesignFilterBank builds and installs a bank of numFilters filters spaced
// along s between minHz and maxHz (see bank.Design).
func (e *Engine) DesignFilterBank(s scale.Scale, numFilters int, sampleRate, minHz, maxHz float64) error {
	m, err := bank.Design(s, numFilters, sampleRate, e.fftSize, minHz, maxHz)
	if err != nil {
		return err
	}

	return e.LoadFilterBank(m)
}

// DesignOctaveBank installs a 1/fraction-octave band bank and returns the
// bands it covers, low to high.
func (e *Engine) DesignOctaveBank(fraction int, sampleRate float64, opts ...bank.Option) ([]bank.Band, error) {
	m, bands, err := bank.Octave(fraction, sampleRate, e.fftSize, opts...)
	if err != nil {
		return nil, err
	}

	if err := e.LoadFilterBank(m); err != nil {
		return nil, err
	}

	return bands, nil
}

// ClearFilterBank returns the engine to linear frequency bins.
func (e *Engine) ClearFilterBank() {
	e.bank = nil
	e.proj = nil
}

// NumFilters returns the number of filters in the loaded bank, 0 if none.
func (e *Engine) NumFilters() int {
	if e.bank == nil {
		return 0
	}
	return e.bank.Rows()
}

// OutputBins returns the number of rows per quantized frame: NumFilters()
// with a bank loaded, FreqBins() otherwise.
func (e *Engine) OutputBins() int {
	if e.bank != nil {
		return e.bank.Rows()
	}
	return e.FreqBins()
}

// SetColorTable installs a packed 1024-byte RGBA table. Any other length
// is ignored and reported as false; the previous table stays in place.
func (e *Engine) SetColorTable(b []byte) bool {
	t, ok := colormap.FromBytes(b)
	if !ok {
		e.log.WithFields(logrus.Fields{
			"function": "SetColorTable",
			"length":   len(b),
			"want":     colormap.ByteLen,
		}).Warn("Color table ignored")
		return false
	}

	e.colors = &t

	return true
}

// SetColorMap installs t as the color table.
func (e *Engine) SetColorMap(t colormap.Table) {
	e.colors = &t
}

// ColorTable returns the installed table and whether one is set.
func (e *Engine) ColorTable() (colormap.Table, bool) {
	if e.colors == nil {
		return colormap.Table{}, false
	}
	return *e.colors, true
}

// ClearColorTable removes the color table; Image then renders all zeros.
func (e *Engine) ClearColorTable() {
	e.colors = nil
}

// SetSpectrumConfig records the caller's frequency axis.
func (e *Engine) SetSpectrumConfig(c SpectrumConfig) {
	e.config = c
}

// SetSpectrumConfigName records the frequency axis by scale name. Unknown
// names are stored as linear and logged.
func (e *Engine) SetSpectrumConfigName(name string, minHz, maxHz float64) {
	s, ok := scale.Parse(name)
	if !ok {
		e.log.WithFields(logrus.Fields{
			"function": "SetSpectrumConfigName",
			"scale":    name,
			"fallback": s.String(),
		}).Warn("Unknown scale name, using fallback")
	}

	e.config = SpectrumConfig{Scale: s, MinHz: minHz, MaxHz: maxHz}
}

// SpectrumConfig returns the recorded frequency axis.
func (e *Engine) SpectrumConfig() SpectrumConfig { return e.config }
