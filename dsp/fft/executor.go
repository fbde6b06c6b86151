package fft

import (
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// Option configures an Executor or a Cache.
type Option func(*config)

type config struct {
	backend Backend
}

func defaultConfig() config {
	return config{backend: AlgoFFT()}
}

// WithBackend selects the plan backend. A nil backend is ignored.
func WithBackend(b Backend) Option {
	return func(c *config) {
		if b != nil {
			c.backend = b
		}
	}
}

func applyOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Executor windows real frames and transforms them with a reused plan.
//
// The slices returned by Transform alias internal scratch memory and are
// overwritten by the next call.
type Executor struct {
	size     int
	plan     Plan
	backend  string
	windowed []float64
	scratch  []complex128
	re, im   []float64
}

// NewExecutor plans a transform of the given size.
func NewExecutor(size int, opts ...Option) (*Executor, error) {
	if err := validateSize(size); err != nil {
		return nil, err
	}

	cfg := applyOptions(opts)
	if cfg.backend == nil {
		return nil, errNilBackend
	}

	plan, err := cfg.backend.NewPlan(size)
	if err != nil {
		return nil, err
	}

	return newExecutor(size, plan, cfg.backend.Name()), nil
}

func newExecutor(size int, plan Plan, backend string) *Executor {
	bins := size/2 + 1

	return &Executor{
		size:     size,
		plan:     plan,
		backend:  backend,
		windowed: make([]float64, size),
		scratch:  make([]complex128, size),
		re:       make([]float64, bins),
		im:       make([]float64, bins),
	}
}

// Size returns the transform size.
func (e *Executor) Size() int { return e.size }

// Bins returns the number of one-sided magnitude bins, Size()/2.
func (e *Executor) Bins() int { return e.size / 2 }

// Backend returns the name of the plan backend.
func (e *Executor) Backend() string { return e.backend }

// Transform multiplies frame by win and runs the forward transform in
// place. Frames shorter than the transform size are zero-padded, longer
// frames are truncated. A nil window means rectangular. When removeMean is
// set the mean of the windowed frame is subtracted before transforming.
func (e *Executor) Transform(frame, win []float64, removeMean bool) ([]complex128, error) {
	n := copy(e.windowed, frame)
	for i := n; i < e.size; i++ {
		e.windowed[i] = 0
	}

	if len(win) == e.size {
		vecmath.MulBlockInPlace(e.windowed, win)
	}

	if removeMean {
		mean := floats.Sum(e.windowed) / float64(e.size)
		floats.AddConst(-mean, e.windowed)
	}

	for i, v := range e.windowed {
		e.scratch[i] = complex(v, 0)
	}

	if err := e.plan.Forward(e.scratch, e.scratch); err != nil {
		return nil, err
	}

	return e.scratch, nil
}

// Magnitudes writes the one-sided amplitude spectrum of a windowed frame
// into dst: |X[k]| * 2/N for k in [0, len(dst)). dst may hold at most
// Bins() values.
//
// The 2/N scale is applied to DC as well, so bin 0 reads twice its true
// amplitude.
func (e *Executor) Magnitudes(dst, frame, win []float64) error {
	if err := validateBins(dst, e.Bins()); err != nil {
		return err
	}

	spec, err := e.Transform(frame, win, false)
	if err != nil {
		return err
	}

	n := len(dst)
	e.split(spec, n)
	vecmath.Magnitude(dst, e.re[:n], e.im[:n])
	floats.Scale(2/float64(e.size), dst)

	return nil
}

// Powers writes the unscaled squared magnitudes |X[k]|^2 of a windowed,
// optionally mean-removed frame into dst. dst may hold at most Size()/2+1
// values.
func (e *Executor) Powers(dst, frame, win []float64, removeMean bool) error {
	if err := validateBins(dst, e.size/2+1); err != nil {
		return err
	}

	spec, err := e.Transform(frame, win, removeMean)
	if err != nil {
		return err
	}

	n := len(dst)
	e.split(spec, n)
	vecmath.Power(dst, e.re[:n], e.im[:n])

	return nil
}

func (e *Executor) split(spec []complex128, n int) {
	for i := 0; i < n; i++ {
		e.re[i] = real(spec[i])
		e.im[i] = imag(spec[i])
	}
}
