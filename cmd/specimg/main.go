// Command specimg renders a synthetic test signal to a spectrogram PNG.
//
// The signal is a linear or logarithmic sine sweep with optional white
// noise. It exercises the same engine path a display uses: window, FFT,
// optional filter bank, dB quantization, bilinear resampling and color
// mapping.
//
// Usage:
//
//	specimg [flags]
//
// Examples:
//
//	specimg -o sweep.png
//	specimg -sweep log -from 40 -to 16000 -scale mel -filters 128 -colormap inferno
//	specimg -fft 4096 -overlap 3072 -width 1600 -height 512
//	specimg -octave 3 -colormap iron -enhance
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectro/dsp/colormap"
	"github.com/cwbudde/algo-spectro/dsp/core"
	"github.com/cwbudde/algo-spectro/dsp/scale"
	"github.com/cwbudde/algo-spectro/dsp/signal"
	"github.com/cwbudde/algo-spectro/dsp/spectrogram"
	"github.com/cwbudde/algo-spectro/dsp/spectrum"
	"github.com/cwbudde/algo-spectro/dsp/window"
)

type options struct {
	output     string
	width      int
	height     int
	fftSize    int
	overlap    int
	window     string
	colormap   string
	enhance    bool
	gainDB     float64
	rangeDB    float64
	sampleRate float64
	duration   float64
	sweep      string
	fromHz     float64
	toHz       float64
	noise      float64
	scale      string
	filters    int
	octave     int
}

func main() {
	var opts options

	flag.StringVar(&opts.output, "o", "spectrogram.png", "output PNG file")
	flag.IntVar(&opts.width, "width", 800, "image width in pixels")
	flag.IntVar(&opts.height, "height", 256, "image height in pixels")
	flag.IntVar(&opts.fftSize, "fft", 1024, "transform size")
	flag.IntVar(&opts.overlap, "overlap", -1, "frame overlap in samples, negative picks one from the image width")
	flag.StringVar(&opts.window, "window", "hann", "analysis window")
	flag.StringVar(&opts.colormap, "colormap", colormap.DefaultName, "color map: "+strings.Join(colormap.Names(), ", "))
	flag.BoolVar(&opts.enhance, "enhance", false, "apply the color map's tuned contrast and gain")
	flag.Float64Var(&opts.gainDB, "gain", 0, "gain in dB, shifts the displayed range down")
	flag.Float64Var(&opts.rangeDB, "range", 80, "displayed dynamic range in dB")
	flag.Float64Var(&opts.sampleRate, "sr", 44100, "sample rate in Hz")
	flag.Float64Var(&opts.duration, "duration", 2, "signal length in seconds")
	flag.StringVar(&opts.sweep, "sweep", "linear", "sweep shape: linear or log")
	flag.Float64Var(&opts.fromHz, "from", 100, "sweep start frequency in Hz")
	flag.Float64Var(&opts.toHz, "to", 10000, "sweep end frequency in Hz")
	noiseDB := flag.Float64("noise", -60, "white noise level in dBFS")
	flag.StringVar(&opts.scale, "scale", "linear", "frequency axis for the filter bank")
	flag.IntVar(&opts.filters, "filters", 0, "number of filter-bank rows, 0 shows raw bins")
	flag.IntVar(&opts.octave, "octave", 0, "fractional-octave bank, 3 for third-octave rows; overrides -filters")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()
	opts.noise = core.DBToLinear(*noiseDB)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if *verbose {
		log.SetLevel(logrus.DebugLevel)
	}

	if err := run(opts, log); err != nil {
		log.WithError(err).Error("Rendering failed")
		os.Exit(1)
	}
}

func run(opts options, log *logrus.Logger) error {
	if opts.width <= 0 || opts.height <= 0 {
		return fmt.Errorf("image size must be positive: %dx%d", opts.width, opts.height)
	}

	samples, err := synthesize(opts)
	if err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"samples":     len(samples),
		"sample_rate": opts.sampleRate,
		"sweep":       opts.sweep,
	}).Debug("Signal generated")

	img, err := render(samples, opts, log)
	if err != nil {
		return err
	}

	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", opts.output, err)
	}
	if err := f.Close(); err != nil {
		return err
	}

	log.WithFields(logrus.Fields{
		"file":   opts.output,
		"width":  opts.width,
		"height": opts.height,
	}).Info("Spectrogram written")

	return nil
}

func synthesize(opts options) ([]float64, error) {
	n := int(opts.duration * opts.sampleRate)
	gen := signal.NewGeneratorWithOptions(
		[]core.ProcessorOption{core.WithSampleRate(opts.sampleRate)},
		signal.WithSeed(1),
	)

	var (
		sweep []float64
		err   error
	)
	switch opts.sweep {
	case "linear":
		sweep, err = gen.LinearSweep(opts.fromHz, opts.toHz, 0.5, n)
	case "log":
		sweep, err = gen.LogSweep(opts.fromHz, opts.toHz, 0.5, n)
	default:
		return nil, fmt.Errorf("unknown sweep %q", opts.sweep)
	}
	if err != nil {
		return nil, err
	}

	if opts.noise <= 0 {
		return sweep, nil
	}

	noise, err := gen.WhiteNoise(opts.noise, n)
	if err != nil {
		return nil, err
	}

	return signal.Mix(sweep, noise), nil
}

func render(samples []float64, opts options, log *logrus.Logger) (*image.RGBA, error) {
	e, err := spectrogram.New(opts.fftSize,
		spectrogram.WithWindowName(opts.window),
		spectrogram.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	s, ok := scale.Parse(opts.scale)
	if !ok {
		log.WithFields(logrus.Fields{
			"scale":    opts.scale,
			"fallback": s.String(),
		}).Warn("Unknown scale, using fallback")
	}
	e.SetSpectrumConfig(spectrogram.SpectrumConfig{Scale: s, MaxHz: opts.sampleRate / 2})

	switch {
	case opts.octave > 0:
		bands, err := e.DesignOctaveBank(opts.octave, opts.sampleRate)
		if err != nil {
			return nil, err
		}
		log.WithFields(logrus.Fields{
			"bands":   len(bands),
			"low_hz":  bands[0].CenterFreq,
			"high_hz": bands[len(bands)-1].CenterFreq,
		}).Debug("Octave bank installed")
	case opts.filters > 0:
		if err := e.DesignFilterBank(s, opts.filters, opts.sampleRate, 0, opts.sampleRate/2); err != nil {
			return nil, err
		}
	}

	table, ok := colormap.Named(opts.colormap, 1)
	if !ok {
		log.WithFields(logrus.Fields{
			"colormap": opts.colormap,
			"fallback": colormap.DefaultName,
		}).Warn("Unknown color map, using fallback")
	}
	if opts.enhance {
		name := opts.colormap
		if !ok {
			name = colormap.DefaultName
		}
		table = colormap.Build(name, colormap.Defaults(name))
	}
	e.SetColorMap(table)

	overlap := opts.overlap
	if overlap < 0 {
		overlap = spectrogram.AutoOverlap(opts.fftSize, len(samples), opts.width)
	}

	cfg := core.ApplyProcessorOptions(core.WithSampleRate(opts.sampleRate))
	log.WithFields(logrus.Fields{
		"fft":     opts.fftSize,
		"bin_hz":  cfg.BinWidth(opts.fftSize),
		"window":  e.WindowType().String(),
		"overlap": overlap,
		"frames":  spectrogram.NumFrames(len(samples), opts.fftSize, overlap),
		"rows":    e.OutputBins(),
		"backend": e.Backend(),
	}).Debug("Engine configured")

	if peak, err := dominantFrequency(samples, opts); err == nil {
		log.WithField("hz", fmt.Sprintf("%.1f", peak)).Debug("Dominant frequency")
	}

	pix := e.Image(samples, opts.width, opts.height, overlap, opts.gainDB, opts.rangeDB)

	return &image.RGBA{
		Pix:    pix,
		Stride: 4 * opts.width,
		Rect:   image.Rect(0, 0, opts.width, opts.height),
	}, nil
}

func dominantFrequency(samples []float64, opts options) (float64, error) {
	wt, _ := window.Parse(opts.window)
	cfg := spectrum.Config{
		SampleRate: opts.sampleRate,
		FFTSize:    opts.fftSize,
		Window:     wt,
	}

	db, err := spectrum.PowerSpectrum(samples, cfg)
	if err != nil {
		return 0, err
	}

	return spectrum.PeakFrequency(db, cfg.SampleRate, cfg.FFTSize, 0, cfg.SampleRate/2), nil
}
