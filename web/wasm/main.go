//go:build js && wasm

package main

import (
	"math"
	"os"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-spectro/internal/webdemo"
)

var (
	session *webdemo.Session
	funcs   []js.Func
)

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.WarnLevel)
	session = webdemo.NewSession(log)

	api := js.Global().Get("Object").New()

	api.Set("init", export(func(args []js.Value) any {
		if len(args) < 1 {
			return "init requires an fft size"
		}
		name := "hann"
		if len(args) > 1 && args[1].Type() == js.TypeString {
			name = args[1].String()
		}
		if err := session.InitSpectrogram(args[0].Int(), name, optFloat(args, 2, math.NaN())); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("freqBins", export(func(args []js.Value) any {
		return session.FreqBins()
	}))

	api.Set("outputBins", export(func(args []js.Value) any {
		return session.OutputBins()
	}))

	api.Set("loadFilterBank", export(func(args []js.Value) any {
		if len(args) < 2 {
			return "loadFilterBank requires weights and a filter count"
		}
		if err := session.LoadFilterBank(float32s(args[0]), args[1].Int()); err != nil {
			return err.Error()
		}
		return js.Null()
	}))

	api.Set("clearFilterBank", export(func(args []js.Value) any {
		session.ClearFilterBank()
		return js.Null()
	}))

	api.Set("setColorTable", export(func(args []js.Value) any {
		if len(args) < 1 {
			return false
		}
		return session.SetColorTable(bytesFrom(args[0]))
	}))

	api.Set("setSpectrumConfig", export(func(args []js.Value) any {
		if len(args) < 3 {
			return js.Null()
		}
		session.SetSpectrumConfig(args[0].String(), args[1].Float(), args[2].Float())
		return js.Null()
	}))

	api.Set("computeSpectrogram", export(func(args []js.Value) any {
		if len(args) < 2 {
			return float32Array(nil)
		}
		return float32Array(session.Linear(float32s(args[0]), args[1].Int()))
	}))

	api.Set("computeSpectrogramU8", export(func(args []js.Value) any {
		if len(args) < 4 {
			return uint8Array(nil)
		}
		q := session.Quantized(float32s(args[0]), args[1].Int(), args[2].Float(), args[3].Float())
		return uint8Array(q)
	}))

	api.Set("computeSpectrogramImage", export(func(args []js.Value) any {
		if len(args) < 6 {
			return uint8Array(nil)
		}
		img := session.Image(float32s(args[0]), args[1].Int(), args[2].Int(), args[3].Int(), args[4].Float(), args[5].Float())
		return uint8Array(img)
	}))

	api.Set("autoOverlap", export(func(args []js.Value) any {
		if len(args) < 2 {
			return 0
		}
		return session.AutoOverlap(args[0].Int(), args[1].Int())
	}))

	api.Set("peakBins", export(func(args []js.Value) any {
		bins := session.PeakBins(optFloat(args, 0, 0))
		arr := js.Global().Get("Uint16Array").New(len(bins))
		for i, b := range bins {
			arr.SetIndex(i, int(b))
		}
		return arr
	}))

	api.Set("peakMagnitudes", export(func(args []js.Value) any {
		return float32Array(session.PeakMagnitudes(optFloat(args, 0, 0)))
	}))

	api.Set("globalMax", export(func(args []js.Value) any {
		return session.GlobalMax()
	}))

	api.Set("resizeChannels", export(func(args []js.Value) any {
		if len(args) > 0 {
			session.ResizeChannels(args[0].Int())
		}
		return js.Null()
	}))

	api.Set("loadChannel", export(func(args []js.Value) any {
		if len(args) < 2 {
			return false
		}
		return session.LoadChannel(args[0].Int(), float32s(args[1]))
	}))

	api.Set("rangePeaks", export(func(args []js.Value) any {
		if len(args) < 4 {
			return float32Array([]float32{0})
		}
		return float32Array(session.RangePeaks(args[0].Int(), args[1].Int(), args[2].Int(), args[3].Int()))
	}))

	api.Set("channelLength", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0
		}
		return session.ChannelLength(args[0].Int())
	}))

	api.Set("numChannels", export(func(args []js.Value) any {
		return session.NumChannels()
	}))

	api.Set("clearChannels", export(func(args []js.Value) any {
		session.ClearChannels()
		return js.Null()
	}))

	api.Set("wavePeaks", export(func(args []js.Value) any {
		if len(args) < 2 {
			return float32Array(nil)
		}
		return float32Array(webdemo.WavePeaks(float32s(args[0]), args[1].Int()))
	}))

	api.Set("findGlobalMax", export(func(args []js.Value) any {
		if len(args) < 1 {
			return 0.0
		}
		return webdemo.GlobalMax(float32s(args[0]))
	}))

	api.Set("powerSpectrum", export(func(args []js.Value) any {
		if len(args) < 4 {
			return float32Array(nil)
		}
		db := session.PowerSpectrum(float32s(args[0]), args[1].Float(), args[2].Int(), args[3].String(), optFloat(args, 4, 0))
		return float32Array(db)
	}))

	api.Set("peakFrequency", export(func(args []js.Value) any {
		if len(args) < 5 {
			return 0.0
		}
		return webdemo.PeakFrequency(float32s(args[0]), args[1].Float(), args[2].Int(), args[3].Float(), args[4].Float())
	}))

	js.Global().Set("AlgoSpectro", api)
	select {}
}

func export(fn func([]js.Value) any) js.Func {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		return fn(args)
	})
	funcs = append(funcs, f)
	return f
}

// optFloat reads args[i] as a number, def when missing, null or undefined.
func optFloat(args []js.Value, i int, def float64) float64 {
	if i >= len(args) || args[i].Type() != js.TypeNumber {
		return def
	}
	return args[i].Float()
}

// float32s copies a Float32Array through one byte view of its buffer.
// Plain JS arrays fall back to per-element reads.
func float32s(v js.Value) []float32 {
	if !v.InstanceOf(js.Global().Get("Float32Array")) {
		n := v.Length()
		out := make([]float32, n)
		for i := 0; i < n; i++ {
			out[i] = float32(v.Index(i).Float())
		}
		return out
	}

	view := js.Global().Get("Uint8Array").New(v.Get("buffer"), v.Get("byteOffset"), v.Get("byteLength"))
	raw := make([]byte, view.Length())
	js.CopyBytesToGo(raw, view)

	return webdemo.DecodeFloat32s(raw)
}

func bytesFrom(v js.Value) []byte {
	out := make([]byte, v.Length())
	js.CopyBytesToGo(out, v)
	return out
}

func float32Array(data []float32) js.Value {
	raw := webdemo.EncodeFloat32s(data)
	view := js.Global().Get("Uint8Array").New(len(raw))
	js.CopyBytesToJS(view, raw)

	return js.Global().Get("Float32Array").New(view.Get("buffer"))
}

func uint8Array(data []byte) js.Value {
	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	return arr
}
