package fft

import (
	"strconv"
	"testing"

	"github.com/cwbudde/algo-spectro/dsp/window"
	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func BenchmarkMagnitudes(b *testing.B) {
	for _, backend := range []Backend{AlgoFFT(), Gonum()} {
		for _, n := range []int{512, 2048, 8192} {
			b.Run(backend.Name()+"/"+strconv.Itoa(n), func(b *testing.B) {
				e, err := NewExecutor(n, WithBackend(backend))
				if err != nil {
					b.Fatal(err)
				}

				sig := testutil.DeterministicNoise(1, 1, n)
				win := window.Generate(window.TypeHann, n)
				mag := make([]float64, e.Bins())

				b.ReportAllocs()
				b.ResetTimer()

				for i := 0; i < b.N; i++ {
					if err := e.Magnitudes(mag, sig, win); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}
