package waveform

import (
	"testing"

	"github.com/cwbudde/algo-spectro/internal/testutil"
)

func BenchmarkRangePeaks(b *testing.B) {
	e := New(1)
	e.LoadChannel(0, testutil.Ramp(48000*60))
	dst := make([]float64, 1920)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.RangePeaksInto(dst, 0, 0, 48000*60)
	}
}
