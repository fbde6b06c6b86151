package colormap

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromBytesRoundTrip(t *testing.T) {
	b := make([]byte, ByteLen)
	for i := range b {
		b[i] = byte(i * 7)
	}

	tab, ok := FromBytes(b)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: b[4], G: b[5], B: b[6], A: b[7]}, tab[1])
	assert.Equal(t, b, tab.Bytes())
}

func TestFromBytesRejectsWrongLength(t *testing.T) {
	for _, n := range []int{0, ByteLen - 1, ByteLen + 1} {
		tab, ok := FromBytes(make([]byte, n))
		assert.False(t, ok)
		assert.Equal(t, Table{}, tab)
	}
}

func TestIndex(t *testing.T) {
	assert.Equal(t, 0, Index(-1))
	assert.Equal(t, 0, Index(math.NaN()))
	assert.Equal(t, 255, Index(1))
	assert.Equal(t, 255, Index(3))
	assert.Equal(t, 128, Index(0.5))
	assert.Equal(t, 1, Index(1.0/255))
}

func TestNamedEndpoints(t *testing.T) {
	tab, ok := Named("inferno", 1)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{A: 255}, tab[0])
	assert.Equal(t, color.RGBA{R: 252, G: 255, B: 164, A: 255}, tab[255])

	light, ok := Named("Mono-Light", 1)
	require.True(t, ok)
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, light[0])
	assert.Equal(t, color.RGBA{A: 255}, light[255])
}

func TestNamedFallback(t *testing.T) {
	tab, ok := Named("plasma", 1)
	assert.False(t, ok)

	viridis, _ := Named(DefaultName, 1)
	assert.Equal(t, viridis, tab)
}

func TestNamedAllOpaqueAndSorted(t *testing.T) {
	names := Names()
	require.Contains(t, names, "viridis")
	assert.IsIncreasing(t, names)

	for _, name := range names {
		tab, ok := Named(name, 0.8)
		require.True(t, ok, name)
		for i, c := range tab {
			require.Equalf(t, uint8(255), c.A, "%s[%d]", name, i)
		}
	}
}

func TestGrayIsMonotonic(t *testing.T) {
	tab, _ := Named("igray", 1)
	for i := 1; i < Size; i++ {
		require.GreaterOrEqual(t, tab[i].R, tab[i-1].R)
	}
	assert.Equal(t, uint8(128), tab[128].R)
}

func TestGainWarpsInnerKeyframes(t *testing.T) {
	plain, _ := Named("inferno", 1)
	warped, _ := Named("inferno", 0.5)

	// pos^0.5 moves the black-to-purple transition later, darkening mid entries.
	assert.Equal(t, plain[0], warped[0])
	assert.Equal(t, plain[255], warped[255])
	assert.Less(t, warped[100].R, plain[100].R)

	same, _ := Named("inferno", -1)
	assert.Equal(t, plain, same)
}

func TestEnhance(t *testing.T) {
	var tab Table
	tab[0] = color.RGBA{R: 128, G: 0, B: 255, A: 10}

	out := tab.Enhance(0, 1.5)
	assert.Equal(t, color.RGBA{R: 128, G: 0, B: 255, A: 10}, out[0])

	tab[1] = color.RGBA{R: 100, A: 255}
	assert.Equal(t, uint8(86), tab.Enhance(0, 1.5)[1].R)

	out = tab.Enhance(0.5, 1)
	assert.Equal(t, color.RGBA{R: 255, G: 128, B: 255, A: 10}, out[0])

	// Receiver is unchanged.
	assert.Equal(t, uint8(128), tab[0].R)
}

func TestDefaultsAndBuild(t *testing.T) {
	assert.Equal(t, Enhancement{Contrast: 1.3, Gain: 1}, Defaults("viridis"))
	assert.Equal(t, Enhancement{Contrast: 1, Gain: 1}, Defaults("unknown"))

	tab := Build("inferno", Defaults("inferno"))
	plain, _ := Named("inferno", 1)
	assert.Equal(t, plain, tab)
}

func TestPalette(t *testing.T) {
	tab, _ := Named("iron", 1)
	p := tab.Palette()
	require.Len(t, p, Size)
	assert.Equal(t, color.Color(tab[200]), p[200])
}
