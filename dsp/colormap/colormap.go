package colormap

import (
	"image/color"
	"math"
	"sort"
	"strings"

	"github.com/cwbudde/algo-spectro/dsp/core"
)

// Size is the number of entries in a Table.
const Size = 256

// ByteLen is the length of a packed table: Size entries of R, G, B, A.
const ByteLen = Size * 4

// Table maps an 8-bit intensity index to a color.
type Table [Size]color.RGBA

// FromBytes decodes a packed RGBA table. ok is false, and the zero Table
// returned, unless b holds exactly ByteLen bytes.
func FromBytes(b []byte) (Table, bool) {
	var t Table
	if len(b) != ByteLen {
		return t, false
	}

	for i := range t {
		p := b[i*4 : i*4+4 : i*4+4]
		t[i] = color.RGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
	}

	return t, true
}

// Bytes packs the table as R, G, B, A per entry.
func (t *Table) Bytes() []byte {
	out := make([]byte, ByteLen)
	for i, c := range t {
		out[i*4] = c.R
		out[i*4+1] = c.G
		out[i*4+2] = c.B
		out[i*4+3] = c.A
	}
	return out
}

// Index maps v in [0,1] to a table index, round(clamp(v,0,1)*255).
// NaN maps to 0.
func Index(v float64) int {
	if !(v > 0) {
		return 0
	}
	if v >= 1 {
		return Size - 1
	}

	return int(math.Round(v * (Size - 1)))
}

// At returns the color for a normalized value v in [0,1].
func (t *Table) At(v float64) color.RGBA {
	return t[Index(v)]
}

// Palette returns the table as a color.Palette, for paletted images.
func (t *Table) Palette() color.Palette {
	p := make(color.Palette, Size)
	for i, c := range t {
		p[i] = c
	}
	return p
}

// Enhance applies contrast around mid-gray, then a brightness offset, to
// the RGB channels of every entry. Alpha is kept.
func (t Table) Enhance(brightness, contrast float64) Table {
	adjust := func(c uint8) uint8 {
		v := float64(c) / 255
		v = (v-0.5)*contrast + 0.5
		v += brightness
		v = core.Clamp(v, 0, 1)
		return uint8(math.Round(v * 255))
	}

	for i, c := range t {
		t[i] = color.RGBA{R: adjust(c.R), G: adjust(c.G), B: adjust(c.B), A: c.A}
	}

	return t
}

// Enhancement holds the display parameters tuned for one palette.
type Enhancement struct {
	Brightness float64
	Contrast   float64
	Gain       float64
}

var enhancements = map[string]Enhancement{
	"mono_light":   {Contrast: 1.25, Gain: 0.80},
	"mono_dark":    {Contrast: 1.25, Gain: 0.90},
	"viridis":      {Contrast: 1.30, Gain: 1.00},
	"inferno":      {Contrast: 1.00, Gain: 1.00},
	"cyberpunk":    {Contrast: 1.00, Gain: 0.75},
	"kaleidoscope": {Contrast: 1.00, Gain: 0.75},
	"rainbow":      {Contrast: 1.00, Gain: 0.90},
	"iron":         {Contrast: 1.00, Gain: 0.80},
}

// Defaults returns the enhancement tuned for the named palette, or the
// neutral one (no offset, unit contrast and gain).
func Defaults(name string) Enhancement {
	if e, ok := enhancements[normalizeName(name)]; ok {
		return e
	}

	return Enhancement{Contrast: 1, Gain: 1}
}

// Build generates the named palette with e.Gain and applies e's contrast
// and brightness.
func Build(name string, e Enhancement) Table {
	t, _ := Named(name, e.Gain)
	return t.Enhance(e.Brightness, e.Contrast)
}

type keyframe struct {
	pos     float64
	r, g, b float64
}

var palettes = map[string][]keyframe{
	"inferno": {
		{0, 0, 0, 0}, {0.15, 0, 0, 0}, {0.5, 87, 16, 109},
		{0.75, 188, 48, 60}, {0.85, 253, 128, 25}, {1, 252, 255, 164},
	},
	"viridis": {
		{0, 0, 0, 0}, {0.15, 0, 0, 0}, {0.45, 59, 82, 139},
		{0.75, 33, 145, 140}, {0.85, 253, 231, 37}, {1, 255, 255, 0},
	},
	"magma": {
		{0, 0, 0, 0}, {0.15, 0, 0, 0}, {0.45, 86, 25, 114},
		{0.75, 177, 60, 120}, {0.85, 250, 155, 135}, {1, 252, 253, 191},
	},
	"cyberpunk": {
		{0, 0, 0, 0}, {0.2, 0, 5, 15}, {0.35, 0, 60, 180},
		{0.6, 0, 180, 255}, {0.85, 140, 255, 245}, {1, 255, 255, 255},
	},
	"mono_dark": {
		{0, 0, 0, 0}, {0.2, 20, 20, 20}, {0.5, 100, 100, 100},
		{0.8, 210, 210, 210}, {1, 255, 255, 255},
	},
	"mono_light": {
		{0, 255, 255, 255}, {0.15, 240, 240, 240}, {0.4, 150, 150, 150},
		{0.7, 60, 60, 60}, {1, 0, 0, 0},
	},
	"kaleidoscope": {
		{0, 0, 0, 0}, {0.01, 0, 0, 3}, {0.15, 0, 0, 0}, {0.2, 0, 60, 90},
		{0.5, 0, 180, 60}, {0.85, 255, 230, 0}, {1, 255, 40, 0},
	},
	"iron": {
		{0, 0, 0, 0}, {0.15, 0, 0, 0}, {0.45, 0, 85, 175}, {0.6, 0, 255, 255},
		{0.7, 0, 255, 0}, {0.8, 255, 255, 0}, {1, 255, 0, 0},
	},
	"rainbow": {
		{0, 255, 255, 255}, {0.25, 255, 255, 255}, {0.35, 255, 127, 128},
		{0.45, 255, 255, 0}, {0.65, 0, 255, 0}, {0.7, 0, 255, 255},
		{0.9, 0, 0, 175}, {1, 0, 0, 39},
	},
	// gray fades from white to black, igray from black to white.
	"gray":  {{0, 255, 255, 255}, {1, 0, 0, 0}},
	"igray": {{0, 0, 0, 0}, {1, 255, 255, 255}},
}

// DefaultName is the palette used for unknown names.
const DefaultName = "viridis"

// Names returns the palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Named builds a palette table. Unknown names fall back to DefaultName
// with ok == false. gain <= 0 or non-finite is treated as 1.
func Named(name string, gain float64) (Table, bool) {
	frames, ok := palettes[normalizeName(name)]
	if !ok {
		frames = palettes[DefaultName]
	}

	if !(gain > 0) || math.IsInf(gain, 0) {
		gain = 1
	}

	warped := make([]keyframe, len(frames))
	copy(warped, frames)
	if gain != 1 {
		for i := range warped {
			if p := warped[i].pos; p > 0 && p < 1 {
				warped[i].pos = math.Pow(p, gain)
			}
		}
	}

	var t Table
	for i := range t {
		t[i] = sample(warped, float64(i)/(Size-1))
	}

	return t, ok
}

func sample(frames []keyframe, pos float64) color.RGBA {
	lower := frames[0]
	upper := frames[len(frames)-1]

	for j := 0; j < len(frames)-1; j++ {
		if frames[j].pos <= pos && pos <= frames[j+1].pos {
			lower, upper = frames[j], frames[j+1]
			break
		}
	}

	t := 0.0
	if span := upper.pos - lower.pos; span > 0 {
		t = (pos - lower.pos) / span
	}

	lerp := func(a, b float64) uint8 {
		return uint8(math.Round(a + t*(b-a)))
	}

	return color.RGBA{R: lerp(lower.r, upper.r), G: lerp(lower.g, upper.g), B: lerp(lower.b, upper.b), A: 255}
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.ReplaceAll(name, "-", "_")
}
