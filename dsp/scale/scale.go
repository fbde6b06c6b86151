// Package scale converts between Hertz and perceptual frequency axes.
//
// A [Scale] is a closed enumeration. [Parse] resolves names with an
// explicit fallback to [Linear] so that callers which must never fail can
// still report that a name was not recognized.
package scale

import (
	"math"
	"strings"
)

// Scale identifies a frequency axis.
type Scale int

const (
	Linear Scale = iota
	Mel
	Logarithmic
	Bark
	ERB
)

// erbFactor is 1000·ln(10)/107.939, the ERB-rate scale constant.
var erbFactor = 1000 * math.Ln10 / 107.939

var scaleNames = map[Scale]string{
	Linear:      "linear",
	Mel:         "mel",
	Logarithmic: "logarithmic",
	Bark:        "bark",
	ERB:         "erb",
}

// Scales returns all supported scales in declaration order.
func Scales() []Scale {
	return []Scale{Linear, Mel, Logarithmic, Bark, ERB}
}

// String returns the canonical scale name.
func (s Scale) String() string {
	if name, ok := scaleNames[s]; ok {
		return name
	}

	return "unknown"
}

// Parse resolves a scale name, ignoring case and surrounding spaces. "log"
// is accepted for Logarithmic. Unknown names resolve to Linear with
// ok == false.
func Parse(name string) (Scale, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "log" {
		return Logarithmic, true
	}

	for s, n := range scaleNames {
		if n == key {
			return s, true
		}
	}

	return Linear, false
}

// FromHz maps a frequency in Hz onto the scale axis.
func (s Scale) FromHz(hz float64) float64 {
	switch s {
	case Mel:
		return 2595 * math.Log10(1+hz/700)
	case Logarithmic:
		return math.Log10(math.Max(1, hz))
	case Bark:
		z := 26.81*hz/(1960+hz) - 0.53
		if z < 2 {
			z += 0.15 * (2 - z)
		}
		if z > 20.1 {
			z += 0.22 * (z - 20.1)
		}
		return z
	case ERB:
		return erbFactor * math.Log10(1+0.00437*hz)
	default:
		return hz
	}
}

// ToHz maps a scale value back to Hz.
func (s Scale) ToHz(v float64) float64 {
	switch s {
	case Mel:
		return 700 * (math.Pow(10, v/2595) - 1)
	case Logarithmic:
		return math.Pow(10, v)
	case Bark:
		if v < 2 {
			v = (v - 0.3) / 0.85
		}
		if v > 20.1 {
			v = (v + 4.422) / 1.22
		}
		return (v + 0.53) / (26.28 - v) * 1960
	case ERB:
		return (math.Pow(10, v/erbFactor) - 1) / 0.00437
	default:
		return v
	}
}

// Position returns where hz lies between minHz and maxHz along the scale,
// 0 at minHz and 1 at maxHz. A degenerate range yields 0.
func (s Scale) Position(hz, minHz, maxHz float64) float64 {
	lo := s.FromHz(minHz)
	hi := s.FromHz(maxHz)

	if hi == lo {
		return 0
	}

	return (s.FromHz(hz) - lo) / (hi - lo)
}

// Frequency is the inverse of Position: it returns the frequency found at
// fraction pos of the way from minHz to maxHz along the scale.
func (s Scale) Frequency(pos, minHz, maxHz float64) float64 {
	lo := s.FromHz(minHz)
	hi := s.FromHz(maxHz)

	return s.ToHz(lo + pos*(hi-lo))
}
