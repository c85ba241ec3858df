package selective

import (
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/names"
)

// Range is one of the nine color ranges an adjustment targets.
type Range uint8

const (
	Reds Range = iota
	Yellows
	Greens
	Cyans
	Blues
	Magentas
	Whites
	Neutrals
	Blacks

	rangeCount
)

var rangeNames = [rangeCount]string{
	"reds", "yellows", "greens", "cyans", "blues", "magentas",
	"whites", "neutrals", "blacks",
}

var rangesByName = func() map[string]Range {
	m := make(map[string]Range, rangeCount)
	for i, n := range rangeNames {
		m[n] = Range(i)
	}
	return m
}()

func (r Range) String() string {
	if r < rangeCount {
		return rangeNames[r]
	}
	return "invalid"
}

// Ranges returns every range in menu order.
func Ranges() []Range {
	out := make([]Range, rangeCount)
	for i := range out {
		out[i] = Range(i)
	}
	return out
}

// ParseRange resolves a range name, ignoring case and surrounding space.
func ParseRange(name string) (Range, error) {
	if r, ok := names.Lookup(rangesByName, name); ok {
		return r, nil
	}
	return Reds, fx.InvalidParameter("selective.ParseRange", "range", name)
}

// Hue ranges are fully selected within hueCore degrees of their center
// and fade out linearly over the next hueFalloff degrees.
const (
	hueCore    = 15.0
	hueFalloff = 30.0
)

// Weight returns how strongly a color with HSL components h (degrees),
// s and l (0 to 1) belongs to r, from 0 to 1.
func Weight(r Range, h, s, l float64) float64 {
	switch r {
	case Reds, Yellows, Greens, Cyans, Blues, Magentas:
		center := float64(r) * 60
		d := math.Abs(math.Mod(h-center, 360))
		if d > 180 {
			d = 360 - d
		}
		return clamp01(1-(d-hueCore)/hueFalloff) * clamp01(s)
	case Whites:
		return clamp01((l - 0.5) / 0.25)
	case Blacks:
		return clamp01((0.5 - l) / 0.25)
	case Neutrals:
		return clamp01(1-s) * clamp01(1-math.Abs(l-0.5)*2)
	default:
		return 0
	}
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
