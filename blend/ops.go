package blend

import (
	"math"

	"github.com/gogpu/fx"
)

// Channel applies a separable mode to one 8-bit channel. base is the
// backdrop value and top the value of the layer being composited.
//
// Non-separable modes fall back to the top value; use Pixel for those.
func Channel(mode Mode, base, top uint8) uint8 {
	b := float64(base) / 255
	s := float64(top) / 255
	return fx.ClampRound(separable(mode, b, s) * 255)
}

// separable evaluates a per-channel operator on normalized values.
// b is the backdrop, s the source.
func separable(mode Mode, b, s float64) float64 {
	switch mode {
	case Darken:
		return math.Min(b, s)
	case Multiply:
		return b * s
	case ColorBurn:
		return colorBurn(b, s)
	case LinearBurn:
		return math.Max(0, b+s-1)

	case Lighten:
		return math.Max(b, s)
	case Screen:
		return 1 - (1-b)*(1-s)
	case ColorDodge:
		return colorDodge(b, s)
	case LinearDodge:
		return math.Min(1, b+s)

	case Overlay:
		return hardLight(s, b)
	case SoftLight:
		return softLight(b, s)
	case HardLight:
		return hardLight(b, s)
	case VividLight:
		if s < 0.5 {
			return colorBurn(b, 2*s)
		}
		return colorDodge(b, 2*(s-0.5))
	case LinearLight:
		return clamp01(b + 2*s - 1)
	case PinLight:
		if s < 0.5 {
			return math.Min(b, 2*s)
		}
		return math.Max(b, 2*s-1)
	case HardMix:
		// Integer-exact threshold: 8-bit inputs summing to 255 or more.
		if math.Round((b+s)*255) >= 255 {
			return 1
		}
		return 0

	case Difference:
		return math.Abs(b - s)
	case Exclusion:
		return b + s - 2*b*s
	case Subtract:
		return math.Max(0, b-s)
	case Divide:
		if s == 0 {
			return 1
		}
		return math.Min(1, b/s)

	default:
		return s
	}
}

// colorBurn: 1 - (1 - b) / s, with a zero source burning to black.
func colorBurn(b, s float64) float64 {
	if s <= 0 {
		return 0
	}
	return math.Max(0, 1-(1-b)/s)
}

// colorDodge: b / (1 - s), with a full source dodging to white.
func colorDodge(b, s float64) float64 {
	if s >= 1 {
		return 1
	}
	return math.Min(1, b/(1-s))
}

func hardLight(b, s float64) float64 {
	if s <= 0.5 {
		return b * 2 * s
	}
	return 1 - (1-b)*(1-(2*s-1))
}

// softLight follows the W3C definition.
func softLight(b, s float64) float64 {
	if s <= 0.5 {
		return b - (1-2*s)*b*(1-b)
	}
	var d float64
	if b <= 0.25 {
		d = ((16*b-12)*b + 4) * b
	} else {
		d = math.Sqrt(b)
	}
	return b + (2*s-1)*(d-b)
}

// nonSeparable evaluates the whole-pixel modes.
func nonSeparable(mode Mode, base, top [3]uint8) [3]uint8 {
	switch mode {
	case DarkerColor:
		if fx.Luminosity(top[0], top[1], top[2]) < fx.Luminosity(base[0], base[1], base[2]) {
			return top
		}
		return base
	case LighterColor:
		if fx.Luminosity(top[0], top[1], top[2]) > fx.Luminosity(base[0], base[1], base[2]) {
			return top
		}
		return base
	}

	bh, bs, bl := fx.RGBToHSL(base[0], base[1], base[2])
	th, ts, tl := fx.RGBToHSL(top[0], top[1], top[2])
	var r, g, b uint8
	switch mode {
	case Hue:
		r, g, b = fx.HSLToRGB(th, bs, bl)
	case Saturation:
		r, g, b = fx.HSLToRGB(bh, ts, bl)
	case Color:
		r, g, b = fx.HSLToRGB(th, ts, bl)
	case Luminosity:
		r, g, b = fx.HSLToRGB(bh, bs, tl)
	default:
		return top
	}
	return [3]uint8{r, g, b}
}

// apply returns the raw (unweighted) result of mode for the RGB channels.
func apply(mode Mode, base, top [3]uint8) [3]uint8 {
	if !mode.Separable() {
		return nonSeparable(mode, base, top)
	}
	var out [3]uint8
	for i := range out {
		out[i] = Channel(mode, base[i], top[i])
	}
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
