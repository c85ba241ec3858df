package fx

import "math"

// BT.601 luma weights used for every grayscale-weighted computation.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luminosity returns the BT.601 weighted luminosity of an 8-bit triplet,
// in [0, 255].
func Luminosity(r, g, b uint8) float64 {
	return LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)
}

// Luma returns Luminosity rounded to the nearest integer.
func Luma(r, g, b uint8) uint8 {
	return ClampRound(Luminosity(r, g, b))
}

// ClampRound rounds v to the nearest integer and clamps it to [0, 255].
func ClampRound(v float64) uint8 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// normalizeHue maps h into [0, 360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// hueOf computes the hue in degrees of normalized components whose
// maximum and minimum are maxC and minC. Achromatic input yields 0.
func hueOf(r, g, b, maxC, minC float64) float64 {
	delta := maxC - minC
	if delta == 0 {
		return 0
	}
	var h float64
	switch maxC {
	case r:
		h = (g - b) / delta
	case g:
		h = (b-r)/delta + 2
	default:
		h = (r-g)/delta + 4
	}
	return normalizeHue(h * 60)
}

// RGBToHSL converts RGB to HSL.
// H: [0, 360), S: [0, 1], L: [0, 1].
func RGBToHSL(r, g, b uint8) (h, s, l float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))
	delta := maxC - minC

	l = (maxC + minC) / 2
	if delta == 0 {
		return 0, 0, l
	}

	if l < 0.5 {
		s = delta / (maxC + minC)
	} else {
		s = delta / (2 - maxC - minC)
	}
	return hueOf(rf, gf, bf, maxC, minC), s, l
}

// HSLToRGB converts HSL (H in degrees, S and L in [0, 1]) to RGB.
func HSLToRGB(h, s, l float64) (r, g, b uint8) {
	if s <= 0 {
		v := ClampRound(l * 255)
		return v, v, v
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	hk := normalizeHue(h) / 360
	r = ClampRound(hueToChannel(p, q, hk+1.0/3.0) * 255)
	g = ClampRound(hueToChannel(p, q, hk) * 255)
	b = ClampRound(hueToChannel(p, q, hk-1.0/3.0) * 255)
	return r, g, b
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	default:
		return p
	}
}

// RGBToHSV converts RGB to HSV (also called HSB).
// H: [0, 360), S: [0, 1], V: [0, 1].
func RGBToHSV(r, g, b uint8) (h, s, v float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	maxC := math.Max(rf, math.Max(gf, bf))
	minC := math.Min(rf, math.Min(gf, bf))

	v = maxC
	if maxC == 0 {
		return 0, 0, 0
	}
	s = (maxC - minC) / maxC
	return hueOf(rf, gf, bf, maxC, minC), s, v
}

// HSVToRGB converts HSV (H in degrees, S and V in [0, 1]) to RGB.
func HSVToRGB(h, s, v float64) (r, g, b uint8) {
	h = normalizeHue(h)
	c := v * s
	hp := h / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r1, g1, b1 float64
	switch {
	case hp < 1:
		r1, g1, b1 = c, x, 0
	case hp < 2:
		r1, g1, b1 = x, c, 0
	case hp < 3:
		r1, g1, b1 = 0, c, x
	case hp < 4:
		r1, g1, b1 = 0, x, c
	case hp < 5:
		r1, g1, b1 = x, 0, c
	default:
		r1, g1, b1 = c, 0, x
	}

	m := v - c
	return ClampRound((r1 + m) * 255), ClampRound((g1 + m) * 255), ClampRound((b1 + m) * 255)
}

// RGBToCMYK converts RGB to CMYK with every component in [0, 1].
// Pure black yields (0, 0, 0, 1).
func RGBToCMYK(r, g, b uint8) (c, m, y, k float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	k = 1 - math.Max(rf, math.Max(gf, bf))
	if k >= 1 {
		return 0, 0, 0, 1
	}
	c = (1 - rf - k) / (1 - k)
	m = (1 - gf - k) / (1 - k)
	y = (1 - bf - k) / (1 - k)
	return c, m, y, k
}

// CMYKToRGB converts CMYK components in [0, 1] to RGB.
func CMYKToRGB(c, m, y, k float64) (r, g, b uint8) {
	return ClampRound(255 * (1 - c) * (1 - k)),
		ClampRound(255 * (1 - m) * (1 - k)),
		ClampRound(255 * (1 - y) * (1 - k))
}

// D65 reference white.
const (
	whiteX = 0.95047
	whiteY = 1.00000
	whiteZ = 1.08883
)

// srgbToLinear decodes an sRGB component in [0, 1].
// Formula: if s <= 0.04045: s/12.92; else: pow((s+0.055)/1.055, 2.4)
func srgbToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// labF is the CIE Lab companding function.
func labF(t float64) float64 {
	if t > 0.008856 {
		return math.Cbrt(t)
	}
	return 7.787*t + 16.0/116.0
}

// RGBToLab converts sRGB to CIE L*a*b* under the D65 white point.
// L: [0, 100]; a and b are signed.
func RGBToLab(r, g, b uint8) (l, a, bb float64) {
	rl := srgbToLinear(float64(r) / 255)
	gl := srgbToLinear(float64(g) / 255)
	bl := srgbToLinear(float64(b) / 255)

	x := 0.4124564*rl + 0.3575761*gl + 0.1804375*bl
	y := 0.2126729*rl + 0.7151522*gl + 0.0721750*bl
	z := 0.0193339*rl + 0.1191920*gl + 0.9503041*bl

	xf := labF(x / whiteX)
	yf := labF(y / whiteY)
	zf := labF(z / whiteZ)

	return 116*yf - 16, 500 * (xf - yf), 200 * (yf - zf)
}
