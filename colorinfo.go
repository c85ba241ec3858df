package fx

import "math"

// HSB is a user-facing hue/saturation/brightness triple.
// H is in [0, 359]; S and B are percentages.
type HSB struct {
	H, S, B int
}

// HSL is a user-facing hue/saturation/lightness triple.
type HSL struct {
	H, S, L int
}

// CMYK is a user-facing set of ink percentages.
type CMYK struct {
	C, M, Y, K int
}

// Lab is a user-facing CIE L*a*b* triple.
type Lab struct {
	L, A, B int
}

// ColorInfo describes one color in every representation a color picker
// displays.
type ColorInfo struct {
	Hex  string
	RGB  RGB
	HSB  HSB
	HSL  HSL
	CMYK CMYK
	Lab  Lab
}

// GetColorInfo returns every rounded representation of (r, g, b).
func GetColorInfo(r, g, b uint8) ColorInfo {
	rgb := RGB{R: r, G: g, B: b}

	hv, sv, vv := RGBToHSV(r, g, b)
	hl, sl, ll := RGBToHSL(r, g, b)
	c, m, y, k := RGBToCMYK(r, g, b)
	lL, la, lb := RGBToLab(r, g, b)

	return ColorInfo{
		Hex:  rgb.Hex(),
		RGB:  rgb,
		HSB:  HSB{H: roundHue(hv), S: percent(sv), B: percent(vv)},
		HSL:  HSL{H: roundHue(hl), S: percent(sl), L: percent(ll)},
		CMYK: CMYK{C: percent(c), M: percent(m), Y: percent(y), K: percent(k)},
		Lab:  Lab{L: int(math.Round(lL)), A: int(math.Round(la)), B: int(math.Round(lb))},
	}
}

// roundHue rounds a hue in degrees, folding 360 back to 0.
func roundHue(h float64) int {
	return int(math.Round(h)) % 360
}

// percent converts a fraction to a rounded percentage.
func percent(v float64) int {
	return int(math.Round(v * 100))
}
