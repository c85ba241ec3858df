// Package blend implements the Photoshop-style blend modes and a
// straight-alpha compositor built on them.
//
// Separable modes operate on each color channel independently.
// Non-separable modes (darker color, lighter color and the HSL family)
// operate on whole RGB triplets.
//
// References:
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
//   - Adobe Photoshop File Format Specification, blend mode keys
package blend

import (
	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/names"
)

// Mode represents a blending mode.
type Mode uint8

const (
	Normal   Mode = iota // Result: S
	Dissolve             // S or D per channel, chosen at random

	Darken      // min(S, D)
	Multiply    // S * D
	ColorBurn   // 1 - (1 - D) / S
	LinearBurn  // S + D - 1
	DarkerColor // whole pixel with the lower luminosity

	Lighten      // max(S, D)
	Screen       // 1 - (1-S)*(1-D)
	ColorDodge   // D / (1 - S)
	LinearDodge  // S + D
	LighterColor // whole pixel with the higher luminosity

	Overlay     // HardLight with swapped layers
	SoftLight   // Soft version of HardLight
	HardLight   // Multiply or Screen depending on source
	VividLight  // ColorBurn or ColorDodge depending on source
	LinearLight // D + 2*S - 1
	PinLight    // Darken or Lighten depending on source
	HardMix     // 1 if S + D >= 1, else 0

	Difference // |S - D|
	Exclusion  // S + D - 2*S*D
	Subtract   // D - S
	Divide     // D / S

	Hue        // Hue of source, saturation and lightness of backdrop
	Saturation // Saturation of source, hue and lightness of backdrop
	Color      // Hue and saturation of source, lightness of backdrop
	Luminosity // Lightness of source, hue and saturation of backdrop

	modeCount
)

var modeNames = [modeCount]string{
	Normal:       "normal",
	Dissolve:     "dissolve",
	Darken:       "darken",
	Multiply:     "multiply",
	ColorBurn:    "color-burn",
	LinearBurn:   "linear-burn",
	DarkerColor:  "darker-color",
	Lighten:      "lighten",
	Screen:       "screen",
	ColorDodge:   "color-dodge",
	LinearDodge:  "linear-dodge",
	LighterColor: "lighter-color",
	Overlay:      "overlay",
	SoftLight:    "soft-light",
	HardLight:    "hard-light",
	VividLight:   "vivid-light",
	LinearLight:  "linear-light",
	PinLight:     "pin-light",
	HardMix:      "hard-mix",
	Difference:   "difference",
	Exclusion:    "exclusion",
	Subtract:     "subtract",
	Divide:       "divide",
	Hue:          "hue",
	Saturation:   "saturation",
	Color:        "color",
	Luminosity:   "luminosity",
}

// psdKeys maps the four-character keys stored in PSD layer records.
var psdKeys = map[string]Mode{
	"norm": Normal,
	"diss": Dissolve,
	"dark": Darken,
	"mul ": Multiply,
	"idiv": ColorBurn,
	"lbrn": LinearBurn,
	"dkCl": DarkerColor,
	"lite": Lighten,
	"scrn": Screen,
	"div ": ColorDodge,
	"lddg": LinearDodge,
	"lgCl": LighterColor,
	"over": Overlay,
	"sLit": SoftLight,
	"hLit": HardLight,
	"vLit": VividLight,
	"lLit": LinearLight,
	"pLit": PinLight,
	"hMix": HardMix,
	"diff": Difference,
	"smud": Exclusion,
	"fsub": Subtract,
	"fdiv": Divide,
	"hue ": Hue,
	"sat ": Saturation,
	"colr": Color,
	"lum ": Luminosity,
}

var modesByName = func() map[string]Mode {
	m := make(map[string]Mode, modeCount)
	for i, n := range modeNames {
		m[n] = Mode(i)
	}
	return m
}()

// String returns the canonical hyphenated name of the mode.
func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return "invalid"
}

// Valid reports whether m is one of the 27 defined modes.
func (m Mode) Valid() bool {
	return m < modeCount
}

// Separable reports whether m operates on each channel independently.
func (m Mode) Separable() bool {
	switch m {
	case DarkerColor, LighterColor, Hue, Saturation, Color, Luminosity:
		return false
	default:
		return m.Valid()
	}
}

// Modes returns every mode in menu order.
func Modes() []Mode {
	out := make([]Mode, modeCount)
	for i := range out {
		out[i] = Mode(i)
	}
	return out
}

// ParseMode resolves a mode name. Case, spaces and underscores are
// ignored, so "Color Burn" and "color_burn" both yield ColorBurn.
func ParseMode(name string) (Mode, error) {
	if m, ok := names.Lookup(modesByName, name); ok {
		return m, nil
	}
	return Normal, fx.InvalidParameter("blend.ParseMode", "mode", name)
}

// ModeFromKey resolves a four-character PSD blend mode key such as "mul ".
func ModeFromKey(key string) (Mode, bool) {
	m, ok := psdKeys[key]
	return m, ok
}
