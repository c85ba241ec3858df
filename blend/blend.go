package blend

import (
	"image/color"
	"math"

	"github.com/gogpu/fx"
)

// Pixel composites top over base using mode at the given opacity (0..1,
// clamped).
//
// A fully transparent top or zero opacity returns base unchanged.
// Otherwise the effective opacity is top.A/255*opacity, the mode's raw
// result is interpolated from base by that amount, and the output alpha
// is max(base.A, round(top.A*opacity)).
//
// Dissolve does not interpolate: each channel independently takes the top
// value with probability equal to the effective opacity, and the alpha
// stays base.A. rng may be nil, in which case a fresh source is used.
// Invalid modes composite as Normal.
func Pixel(base, top color.NRGBA, mode Mode, opacity float64, rng fx.Rand) color.NRGBA {
	if !(opacity > 0) || top.A == 0 {
		return base
	}
	if opacity > 1 {
		opacity = 1
	}
	eff := float64(top.A) / 255 * opacity

	if mode == Dissolve {
		if rng == nil {
			rng = fx.ResolveOptions(nil).Rand
		}
		return dissolve(base, top, eff, rng)
	}

	raw := apply(mode, [3]uint8{base.R, base.G, base.B}, [3]uint8{top.R, top.G, top.B})
	return color.NRGBA{
		R: lerp(base.R, raw[0], eff),
		G: lerp(base.G, raw[1], eff),
		B: lerp(base.B, raw[2], eff),
		A: max(base.A, fx.ClampRound(float64(top.A)*opacity)),
	}
}

func dissolve(base, top color.NRGBA, eff float64, rng fx.Rand) color.NRGBA {
	out := base
	if rng.Float64() < eff {
		out.R = top.R
	}
	if rng.Float64() < eff {
		out.G = top.G
	}
	if rng.Float64() < eff {
		out.B = top.B
	}
	return out
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}

// Image composites top over base pixel by pixel and returns a new buffer.
//
// Both buffers must have the same dimensions. Randomness for Dissolve comes
// from fx.WithRand, or a fresh source when none is given.
func Image(base, top *fx.PixelBuffer, mode Mode, opacity float64, opts ...fx.Option) (*fx.PixelBuffer, error) {
	if base == nil || top == nil {
		return nil, fx.ErrInvalidDimensions
	}
	if !base.SameSize(top) {
		return nil, fx.SizeMismatch("blend.Image", base, top)
	}
	if !mode.Valid() {
		return nil, fx.InvalidParameter("blend.Image", "mode", mode)
	}
	o := fx.ResolveOptions(opts)
	fx.Logger().Debug("blend: image",
		"mode", mode.String(),
		"opacity", opacity,
		"width", base.Width(),
		"height", base.Height())

	out := base.Clone()
	dst, src := out.Data(), top.Data()
	for i := 0; i+3 < len(dst); i += 4 {
		c := Pixel(
			color.NRGBA{R: dst[i], G: dst[i+1], B: dst[i+2], A: dst[i+3]},
			color.NRGBA{R: src[i], G: src[i+1], B: src[i+2], A: src[i+3]},
			mode, opacity, o.Rand)
		dst[i], dst[i+1], dst[i+2], dst[i+3] = c.R, c.G, c.B, c.A
	}
	return out, nil
}
