// Package style renders parametric layer styles over a region of a pixel
// buffer: bevel and emboss, inner glow, color, gradient and pattern
// overlays, and satin.
//
// Every style reads a snapshot of the target region, computes a per-pixel
// intensity, maps it through a contour and composites the style's color
// over the original pixel with the blend compositor. Transparent pixels
// are never modified and every pixel keeps its original alpha.
//
// Basic usage:
//
//	buf, _ := fx.FromImage(img)
//	err := style.Apply(buf, buf.Bounds(), style.DefaultBevelEmboss())
package style

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/blend"
	"github.com/gogpu/fx/curve"
)

// Effect is one of the layer styles: BevelEmboss, InnerGlow,
// ColorOverlay, GradientOverlay, PatternOverlay or Satin.
type Effect interface {
	effectName() string

	// render computes the effect over src and writes the result to dst.
	// Both buffers have the same size; dst starts as a copy of src.
	render(dst, src *fx.PixelBuffer, o fx.Options)

	validate() error
}

// Apply renders e in place over the part of dst covered by region.
//
// The region is clipped to the buffer; an empty region is a no-op.
// Invalid settings return an error wrapping fx.ErrInvalidParameter and
// leave dst untouched.
func Apply(dst *fx.PixelBuffer, region image.Rectangle, e Effect, opts ...fx.Option) error {
	if dst == nil {
		return fx.ErrInvalidDimensions
	}
	if !isEffectValue(e) {
		return fx.InvalidParameter("style.Apply", "effect", fmt.Sprintf("%T", e))
	}
	if err := e.validate(); err != nil {
		return fmt.Errorf("style: %s: %w", e.effectName(), err)
	}

	r := region.Intersect(dst.Bounds())
	if r.Empty() {
		fx.Logger().Warn("style: empty region", "effect", e.effectName(), "region", region)
		return nil
	}

	fx.Logger().Debug("style: apply",
		"effect", e.effectName(),
		"region", r)

	src := dst.Region(r)
	out := src.Clone()
	e.render(out, src, fx.ResolveOptions(opts))
	dst.CopyFrom(out, r.Min)
	return nil
}

// isEffectValue reports whether e holds one of the effect value types.
// Pointers, including typed nils, are rejected.
func isEffectValue(e Effect) bool {
	switch e.(type) {
	case BevelEmboss, InnerGlow, ColorOverlay, GradientOverlay, PatternOverlay, Satin:
		return true
	default:
		return false
	}
}

// opacityFactor converts a 0..100 percentage into a 0..1 factor.
func opacityFactor(pct float64) float64 {
	switch {
	case !(pct > 0):
		return 0
	case pct >= 100:
		return 1
	default:
		return pct / 100
	}
}

// compositeAt blends c over pixel i of dst with the given opacity factor
// and restores the pixel's original alpha.
func compositeAt(dst []uint8, i int, c color.NRGBA, mode blend.Mode, opacity float64, rng fx.Rand) {
	base := color.NRGBA{R: dst[i], G: dst[i+1], B: dst[i+2], A: dst[i+3]}
	out := blend.Pixel(base, c, mode, opacity, rng)
	dst[i], dst[i+1], dst[i+2] = out.R, out.G, out.B
}

func validateCommon(op string, mode blend.Mode, c curve.Contour) error {
	if !mode.Valid() {
		return fx.InvalidParameter(op, "BlendMode", mode)
	}
	if len(c) > 0 {
		if err := c.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func validateSize(op string, size float64) error {
	if size < 0 {
		return fx.InvalidParameter(op, "Size", size)
	}
	return nil
}
