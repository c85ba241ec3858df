// Package distort implements lens-like geometric distortions.
//
// Every filter builds a new buffer by computing, for each destination
// pixel, a fractional source coordinate and sampling the source there
// bilinearly. Sources that fall outside the buffer produce transparent
// black, except Ripple, which clamps, and Wave with WrapAround, which
// wraps.
package distort

import (
	"fmt"
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
)

// Filter is one of Spherize, Pinch, Twirl, Wave, Ripple, ZigZag or Polar.
type Filter interface {
	filterName() string
}

// Apply runs f over src and returns a new buffer of the same size.
//
// Degenerate geometry (zero radius, zero ridges, zero generators) returns
// an unchanged copy. Settings outside their domain return an error
// wrapping fx.ErrInvalidParameter.
func Apply(src *fx.PixelBuffer, f Filter, opts ...fx.Option) (*fx.PixelBuffer, error) {
	if src == nil {
		return nil, fx.ErrInvalidDimensions
	}
	name, ok := filterName(f)
	if !ok {
		return nil, fx.InvalidParameter("distort.Apply", "filter", name)
	}
	o := fx.ResolveOptions(opts)

	fx.Logger().Debug("distort: apply",
		"filter", name,
		"width", src.Width(),
		"height", src.Height())

	switch f := f.(type) {
	case Spherize:
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f.apply(src), nil
	case Pinch:
		return f.apply(src), nil
	case Twirl:
		return f.apply(src), nil
	case Wave:
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f.apply(src, o.Rand), nil
	case Ripple:
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f.apply(src), nil
	case ZigZag:
		return f.apply(src), nil
	case Polar:
		if err := f.validate(); err != nil {
			return nil, err
		}
		return f.apply(src), nil
	default:
		return nil, fx.InvalidParameter("distort.Apply", "filter", name)
	}
}

// filterName names f when it is one of the filter value types. Pointers,
// including typed nils, are rejected.
func filterName(f Filter) (string, bool) {
	switch f := f.(type) {
	case Spherize, Pinch, Twirl, Wave, Ripple, ZigZag, Polar:
		return f.filterName(), true
	case nil:
		return "<nil>", false
	default:
		return fmt.Sprintf("%T", f), false
	}
}

// coordFunc maps a destination pixel to a source coordinate. ok reports
// whether the destination pixel should be sampled at all.
type coordFunc func(x, y float64) (sx, sy float64, ok bool)

// remap samples src at fn(x, y) for every destination pixel. Coordinates
// outside [0, w-1]×[0, h-1] leave the pixel transparent.
func remap(src *fx.PixelBuffer, fn coordFunc) *fx.PixelBuffer {
	dst := src.NewLike()
	w, h := src.Width(), src.Height()
	maxX, maxY := float64(w-1), float64(h-1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sx, sy, ok := fn(float64(x), float64(y))
			if !ok || sx < 0 || sx > maxX || sy < 0 || sy > maxY || math.IsNaN(sx) || math.IsNaN(sy) {
				continue
			}
			dst.SetNRGBA(x, y, filter.BilinearSample(src, sx, sy))
		}
	}
	return dst
}

// geometry holds the center and half of the smaller side of a buffer.
type geometry struct {
	cx, cy float64
	half   float64
}

func geometryOf(src *fx.PixelBuffer) geometry {
	w, h := float64(src.Width()), float64(src.Height())
	return geometry{cx: w / 2, cy: h / 2, half: math.Min(w, h) / 2}
}

// radiusOf converts a percentage of the half-size into pixels.
func (g geometry) radiusOf(pct float64) float64 {
	return math.Max(pct, 0) / 100 * g.half
}

func degenerate(name string, src *fx.PixelBuffer) *fx.PixelBuffer {
	fx.Logger().Warn("distort: degenerate geometry", "filter", name)
	return src.Clone()
}

func clampPct(v, lo, hi float64) float64 {
	return min(max(v, lo), hi)
}
