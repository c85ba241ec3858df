package style

import (
	"image/color"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/blend"
)

// ColorOverlay fills every covered pixel with a flat color.
type ColorOverlay struct {
	Color     fx.RGB
	BlendMode blend.Mode
	Opacity   float64 // percent
}

// DefaultColorOverlay returns an opaque red overlay in normal mode.
func DefaultColorOverlay() ColorOverlay {
	return ColorOverlay{Color: fx.RGB{R: 255}, BlendMode: blend.Normal, Opacity: 100}
}

func (ColorOverlay) effectName() string { return "color-overlay" }

func (c ColorOverlay) validate() error {
	return validateCommon("style.ColorOverlay", c.BlendMode, nil)
}

func (c ColorOverlay) render(dst, src *fx.PixelBuffer, o fx.Options) {
	top := c.Color.NRGBA()
	opacity := opacityFactor(c.Opacity)
	data, in := dst.Data(), src.Data()
	for i := 0; i < len(in); i += 4 {
		if in[i+3] == 0 {
			continue
		}
		compositeAt(data, i, top, c.BlendMode, opacity, o.Rand)
	}
}

// GradientOverlay fills covered pixels with a gradient.
type GradientOverlay struct {
	Gradient  Gradient
	BlendMode blend.Mode
	Opacity   float64 // percent
	Style     GradientStyle
	Angle     float64 // degrees
	Scale     float64 // percent
	Reverse   bool
}

// DefaultGradientOverlay returns a black-to-white linear overlay at 90°.
func DefaultGradientOverlay() GradientOverlay {
	return GradientOverlay{
		Gradient: Gradient{
			Type: LinearGradient,
			Stops: []Stop{
				{Position: 0, Color: fx.RGB{}, Opacity: 100},
				{Position: 100, Color: fx.RGB{R: 255, G: 255, B: 255}, Opacity: 100},
			},
		},
		BlendMode: blend.Normal,
		Opacity:   100,
		Style:     Linear,
		Angle:     90,
		Scale:     100,
	}
}

func (GradientOverlay) effectName() string { return "gradient-overlay" }

func (g GradientOverlay) validate() error {
	const op = "style.GradientOverlay"
	if len(g.Gradient.Stops) == 0 {
		return fx.InvalidParameter(op, "Gradient.Stops", "empty")
	}
	if g.Style > Diamond {
		return fx.InvalidParameter(op, "Style", g.Style)
	}
	return validateCommon(op, g.BlendMode, nil)
}

func (g GradientOverlay) render(dst, src *fx.PixelBuffer, o fx.Options) {
	stops := sortStops(g.Gradient.Stops)
	proj := newProjector(g.Style, g.Gradient.Type, g.Angle, g.Scale, src.Width(), src.Height())
	opacity := opacityFactor(g.Opacity)

	data := dst.Data()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if src.Alpha(x, y) == 0 {
				continue
			}
			t := proj.at(x, y)
			if g.Reverse {
				t = 1 - t
			}
			compositeAt(data, dst.PixOffset(x, y), colorAt(stops, t*100), g.BlendMode, opacity, o.Rand)
		}
	}
}

// PatternOverlay tiles a pattern across covered pixels.
type PatternOverlay struct {
	Pattern   Pattern
	BlendMode blend.Mode
	Opacity   float64 // percent
	Scale     float64 // percent, multiplied by Pattern.Scale
}

// DefaultPatternOverlay returns an opaque normal-mode overlay of p at its
// native scale.
func DefaultPatternOverlay(p Pattern) PatternOverlay {
	return PatternOverlay{Pattern: p, BlendMode: blend.Normal, Opacity: 100, Scale: 100}
}

func (PatternOverlay) effectName() string { return "pattern-overlay" }

func (p PatternOverlay) validate() error {
	const op = "style.PatternOverlay"
	if p.Pattern.Tile == nil {
		return fx.InvalidParameter(op, "Pattern.Tile", nil)
	}
	if s := p.scale(); !(s > 0) {
		return fx.InvalidParameter(op, "Scale", s)
	}
	return validateCommon(op, p.BlendMode, nil)
}

func (p PatternOverlay) scale() float64 {
	return p.Scale / 100 * p.Pattern.Scale
}

func (p PatternOverlay) render(dst, src *fx.PixelBuffer, o fx.Options) {
	tile := p.Pattern.Tile
	tw, th := tile.Width(), tile.Height()
	scale := p.scale()
	opacity := opacityFactor(p.Opacity)

	data, pix := dst.Data(), tile.Data()
	for y := 0; y < src.Height(); y++ {
		ty := tileIndex(y, scale, th)
		for x := 0; x < src.Width(); x++ {
			if src.Alpha(x, y) == 0 {
				continue
			}
			j := tile.PixOffset(tileIndex(x, scale, tw), ty)
			top := color.NRGBA{R: pix[j], G: pix[j+1], B: pix[j+2], A: pix[j+3]}
			compositeAt(data, dst.PixOffset(x, y), top, p.BlendMode, opacity, o.Rand)
		}
	}
}
