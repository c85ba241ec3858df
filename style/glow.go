package style

import (
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/blend"
	"github.com/gogpu/fx/curve"
	"github.com/gogpu/fx/internal/edge"
)

// GlowTechnique selects the falloff profile of an inner glow.
type GlowTechnique uint8

const (
	// Softer eases the falloff with a sine curve.
	Softer GlowTechnique = iota
	// Precise uses the linear falloff.
	Precise
)

// GlowSource selects where an inner glow is measured from.
type GlowSource uint8

const (
	// Edge measures from the shape's transparent boundary.
	Edge GlowSource = iota
	// Center measures from the rectangular border of the styled region.
	Center
)

// InnerGlow lights the inside of a shape near its edge.
type InnerGlow struct {
	Color     fx.RGB
	BlendMode blend.Mode
	Opacity   float64 // percent
	Noise     float64 // percent
	Technique GlowTechnique
	Source    GlowSource
	Choke     float64 // percent
	Size      float64 // pixels
	Contour   curve.Contour
}

// DefaultInnerGlow returns a pale yellow 5px softer glow in screen mode.
func DefaultInnerGlow() InnerGlow {
	return InnerGlow{
		Color:     fx.RGB{R: 255, G: 255, B: 190},
		BlendMode: blend.Screen,
		Opacity:   75,
		Technique: Softer,
		Source:    Edge,
		Size:      5,
		Contour:   curve.Linear(),
	}
}

func (InnerGlow) effectName() string { return "inner-glow" }

func (g InnerGlow) validate() error {
	const op = "style.InnerGlow"
	if err := validateSize(op, g.Size); err != nil {
		return err
	}
	return validateCommon(op, g.BlendMode, g.Contour)
}

func (g InnerGlow) render(dst, src *fx.PixelBuffer, o fx.Options) {
	choke := min(max(g.Choke, 0), 100)
	size := g.Size * (1 - choke/100)
	if size <= 0 {
		return
	}
	radius := int(math.Ceil(size))
	contour := g.Contour.OrLinear()
	c := g.Color.NRGBA()
	opacity := opacityFactor(g.Opacity)
	noise := min(max(g.Noise, 0), 100) / 100

	width, height := src.Width(), src.Height()
	data := dst.Data()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if src.Alpha(x, y) == 0 {
				continue
			}

			var d float64
			if g.Source == Center {
				d = math.Min(float64(min(x, y, width-x-1, height-y-1)), g.Size)
			} else {
				d = edge.Distance(src, x, y, radius, true)
			}

			intensity := 1 - d/size
			if intensity <= 0 {
				continue
			}
			if g.Technique == Softer {
				intensity = math.Sin(intensity * math.Pi / 2)
			}
			intensity = contour.Evaluate(intensity*255) / 255
			if noise > 0 {
				intensity *= 1 - o.Rand.Float64()*noise
			}

			compositeAt(data, dst.PixOffset(x, y), c, g.BlendMode, opacity*intensity, o.Rand)
		}
	}
}
