package style

import (
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/blend"
	"github.com/gogpu/fx/curve"
	"github.com/gogpu/fx/internal/edge"
)

// Satin shades the interior of a shape from the difference between two
// offset copies of its alpha.
type Satin struct {
	Color     fx.RGB
	BlendMode blend.Mode
	Opacity   float64 // percent
	Angle     float64 // degrees
	Distance  float64 // pixels
	Size      float64 // pixels
	Contour   curve.Contour
	Invert    bool
}

// DefaultSatin returns a black multiply satin at 19°, distance 11, size 14.
func DefaultSatin() Satin {
	return Satin{
		Color:     fx.RGB{},
		BlendMode: blend.Multiply,
		Opacity:   50,
		Angle:     19,
		Distance:  11,
		Size:      14,
		Contour:   curve.Linear(),
		Invert:    true,
	}
}

func (Satin) effectName() string { return "satin" }

func (s Satin) validate() error {
	const op = "style.Satin"
	if err := validateSize(op, s.Size); err != nil {
		return err
	}
	if s.Distance < 0 {
		return fx.InvalidParameter(op, "Distance", s.Distance)
	}
	return validateCommon(op, s.BlendMode, s.Contour)
}

func (s Satin) render(dst, src *fx.PixelBuffer, o fx.Options) {
	a := s.Angle * math.Pi / 180
	ox := int(math.Round(math.Cos(a) * s.Distance))
	oy := int(math.Round(math.Sin(a) * s.Distance))
	radius := int(math.Ceil(s.Size))
	contour := s.Contour.OrLinear()
	c := s.Color.NRGBA()
	opacity := opacityFactor(s.Opacity)

	data := dst.Data()
	for y := 0; y < src.Height(); y++ {
		for x := 0; x < src.Width(); x++ {
			if src.Alpha(x, y) == 0 {
				continue
			}
			a1 := float64(alphaOrZero(src, x+ox, y+oy))
			a2 := float64(alphaOrZero(src, x-ox, y-oy))
			raw := math.Abs(a1-a2) / 255
			if radius > 0 {
				d := edge.Distance(src, x, y, radius, true)
				raw *= math.Min(1, d/s.Size)
			}

			intensity := contour.Evaluate(raw*255) / 255
			if s.Invert {
				intensity = 1 - intensity
			}
			if intensity <= 0 {
				continue
			}
			compositeAt(data, dst.PixOffset(x, y), c, s.BlendMode, opacity*intensity, o.Rand)
		}
	}
}

// alphaOrZero returns the alpha at (x, y), or 0 outside the buffer.
func alphaOrZero(buf *fx.PixelBuffer, x, y int) uint8 {
	if !buf.InBounds(x, y) {
		return 0
	}
	return buf.Alpha(x, y)
}
