package distort

import (
	"math"

	"github.com/gogpu/fx"
)

// PolarMode selects the conversion direction.
type PolarMode uint8

const (
	// RectangularToPolar bends the image into a disc: the top row ends up
	// at the center and the left edge at angle 0.
	RectangularToPolar PolarMode = iota
	// PolarToRectangular unrolls a disc centered in the buffer.
	PolarToRectangular
)

// Polar remaps the buffer between Cartesian and polar coordinates around
// its center. The maximum radius is the distance from the center to a
// corner.
type Polar struct {
	Mode PolarMode
}

func (Polar) filterName() string { return "polar-coordinates" }

func (p Polar) validate() error {
	if p.Mode > PolarToRectangular {
		return fx.InvalidParameter("distort.Polar", "Mode", p.Mode)
	}
	return nil
}

func (p Polar) apply(src *fx.PixelBuffer) *fx.PixelBuffer {
	w, h := float64(src.Width()), float64(src.Height())
	cx, cy := w/2, h/2
	maxR := math.Sqrt(cx*cx + cy*cy)

	if p.Mode == PolarToRectangular {
		return remap(src, func(x, y float64) (float64, float64, bool) {
			theta := x / w * 2 * math.Pi
			r := y / h * maxR
			return cx + r*math.Cos(theta), cy + r*math.Sin(theta), true
		})
	}

	return remap(src, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-cx, y-cy
		theta := math.Atan2(dy, dx)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		return theta / (2 * math.Pi) * w, math.Hypot(dx, dy) / maxR * h, true
	})
}
