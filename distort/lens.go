package distort

import (
	"math"

	"github.com/gogpu/fx"
)

// SpherizeMode restricts spherize to one or both axes.
type SpherizeMode uint8

const (
	SpherizeNormal SpherizeMode = iota
	SpherizeHorizontal
	SpherizeVertical
)

// Spherize wraps the image around a sphere inscribed in the buffer.
type Spherize struct {
	Amount float64 // -100 to 100
	Mode   SpherizeMode
}

func (Spherize) filterName() string { return "spherize" }

func (s Spherize) validate() error {
	if s.Mode > SpherizeVertical {
		return fx.InvalidParameter("distort.Spherize", "Mode", s.Mode)
	}
	return nil
}

func (s Spherize) apply(src *fx.PixelBuffer) *fx.PixelBuffer {
	if s.Amount == 0 {
		return src.Clone()
	}
	g := geometryOf(src)
	amount := clampPct(s.Amount, -100, 100) / 100
	horizontal := s.Mode != SpherizeVertical
	vertical := s.Mode != SpherizeHorizontal

	return remap(src, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-g.cx, y-g.cy
		nx, ny := dx/g.half, dy/g.half
		d2 := nx*nx + ny*ny
		if d2 >= 1 {
			return x, y, true
		}
		scale := (1-math.Sqrt(1-d2))*amount + (1 - amount)
		sx, sy := x, y
		if horizontal {
			sx = g.cx + dx*scale
		}
		if vertical {
			sy = g.cy + dy*scale
		}
		return sx, sy, true
	})
}

// Pinch squeezes (positive Amount) or bulges (negative Amount) the area
// within Radius of the center.
type Pinch struct {
	Amount float64 // -100 to 100
	Radius float64 // percent of half the smaller side
}

// DefaultPinch returns a 50% pinch over the full inscribed circle.
func DefaultPinch() Pinch {
	return Pinch{Amount: 50, Radius: 100}
}

func (Pinch) filterName() string { return "pinch" }

func (p Pinch) apply(src *fx.PixelBuffer) *fx.PixelBuffer {
	if p.Amount == 0 {
		return src.Clone()
	}
	g := geometryOf(src)
	radius := g.radiusOf(p.Radius)
	if radius <= 0 {
		return degenerate(p.filterName(), src)
	}
	amount := clampPct(p.Amount, -100, 100) / 100

	return remap(src, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-g.cx, y-g.cy
		dist := math.Hypot(dx, dy)
		if dist >= radius || dist == 0 {
			return x, y, true
		}
		factor := math.Pow(math.Sin(dist/radius*math.Pi/2), -amount)
		return g.cx + dx*factor, g.cy + dy*factor, true
	})
}

// Twirl rotates the area within Radius of the center, more strongly
// towards the center.
type Twirl struct {
	Angle  float64 // degrees
	Radius float64 // percent of half the smaller side
}

// DefaultTwirl returns a 50° twirl over the full inscribed circle.
func DefaultTwirl() Twirl {
	return Twirl{Angle: 50, Radius: 100}
}

func (Twirl) filterName() string { return "twirl" }

func (t Twirl) apply(src *fx.PixelBuffer) *fx.PixelBuffer {
	if t.Angle == 0 {
		return src.Clone()
	}
	g := geometryOf(src)
	radius := g.radiusOf(t.Radius)
	if radius <= 0 {
		return degenerate(t.filterName(), src)
	}
	angle := t.Angle * math.Pi / 180

	return remap(src, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-g.cx, y-g.cy
		dist := math.Hypot(dx, dy)
		if dist >= radius {
			return x, y, true
		}
		theta := math.Atan2(dy, dx) + angle*(1-dist/radius)
		return g.cx + dist*math.Cos(theta), g.cy + dist*math.Sin(theta), true
	})
}
