package style

import (
	"image/color"
	"math"
	"sort"

	"github.com/gogpu/fx"
)

// GradientType is the shape a gradient was authored with.
type GradientType uint8

const (
	LinearGradient GradientType = iota
	RadialGradient
)

// Stop is a color at a position along a gradient.
type Stop struct {
	Position float64 // 0 to 100
	Color    fx.RGB
	Opacity  float64 // percent
}

// Gradient is an ordered set of color stops.
type Gradient struct {
	Type  GradientType
	Stops []Stop
}

// sortStops returns a copy of stops sorted by position.
func sortStops(stops []Stop) []Stop {
	sorted := make([]Stop, len(stops))
	copy(sorted, stops)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})
	return sorted
}

// colorAt interpolates sorted stops at position pos (0..100). Positions
// outside the stops take the nearest end stop.
func colorAt(stops []Stop, pos float64) color.NRGBA {
	if len(stops) == 0 {
		return color.NRGBA{}
	}

	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].Position >= pos
	})
	if idx == 0 {
		return stopColor(stops[0])
	}
	if idx >= len(stops) {
		return stopColor(stops[len(stops)-1])
	}

	s1, s2 := stops[idx-1], stops[idx]
	if s2.Position == s1.Position {
		return stopColor(s1)
	}
	t := (pos - s1.Position) / (s2.Position - s1.Position)
	lerp := func(a, b float64) float64 { return a + (b-a)*t }

	return color.NRGBA{
		R: fx.ClampRound(lerp(float64(s1.Color.R), float64(s2.Color.R))),
		G: fx.ClampRound(lerp(float64(s1.Color.G), float64(s2.Color.G))),
		B: fx.ClampRound(lerp(float64(s1.Color.B), float64(s2.Color.B))),
		A: fx.ClampRound(lerp(s1.Opacity, s2.Opacity) * 255 / 100),
	}
}

func stopColor(s Stop) color.NRGBA {
	c := s.Color.NRGBA()
	c.A = fx.ClampRound(s.Opacity * 255 / 100)
	return c
}

// GradientStyle selects how pixel positions project onto the gradient axis.
type GradientStyle uint8

const (
	// Inherit uses the gradient's own Type.
	Inherit GradientStyle = iota
	Linear
	Radial
	Angle
	Reflected
	Diamond
)

// projector maps pixel coordinates within a w×h region to a gradient
// position in [0, 1].
type projector struct {
	style  GradientStyle
	cx, cy float64
	dx, dy float64 // unit axis, y pointing down
	angle  float64 // radians
	half   float64 // half extent of the linear axis
	radius float64
}

func newProjector(style GradientStyle, t GradientType, angleDeg, scalePct float64, w, h int) projector {
	if style == Inherit {
		style = Linear
		if t == RadialGradient {
			style = Radial
		}
	}
	scale := scalePct / 100
	if !(scale > 0) {
		scale = 0.01
	}
	a := angleDeg * math.Pi / 180
	p := projector{
		style:  style,
		cx:     float64(w) / 2,
		cy:     float64(h) / 2,
		dx:     math.Cos(a),
		dy:     -math.Sin(a),
		angle:  a,
		radius: math.Max(float64(w), float64(h)) / 2 * scale,
	}
	p.half = (math.Abs(float64(w)*p.dx) + math.Abs(float64(h)*p.dy)) / 2 * scale
	if p.half <= 0 {
		p.half = 1
	}
	if p.radius <= 0 {
		p.radius = 1
	}
	return p
}

func (p projector) at(x, y int) float64 {
	px := float64(x) + 0.5 - p.cx
	py := float64(y) + 0.5 - p.cy

	var t float64
	switch p.style {
	case Radial:
		t = math.Hypot(px, py) / p.radius
	case Angle:
		theta := math.Atan2(-py, px) - p.angle
		theta = math.Mod(theta, 2*math.Pi)
		if theta < 0 {
			theta += 2 * math.Pi
		}
		t = theta / (2 * math.Pi)
	case Reflected:
		t = math.Abs(px*p.dx+py*p.dy) / p.half
	case Diamond:
		u := px*p.dx + py*p.dy
		v := -px*p.dy + py*p.dx
		t = (math.Abs(u) + math.Abs(v)) / p.radius
	default:
		t = ((px*p.dx+py*p.dy)/p.half + 1) / 2
	}
	return min(max(t, 0), 1)
}
