// Package curve implements piecewise-linear response curves ("contours").
//
// A contour remaps a normalized 0–255 effect intensity through a
// user-defined response. Layer styles route every computed intensity
// through one.
package curve

import "github.com/gogpu/fx"

// Point is a contour control point. Both coordinates are in [0, 255].
type Point struct {
	In, Out float64
}

// Contour is an ordered sequence of control points with non-decreasing In.
type Contour []Point

// Linear returns the identity contour [(0,0), (255,255)].
func Linear() Contour {
	return Contour{{In: 0, Out: 0}, {In: 255, Out: 255}}
}

// Evaluate maps in through the contour.
//
// The input is clamped to [0, 255]. Inputs before the first point return
// the first output and inputs beyond the last point return the last output.
// A zero-width segment returns the output of its first point. An empty
// contour returns the input unchanged.
func (c Contour) Evaluate(in float64) float64 {
	if len(c) == 0 {
		return in
	}
	if in < 0 {
		in = 0
	} else if in > 255 {
		in = 255
	}

	if in <= c[0].In {
		return c[0].Out
	}
	for i := 0; i+1 < len(c); i++ {
		p1, p2 := c[i], c[i+1]
		if in < p1.In || in > p2.In {
			continue
		}
		if p2.In == p1.In {
			return p1.Out
		}
		t := (in - p1.In) / (p2.In - p1.In)
		return p1.Out + t*(p2.Out-p1.Out)
	}
	return c[len(c)-1].Out
}

// Validate reports whether c is a usable contour: non-empty, coordinates
// in [0, 255] and inputs non-decreasing.
func (c Contour) Validate() error {
	if len(c) == 0 {
		return fx.InvalidParameter("curve.Validate", "Contour", "empty")
	}
	for i, p := range c {
		if p.In < 0 || p.In > 255 || p.Out < 0 || p.Out > 255 {
			return fx.InvalidParameter("curve.Validate", "Contour", p)
		}
		if i > 0 && p.In < c[i-1].In {
			return fx.InvalidParameter("curve.Validate", "Contour", "decreasing input")
		}
	}
	return nil
}

// OrLinear returns c, or the identity contour when c is empty. Settings
// built as zero values get the default response this way.
func (c Contour) OrLinear() Contour {
	if len(c) == 0 {
		return Linear()
	}
	return c
}
