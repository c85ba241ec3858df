// Package selective implements selective color: per-range CMYK
// adjustments weighted by how strongly each pixel belongs to the range.
package selective

import (
	"github.com/gogpu/fx"
)

// Method selects how a delta is applied to a CMYK component.
type Method uint8

const (
	// Relative scales each delta by the component's current value.
	Relative Method = iota
	// Absolute adds each delta scaled only by the range weight.
	Absolute
)

// Adjustment holds the CMYK deltas for one range, in percent from -100
// to 100.
type Adjustment struct {
	Cyan    float64
	Magenta float64
	Yellow  float64
	Black   float64
}

func (a Adjustment) zero() bool {
	return a == Adjustment{}
}

// Settings configures Apply. Adjustments is indexed by Range.
type Settings struct {
	Method      Method
	Adjustments [rangeCount]Adjustment
}

// Set stores the adjustment for r.
func (s *Settings) Set(r Range, a Adjustment) {
	if r < rangeCount {
		s.Adjustments[r] = a
	}
}

// Apply returns a copy of src with the selective color settings applied.
// Deltas from every range are computed against the pixel's original CMYK
// values, summed and clamped to [0, 1]. Alpha is untouched.
func Apply(src *fx.PixelBuffer, s Settings) (*fx.PixelBuffer, error) {
	const op = "selective.Apply"
	if src == nil {
		return nil, fx.ErrInvalidDimensions
	}
	if s.Method > Absolute {
		return nil, fx.InvalidParameter(op, "Method", s.Method)
	}

	var active []Range
	for r := range rangeCount {
		if !s.Adjustments[r].zero() {
			active = append(active, r)
		}
	}
	dst := src.Clone()
	if len(active) == 0 {
		return dst, nil
	}

	fx.Logger().Debug("selective: apply",
		"ranges", len(active),
		"width", src.Width(),
		"height", src.Height())

	d := dst.Data()
	for i := 0; i+3 < len(d); i += 4 {
		r, g, b := d[i], d[i+1], d[i+2]
		h, sat, l := fx.RGBToHSL(r, g, b)
		var orig [4]float64
		orig[0], orig[1], orig[2], orig[3] = fx.RGBToCMYK(r, g, b)

		var delta [4]float64
		for _, rg := range active {
			w := Weight(rg, h, sat, l)
			if w == 0 {
				continue
			}
			a := s.Adjustments[rg]
			for c, pct := range [4]float64{a.Cyan, a.Magenta, a.Yellow, a.Black} {
				f := min(max(pct, -100), 100) / 100 * w
				if s.Method == Relative {
					f *= orig[c]
				}
				delta[c] += f
			}
		}
		if delta == [4]float64{} {
			continue
		}

		var out [4]float64
		for c := range out {
			out[c] = clamp01(orig[c] + delta[c])
		}
		d[i], d[i+1], d[i+2] = fx.CMYKToRGB(out[0], out[1], out[2], out[3])
	}
	return dst, nil
}
