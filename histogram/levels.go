package histogram

import (
	"math"

	"github.com/gogpu/fx"
)

// Levels is a manual tonal remap applied equally to R, G and B:
// [InputBlack, InputWhite] is stretched onto [OutputBlack, OutputWhite]
// with a midtone Gamma.
type Levels struct {
	InputBlack  uint8
	InputWhite  uint8
	Gamma       float64 // 0.01 to 9.99, 1 is linear
	OutputBlack uint8
	OutputWhite uint8
}

// DefaultLevels returns the identity remap.
func DefaultLevels() Levels {
	return Levels{InputWhite: 255, Gamma: 1, OutputWhite: 255}
}

func (l Levels) validate() error {
	const op = "histogram.ApplyLevels"
	if l.InputWhite <= l.InputBlack {
		return fx.InvalidParameter(op, "InputWhite", l.InputWhite)
	}
	if !(l.Gamma > 0) || math.IsInf(l.Gamma, 0) {
		return fx.InvalidParameter(op, "Gamma", l.Gamma)
	}
	return nil
}

// lut is a per-channel lookup table.
type lut [256]uint8

func identityLUT() lut {
	var t lut
	for i := range t {
		t[i] = uint8(i)
	}
	return t
}

// remapLUT linearly maps [black, white] onto [outBlack, outWhite] through
// gamma, clamping outside the input range. white must exceed black.
func remapLUT(black, white int, gamma float64, outBlack, outWhite uint8) lut {
	var t lut
	span := float64(white - black)
	inv := 1 / min(max(gamma, 0.01), 9.99)
	lo, hi := float64(outBlack), float64(outWhite)
	for v := range t {
		x := min(max(float64(v-black)/span, 0), 1)
		if inv != 1 {
			x = math.Pow(x, inv)
		}
		t[v] = fx.ClampRound(lo + x*(hi-lo))
	}
	return t
}

// applyLUTs returns a copy of src with each RGB channel mapped through its
// table. Alpha is untouched.
func applyLUTs(src *fx.PixelBuffer, r, g, b *lut) *fx.PixelBuffer {
	dst := src.Clone()
	d := dst.Data()
	for i := 0; i+3 < len(d); i += 4 {
		d[i] = r[d[i]]
		d[i+1] = g[d[i+1]]
		d[i+2] = b[d[i+2]]
	}
	return dst
}

// ApplyLevels applies l to every pixel of src.
func ApplyLevels(src *fx.PixelBuffer, l Levels) (*fx.PixelBuffer, error) {
	if src == nil {
		return nil, fx.ErrInvalidDimensions
	}
	if err := l.validate(); err != nil {
		return nil, err
	}
	fx.Logger().Debug("histogram: levels",
		"black", l.InputBlack,
		"white", l.InputWhite,
		"gamma", l.Gamma)

	t := remapLUT(int(l.InputBlack), int(l.InputWhite), l.Gamma, l.OutputBlack, l.OutputWhite)
	return applyLUTs(src, &t, &t, &t), nil
}

// AutoLevels stretches each RGB channel independently. The black point is
// the lowest bin where the cumulative count from the dark end exceeds
// clipPercent of the pixels, and the white point likewise from the light
// end. clipPercent is clamped to [0, 100]. Channels whose white point does
// not exceed their black point are left unchanged.
func AutoLevels(src *fx.PixelBuffer, clipPercent float64) (*fx.PixelBuffer, error) {
	if src == nil {
		return nil, fx.ErrInvalidDimensions
	}
	clip := min(max(clipPercent, 0), 100)
	h := Build(src)
	threshold := float64(h.total) * clip / 100

	fx.Logger().Debug("histogram: auto levels",
		"clip", clip,
		"width", src.Width(),
		"height", src.Height())

	var tables [3]lut
	for ch := Red; ch <= Blue; ch++ {
		black, white := clipPoints(&h.bins[ch], threshold)
		if white <= black {
			tables[ch] = identityLUT()
			continue
		}
		tables[ch] = remapLUT(black, white, 1, 0, 255)
	}
	return applyLUTs(src, &tables[Red], &tables[Green], &tables[Blue]), nil
}

// clipPoints finds the black and white points of bins for a clip
// threshold given in pixels.
func clipPoints(bins *[256]int, threshold float64) (black, white int) {
	black, white = 0, 255
	cum := 0
	for i := 0; i < 256; i++ {
		cum += bins[i]
		if float64(cum) > threshold {
			black = i
			break
		}
	}
	cum = 0
	for i := 255; i >= 0; i-- {
		cum += bins[i]
		if float64(cum) > threshold {
			white = i
			break
		}
	}
	return black, white
}

// AutoContrast stretches the observed luminosity range onto [0, 255] with
// one remap shared by R, G and B, preserving hue relationships.
func AutoContrast(src *fx.PixelBuffer) (*fx.PixelBuffer, error) {
	if src == nil {
		return nil, fx.ErrInvalidDimensions
	}
	h := Build(src)
	s := ComputeStatistics(h.bins[Luminosity], h.total)

	fx.Logger().Debug("histogram: auto contrast",
		"min", s.Min,
		"max", s.Max)

	if s.Max <= s.Min {
		return src.Clone(), nil
	}
	t := remapLUT(s.Min, s.Max, 1, 0, 255)
	return applyLUTs(src, &t, &t, &t), nil
}
