// Package sharpen implements unsharp mask, smart sharpen, high pass and
// simple kernel sharpening.
//
// All filters operate on R, G and B and copy alpha unchanged. Each returns
// a new buffer and never modifies its input.
package sharpen

import (
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/internal/filter"
)

// UnsharpMaskSettings configures UnsharpMask.
type UnsharpMaskSettings struct {
	Amount    float64 // percent, 0 to 500
	Radius    float64 // pixels
	Threshold float64 // levels, 0 to 255
}

// DefaultUnsharpMask returns 100% at radius 1 with no threshold.
func DefaultUnsharpMask() UnsharpMaskSettings {
	return UnsharpMaskSettings{Amount: 100, Radius: 1}
}

// UnsharpMask adds the difference between the image and its Gaussian blur,
// scaled by Amount, wherever that difference reaches Threshold.
func UnsharpMask(src *fx.PixelBuffer, s UnsharpMaskSettings) (*fx.PixelBuffer, error) {
	const op = "sharpen.UnsharpMask"
	if err := checkInput(op, src, s.Radius); err != nil {
		return nil, err
	}
	logApply(op, src, s.Radius)

	amount := clampAmount(s.Amount)
	threshold := min(max(s.Threshold, 0), 255)
	blurred := filter.GaussianBlur(src, s.Radius)

	return combine(src, blurred, func(o, b float64) float64 {
		diff := o - b
		if math.Abs(diff) < threshold {
			return o
		}
		return o + diff*amount
	}), nil
}

// BlurType selects the blur a smart sharpen removes.
type BlurType uint8

const (
	GaussianBlur BlurType = iota
	LensBlur
	MotionBlur
)

// SmartSharpenSettings configures SmartSharpen.
type SmartSharpenSettings struct {
	Amount         float64 // percent, 0 to 500
	Radius         float64 // pixels
	NoiseReduction float64 // percent
	Remove         BlurType
	MotionAngle    float64 // degrees, used with MotionBlur
}

// DefaultSmartSharpen returns 100% at radius 1 removing Gaussian blur with
// 10% noise reduction.
func DefaultSmartSharpen() SmartSharpenSettings {
	return SmartSharpenSettings{Amount: 100, Radius: 1, NoiseReduction: 10, Remove: GaussianBlur}
}

// SmartSharpen works like UnsharpMask with a selectable blur source. Small
// differences, below ten levels times the noise reduction fraction, are
// shrunk before the amount is applied.
//
// Lens blur is approximated by the Gaussian blur.
func SmartSharpen(src *fx.PixelBuffer, s SmartSharpenSettings) (*fx.PixelBuffer, error) {
	const op = "sharpen.SmartSharpen"
	if err := checkInput(op, src, s.Radius); err != nil {
		return nil, err
	}
	if s.Remove > MotionBlur {
		return nil, fx.InvalidParameter(op, "Remove", s.Remove)
	}
	logApply(op, src, s.Radius)

	var blurred *fx.PixelBuffer
	if s.Remove == MotionBlur {
		blurred = filter.DirectionalBlur(src, max(1, int(math.Round(s.Radius))), s.MotionAngle)
	} else {
		blurred = filter.GaussianBlur(src, s.Radius)
	}

	amount := clampAmount(s.Amount)
	floor := 10 * min(max(s.NoiseReduction, 0), 100) / 100

	return combine(src, blurred, func(o, b float64) float64 {
		diff := o - b
		if ad := math.Abs(diff); ad < floor {
			diff *= ad / floor
		}
		return o + diff*amount
	}), nil
}

// HighPassSettings configures HighPass.
type HighPassSettings struct {
	Radius float64 // pixels
}

// HighPass keeps only detail finer than Radius, centered on mid-gray:
// 128 + (original - blurred).
func HighPass(src *fx.PixelBuffer, s HighPassSettings) (*fx.PixelBuffer, error) {
	const op = "sharpen.HighPass"
	if err := checkInput(op, src, s.Radius); err != nil {
		return nil, err
	}
	logApply(op, src, s.Radius)

	blurred := filter.GaussianBlur(src, s.Radius)
	return combine(src, blurred, func(o, b float64) float64 {
		return 128 + o - b
	}), nil
}

// SharpenSettings configures Sharpen.
type SharpenSettings struct {
	Amount float64 // percent, 0 to 100
}

// Sharpen blends a fixed 3×3 sharpening kernel with the original by
// Amount. The outermost pixel ring is copied unchanged.
func Sharpen(src *fx.PixelBuffer, s SharpenSettings) (*fx.PixelBuffer, error) {
	if src == nil {
		return nil, fx.ErrInvalidDimensions
	}
	logApply("sharpen.Sharpen", src, 1)

	amount := min(max(s.Amount, 0), 100) / 100
	sharp := filter.Convolve3x3(src, filter.Sharpen3x3)
	return combine(src, sharp, func(o, k float64) float64 {
		return o + (k-o)*amount
	}), nil
}

// combine builds a buffer whose R, G and B are fn(original, other),
// clamped and rounded. Alpha is copied from src.
func combine(src, other *fx.PixelBuffer, fn func(o, b float64) float64) *fx.PixelBuffer {
	dst := src.Clone()
	d, b := dst.Data(), other.Data()
	for i := 0; i < len(d); i += 4 {
		for c := 0; c < 3; c++ {
			d[i+c] = fx.ClampRound(fn(float64(d[i+c]), float64(b[i+c])))
		}
	}
	return dst
}

func checkInput(op string, src *fx.PixelBuffer, radius float64) error {
	if src == nil {
		return fx.ErrInvalidDimensions
	}
	if !(radius > 0) || math.IsInf(radius, 1) {
		return fx.InvalidParameter(op, "Radius", radius)
	}
	return nil
}

// clampAmount converts a 0..500 percentage into a factor.
func clampAmount(pct float64) float64 {
	return min(max(pct, 0), 500) / 100
}

func logApply(op string, src *fx.PixelBuffer, radius float64) {
	fx.Logger().Debug("sharpen: apply",
		"op", op,
		"radius", radius,
		"width", src.Width(),
		"height", src.Height())
}
