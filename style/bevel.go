package style

import (
	"math"

	"github.com/gogpu/fx"
	"github.com/gogpu/fx/blend"
	"github.com/gogpu/fx/curve"
	"github.com/gogpu/fx/internal/edge"
)

// Technique selects how edge proximity shapes a bevel or glow.
type Technique uint8

const (
	// Smooth eases proximity with a sine curve.
	Smooth Technique = iota
	// ChiselHard switches fully on past the midpoint of the bevel.
	ChiselHard
	// ChiselSoft uses proximity linearly.
	ChiselSoft
)

// Direction selects whether a bevel appears raised or sunken.
type Direction uint8

const (
	Up Direction = iota
	Down
)

// BevelEmboss shades the inside edge of a shape as if lit from Angle and
// Altitude, producing a raised (Up) or sunken (Down) look.
type BevelEmboss struct {
	Technique Technique
	Depth     float64 // percent
	Direction Direction
	Size      float64 // pixels
	Angle     float64 // degrees
	Altitude  float64 // degrees
	Contour   curve.Contour

	HighlightColor   fx.RGB
	HighlightMode    blend.Mode
	HighlightOpacity float64 // percent

	ShadowColor   fx.RGB
	ShadowMode    blend.Mode
	ShadowOpacity float64 // percent
}

// DefaultBevelEmboss returns a smooth 5px raised bevel lit from 120° at
// 30° altitude, with a white screen highlight and a black multiply shadow.
func DefaultBevelEmboss() BevelEmboss {
	return BevelEmboss{
		Technique:        Smooth,
		Depth:            100,
		Direction:        Up,
		Size:             5,
		Angle:            120,
		Altitude:         30,
		Contour:          curve.Linear(),
		HighlightColor:   fx.RGB{R: 255, G: 255, B: 255},
		HighlightMode:    blend.Screen,
		HighlightOpacity: 75,
		ShadowColor:      fx.RGB{},
		ShadowMode:       blend.Multiply,
		ShadowOpacity:    75,
	}
}

func (BevelEmboss) effectName() string { return "bevel-emboss" }

func (b BevelEmboss) validate() error {
	const op = "style.BevelEmboss"
	if err := validateSize(op, b.Size); err != nil {
		return err
	}
	if b.Depth < 0 {
		return fx.InvalidParameter(op, "Depth", b.Depth)
	}
	if err := validateCommon(op, b.HighlightMode, b.Contour); err != nil {
		return err
	}
	if !b.ShadowMode.Valid() {
		return fx.InvalidParameter(op, "ShadowMode", b.ShadowMode)
	}
	return nil
}

func (b BevelEmboss) render(dst, src *fx.PixelBuffer, o fx.Options) {
	size := int(math.Round(b.Size))
	if size <= 0 {
		return
	}
	contour := b.Contour.OrLinear()

	angle := b.Angle * math.Pi / 180
	altitude := b.Altitude * math.Pi / 180
	lx := math.Cos(angle) * math.Cos(altitude)
	ly := math.Sin(angle) * math.Cos(altitude)

	highlight := b.HighlightColor.NRGBA()
	shadow := b.ShadowColor.NRGBA()
	hiOpacity := opacityFactor(b.HighlightOpacity)
	shOpacity := opacityFactor(b.ShadowOpacity)

	width, height := src.Width(), src.Height()
	data := dst.Data()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if src.Alpha(x, y) == 0 {
				continue
			}
			d := edge.Distance(src, x, y, size, true)
			if d >= float64(size) {
				continue
			}

			gx := (float64(clampedAlpha(src, x-1, y)) - float64(clampedAlpha(src, x+1, y))) / 255
			gy := (float64(clampedAlpha(src, x, y-1)) - float64(clampedAlpha(src, x, y+1))) / 255
			n := math.Sqrt(gx*gx + gy*gy + 1)
			dot := gx/n*lx + gy/n*ly

			lighting := dot * b.Technique.shape(1-d/float64(size)) * b.Depth / 100
			if b.Direction == Down {
				lighting = -lighting
			}
			if lighting == 0 {
				continue
			}

			intensity := contour.Evaluate(math.Min(255, math.Abs(lighting)*255)) / 255
			i := dst.PixOffset(x, y)
			if lighting > 0 {
				compositeAt(data, i, highlight, b.HighlightMode, hiOpacity*intensity, o.Rand)
			} else {
				compositeAt(data, i, shadow, b.ShadowMode, shOpacity*intensity, o.Rand)
			}
		}
	}
}

// shape maps a 0..1 edge proximity through the technique's profile.
func (t Technique) shape(p float64) float64 {
	switch t {
	case ChiselHard:
		if p >= 0.5 {
			return 1
		}
		return 0
	case ChiselSoft:
		return p
	default:
		return math.Sin(p * math.Pi / 2)
	}
}

// clampedAlpha returns the alpha at (x, y) with coordinates clamped to the
// buffer.
func clampedAlpha(buf *fx.PixelBuffer, x, y int) uint8 {
	x = min(max(x, 0), buf.Width()-1)
	y = min(max(y, 0), buf.Height()-1)
	return buf.Alpha(x, y)
}
