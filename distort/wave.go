package distort

import (
	"math"

	"github.com/gogpu/fx"
)

// WaveType is the waveform of a wave generator.
type WaveType uint8

const (
	Sine WaveType = iota
	Triangle
	Square
)

// eval returns the waveform at phase p, in [-1, 1].
func (t WaveType) eval(p float64) float64 {
	switch t {
	case Triangle:
		return 2 / math.Pi * math.Asin(math.Sin(p))
	case Square:
		if math.Sin(p) < 0 {
			return -1
		}
		return 1
	default:
		return math.Sin(p)
	}
}

// Wave displaces pixels by the sum of several periodic generators.
// Wavelength and amplitude are interpolated linearly from the Min to the
// Max value across the generators; each generator gets a random phase.
type Wave struct {
	Generators    int
	WavelengthMin float64 // pixels
	WavelengthMax float64 // pixels
	AmplitudeMin  float64 // pixels
	AmplitudeMax  float64 // pixels
	ScaleX        float64 // percent
	ScaleY        float64 // percent
	Type          WaveType
	WrapAround    bool
}

// DefaultWave returns five sine generators with wavelengths 10 to 120 and
// amplitudes 5 to 35.
func DefaultWave() Wave {
	return Wave{
		Generators:    5,
		WavelengthMin: 10,
		WavelengthMax: 120,
		AmplitudeMin:  5,
		AmplitudeMax:  35,
		ScaleX:        100,
		ScaleY:        100,
		Type:          Sine,
	}
}

func (Wave) filterName() string { return "wave" }

func (w Wave) validate() error {
	const op = "distort.Wave"
	if w.Generators < 0 {
		return fx.InvalidParameter(op, "Generators", w.Generators)
	}
	if w.Generators > 0 && (w.WavelengthMin <= 0 || w.WavelengthMax <= 0) {
		return fx.InvalidParameter(op, "Wavelength", [2]float64{w.WavelengthMin, w.WavelengthMax})
	}
	if w.Type > Square {
		return fx.InvalidParameter(op, "Type", w.Type)
	}
	return nil
}

type generator struct {
	wavelength, amplitude, phase float64
}

func (w Wave) generators(rng fx.Rand) []generator {
	gens := make([]generator, w.Generators)
	for i := range gens {
		var t float64
		if len(gens) > 1 {
			t = float64(i) / float64(len(gens)-1)
		}
		gens[i] = generator{
			wavelength: w.WavelengthMin + (w.WavelengthMax-w.WavelengthMin)*t,
			amplitude:  w.AmplitudeMin + (w.AmplitudeMax-w.AmplitudeMin)*t,
			phase:      rng.Float64() * 2 * math.Pi,
		}
	}
	return gens
}

func (w Wave) apply(src *fx.PixelBuffer, rng fx.Rand) *fx.PixelBuffer {
	if w.Generators == 0 {
		return degenerate(w.filterName(), src)
	}
	gens := w.generators(rng)
	sx, sy := w.ScaleX/100, w.ScaleY/100
	width, height := float64(src.Width()), float64(src.Height())

	return remap(src, func(x, y float64) (float64, float64, bool) {
		var ox, oy float64
		for _, g := range gens {
			ox += g.amplitude * w.Type.eval(2*math.Pi*y/g.wavelength+g.phase)
			oy += g.amplitude * w.Type.eval(2*math.Pi*x/g.wavelength+g.phase)
		}
		nx, ny := x+ox*sx, y+oy*sy
		if w.WrapAround {
			nx = wrap(nx, width)
			ny = wrap(ny, height)
		}
		return nx, ny, true
	})
}

// wrap folds v into [0, size-1].
func wrap(v, size float64) float64 {
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	return math.Min(v, size-1)
}

// RippleSize selects the ripple wavelength.
type RippleSize uint8

const (
	RippleSmall RippleSize = iota
	RippleMedium
	RippleLarge
)

func (s RippleSize) wavelength() float64 {
	switch s {
	case RippleSmall:
		return 10
	case RippleLarge:
		return 50
	default:
		return 25
	}
}

// Ripple displaces pixels with two perpendicular sine waves. Sample
// coordinates are clamped into the buffer.
type Ripple struct {
	Amount float64 // percent, -999 to 999
	Size   RippleSize
}

func (Ripple) filterName() string { return "ripple" }

func (r Ripple) validate() error {
	if r.Size > RippleLarge {
		return fx.InvalidParameter("distort.Ripple", "Size", r.Size)
	}
	return nil
}

func (r Ripple) apply(src *fx.PixelBuffer) *fx.PixelBuffer {
	wl := r.Size.wavelength()
	amp := clampPct(r.Amount, -999, 999) / 100 * 10
	maxX, maxY := float64(src.Width()-1), float64(src.Height()-1)

	return remap(src, func(x, y float64) (float64, float64, bool) {
		sx := x + amp*math.Sin(2*math.Pi*y/wl)
		sy := y + amp*math.Sin(2*math.Pi*x/wl)
		return min(max(sx, 0), maxX), min(max(sy, 0), maxY), true
	})
}

// ZigZagStyle selects how ridges displace pixels.
type ZigZagStyle uint8

const (
	// AroundCenter rotates pixels back and forth around the center.
	AroundCenter ZigZagStyle = iota
	// OutFromCenter pushes pixels in and out along the radius.
	OutFromCenter
	// PondRipples combines both displacements.
	PondRipples
)

// ZigZag ripples the area within Radius of the center in concentric
// ridges, damped towards the edge.
type ZigZag struct {
	Amount float64 // -100 to 100
	Ridges int     // 0 to 20
	Style  ZigZagStyle
	Radius float64 // percent of half the smaller side
}

// DefaultZigZag returns a pond ripple with 5 ridges.
func DefaultZigZag() ZigZag {
	return ZigZag{Amount: 10, Ridges: 5, Style: PondRipples, Radius: 100}
}

func (ZigZag) filterName() string { return "zigzag" }

func (z ZigZag) apply(src *fx.PixelBuffer) *fx.PixelBuffer {
	g := geometryOf(src)
	radius := g.radiusOf(z.Radius)
	ridges := min(max(z.Ridges, 0), 20)
	if radius <= 0 || ridges == 0 {
		return degenerate(z.filterName(), src)
	}
	if z.Amount == 0 {
		return src.Clone()
	}
	amount := clampPct(z.Amount, -100, 100) / 100
	angular := z.Style != OutFromCenter
	radial := z.Style != AroundCenter

	return remap(src, func(x, y float64) (float64, float64, bool) {
		dx, dy := x-g.cx, y-g.cy
		dist := math.Hypot(dx, dy)
		if dist >= radius || dist == 0 {
			return x, y, true
		}
		nd := dist / radius
		ridge := math.Sin(nd*float64(ridges)*2*math.Pi) * (1 - nd)

		theta := math.Atan2(dy, dx)
		r := dist
		if angular {
			theta += amount * ridge * math.Pi / 4
		}
		if radial {
			r += amount * ridge * radius / 10
		}
		return g.cx + r*math.Cos(theta), g.cy + r*math.Sin(theta), true
	})
}
