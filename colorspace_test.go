package fx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}

func TestRGBToHSL(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		h, s, l float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 1},
		{"red", 255, 0, 0, 0, 1, 0.5},
		{"green", 0, 255, 0, 120, 1, 0.5},
		{"blue", 0, 0, 255, 240, 1, 0.5},
		{"magenta", 255, 0, 255, 300, 1, 0.5},
		{"gray", 128, 128, 128, 0, 0, 128.0 / 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, s, l := RGBToHSL(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.h, h, 1e-9)
			assert.InDelta(t, tt.s, s, 1e-9)
			assert.InDelta(t, tt.l, l, 1e-9)
		})
	}
}

func TestHSLRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 15 {
		for g := 0; g < 256; g += 15 {
			for b := 0; b < 256; b += 15 {
				h, s, l := RGBToHSL(uint8(r), uint8(g), uint8(b))
				r2, g2, b2 := HSLToRGB(h, s, l)
				require.LessOrEqual(t, absDiff(uint8(r), r2), 1, "r for %d,%d,%d", r, g, b)
				require.LessOrEqual(t, absDiff(uint8(g), g2), 1, "g for %d,%d,%d", r, g, b)
				require.LessOrEqual(t, absDiff(uint8(b), b2), 1, "b for %d,%d,%d", r, g, b)
			}
		}
	}
}

func TestHSVRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 7 {
				h, s, v := RGBToHSV(uint8(r), uint8(g), uint8(b))
				require.True(t, h >= 0 && h < 360, "hue %v out of range", h)
				r2, g2, b2 := HSVToRGB(h, s, v)
				require.LessOrEqual(t, absDiff(uint8(r), r2), 1, "r for %d,%d,%d", r, g, b)
				require.LessOrEqual(t, absDiff(uint8(g), g2), 1, "g for %d,%d,%d", r, g, b)
				require.LessOrEqual(t, absDiff(uint8(b), b2), 1, "b for %d,%d,%d", r, g, b)
			}
		}
	}
}

func TestCMYKRoundTrip(t *testing.T) {
	for r := 0; r < 256; r += 3 {
		for g := 0; g < 256; g += 5 {
			for b := 0; b < 256; b += 7 {
				c, m, y, k := RGBToCMYK(uint8(r), uint8(g), uint8(b))
				r2, g2, b2 := CMYKToRGB(c, m, y, k)
				require.LessOrEqual(t, absDiff(uint8(r), r2), 1)
				require.LessOrEqual(t, absDiff(uint8(g), g2), 1)
				require.LessOrEqual(t, absDiff(uint8(b), b2), 1)
			}
		}
	}
}

func TestRGBToCMYKBlack(t *testing.T) {
	c, m, y, k := RGBToCMYK(0, 0, 0)
	assert.Equal(t, [4]float64{0, 0, 0, 1}, [4]float64{c, m, y, k})
}

func TestAchromaticHueIsZero(t *testing.T) {
	for v := 0; v < 256; v += 17 {
		h, _, _ := RGBToHSL(uint8(v), uint8(v), uint8(v))
		assert.Zero(t, h)
		h, _, _ = RGBToHSV(uint8(v), uint8(v), uint8(v))
		assert.Zero(t, h)
	}
}

func TestRGBToLab(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		l, a, bb float64
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 100, 0, 0},
		{"red", 255, 0, 0, 53.24, 80.09, 67.20},
		{"blue", 0, 0, 255, 32.30, 79.19, -107.86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, a, b := RGBToLab(tt.r, tt.g, tt.b)
			assert.InDelta(t, tt.l, l, 0.1)
			assert.InDelta(t, tt.a, a, 0.2)
			assert.InDelta(t, tt.bb, b, 0.2)
		})
	}
}

func TestLuma(t *testing.T) {
	assert.Equal(t, uint8(0), Luma(0, 0, 0))
	assert.Equal(t, uint8(255), Luma(255, 255, 255))
	assert.Equal(t, uint8(76), Luma(255, 0, 0))   // 76.245
	assert.Equal(t, uint8(150), Luma(0, 255, 0))  // 149.685
	assert.Equal(t, uint8(29), Luma(0, 0, 255))   // 29.07
	assert.InDelta(t, 76.245, Luminosity(255, 0, 0), 1e-9)
}

func TestClampRound(t *testing.T) {
	assert.Equal(t, uint8(0), ClampRound(-3))
	assert.Equal(t, uint8(0), ClampRound(math.NaN()))
	assert.Equal(t, uint8(255), ClampRound(300))
	assert.Equal(t, uint8(3), ClampRound(2.5))
	assert.Equal(t, uint8(2), ClampRound(2.49))
}
