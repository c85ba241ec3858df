package selective

import (
	"image/color"
	"testing"

	"github.com/gogpu/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pixel(t *testing.T, c color.NRGBA) *fx.PixelBuffer {
	t.Helper()
	buf, err := fx.NewPixelBuffer(1, 1)
	require.NoError(t, err)
	buf.SetNRGBA(0, 0, c)
	return buf
}

func TestParseRange(t *testing.T) {
	for _, r := range Ranges() {
		got, err := ParseRange(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, got)
	}

	got, err := ParseRange("  Neutrals ")
	require.NoError(t, err)
	assert.Equal(t, Neutrals, got)

	_, err = ParseRange("oranges")
	assert.ErrorIs(t, err, fx.ErrInvalidParameter)
	assert.Equal(t, "invalid", Range(42).String())
	assert.Len(t, Ranges(), 9)
}

func TestWeight(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		h, s, l float64
		want    float64
	}{
		{"red center", Reds, 0, 1, 0.5, 1},
		{"red wraps", Reds, 350, 1, 0.5, 1},
		{"red boundary", Reds, 30, 1, 0.5, 0.5},
		{"yellow boundary", Yellows, 30, 1, 0.5, 0.5},
		{"green falloff", Greens, 100, 1, 0.5, 1 - 5.0/30},
		{"blue far", Blues, 60, 1, 0.5, 0},
		{"magenta half saturated", Magentas, 300, 0.5, 0.5, 0.5},
		{"gray has no hue", Cyans, 180, 0, 0.5, 0},
		{"white", Whites, 0, 0, 1, 1},
		{"white mid", Whites, 0, 0, 0.625, 0.5},
		{"white dark", Whites, 0, 0, 0.3, 0},
		{"black", Blacks, 0, 0, 0, 1},
		{"black light", Blacks, 0, 0, 0.8, 0},
		{"neutral gray", Neutrals, 0, 0, 0.5, 1},
		{"neutral saturated", Neutrals, 0, 1, 0.5, 0},
		{"neutral extreme", Neutrals, 0, 0, 1, 0},
		{"invalid", Range(20), 0, 1, 0.5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Weight(tt.r, tt.h, tt.s, tt.l), 1e-9)
		})
	}
}

func TestHueWeightsPartitionTheWheel(t *testing.T) {
	for h := 0.0; h < 360; h += 7.5 {
		total := 0.0
		for r := Reds; r <= Magentas; r++ {
			total += Weight(r, h, 1, 0.5)
		}
		assert.InDelta(t, 1, total, 1e-9, "hue %v", h)
	}
}

func TestApplyAbsolute(t *testing.T) {
	var s Settings
	s.Method = Absolute
	s.Set(Reds, Adjustment{Cyan: 100})

	out, err := Apply(pixel(t, color.NRGBA{R: 255, A: 180}), s)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 180}, out.NRGBAAt(0, 0))
}

func TestApplyRelative(t *testing.T) {
	var s Settings
	s.Set(Reds, Adjustment{Cyan: 100, Magenta: -50})

	out, err := Apply(pixel(t, color.NRGBA{R: 255, A: 255}), s)
	require.NoError(t, err)
	// Cyan is zero, so a relative increase leaves it unchanged.
	assert.Equal(t, color.NRGBA{R: 255, G: 128, A: 255}, out.NRGBAAt(0, 0))
}

func TestApplyOtherRangesUntouched(t *testing.T) {
	var s Settings
	s.Method = Absolute
	s.Set(Blues, Adjustment{Cyan: 100, Black: 100})

	src := pixel(t, color.NRGBA{R: 200, G: 30, B: 40, A: 255})
	out, err := Apply(src, s)
	require.NoError(t, err)
	assert.Equal(t, src.Data(), out.Data())
}

func TestApplyNeutralsDarken(t *testing.T) {
	var s Settings
	s.Method = Absolute
	s.Set(Neutrals, Adjustment{Black: 50})

	out, err := Apply(pixel(t, color.NRGBA{R: 128, G: 128, B: 128, A: 255}), s)
	require.NoError(t, err)
	got := out.NRGBAAt(0, 0)
	assert.Less(t, got.R, uint8(10))
	assert.Equal(t, got.R, got.G)
	assert.Equal(t, got.G, got.B)
}

func TestApplyClampsDeltas(t *testing.T) {
	var s Settings
	s.Method = Absolute
	s.Set(Reds, Adjustment{Cyan: 900})

	out, err := Apply(pixel(t, color.NRGBA{R: 255, A: 255}), s)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{A: 255}, out.NRGBAAt(0, 0))
}

func TestApplyNoAdjustments(t *testing.T) {
	src := pixel(t, color.NRGBA{R: 13, G: 77, B: 201, A: 99})
	out, err := Apply(src, Settings{})
	require.NoError(t, err)
	assert.Equal(t, src.Data(), out.Data())
	assert.NotSame(t, src, out)
}

func TestApplyErrors(t *testing.T) {
	_, err := Apply(nil, Settings{})
	assert.ErrorIs(t, err, fx.ErrInvalidDimensions)

	_, err = Apply(pixel(t, color.NRGBA{}), Settings{Method: Method(3)})
	assert.ErrorIs(t, err, fx.ErrInvalidParameter)
}
