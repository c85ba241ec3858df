package filter

import (
	"image/color"
	"testing"

	"github.com/gogpu/fx"
	"github.com/stretchr/testify/require"
)

// Test helper functions shared across filter tests.

// createTestBuffer creates a buffer filled with the given color.
func createTestBuffer(t *testing.T, w, h int, c color.NRGBA) *fx.PixelBuffer {
	t.Helper()
	buf, err := fx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	buf.Fill(c)
	return buf
}

// createGradientBuffer creates a buffer whose red channel ramps along x,
// green along y, with a varying alpha.
func createGradientBuffer(t *testing.T, w, h int) *fx.PixelBuffer {
	t.Helper()
	buf, err := fx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			buf.SetNRGBA(x, y, color.NRGBA{
				R: uint8(x * 255 / max(w-1, 1)),
				G: uint8(y * 255 / max(h-1, 1)),
				B: uint8((x * y) % 256),
				A: uint8(100 + (x+y)%100),
			})
		}
	}
	return buf
}

// alphaEqual reports whether a and b carry identical alpha channels.
func alphaEqual(a, b *fx.PixelBuffer) bool {
	da, db := a.Data(), b.Data()
	for i := 3; i < len(da); i += 4 {
		if da[i] != db[i] {
			return false
		}
	}
	return true
}
