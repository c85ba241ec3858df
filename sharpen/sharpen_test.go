package sharpen

import (
	"image/color"
	"testing"

	"github.com/gogpu/fx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatBuffer(t *testing.T, w, h int, c color.NRGBA) *fx.PixelBuffer {
	t.Helper()
	buf, err := fx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	buf.Fill(c)
	return buf
}

// stepBuffer returns a 10×5 opaque buffer, 50 on the left half and 200 on
// the right half.
func stepBuffer(t *testing.T) *fx.PixelBuffer {
	t.Helper()
	buf := flatBuffer(t, 10, 5, color.NRGBA{R: 50, G: 50, B: 50, A: 255})
	for y := 0; y < 5; y++ {
		for x := 5; x < 10; x++ {
			buf.SetNRGBA(x, y, color.NRGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	return buf
}

// checkerBuffer returns a low-contrast checkerboard with varying alpha.
func checkerBuffer(t *testing.T, w, h int) *fx.PixelBuffer {
	t.Helper()
	buf, err := fx.NewPixelBuffer(w, h)
	require.NoError(t, err)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := uint8(100)
			if (x+y)%2 == 0 {
				v = 104
			}
			buf.SetNRGBA(x, y, color.NRGBA{R: v, G: v, B: v, A: uint8(155 + x*5)})
		}
	}
	return buf
}

func maxDeviation(a, b *fx.PixelBuffer) int {
	da, db := a.Data(), b.Data()
	dev := 0
	for i := range da {
		d := int(da[i]) - int(db[i])
		if d < 0 {
			d = -d
		}
		dev = max(dev, d)
	}
	return dev
}

func TestRadiusValidation(t *testing.T) {
	src := flatBuffer(t, 4, 4, color.NRGBA{A: 255})

	for _, r := range []float64{0, -1} {
		_, err := UnsharpMask(src, UnsharpMaskSettings{Amount: 100, Radius: r})
		assert.ErrorIs(t, err, fx.ErrInvalidParameter)
		_, err = SmartSharpen(src, SmartSharpenSettings{Amount: 100, Radius: r})
		assert.ErrorIs(t, err, fx.ErrInvalidParameter)
		_, err = HighPass(src, HighPassSettings{Radius: r})
		assert.ErrorIs(t, err, fx.ErrInvalidParameter)
	}

	_, err := UnsharpMask(nil, DefaultUnsharpMask())
	assert.ErrorIs(t, err, fx.ErrInvalidDimensions)
	_, err = Sharpen(nil, SharpenSettings{Amount: 50})
	assert.ErrorIs(t, err, fx.ErrInvalidDimensions)

	s := DefaultSmartSharpen()
	s.Remove = BlurType(9)
	_, err = SmartSharpen(src, s)
	assert.ErrorIs(t, err, fx.ErrInvalidParameter)
}

func TestUnsharpMaskFlatUnchanged(t *testing.T) {
	src := flatBuffer(t, 8, 8, color.NRGBA{R: 90, G: 140, B: 10, A: 200})
	out, err := UnsharpMask(src, UnsharpMaskSettings{Amount: 300, Radius: 2})
	require.NoError(t, err)
	assert.Equal(t, src.Data(), out.Data())
}

func TestUnsharpMaskIncreasesEdgeContrast(t *testing.T) {
	src := stepBuffer(t)
	out, err := UnsharpMask(src, UnsharpMaskSettings{Amount: 100, Radius: 2})
	require.NoError(t, err)

	assert.Less(t, out.NRGBAAt(4, 2).R, uint8(50))
	assert.Greater(t, out.NRGBAAt(5, 2).R, uint8(200))
	assert.Equal(t, uint8(50), out.NRGBAAt(0, 2).R)
	assert.Equal(t, uint8(255), out.NRGBAAt(5, 2).A)
}

func TestUnsharpMaskThreshold(t *testing.T) {
	src := stepBuffer(t)
	out, err := UnsharpMask(src, UnsharpMaskSettings{Amount: 500, Radius: 2, Threshold: 255})
	require.NoError(t, err)
	assert.Equal(t, src.Data(), out.Data())
}

func TestAlphaUntouched(t *testing.T) {
	src := checkerBuffer(t, 12, 9)
	alpha := func(b *fx.PixelBuffer) []uint8 {
		var out []uint8
		for i := 3; i < len(b.Data()); i += 4 {
			out = append(out, b.Data()[i])
		}
		return out
	}

	results := map[string]func() (*fx.PixelBuffer, error){
		"unsharp":   func() (*fx.PixelBuffer, error) { return UnsharpMask(src, DefaultUnsharpMask()) },
		"smart":     func() (*fx.PixelBuffer, error) { return SmartSharpen(src, DefaultSmartSharpen()) },
		"high pass": func() (*fx.PixelBuffer, error) { return HighPass(src, HighPassSettings{Radius: 3}) },
		"sharpen":   func() (*fx.PixelBuffer, error) { return Sharpen(src, SharpenSettings{Amount: 100}) },
	}
	for name, run := range results {
		t.Run(name, func(t *testing.T) {
			out, err := run()
			require.NoError(t, err)
			assert.Equal(t, alpha(src), alpha(out))
		})
	}
}

func TestSmartSharpenNoiseReduction(t *testing.T) {
	src := checkerBuffer(t, 16, 16)

	loud, err := SmartSharpen(src, SmartSharpenSettings{Amount: 100, Radius: 3})
	require.NoError(t, err)
	quiet, err := SmartSharpen(src, SmartSharpenSettings{Amount: 100, Radius: 3, NoiseReduction: 100})
	require.NoError(t, err)

	assert.Less(t, maxDeviation(src, quiet), maxDeviation(src, loud))
}

func TestSmartSharpenMotion(t *testing.T) {
	src := stepBuffer(t)

	// A vertical motion blur finds no difference across a vertical edge.
	out, err := SmartSharpen(src, SmartSharpenSettings{Amount: 200, Radius: 2, Remove: MotionBlur, MotionAngle: 90})
	require.NoError(t, err)
	assert.Equal(t, src.Data(), out.Data())

	out, err = SmartSharpen(src, SmartSharpenSettings{Amount: 200, Radius: 2, Remove: MotionBlur, MotionAngle: 0})
	require.NoError(t, err)
	assert.Less(t, out.NRGBAAt(4, 2).R, uint8(50))
}

func TestHighPassFlatIsMidGray(t *testing.T) {
	src := flatBuffer(t, 6, 6, color.NRGBA{R: 10, G: 220, B: 99, A: 77})
	out, err := HighPass(src, HighPassSettings{Radius: 4})
	require.NoError(t, err)
	for y := 0; y < 6; y++ {
		for x := 0; x < 6; x++ {
			require.Equal(t, color.NRGBA{R: 128, G: 128, B: 128, A: 77}, out.NRGBAAt(x, y))
		}
	}
}

func TestSharpenKeepsBorder(t *testing.T) {
	src := stepBuffer(t)
	out, err := Sharpen(src, SharpenSettings{Amount: 100})
	require.NoError(t, err)

	w, h := src.Width(), src.Height()
	for x := 0; x < w; x++ {
		assert.Equal(t, src.NRGBAAt(x, 0), out.NRGBAAt(x, 0))
		assert.Equal(t, src.NRGBAAt(x, h-1), out.NRGBAAt(x, h-1))
	}
	for y := 0; y < h; y++ {
		assert.Equal(t, src.NRGBAAt(0, y), out.NRGBAAt(0, y))
		assert.Equal(t, src.NRGBAAt(w-1, y), out.NRGBAAt(w-1, y))
	}
	assert.Less(t, out.NRGBAAt(4, 2).R, uint8(50))
	assert.Greater(t, out.NRGBAAt(5, 2).R, uint8(200))
}

func TestSharpenZeroAmount(t *testing.T) {
	src := checkerBuffer(t, 7, 7)
	out, err := Sharpen(src, SharpenSettings{})
	require.NoError(t, err)
	assert.Equal(t, src.Data(), out.Data())
}
