package filter

import (
	"math"

	"github.com/gogpu/fx"
)

// GaussianBlur applies a separable Gaussian blur to R, G and B.
// The separable algorithm processes horizontal and vertical passes
// independently, achieving O(w*h*r) complexity instead of O(w*h*r²).
// Samples beyond the buffer edges replicate the edge pixel. Alpha is
// copied unchanged.
func GaussianBlur(src *fx.PixelBuffer, radius float64) *fx.PixelBuffer {
	dst := src.Clone()
	if radius <= 0 {
		return dst
	}

	kernel := GaussianKernel1D(radius)
	width, height := src.Width(), src.Height()
	temp := make([]float64, width*height*3)

	blurHorizontal(src.Data(), temp, width, height, kernel)
	blurVertical(temp, dst.Data(), width, height, kernel)

	return dst
}

// blurHorizontal applies 1D horizontal convolution.
// Reads from src, writes RGB floats to temp.
func blurHorizontal(src []uint8, temp []float64, width, height int, kernel []float64) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		row := y * width
		for x := 0; x < width; x++ {
			var r, g, b float64

			for k, weight := range kernel {
				kx := clampInt(x+k-half, 0, width-1)
				i := (row + kx) * 4
				r += float64(src[i+0]) * weight
				g += float64(src[i+1]) * weight
				b += float64(src[i+2]) * weight
			}

			t := (row + x) * 3
			temp[t+0] = r
			temp[t+1] = g
			temp[t+2] = b
		}
	}
}

// blurVertical applies 1D vertical convolution.
// Reads from temp, writes RGB to dst leaving alpha untouched.
func blurVertical(temp []float64, dst []uint8, width, height int, kernel []float64) {
	half := len(kernel) / 2

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64

			for k, weight := range kernel {
				ky := clampInt(y+k-half, 0, height-1)
				t := (ky*width + x) * 3
				r += temp[t+0] * weight
				g += temp[t+1] * weight
				b += temp[t+2] * weight
			}

			i := (y*width + x) * 4
			dst[i+0] = fx.ClampRound(r)
			dst[i+1] = fx.ClampRound(g)
			dst[i+2] = fx.ClampRound(b)
		}
	}
}

// DirectionalBlur averages 2*radius+1 samples taken along angleDeg through
// each pixel. Samples falling outside the buffer are dropped from both the
// sum and the denominator. Alpha is copied unchanged.
func DirectionalBlur(src *fx.PixelBuffer, radius int, angleDeg float64) *fx.PixelBuffer {
	dst := src.Clone()
	if radius <= 0 {
		return dst
	}

	rad := angleDeg * math.Pi / 180
	dx, dy := math.Cos(rad), math.Sin(rad)
	width, height := src.Width(), src.Height()
	s := src.Data()
	d := dst.Data()

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var r, g, b float64
			n := 0

			for k := -radius; k <= radius; k++ {
				sx := int(math.Round(float64(x) + float64(k)*dx))
				sy := int(math.Round(float64(y) + float64(k)*dy))
				if sx < 0 || sx >= width || sy < 0 || sy >= height {
					continue
				}
				i := (sy*width + sx) * 4
				r += float64(s[i+0])
				g += float64(s[i+1])
				b += float64(s[i+2])
				n++
			}

			// k == 0 always lands on the pixel itself, so n >= 1.
			i := (y*width + x) * 4
			inv := 1 / float64(n)
			d[i+0] = fx.ClampRound(r * inv)
			d[i+1] = fx.ClampRound(g * inv)
			d[i+2] = fx.ClampRound(b * inv)
		}
	}

	return dst
}

// clampInt clamps an integer to [minVal, maxVal].
func clampInt(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
