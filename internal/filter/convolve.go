package filter

import "github.com/gogpu/fx"

// Convolve3x3 applies a row-major 3x3 kernel to R, G and B of every
// interior pixel. The outermost ring of pixels is copied from src
// unchanged, as is alpha everywhere.
func Convolve3x3(src *fx.PixelBuffer, k [9]float64) *fx.PixelBuffer {
	dst := src.Clone()
	width, height := src.Width(), src.Height()
	if width < 3 || height < 3 {
		return dst
	}

	s := src.Data()
	d := dst.Data()

	for y := 1; y < height-1; y++ {
		for x := 1; x < width-1; x++ {
			var r, g, b float64
			for ky := -1; ky <= 1; ky++ {
				for kx := -1; kx <= 1; kx++ {
					w := k[(ky+1)*3+(kx+1)]
					if w == 0 {
						continue
					}
					i := ((y+ky)*width + (x + kx)) * 4
					r += float64(s[i+0]) * w
					g += float64(s[i+1]) * w
					b += float64(s[i+2]) * w
				}
			}
			i := (y*width + x) * 4
			d[i+0] = fx.ClampRound(r)
			d[i+1] = fx.ClampRound(g)
			d[i+2] = fx.ClampRound(b)
		}
	}

	return dst
}
